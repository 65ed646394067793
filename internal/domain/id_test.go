package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseID(t *testing.T) {
	id := uuid.New()

	got, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != id {
		t.Errorf("expected %s, got %s", id, got)
	}

	upper := "84E8ADBF-1A14-403B-AD73-D78AE19B59BF"
	if _, err := ParseID(upper); err != nil {
		t.Errorf("expected upper case id to parse, got %v", err)
	}

	for _, s := range []string{
		"84e8adbf-1a14-103b-ad73-d78ae19b59bf",
		"84e8adbf-1a14-503b-ad73-d78ae19b59bf",
	} {
		if _, err := ParseID(s); err != nil {
			t.Errorf("ParseID(%q): unexpected error %v", s, err)
		}
	}

	invalid := []string{
		"",
		"1-1-1-1-1",
		"not-a-uuid",
		"84e8adbf1a14403bad73d78ae19b59bf",
		"{84e8adbf-1a14-403b-ad73-d78ae19b59bf}",
		"urn:uuid:84e8adbf-1a14-403b-ad73-d78ae19b59bf",
		"84e8adbf-1a14-403b-ad73-d78ae19b59bg",
		"00000000-0000-0000-0000-000000000000",
		"84e8adbf-1a14-003b-ad73-d78ae19b59bf",
		"84e8adbf-1a14-603b-ad73-d78ae19b59bf",
		"84e8adbf-1a14-703b-ad73-d78ae19b59bf",
		"84e8adbf-1a14-f03b-ad73-d78ae19b59bf",
	}
	for _, s := range invalid {
		if _, err := ParseID(s); !errors.Is(err, ErrInvalidIDFormat) {
			t.Errorf("ParseID(%q): expected ErrInvalidIDFormat, got %v", s, err)
		}
	}
}
