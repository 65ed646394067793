package domain

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[1-5][0-9a-fA-F]{3}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ParseID parses the canonical 8-4-4-4-12 hexadecimal form of a bank slip id
// whose version nibble is 1 to 5.
// Other forms accepted by uuid.Parse (braces, urn prefix, no dashes) are rejected.
func ParseID(s string) (uuid.UUID, error) {
	if !idPattern.MatchString(s) {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidIDFormat, s)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidIDFormat, err)
	}

	return id, nil
}
