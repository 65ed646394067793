package domain

import "fmt"

// Status is the lifecycle state of a bank slip.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusPaid     Status = "PAID"
	StatusCanceled Status = "CANCELED"
)

// Statuses lists every accepted status, in declaration order.
var Statuses = []Status{StatusPending, StatusPaid, StatusCanceled}

// ParseStatus converts wire text into a Status.
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// IsZero reports whether no status was supplied.
func (s Status) IsZero() bool {
	return s == ""
}

func (s Status) String() string {
	return string(s)
}
