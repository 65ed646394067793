package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankSlip is a payable invoice-like document.
//
// Identity is the ID alone; use SameBankSlip to compare two instances.
// A slip whose ID is uuid.Nil has not been persisted yet.
type BankSlip struct {
	ID           uuid.UUID
	DueDate      Date
	TotalInCents decimal.Decimal
	Customer     string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewBankSlip creates an unsaved bank slip.
// The status is taken as given; only the creation path decides which values are acceptable.
func NewBankSlip(dueDate Date, totalInCents decimal.Decimal, customer string, status Status) (*BankSlip, error) {
	switch {
	case dueDate.IsZero():
		return nil, fmt.Errorf("%w: dueDate", ErrMissingField)
	case customer == "":
		return nil, fmt.Errorf("%w: customer", ErrMissingField)
	case status.IsZero():
		return nil, fmt.Errorf("%w: status", ErrMissingField)
	case totalInCents.IsNegative():
		return nil, ErrNegativeAmount
	}

	return &BankSlip{
		DueDate:      dueDate,
		TotalInCents: totalInCents,
		Customer:     customer,
		Status:       status,
	}, nil
}

// IsNew reports whether the slip still has no identifier.
func (b *BankSlip) IsNew() bool {
	return b.ID == uuid.Nil
}

// AssignID sets the identifier of a new slip. An assigned ID never changes.
func (b *BankSlip) AssignID(id uuid.UUID) error {
	if !b.IsNew() {
		return ErrIDAlreadyAssigned
	}
	b.ID = id

	return nil
}

// Resolve moves a PENDING slip to PAID or CANCELED.
func (b *BankSlip) Resolve(target Status) error {
	if err := ValidateResolution(target); err != nil {
		return err
	}
	if b.Status != StatusPending {
		return fmt.Errorf("%w: current status is %s", ErrBankSlipAlreadyResolved, b.Status)
	}
	b.Status = target

	return nil
}

// Fine returns the late-payment fine as of the reference date.
func (b *BankSlip) Fine(reference Date) decimal.Decimal {
	return CalculateFine(b.Status, b.DueDate, reference, b.TotalInCents)
}

// ValidateResolution checks that target is an allowed resolution status.
func ValidateResolution(target Status) error {
	switch target {
	case StatusPaid, StatusCanceled:
		return nil
	case "":
		return ErrStatusRequired
	default:
		return fmt.Errorf("%w: got %s", ErrInvalidTargetStatus, target)
	}
}

// SameBankSlip reports whether a and b denote the same bank slip.
// Only identifiers are compared; field values are not part of identity.
func SameBankSlip(a, b *BankSlip) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.ID == b.ID
}
