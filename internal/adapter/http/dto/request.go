package dto

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/acmattos/bankslip/internal/domain"
	"github.com/acmattos/bankslip/internal/usecase"
)

// NewBankSlipRequest represents a request to create a bank slip.
// Absent and null fields decode to their zero values.
type NewBankSlipRequest struct {
	DueDate      *string             `json:"dueDate"`
	TotalInCents decimal.NullDecimal `json:"totalInCents"`
	Customer     string              `json:"customer"`
	Status       *string             `json:"status"`
}

// ToUseCaseInput converts to use case input. Fields present with an
// unreadable value are reported in FormatErrors; missing fields are left for
// the creation validator.
func (r *NewBankSlipRequest) ToUseCaseInput() usecase.CreateBankSlipInput {
	input := usecase.CreateBankSlipInput{
		TotalInCents: r.TotalInCents,
		Customer:     r.Customer,
	}
	errs := domain.FieldErrors{}

	if r.DueDate != nil && *r.DueDate != "" {
		d, err := domain.ParseDate(*r.DueDate)
		if err != nil {
			errs.Add(domain.FieldDueDate, domain.MsgDateFormat)
		}
		input.DueDate = d
	}

	if r.Status != nil && *r.Status != "" {
		st, err := domain.ParseStatus(*r.Status)
		if err != nil {
			errs.Add(domain.FieldStatus, domain.MsgStatusValues)
		}
		input.Status = st
	}

	if len(errs) > 0 {
		input.FormatErrors = errs
	}

	return input
}

// UpdateBankSlipStatusRequest represents a request to pay or cancel a bank slip.
type UpdateBankSlipStatusRequest struct {
	Status *string `json:"status"`
}

// TargetStatus returns the requested status. Text that names no status is
// returned as is and rejected by the resolve rules.
func (r *UpdateBankSlipStatusRequest) TargetStatus() domain.Status {
	if r.Status == nil {
		return ""
	}

	st, err := domain.ParseStatus(*r.Status)
	if errors.Is(err, domain.ErrUnknownStatus) {
		return domain.Status(*r.Status)
	}

	return st
}
