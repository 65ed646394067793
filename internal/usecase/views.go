package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acmattos/bankslip/internal/domain"
)

// BankSlipSummary is the listing view of a slip: no fine, no status.
type BankSlipSummary struct {
	ID           uuid.UUID
	DueDate      domain.Date
	TotalInCents decimal.Decimal
	Customer     string
}

// BankSlipDetail is the single-slip view, including the fine as of a reference date.
type BankSlipDetail struct {
	ID           uuid.UUID
	DueDate      domain.Date
	TotalInCents decimal.Decimal
	Customer     string
	Fine         decimal.Decimal
	Status       domain.Status
}

// SummaryFromDomain converts a slip to its summary view.
func SummaryFromDomain(b *domain.BankSlip) BankSlipSummary {
	return BankSlipSummary{
		ID:           b.ID,
		DueDate:      b.DueDate,
		TotalInCents: b.TotalInCents,
		Customer:     b.Customer,
	}
}

// SummariesFromDomain converts slips to summary views. The result is never nil.
func SummariesFromDomain(slips []*domain.BankSlip) []BankSlipSummary {
	result := make([]BankSlipSummary, len(slips))
	for i, b := range slips {
		result[i] = SummaryFromDomain(b)
	}
	return result
}

// DetailFromDomain converts a slip to its detail view, computing the fine as of reference.
func DetailFromDomain(b *domain.BankSlip, reference domain.Date) BankSlipDetail {
	return BankSlipDetail{
		ID:           b.ID,
		DueDate:      b.DueDate,
		TotalInCents: b.TotalInCents,
		Customer:     b.Customer,
		Fine:         b.Fine(reference),
		Status:       b.Status,
	}
}
