package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/acmattos/bankslip/internal/usecase"
)

// SavedBankSlipResponse represents a bank slip in listings.
type SavedBankSlipResponse struct {
	ID           uuid.UUID       `json:"id"`
	DueDate      string          `json:"dueDate"`
	TotalInCents decimal.Decimal `json:"totalInCents"`
	Customer     string          `json:"customer"`
}

// SavedFromSummaries converts summaries to responses. The result is never nil.
func SavedFromSummaries(summaries []usecase.BankSlipSummary) []SavedBankSlipResponse {
	result := make([]SavedBankSlipResponse, len(summaries))
	for i, s := range summaries {
		result[i] = SavedBankSlipResponse{
			ID:           s.ID,
			DueDate:      s.DueDate.String(),
			TotalInCents: s.TotalInCents,
			Customer:     s.Customer,
		}
	}
	return result
}

// DetailedBankSlipResponse represents a single bank slip with its fine.
type DetailedBankSlipResponse struct {
	ID           uuid.UUID       `json:"id"`
	DueDate      string          `json:"dueDate"`
	TotalInCents decimal.Decimal `json:"totalInCents"`
	Customer     string          `json:"customer"`
	Fine         decimal.Decimal `json:"fine"`
	Status       string          `json:"status"`
}

// DetailedFromDetail converts a detail view to its response.
func DetailedFromDetail(d usecase.BankSlipDetail) DetailedBankSlipResponse {
	return DetailedBankSlipResponse{
		ID:           d.ID,
		DueDate:      d.DueDate.String(),
		TotalInCents: d.TotalInCents,
		Customer:     d.Customer,
		Fine:         d.Fine,
		Status:       d.Status.String(),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
