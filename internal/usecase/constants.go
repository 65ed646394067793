package usecase

import (
	"github.com/google/uuid"
)

const (
	// BankSlipsPath is the canonical path of the bank slip collection.
	BankSlipsPath = "/rest/bankslips"

	// HeaderLocation carries the canonical path of a created slip.
	HeaderLocation = "Location"

	// HeaderError carries the message of an unexpected failure.
	HeaderError = "iserror"

	// TicketFormat wraps a correlation ticket inside an error message.
	TicketFormat = "[Ticket-%s] - "

	// IdempotencyInProgress marks an idempotency key whose request has not finished.
	IdempotencyInProgress = "processing"
)

// BankSlipPath returns the canonical path of the slip with the given id.
func BankSlipPath(id uuid.UUID) string {
	return BankSlipsPath + "/" + id.String()
}
