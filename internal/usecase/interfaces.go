package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/acmattos/bankslip/internal/domain"
)

// BankSlipRepository defines data access for bank slips.
type BankSlipRepository interface {
	Create(ctx context.Context, slip *domain.BankSlip) error
	// Update persists the status of an existing slip.
	Update(ctx context.Context, slip *domain.BankSlip) error
	// GetByID returns domain.ErrBankSlipNotFound when no slip has the id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BankSlip, error)
	List(ctx context.Context) ([]*domain.BankSlip, error)
}

// IDGenerator generates unique bank slip identifiers.
type IDGenerator interface {
	NewID() (uuid.UUID, error)
}

// TicketGenerator generates correlation tickets for unexpected failures.
type TicketGenerator interface {
	NewTicket() string
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key so the request can be retried.
	Release(ctx context.Context, key string) error
}
