package postgres

import (
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// UUIDGenerator generates random (version 4) bank slip ids.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a new UUIDGenerator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID generates a new random UUID.
func (g *UUIDGenerator) NewID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

// ULIDTicketGenerator generates ULID correlation tickets.
type ULIDTicketGenerator struct{}

// NewULIDTicketGenerator creates a new ULIDTicketGenerator.
func NewULIDTicketGenerator() *ULIDTicketGenerator {
	return &ULIDTicketGenerator{}
}

// NewTicket generates a new ULID.
func (g *ULIDTicketGenerator) NewTicket() string {
	return ulid.Make().String()
}
