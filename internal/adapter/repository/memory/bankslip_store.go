// Package memory holds an in-process bank slip store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/acmattos/bankslip/internal/domain"
)

// BankSlipStore implements usecase.BankSlipRepository in memory.
// Slips are copied on the way in and out so callers never share state with the store.
type BankSlipStore struct {
	mu    sync.RWMutex
	slips map[uuid.UUID]domain.BankSlip
	seq   map[uuid.UUID]uint64
	next  uint64
}

// NewBankSlipStore creates an empty store.
func NewBankSlipStore() *BankSlipStore {
	return &BankSlipStore{
		slips: make(map[uuid.UUID]domain.BankSlip),
		seq:   make(map[uuid.UUID]uint64),
	}
}

// Create stores a copy of slip; an id already present is ErrBankSlipExists.
func (s *BankSlipStore) Create(_ context.Context, slip *domain.BankSlip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slips[slip.ID]; ok {
		return domain.ErrBankSlipExists
	}
	s.slips[slip.ID] = *slip
	s.seq[slip.ID] = s.next
	s.next++

	return nil
}

// Update persists the status of an existing slip.
func (s *BankSlipStore) Update(_ context.Context, slip *domain.BankSlip) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.slips[slip.ID]
	if !ok {
		return domain.ErrBankSlipNotFound
	}
	stored.Status = slip.Status
	stored.UpdatedAt = slip.UpdatedAt
	s.slips[slip.ID] = stored

	return nil
}

// GetByID returns a copy of the slip with id.
func (s *BankSlipStore) GetByID(_ context.Context, id uuid.UUID) (*domain.BankSlip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slip, ok := s.slips[id]
	if !ok {
		return nil, domain.ErrBankSlipNotFound
	}

	return &slip, nil
}

// List returns every slip in insertion order.
func (s *BankSlipStore) List(_ context.Context) ([]*domain.BankSlip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*domain.BankSlip, 0, len(s.slips))
	for _, slip := range s.slips {
		slip := slip
		result = append(result, &slip)
	}
	sort.Slice(result, func(i, j int) bool {
		return s.seq[result[i].ID] < s.seq[result[j].ID]
	})

	return result, nil
}

// Ping always succeeds; it lets the store back the readiness check.
func (s *BankSlipStore) Ping(context.Context) error {
	return nil
}
