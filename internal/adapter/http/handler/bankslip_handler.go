package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acmattos/bankslip/internal/adapter/http/dto"
	"github.com/acmattos/bankslip/internal/domain"
	"github.com/acmattos/bankslip/internal/outcome"
	"github.com/acmattos/bankslip/internal/usecase"
)

// BankSlipService defines the behavior needed by BankSlipHandler.
type BankSlipService interface {
	Create(ctx context.Context, input usecase.CreateBankSlipInput) outcome.Outcome
	List(ctx context.Context) outcome.Outcome
	Get(ctx context.Context, id string) outcome.Outcome
	Resolve(ctx context.Context, id string, target domain.Status) outcome.Outcome
}

// BankSlipHandler handles bank slip HTTP requests.
type BankSlipHandler struct {
	service BankSlipService
}

// NewBankSlipHandler creates a new BankSlipHandler.
func NewBankSlipHandler(service BankSlipService) *BankSlipHandler {
	return &BankSlipHandler{service: service}
}

// Create creates a new bank slip.
func (h *BankSlipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req *dto.NewBankSlipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
		writeText(w, http.StatusBadRequest, domain.MsgBodyNotProvided.Text())
		return
	}

	writeOutcome(w, h.service.Create(r.Context(), req.ToUseCaseInput()))
}

// List lists every bank slip.
func (h *BankSlipHandler) List(w http.ResponseWriter, r *http.Request) {
	writeOutcome(w, h.service.List(r.Context()))
}

// Get retrieves a bank slip by ID, with its fine as of today.
func (h *BankSlipHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeOutcome(w, h.service.Get(r.Context(), chi.URLParam(r, "id")))
}

// Resolve pays or cancels a bank slip.
func (h *BankSlipHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req *dto.UpdateBankSlipStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req == nil {
		writeText(w, http.StatusBadRequest, domain.MsgBodyNotProvided.Text())
		return
	}

	writeOutcome(w, h.service.Resolve(r.Context(), chi.URLParam(r, "id"), req.TargetStatus()))
}
