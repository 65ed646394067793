package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/acmattos/bankslip/internal/domain"
	"github.com/acmattos/bankslip/internal/infrastructure/metrics"
	"github.com/acmattos/bankslip/internal/outcome"
)

// Operation names used in logs and metrics.
const (
	OperationCreate  = "create"
	OperationList    = "list"
	OperationGet     = "get"
	OperationResolve = "resolve"
)

// BankSlipUseCase implements the bank slip operations. Every operation
// returns an outcome; domain and validation failures are values, and only
// collaborator failures become INTERNAL_ERROR outcomes carrying a ticket.
type BankSlipUseCase struct {
	repo    BankSlipRepository
	idGen   IDGenerator
	tickets TicketGenerator
	logger  zerolog.Logger
	metrics *metrics.Metrics
	today   func() domain.Date
	now     func() time.Time
}

// Option customizes a BankSlipUseCase.
type Option func(*BankSlipUseCase)

// WithMetrics records operation metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return func(uc *BankSlipUseCase) { uc.metrics = m }
}

// WithToday replaces the source of the fine reference date.
func WithToday(today func() domain.Date) Option {
	return func(uc *BankSlipUseCase) { uc.today = today }
}

// NewBankSlipUseCase creates a new BankSlipUseCase.
func NewBankSlipUseCase(
	repo BankSlipRepository,
	idGen IDGenerator,
	tickets TicketGenerator,
	logger zerolog.Logger,
	opts ...Option,
) *BankSlipUseCase {
	uc := &BankSlipUseCase{
		repo:    repo,
		idGen:   idGen,
		tickets: tickets,
		logger:  logger,
		today:   domain.Today,
		now:     func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// CreateBankSlipInput represents input for creating a bank slip.
// Zero values mean the field was not supplied.
type CreateBankSlipInput struct {
	DueDate      domain.Date
	TotalInCents decimal.NullDecimal
	Customer     string
	Status       domain.Status
	// FormatErrors holds fields that were supplied but could not be read.
	// They take precedence over the creation rules for the same field.
	FormatErrors domain.FieldErrors
}

// Create validates and stores a new bank slip.
func (uc *BankSlipUseCase) Create(ctx context.Context, input CreateBankSlipInput) outcome.Outcome {
	uc.logger.Info().
		Str("operation", OperationCreate).
		Str("due_date", input.DueDate.String()).
		Str("total_in_cents", input.TotalInCents.Decimal.String()).
		Str("customer", input.Customer).
		Str("status", input.Status.String()).
		Msg("new bank slip creation")

	errs := domain.FieldErrors{}
	errs.Merge(input.FormatErrors)
	errs.Merge(domain.ValidateCreation(input.DueDate, input.TotalInCents, input.Customer, input.Status))
	if len(errs) > 0 {
		if uc.metrics != nil {
			uc.metrics.ValidationFailures.Inc()
		}
		return uc.finish(OperationCreate, domain.MsgCreateFailed, ValidationFailed(errs))
	}

	// The status is stored as supplied; validation only requires it to be present.
	slip, err := domain.NewBankSlip(input.DueDate, input.TotalInCents.Decimal, input.Customer, input.Status)
	if err != nil {
		return uc.unexpected(OperationCreate, domain.MsgCreateFailed, err)
	}

	if err := uc.save(ctx, slip); err != nil {
		return uc.unexpected(OperationCreate, domain.MsgCreateFailed, err)
	}

	if uc.metrics != nil {
		uc.metrics.BankSlipsCreated.Inc()
	}

	b := outcome.New().
		Key(HeaderLocation).Value(BankSlipPath(slip.ID)).
		Body(domain.MsgCreated.Text()).
		Created()

	return uc.finish(OperationCreate, domain.MsgCreateFailed, b)
}

// List returns the summaries of every stored slip; none stored means NOT_FOUND.
func (uc *BankSlipUseCase) List(ctx context.Context) outcome.Outcome {
	uc.logger.Info().Str("operation", OperationList).Msg("find all bank slips requested")

	slips, err := uc.repo.List(ctx)
	if err != nil {
		return uc.unexpected(OperationList, domain.MsgListFailed, err)
	}

	return uc.finish(OperationList, domain.MsgListFailed, outcome.New().Body(SummariesFromDomain(slips)))
}

// Get returns the detail view of one slip, with its fine as of today.
func (uc *BankSlipUseCase) Get(ctx context.Context, rawID string) outcome.Outcome {
	uc.logger.Info().Str("operation", OperationGet).Str("id", rawID).Msg("detailed bank slip requested")

	id, err := domain.ParseID(rawID)
	if err != nil {
		return uc.finish(OperationGet, domain.MsgFindFailed, message(domain.MsgInvalidID).BadRequest())
	}

	slip, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrBankSlipNotFound) {
		return uc.finish(OperationGet, domain.MsgFindFailed, message(domain.MsgNotFound).NotFound())
	}
	if err != nil {
		return uc.unexpected(OperationGet, domain.MsgFindFailed, err)
	}

	return uc.finish(OperationGet, domain.MsgFindFailed, outcome.New().Body(DetailFromDomain(slip, uc.today())))
}

// Resolve pays or cancels a PENDING slip.
//
// A PENDING or missing target is rejected before the store is consulted.
// Concurrent resolutions of the same slip are not serialized.
func (uc *BankSlipUseCase) Resolve(ctx context.Context, rawID string, target domain.Status) outcome.Outcome {
	uc.logger.Info().
		Str("operation", OperationResolve).
		Str("id", rawID).
		Str("status", target.String()).
		Msg("pay or cancel bank slip requested")

	if err := domain.ValidateResolution(target); err != nil {
		msg := domain.MsgInvalidTargetStatus
		if errors.Is(err, domain.ErrStatusRequired) {
			msg = domain.MsgStatusRequired
		}
		return uc.finish(OperationResolve, domain.MsgResolveFailed, message(msg).Unprocessable())
	}

	id, err := domain.ParseID(rawID)
	if err != nil {
		return uc.finish(OperationResolve, domain.MsgResolveFailed, message(domain.MsgInvalidID).BadRequest())
	}

	slip, err := uc.repo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrBankSlipNotFound) {
		return uc.finish(OperationResolve, domain.MsgResolveFailed, message(domain.MsgNotFound).NotFound())
	}
	if err != nil {
		return uc.unexpected(OperationResolve, domain.MsgResolveFailed, err)
	}

	if err := slip.Resolve(target); err != nil {
		if errors.Is(err, domain.ErrBankSlipAlreadyResolved) {
			return uc.finish(OperationResolve, domain.MsgResolveFailed, message(domain.MsgAlreadyResolved).Unprocessable())
		}
		return uc.unexpected(OperationResolve, domain.MsgResolveFailed, err)
	}

	if err := uc.save(ctx, slip); err != nil {
		return uc.unexpected(OperationResolve, domain.MsgResolveFailed, err)
	}

	if uc.metrics != nil {
		uc.metrics.BankSlipsResolved.WithLabelValues(target.String()).Inc()
	}

	confirmation := domain.MsgPaid
	if target == domain.StatusCanceled {
		confirmation = domain.MsgCanceled
	}

	return uc.finish(OperationResolve, domain.MsgResolveFailed, message(confirmation).Found())
}

// save assigns an id to a new slip before its first write; known slips are updated.
func (uc *BankSlipUseCase) save(ctx context.Context, slip *domain.BankSlip) error {
	now := uc.now()
	slip.UpdatedAt = now

	if !slip.IsNew() {
		return uc.repo.Update(ctx, slip)
	}

	id, err := uc.idGen.NewID()
	if err != nil {
		return fmt.Errorf("failed to generate bank slip id: %w", err)
	}
	if err := slip.AssignID(id); err != nil {
		return err
	}
	slip.CreatedAt = now

	return uc.repo.Create(ctx, slip)
}

// finish builds b and logs the resulting classification.
func (uc *BankSlipUseCase) finish(operation string, failure domain.Message, b *outcome.Builder) outcome.Outcome {
	out, err := b.Build()
	if err != nil {
		return uc.unexpected(operation, failure, err)
	}

	uc.logger.Info().
		Str("operation", operation).
		Stringer("outcome", out.Classification).
		Msg("response")
	uc.count(operation, out.Classification)

	return out
}

// unexpected logs err under a fresh ticket and returns an INTERNAL_ERROR
// outcome whose error header embeds the ticket.
func (uc *BankSlipUseCase) unexpected(operation string, failure domain.Message, err error) outcome.Outcome {
	ticket := fmt.Sprintf(TicketFormat, uc.tickets.NewTicket())
	msg := failure.Text() + ticket + err.Error()

	uc.logger.Error().
		Err(err).
		Str("operation", operation).
		Str("ticket", ticket).
		Msg(msg)

	if uc.metrics != nil {
		uc.metrics.UnexpectedErrors.WithLabelValues(operation).Inc()
	}
	uc.count(operation, outcome.InternalError)

	return outcome.Outcome{
		Classification: outcome.InternalError,
		Headers:        map[string][]string{HeaderError: {msg}},
	}
}

func (uc *BankSlipUseCase) count(operation string, c outcome.Classification) {
	if uc.metrics != nil {
		uc.metrics.Outcomes.WithLabelValues(operation, c.String()).Inc()
	}
}

// ValidationFailed shapes field errors into an UNPROCESSABLE outcome with one
// header per failing field.
func ValidationFailed(errs domain.FieldErrors) *outcome.Builder {
	b := outcome.New()
	for _, field := range errs.Fields() {
		b.Key(field).Value(errs[field])
	}

	return b.Body(domain.MsgInvalidBankSlip.Text()).Unprocessable()
}

func message(m domain.Message) *outcome.Builder {
	return outcome.New().Body(m.Text())
}
