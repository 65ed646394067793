package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/acmattos/bankslip/internal/domain"
	"github.com/acmattos/bankslip/internal/infrastructure/postgres/generated"
)

// BankSlipRepository implements usecase.BankSlipRepository.
type BankSlipRepository struct {
	queries *generated.Queries
}

// NewBankSlipRepository creates a new BankSlipRepository. db is usually a *pgxpool.Pool.
func NewBankSlipRepository(db generated.DBTX) *BankSlipRepository {
	return &BankSlipRepository{
		queries: generated.New(db),
	}
}

// Create inserts a slip that already has its id.
func (r *BankSlipRepository) Create(ctx context.Context, slip *domain.BankSlip) error {
	total, err := decimalToNumeric(slip.TotalInCents)
	if err != nil {
		return err
	}

	_, err = r.queries.CreateBankSlip(ctx, generated.CreateBankSlipParams{
		ID:           uuidToPg(slip.ID),
		DueDate:      dateToPg(slip.DueDate),
		TotalInCents: total,
		Customer:     slip.Customer,
		Status:       slip.Status.String(),
		CreatedAt:    timeToPgTimestamptz(slip.CreatedAt),
		UpdatedAt:    timeToPgTimestamptz(slip.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to insert bank slip: %w", err)
	}

	return nil
}

// Update persists the status of an existing slip.
func (r *BankSlipRepository) Update(ctx context.Context, slip *domain.BankSlip) error {
	affected, err := r.queries.UpdateBankSlipStatus(ctx, generated.UpdateBankSlipStatusParams{
		ID:        uuidToPg(slip.ID),
		Status:    slip.Status.String(),
		UpdatedAt: timeToPgTimestamptz(slip.UpdatedAt),
	})
	if err != nil {
		return fmt.Errorf("failed to update bank slip: %w", err)
	}
	if affected == 0 {
		return domain.ErrBankSlipNotFound
	}

	return nil
}

// GetByID retrieves a slip by id.
func (r *BankSlipRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankSlip, error) {
	row, err := r.queries.GetBankSlipByID(ctx, uuidToPg(id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBankSlipNotFound
		}

		return nil, fmt.Errorf("failed to get bank slip: %w", err)
	}

	return rowToBankSlip(row), nil
}

// List returns every slip in creation order.
func (r *BankSlipRepository) List(ctx context.Context) ([]*domain.BankSlip, error) {
	rows, err := r.queries.ListBankSlips(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank slips: %w", err)
	}

	slips := make([]*domain.BankSlip, 0, len(rows))
	for _, row := range rows {
		slips = append(slips, rowToBankSlip(row))
	}

	return slips, nil
}

func rowToBankSlip(row generated.Bankslip) *domain.BankSlip {
	return &domain.BankSlip{
		ID:           uuid.UUID(row.ID.Bytes),
		DueDate:      domain.DateOf(row.DueDate.Time),
		TotalInCents: numericToDecimal(row.TotalInCents),
		Customer:     row.Customer,
		Status:       domain.Status(row.Status),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

func uuidToPg(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func dateToPg(d domain.Date) pgtype.Date {
	return pgtype.Date{Time: d.Time(), Valid: !d.IsZero()}
}

func decimalToNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, fmt.Errorf("failed to convert total %s: %w", d, err)
	}

	return n, nil
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}
