package domain

import "github.com/shopspring/decimal"

// Fine brackets.
const (
	FirstFineDay  = 1
	LastFineDay   = 10
	FirstFineRate = "0.005"
	LaterFineRate = "0.01"
)

var (
	firstFineRate = decimal.RequireFromString(FirstFineRate)
	laterFineRate = decimal.RequireFromString(LaterFineRate)
)

// CalculateFine computes the late-payment fine of a slip.
//
// Only PENDING slips are fined: 0.5% from the 1st to the 10th day after the
// due date, 1% afterwards. The result is rounded half-to-even to whole cents.
func CalculateFine(status Status, dueDate, reference Date, totalInCents decimal.Decimal) decimal.Decimal {
	if status != StatusPending {
		return decimal.Zero
	}

	rate := fineRate(dueDate.DaysUntil(reference))
	if rate.IsZero() {
		return decimal.Zero
	}

	return totalInCents.Mul(rate).RoundBank(0)
}

func fineRate(daysLate int) decimal.Decimal {
	switch {
	case daysLate >= FirstFineDay && daysLate <= LastFineDay:
		return firstFineRate
	case daysLate > LastFineDay:
		return laterFineRate
	default:
		return decimal.Zero
	}
}
