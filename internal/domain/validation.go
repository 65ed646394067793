package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Field names reported by validation.
const (
	FieldDueDate      = "dueDate"
	FieldTotalInCents = "totalInCents"
	FieldCustomer     = "customer"
	FieldStatus       = "status"
)

// FieldErrors maps a field name to its error message. Empty means valid.
type FieldErrors map[string]string

// Add records msg for field, keeping the first message reported.
func (fe FieldErrors) Add(field string, msg Message) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg.Text()
	}
}

// Merge copies the errors of other for fields not reported yet.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, msg := range other {
		if _, ok := fe[field]; !ok {
			fe[field] = msg
		}
	}
}

// Fields returns the failing field names in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for field := range fe {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return fields
}

// ValidateCreation checks a creation request. All rules are independent and
// every failing field is reported.
//
// It does not require the status to be PENDING: any non-null status passes.
func ValidateCreation(dueDate Date, totalInCents decimal.NullDecimal, customer string, status Status) FieldErrors {
	errs := FieldErrors{}

	if dueDate.IsZero() {
		errs.Add(FieldDueDate, MsgCantBeNull)
	}
	if !totalInCents.Valid || totalInCents.Decimal.LessThanOrEqual(decimal.Zero) {
		errs.Add(FieldTotalInCents, MsgCantBeNullOrBelowZero)
	}
	if customer == "" {
		errs.Add(FieldCustomer, MsgCantBeNullOrEmpty)
	}
	if status.IsZero() {
		errs.Add(FieldStatus, MsgCantBeNull)
	}

	return errs
}
