package domain

import "errors"

var (
	// Bank slip errors
	ErrBankSlipNotFound        = errors.New("bank slip not found")
	ErrBankSlipAlreadyResolved = errors.New("bank slip already resolved")
	ErrBankSlipExists          = errors.New("bank slip already exists")
	ErrIDAlreadyAssigned       = errors.New("bank slip id already assigned")
	ErrNegativeAmount          = errors.New("total in cents must not be negative")
	ErrMissingField            = errors.New("required field missing")

	// Status errors
	ErrUnknownStatus       = errors.New("unknown bank slip status")
	ErrStatusRequired      = errors.New("status can't be null")
	ErrInvalidTargetStatus = errors.New("bank slip can only be resolved to PAID or CANCELED")

	// Input format errors
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidIDFormat   = errors.New("invalid id format")
)
