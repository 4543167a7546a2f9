package bank

import (
	"errors"

	"github.com/minibank-dev/minibank/internal/validate"
)

var (
	// ErrAccountNotFound is returned when a holder has no account.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountAlreadyExists is returned when registering a holder twice.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// Validation failures, re-exported so callers only need this package.
	ErrInvalidAmount     = validate.ErrInvalidAmount
	ErrInsufficientFunds = validate.ErrInsufficientFunds
	ErrExcessRepayment   = validate.ErrExcessRepayment
)
