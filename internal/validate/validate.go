package validate

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInsufficientFunds is returned when an amount exceeds the available balance or pool.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrExcessRepayment is returned when a repayment exceeds the outstanding loan.
	ErrExcessRepayment = errors.New("repayment exceeds loan balance")
)

// CheckPositive fails with ErrInvalidAmount when amount <= 0.
func CheckPositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	return nil
}

// CheckSufficientFunds fails with ErrInsufficientFunds when amount > balance.
func CheckSufficientFunds(amount, balance decimal.Decimal) error {
	if amount.GreaterThan(balance) {
		return fmt.Errorf("%w: amount %s exceeds balance %s", ErrInsufficientFunds, amount, balance)
	}
	return nil
}

// CheckSufficientLoanRepayment fails with ErrExcessRepayment when amount > loanBalance.
func CheckSufficientLoanRepayment(amount, loanBalance decimal.Decimal) error {
	if amount.GreaterThan(loanBalance) {
		return fmt.Errorf("%w: amount %s exceeds loan %s", ErrExcessRepayment, amount, loanBalance)
	}
	return nil
}
