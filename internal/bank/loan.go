package bank

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/validate"
)

// loans applies validated loan approvals and repayments to a single account.
// The bank-wide pool check lives in Manager.
type loans struct{}

func (loans) approve(acct *Account, amount decimal.Decimal) error {
	if err := validate.CheckPositive(amount); err != nil {
		return fmt.Errorf("approve loan: %w", err)
	}
	acct.increaseLoan(amount)
	return nil
}

func (loans) repay(acct *Account, amount decimal.Decimal) error {
	if err := validate.CheckPositive(amount); err != nil {
		return fmt.Errorf("repay loan: %w", err)
	}
	if err := validate.CheckSufficientLoanRepayment(amount, acct.loan); err != nil {
		return fmt.Errorf("repay loan: %w", err)
	}
	acct.decreaseLoan(amount)
	return nil
}
