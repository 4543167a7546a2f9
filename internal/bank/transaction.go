package bank

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/validate"
)

// transactions applies validated deposits and withdrawals to a single account.
type transactions struct{}

func (transactions) deposit(acct *Account, amount decimal.Decimal) error {
	if err := validate.CheckPositive(amount); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	acct.increaseBalance(amount)
	return nil
}

// withdraw checks positivity before sufficiency so a negative amount can
// never pass the balance check.
func (transactions) withdraw(acct *Account, amount decimal.Decimal) error {
	if err := validate.CheckPositive(amount); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	if err := validate.CheckSufficientFunds(amount, acct.balance); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	acct.decreaseBalance(amount)
	return nil
}
