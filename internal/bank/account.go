package bank

import "github.com/shopspring/decimal"

// Account holds one holder's balance and outstanding loan.
// The mutators are unchecked and unexported; all changes go through the
// validated operations in transaction.go and loan.go.
type Account struct {
	holder  string
	balance decimal.Decimal
	loan    decimal.Decimal
}

// AccountSnapshot is a read-only copy of an Account.
type AccountSnapshot struct {
	Holder  string
	Balance decimal.Decimal
	Loan    decimal.Decimal
}

func newAccount(holder string, initialBalance decimal.Decimal) *Account {
	return &Account{holder: holder, balance: initialBalance}
}

// Holder returns the account holder's identifier.
func (a *Account) Holder() string { return a.holder }

// Balance returns the current deposit balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Loan returns the outstanding loan amount.
func (a *Account) Loan() decimal.Decimal { return a.loan }

// Snapshot returns a copy of the account's state.
func (a *Account) Snapshot() AccountSnapshot {
	return AccountSnapshot{Holder: a.holder, Balance: a.balance, Loan: a.loan}
}

func (a *Account) increaseBalance(amount decimal.Decimal) {
	a.balance = a.balance.Add(amount)
}

func (a *Account) decreaseBalance(amount decimal.Decimal) {
	a.balance = a.balance.Sub(amount)
}

func (a *Account) increaseLoan(amount decimal.Decimal) {
	a.loan = a.loan.Add(amount)
}

func (a *Account) decreaseLoan(amount decimal.Decimal) {
	a.loan = a.loan.Sub(amount)
}
