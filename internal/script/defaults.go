package script

import (
	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/model"
)

// DemoScript returns the walkthrough run by `minibank demo`: two accounts,
// a deposit, a withdrawal, and a loan that is partly repaid.
func DemoScript() []model.Operation {
	amt := decimal.NewFromInt
	return []model.Operation{
		{Kind: model.OpOpen, Holder: "Alice", Amount: amt(1000)},
		{Kind: model.OpOpen, Holder: "Bob", Amount: amt(500)},
		{Kind: model.OpDeposit, Holder: "Alice", Amount: amt(200)},
		{Kind: model.OpBalance, Holder: "Alice"},
		{Kind: model.OpWithdraw, Holder: "Bob", Amount: amt(300)},
		{Kind: model.OpBalance, Holder: "Bob"},
		{Kind: model.OpApproveLoan, Holder: "Alice", Amount: amt(400)},
		{Kind: model.OpLoan, Holder: "Alice"},
		{Kind: model.OpRepayLoan, Holder: "Alice", Amount: amt(200)},
		{Kind: model.OpLoan, Holder: "Alice"},
		{Kind: model.OpTotal},
	}
}
