package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OpKind names a ledger operation in a script.
type OpKind string

const (
	OpOpen        OpKind = "open"
	OpDeposit     OpKind = "deposit"
	OpWithdraw    OpKind = "withdraw"
	OpApproveLoan OpKind = "approve_loan"
	OpRepayLoan   OpKind = "repay_loan"
	OpBalance     OpKind = "balance"
	OpLoan        OpKind = "loan"
	OpTotal       OpKind = "total"
)

var opKinds = []OpKind{
	OpOpen, OpDeposit, OpWithdraw, OpApproveLoan, OpRepayLoan, OpBalance, OpLoan, OpTotal,
}

// ParseOpKind accepts an operation name case-insensitively.
func ParseOpKind(s string) (OpKind, error) {
	k := OpKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range opKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown operation %q", s)
}

// IsRead reports whether the operation only reads ledger state.
func (k OpKind) IsRead() bool {
	return k == OpBalance || k == OpLoan || k == OpTotal
}

// NeedsHolder reports whether the operation targets a single account.
func (k OpKind) NeedsHolder() bool {
	return k != OpTotal
}

// Operation is one row of an operation script.
type Operation struct {
	Kind   OpKind
	Holder string
	Amount decimal.Decimal // zero for reads
}

func (o Operation) String() string {
	if o.Kind.IsRead() {
		if o.Holder == "" {
			return string(o.Kind)
		}
		return fmt.Sprintf("%s %s", o.Kind, o.Holder)
	}
	return fmt.Sprintf("%s %s %s", o.Kind, o.Holder, o.Amount)
}
