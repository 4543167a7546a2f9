package script

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/minibank-dev/minibank/internal/model"
	"github.com/minibank-dev/minibank/internal/report"
)

// Ledger is the set of bank operations a script can drive.
// *bank.Manager satisfies it.
//
//go:generate mockgen -destination=mocks/mock_ledger.go -package=mocks -source=runner.go
type Ledger interface {
	AddAccount(holder string, initialDeposit decimal.Decimal) error
	Deposit(holder string, amount decimal.Decimal) error
	Withdraw(holder string, amount decimal.Decimal) error
	ApproveLoan(holder string, amount decimal.Decimal) error
	RepayLoan(holder string, amount decimal.Decimal) error
	Balance(holder string) (decimal.Decimal, error)
	Loan(holder string) (decimal.Decimal, error)
	TotalDeposits() decimal.Decimal
}

// Runner replays operations against a Ledger.
type Runner struct {
	ledger    Ledger
	keepGoing bool
	logger    *zap.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// KeepGoing makes Run continue past rejected operations instead of stopping.
func KeepGoing(v bool) RunnerOption {
	return func(r *Runner) { r.keepGoing = v }
}

// WithLogger sets the runner's logger.
func WithLogger(logger *zap.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a Runner for ledger.
func NewRunner(ledger Ledger, opts ...RunnerOption) *Runner {
	r := &Runner{ledger: ledger, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run applies ops in order and returns one report entry per attempted
// operation. Unless KeepGoing is set, the first rejected operation stops the
// run and its error is returned alongside the entries recorded so far.
func (r *Runner) Run(ctx context.Context, ops []model.Operation) ([]report.Entry, error) {
	entries := make([]report.Entry, 0, len(ops))
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return entries, err
		}

		entry := report.Entry{Seq: i + 1, Op: op, Outcome: report.OutcomeOK}
		value, err := r.apply(op)
		if err != nil {
			entry.Outcome = report.OutcomeFailed
			entry.Err = err
		} else {
			entry.Value = value
		}
		entries = append(entries, entry)

		if err != nil {
			r.logger.Info("operation failed", zap.Int("seq", entry.Seq), zap.Stringer("op", op), zap.Error(err))
			if !r.keepGoing {
				return entries, fmt.Errorf("operation %d (%s): %w", entry.Seq, op, err)
			}
		}
	}
	return entries, nil
}

func (r *Runner) apply(op model.Operation) (decimal.Decimal, error) {
	var err error
	switch op.Kind {
	case model.OpOpen:
		err = r.ledger.AddAccount(op.Holder, op.Amount)
	case model.OpDeposit:
		err = r.ledger.Deposit(op.Holder, op.Amount)
	case model.OpWithdraw:
		err = r.ledger.Withdraw(op.Holder, op.Amount)
	case model.OpApproveLoan:
		err = r.ledger.ApproveLoan(op.Holder, op.Amount)
	case model.OpRepayLoan:
		err = r.ledger.RepayLoan(op.Holder, op.Amount)
	case model.OpBalance:
		return r.ledger.Balance(op.Holder)
	case model.OpLoan:
		return r.ledger.Loan(op.Holder)
	case model.OpTotal:
		return r.ledger.TotalDeposits(), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported operation %q", op.Kind)
	}
	if err != nil {
		return decimal.Zero, err
	}
	return r.ledger.TotalDeposits(), nil
}
