package report

import (
	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/model"
)

// Outcome is the result of replaying one operation.
type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeFailed Outcome = "failed"
)

// Entry records one replayed operation.
type Entry struct {
	Seq     int // 1-based position in the script
	Op      model.Operation
	Outcome Outcome
	// Value is the read result for balance/loan/total and the pool after
	// a successful mutation. Zero when the operation failed.
	Value decimal.Decimal
	Err   error
}

// Failed returns the entries whose operation was rejected.
func Failed(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Outcome == OutcomeFailed {
			out = append(out, e)
		}
	}
	return out
}
