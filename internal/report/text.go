package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/model"
)

// WriteText writes entries as an aligned table.
func WriteText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tOPERATION\tHOLDER\tAMOUNT\tRESULT\tVALUE")
	for _, e := range entries {
		amount := ""
		if !e.Op.Kind.IsRead() {
			amount = e.Op.Amount.StringFixed(2)
		}
		result, value := string(e.Outcome), ""
		if e.Outcome == OutcomeOK {
			value = e.Value.StringFixed(2)
		} else if e.Err != nil {
			value = e.Err.Error()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", e.Seq, opLabel(e.Op), e.Op.Holder, amount, result, value)
	}
	return tw.Flush()
}

// WriteSummary writes the account table followed by the pool total.
func WriteSummary(w io.Writer, accounts []bank.AccountSnapshot, total decimal.Decimal) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOLDER\tBALANCE\tLOAN")
	for _, a := range accounts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", a.Holder, a.Balance.StringFixed(2), a.Loan.StringFixed(2))
	}
	fmt.Fprintf(tw, "TOTAL DEPOSITS\t%s\t\n", total.StringFixed(2))
	return tw.Flush()
}

// Narrate describes an entry in one sentence, the way the demo prints it.
func Narrate(e Entry) string {
	op := e.Op
	ok := e.Outcome == OutcomeOK
	switch op.Kind {
	case model.OpOpen:
		return fmt.Sprintf("Opening account for %s with %s: %t", op.Holder, op.Amount, ok)
	case model.OpDeposit:
		return fmt.Sprintf("Depositing %s to %s: %t", op.Amount, op.Holder, ok)
	case model.OpWithdraw:
		return fmt.Sprintf("Withdrawing %s from %s: %t", op.Amount, op.Holder, ok)
	case model.OpApproveLoan:
		return fmt.Sprintf("Approving a loan of %s for %s: %t", op.Amount, op.Holder, ok)
	case model.OpRepayLoan:
		return fmt.Sprintf("Repaying %s of %s's loan: %t", op.Amount, op.Holder, ok)
	}

	value := e.Value.String()
	if !ok && e.Err != nil {
		value = e.Err.Error()
	}
	switch op.Kind {
	case model.OpBalance:
		return fmt.Sprintf("%s's balance: %s", op.Holder, value)
	case model.OpLoan:
		return fmt.Sprintf("%s's loan: %s", op.Holder, value)
	default:
		return fmt.Sprintf("Total deposits in the bank: %s", value)
	}
}

// WriteNarrative writes one Narrate line per entry.
func WriteNarrative(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, Narrate(e)); err != nil {
			return err
		}
	}
	return nil
}
