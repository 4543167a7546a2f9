package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minibank-dev/minibank/internal/bank"
	"github.com/minibank-dev/minibank/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sampleEntries() []Entry {
	return []Entry{
		{
			Seq:     1,
			Op:      model.Operation{Kind: model.OpDeposit, Holder: "Alice", Amount: dec("200")},
			Outcome: OutcomeOK,
			Value:   dec("1700"),
		},
		{
			Seq:     2,
			Op:      model.Operation{Kind: model.OpBalance, Holder: "Alice"},
			Outcome: OutcomeOK,
			Value:   dec("1200"),
		},
		{
			Seq:     3,
			Op:      model.Operation{Kind: model.OpWithdraw, Holder: "Bob", Amount: dec("900")},
			Outcome: OutcomeFailed,
			Err:     errors.New("withdraw: insufficient funds"),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleEntries()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, strings.Split(Header, ","), records[0])
	assert.Equal(t, []string{"1", "deposit", "Alice", "200", "ok", "1700", ""}, records[1])
	assert.Equal(t, []string{"2", "balance", "Alice", "", "ok", "1200", ""}, records[2])
	assert.Equal(t, []string{"3", "withdraw", "Bob", "900", "failed", "", "withdraw: insufficient funds"}, records[3])
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleEntries()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "OPERATION")
	assert.Contains(t, lines[1], "1700.00")
	assert.Contains(t, lines[3], "failed")
	assert.Contains(t, lines[3], "insufficient funds")
}

func TestWriteSummary(t *testing.T) {
	accts := []bank.AccountSnapshot{
		{Holder: "Alice", Balance: dec("1200"), Loan: dec("200")},
		{Holder: "Bob", Balance: dec("200")},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, accts, dec("1200")))

	out := buf.String()
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "200.00")
	assert.Contains(t, out, "TOTAL DEPOSITS")
	assert.Contains(t, out, "1200.00")
}

func TestNarrate(t *testing.T) {
	tests := []struct {
		entry Entry
		want  string
	}{
		{
			Entry{Op: model.Operation{Kind: model.OpDeposit, Holder: "Alice", Amount: dec("200")}, Outcome: OutcomeOK},
			"Depositing 200 to Alice: true",
		},
		{
			Entry{Op: model.Operation{Kind: model.OpWithdraw, Holder: "Bob", Amount: dec("300")}, Outcome: OutcomeOK},
			"Withdrawing 300 from Bob: true",
		},
		{
			Entry{Op: model.Operation{Kind: model.OpApproveLoan, Holder: "Alice", Amount: dec("400")}, Outcome: OutcomeFailed},
			"Approving a loan of 400 for Alice: false",
		},
		{
			Entry{Op: model.Operation{Kind: model.OpRepayLoan, Holder: "Alice", Amount: dec("200")}, Outcome: OutcomeOK},
			"Repaying 200 of Alice's loan: true",
		},
		{
			Entry{Op: model.Operation{Kind: model.OpBalance, Holder: "Alice"}, Outcome: OutcomeOK, Value: dec("1200")},
			"Alice's balance: 1200",
		},
		{
			Entry{Op: model.Operation{Kind: model.OpLoan, Holder: "Zed"}, Outcome: OutcomeFailed, Err: errors.New("account not found: Zed")},
			"Zed's loan: account not found: Zed",
		},
		{
			Entry{Op: model.Operation{Kind: model.OpTotal}, Outcome: OutcomeOK, Value: dec("1200")},
			"Total deposits in the bank: 1200",
		},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Narrate(tt.entry))
	}
}

func TestFailed(t *testing.T) {
	failed := Failed(sampleEntries())
	require.Len(t, failed, 1)
	assert.Equal(t, 3, failed[0].Seq)
}
