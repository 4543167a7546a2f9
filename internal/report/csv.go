package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minibank-dev/minibank/internal/model"
)

// Header is the CSV header for run reports.
const Header = "seq,op,holder,amount,outcome,value,error"

const (
	numFields  = 7
	colSeq     = 0
	colOp      = 1
	colHolder  = 2
	colAmount  = 3
	colOutcome = 4
	colValue   = 5
	colError   = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colSeq] = strconv.Itoa(e.Seq)
	row[colOp] = string(e.Op.Kind)
	row[colHolder] = e.Op.Holder
	if !e.Op.Kind.IsRead() {
		row[colAmount] = e.Op.Amount.String()
	}
	row[colOutcome] = string(e.Outcome)
	if e.Outcome == OutcomeOK {
		row[colValue] = e.Value.String()
	}
	if e.Err != nil {
		row[colError] = e.Err.Error()
	}
	return row
}

// WriteCSV writes entries as CSV, header first.
func WriteCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func opLabel(op model.Operation) string {
	return strings.ReplaceAll(string(op.Kind), "_", " ")
}
