package script

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/minibank-dev/minibank/internal/model"
)

// Header is the CSV header for operation scripts.
const Header = "op,holder,amount"

const (
	numFields = 3
	colOp     = 0
	colHolder = 1
	colAmount = 2
)

// ReadOperations reads an operation script. The first row is the header.
func ReadOperations(r io.Reader) ([]model.Operation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading script CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	if !strings.EqualFold(strings.Join(records[0], ","), Header) {
		return nil, fmt.Errorf("row 1: expected header %q, got %q", Header, strings.Join(records[0], ","))
	}

	var ops []model.Operation
	for i, rec := range records[1:] {
		op, err := UnmarshalOperation(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// WriteOperations writes an operation script, header first.
func WriteOperations(w io.Writer, ops []model.Operation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, op := range ops {
		if err := cw.Write(MarshalOperation(op)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// MarshalOperation converts an Operation to a CSV row.
func MarshalOperation(op model.Operation) []string {
	row := make([]string, numFields)
	row[colOp] = string(op.Kind)
	row[colHolder] = op.Holder
	if !op.Kind.IsRead() {
		row[colAmount] = op.Amount.String()
	}
	return row
}

// UnmarshalOperation converts a CSV row to an Operation. Amounts are parsed
// but not range-checked; the ledger rejects non-positive values.
func UnmarshalOperation(record []string) (model.Operation, error) {
	if len(record) != numFields {
		return model.Operation{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	kind, err := model.ParseOpKind(record[colOp])
	if err != nil {
		return model.Operation{}, err
	}

	holder := strings.TrimSpace(record[colHolder])
	if kind.NeedsHolder() && holder == "" {
		return model.Operation{}, fmt.Errorf("%s requires a holder", kind)
	}

	rawAmount := strings.TrimSpace(record[colAmount])
	var amount decimal.Decimal
	switch {
	case kind.IsRead() && rawAmount != "":
		return model.Operation{}, fmt.Errorf("%s takes no amount, got %q", kind, rawAmount)
	case !kind.IsRead():
		if rawAmount == "" {
			return model.Operation{}, fmt.Errorf("%s requires an amount", kind)
		}
		amount, err = decimal.NewFromString(rawAmount)
		if err != nil {
			return model.Operation{}, fmt.Errorf("parsing amount %q: %w", rawAmount, err)
		}
	}

	return model.Operation{Kind: kind, Holder: holder, Amount: amount}, nil
}

// Load reads an operation script from path.
func Load(path string) ([]model.Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	ops, err := ReadOperations(f)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return ops, nil
}

// Save writes an operation script to path.
func Save(path string, ops []model.Operation) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating script file: %w", err)
	}
	defer f.Close()

	if err := WriteOperations(f, ops); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}
	return nil
}
