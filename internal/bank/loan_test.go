package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproveLoan(t *testing.T) {
	acct := newAccount("Alice", dec("1000"))

	require.NoError(t, loans{}.approve(acct, dec("400")))
	assert.True(t, decEqual(dec("400"), acct.Loan()))
	assert.True(t, decEqual(dec("1000"), acct.Balance()), "loans do not touch the deposit balance")
}

func TestApproveLoan_InvalidAmount(t *testing.T) {
	acct := newAccount("Alice", dec("1000"))

	err := loans{}.approve(acct, dec("0"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.True(t, acct.Loan().IsZero())
}

func TestRepayLoan(t *testing.T) {
	acct := newAccount("Alice", dec("1000"))
	acct.increaseLoan(dec("400"))

	require.NoError(t, loans{}.repay(acct, dec("200")))
	assert.True(t, decEqual(dec("200"), acct.Loan()))

	require.NoError(t, loans{}.repay(acct, dec("200")))
	assert.True(t, acct.Loan().IsZero())
}

func TestRepayLoan_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr error
	}{
		{"zero", "0", ErrInvalidAmount},
		{"negative", "-10", ErrInvalidAmount},
		{"more than owed", "400.01", ErrExcessRepayment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acct := newAccount("Alice", dec("1000"))
			acct.increaseLoan(dec("400"))

			err := loans{}.repay(acct, dec(tt.amount))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, decEqual(dec("400"), acct.Loan()), "loan unchanged")
		})
	}
}
