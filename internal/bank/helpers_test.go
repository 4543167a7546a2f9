package bank

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// decEqual adapts decimal equality for assert.True messages.
func decEqual(a, b decimal.Decimal) bool {
	return a.Equal(b)
}
