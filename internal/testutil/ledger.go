// Package testutil provides test infrastructure for building ledger
// fixtures and isolated test databases.
//
// Example usage:
//
//	ledger := testutil.NewLedgerBuilder().
//		WithCredit("2026-01-05", "Transfer from Acme Ltd", "250000.00").
//		WithDebit("2026-01-07", "POS Purchase Fuel", "15000.00").
//		Build()
package testutil

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/model"
)

// LedgerBuilder provides a fluent interface for constructing test ledgers.
type LedgerBuilder struct {
	transactions []model.Transaction
}

// NewLedgerBuilder returns an empty builder.
func NewLedgerBuilder() *LedgerBuilder {
	return &LedgerBuilder{}
}

// WithCredit adds an inflow on the given date. Date is "2006-01-02",
// amount is a positive decimal string.
func (b *LedgerBuilder) WithCredit(date, description, amount string) *LedgerBuilder {
	return b.with(date, description, decimal.RequireFromString(amount))
}

// WithDebit adds an outflow on the given date. Date is "2006-01-02",
// amount is a positive decimal string.
func (b *LedgerBuilder) WithDebit(date, description, amount string) *LedgerBuilder {
	return b.with(date, description, decimal.RequireFromString(amount).Neg())
}

// WithTransaction adds a transaction with an already-signed amount.
func (b *LedgerBuilder) WithTransaction(date, description string, amount decimal.Decimal) *LedgerBuilder {
	return b.with(date, description, amount)
}

func (b *LedgerBuilder) with(date, description string, amount decimal.Decimal) *LedgerBuilder {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("testutil: bad fixture date " + date)
	}
	b.transactions = append(b.transactions, model.NewTransaction(t, description, amount))
	return b
}

// Build returns the accumulated ledger sorted by date.
func (b *LedgerBuilder) Build() model.Ledger {
	ledger := model.Ledger(b.transactions)
	ledger.Sort()
	return ledger
}

// MustDate parses a "2006-01-02" date for use in test expectations.
func MustDate(tb testing.TB, value string) time.Time {
	tb.Helper()
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		tb.Fatalf("bad test date %q: %v", value, err)
	}
	return t
}
