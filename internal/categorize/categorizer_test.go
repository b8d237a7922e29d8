package categorize

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaflow/nairaflow/internal/model"
	"github.com/nairaflow/nairaflow/internal/testutil"
)

func TestCategorize(t *testing.T) {
	c := NewDefault()

	tests := []struct {
		name         string
		description  string
		amount       string
		wantCategory string
	}{
		{
			name:         "betting is high risk even as a transfer",
			description:  "Transfer to Bet9ja Online",
			amount:       "-5000.00",
			wantCategory: CategoryHighRisk,
		},
		{
			name:         "incoming transfer is income",
			description:  "Transfer from Acme Ventures",
			amount:       "250000.00",
			wantCategory: CategoryIncome,
		},
		{
			name:         "fuel purchase is operational",
			description:  "Transfer to ABC Fuel Station",
			amount:       "-5000.00",
			wantCategory: CategoryOperational,
		},
		{
			name:         "airtime is operational",
			description:  "Airtime purchase MTN",
			amount:       "-1000.00",
			wantCategory: CategoryOperational,
		},
		{
			name:         "stamp duty is operational",
			description:  "Stamp Duty Charge",
			amount:       "-50.00",
			wantCategory: CategoryOperational,
		},
		{
			name:         "generic outgoing transfer is personal",
			description:  "Transfer to John Doe",
			amount:       "-2000.00",
			wantCategory: CategoryPersonal,
		},
		{
			name:         "owealth movement is personal",
			description:  "OWealth Auto Withdrawal",
			amount:       "3000.00",
			wantCategory: CategoryPersonal,
		},
		{
			name:         "unmatched description is personal",
			description:  "XYZ 123",
			amount:       "-10.00",
			wantCategory: CategoryPersonal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := testutil.NewLedgerBuilder().
				WithTransaction("2026-01-15", tt.description, decimal.RequireFromString(tt.amount)).
				Build()

			out := c.Categorize(ledger)
			require.Len(t, out, 1)
			assert.Equal(t, tt.wantCategory, out[0].Category)
			assert.NotEmpty(t, out[0].Reason)
		})
	}
}

func TestCategorizeIncomeDebitOverride(t *testing.T) {
	c := NewDefault()

	// An income-pattern match on money going out is reclassified: the
	// narration may say "transfer from" but a negative amount is not
	// income.
	ledger := testutil.NewLedgerBuilder().
		WithTransaction("2026-01-15", "Transfer from savings account",
			decimal.RequireFromString("-20000.00")).
		Build()

	out := c.Categorize(ledger)
	require.Len(t, out, 1)
	assert.Equal(t, CategoryOperational, out[0].Category)
	assert.Contains(t, out[0].Reason, "(debit)")
}

func TestCategorizeEmptyDescription(t *testing.T) {
	c := NewDefault()

	ledger := model.Ledger{
		model.NewTransaction(testutil.MustDate(t, "2026-01-15"), "", decimal.RequireFromString("5000.00")),
		model.NewTransaction(testutil.MustDate(t, "2026-01-16"), "", decimal.RequireFromString("-5000.00")),
	}

	out := c.Categorize(ledger)
	assert.Equal(t, CategoryIncome, out[0].Category)
	assert.Equal(t, CategoryPersonal, out[1].Category)
}

func TestCategorizeDoesNotMutateInput(t *testing.T) {
	c := NewDefault()
	ledger := testutil.NewLedgerBuilder().
		WithDebit("2026-01-15", "Transfer to John Doe", "100.00").
		Build()

	_ = c.Categorize(ledger)
	assert.Empty(t, ledger[0].Category)
}

func TestNewRejectsBadPattern(t *testing.T) {
	_, err := New([]Rule{{Pattern: "(", Category: CategoryPersonal, Reason: "bad"}})
	require.Error(t, err)
}

func TestFirstMatchWins(t *testing.T) {
	c := NewDefault()

	// Matches both the gambling rule and the generic outgoing-transfer
	// rule; the high-risk rule sits earlier and must win.
	ledger := testutil.NewLedgerBuilder().
		WithDebit("2026-01-15", "Transfer to Betway Nigeria", "500.00").
		Build()

	out := c.Categorize(ledger)
	assert.Equal(t, CategoryHighRisk, out[0].Category)
}
