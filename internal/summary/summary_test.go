package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaflow/nairaflow/internal/model"
	"github.com/nairaflow/nairaflow/internal/testutil"
)

func TestMonthsCovered(t *testing.T) {
	tests := []struct {
		name string
		days int
		want int
	}{
		{name: "same day", days: 0, want: 1},
		{name: "two weeks", days: 14, want: 1},
		{name: "just under two months", days: 59, want: 2},
		{name: "three months approx", days: 89, want: 3},
		{name: "ninety five days", days: 95, want: 3},
		{name: "half year", days: 182, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsCovered(tt.days))
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("full summary", func(t *testing.T) {
		ledger := testutil.NewLedgerBuilder().
			WithCredit("2026-01-05", "Transfer from Acme Ltd", "250000.00").
			WithDebit("2026-01-20", "POS Purchase Fuel", "5000.00").
			WithCredit("2026-02-10", "NIP from Customer X", "30000.00").
			WithDebit("2026-04-10", "Rent payment", "100000.00").
			Build()

		s, warnings := Build(ledger, DefaultMinMonths)
		assert.Empty(t, warnings)

		assert.Equal(t, 4, s.TotalTransactions)
		assert.True(t, s.TotalCredits.Equal(decimal.RequireFromString("280000.00")))
		assert.True(t, s.TotalDebits.Equal(decimal.RequireFromString("105000.00")))
		assert.Equal(t, testutil.MustDate(t, "2026-01-05"), s.StartDate)
		assert.Equal(t, testutil.MustDate(t, "2026-04-10"), s.EndDate)
		assert.Equal(t, 95, s.DaysCovered)
		assert.Equal(t, 3, s.MonthsCovered)

		require.Len(t, s.Monthly, 3)
		assert.Equal(t, "2026-01", s.Monthly[0].Month)
		assert.Equal(t, 2, s.Monthly[0].Count)
		assert.True(t, s.Monthly[0].Credits.Equal(decimal.RequireFromString("250000.00")))
		assert.True(t, s.Monthly[0].Debits.Equal(decimal.RequireFromString("5000.00")))
		assert.Equal(t, "2026-04", s.Monthly[2].Month)
	})

	t.Run("short coverage warns", func(t *testing.T) {
		ledger := testutil.NewLedgerBuilder().
			WithCredit("2026-01-05", "Transfer from Acme", "1000.00").
			WithDebit("2026-01-25", "Fee", "50.00").
			Build()

		s, warnings := Build(ledger, DefaultMinMonths)
		assert.Equal(t, 1, s.MonthsCovered)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "minimum of 3 months")
	})

	t.Run("empty ledger", func(t *testing.T) {
		s, warnings := Build(model.Ledger{}, DefaultMinMonths)
		assert.Empty(t, warnings)
		assert.Equal(t, 0, s.TotalTransactions)
		assert.True(t, s.StartDate.IsZero())
	})
}
