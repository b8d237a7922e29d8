package forecast

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaflow/nairaflow/internal/model"
	"github.com/nairaflow/nairaflow/internal/testutil"
)

func TestDailyBalances(t *testing.T) {
	ledger := testutil.NewLedgerBuilder().
		WithCredit("2026-01-01", "Transfer from Acme", "1000.00").
		WithDebit("2026-01-03", "Fee", "200.00").
		Build()

	points := dailyBalances(ledger)
	require.Len(t, points, 3)

	// Day two has no activity and carries day one forward.
	assert.True(t, points[0].Balance.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, points[1].Balance.Equal(decimal.RequireFromString("1000.00")))
	assert.True(t, points[2].Balance.Equal(decimal.RequireFromString("800.00")))
	assert.Equal(t, testutil.MustDate(t, "2026-01-02"), points[1].Date)
}

func TestBalance(t *testing.T) {
	t.Run("linear growth projects linearly", func(t *testing.T) {
		// 100 per day for five days; the fit is exact.
		builder := testutil.NewLedgerBuilder()
		days := []string{"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04", "2026-01-05"}
		for _, d := range days {
			builder.WithCredit(d, "Daily sales deposit", "100.00")
		}
		res := Balance(builder.Build(), 3)

		require.Len(t, res.History, 5)
		require.Len(t, res.Projection, 3)

		assert.Equal(t, testutil.MustDate(t, "2026-01-06"), res.Projection[0].Date)
		assert.True(t, res.Projection[0].Balance.Equal(decimal.RequireFromString("600.00")),
			"got %s", res.Projection[0].Balance)
		assert.True(t, res.Projection[2].Balance.Equal(decimal.RequireFromString("800.00")),
			"got %s", res.Projection[2].Balance)
	})

	t.Run("declining trend projects downward", func(t *testing.T) {
		builder := testutil.NewLedgerBuilder().
			WithCredit("2026-01-01", "Opening float", "1000.00")
		for _, d := range []string{"2026-01-02", "2026-01-03", "2026-01-04"} {
			builder.WithDebit(d, "Daily expenses", "100.00")
		}
		res := Balance(builder.Build(), 5)

		require.NotEmpty(t, res.Projection)
		last := res.Projection[len(res.Projection)-1]
		assert.True(t, last.Balance.LessThan(res.History[len(res.History)-1].Balance))
	})

	t.Run("single day has no projection", func(t *testing.T) {
		ledger := testutil.NewLedgerBuilder().
			WithCredit("2026-01-01", "Deposit", "100.00").
			Build()
		res := Balance(ledger, 30)
		assert.Len(t, res.History, 1)
		assert.Empty(t, res.Projection)
	})

	t.Run("empty ledger", func(t *testing.T) {
		res := Balance(model.Ledger{}, 30)
		assert.Empty(t, res.History)
		assert.Empty(t, res.Projection)
	})

	t.Run("zero days ahead", func(t *testing.T) {
		ledger := testutil.NewLedgerBuilder().
			WithCredit("2026-01-01", "Deposit", "100.00").
			WithCredit("2026-01-02", "Deposit", "100.00").
			Build()
		res := Balance(ledger, 0)
		assert.Empty(t, res.Projection)
	})
}
