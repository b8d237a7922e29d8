package normalize

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaflow/nairaflow/internal/common"
	"github.com/nairaflow/nairaflow/internal/model"
)

func TestNormalizeUnifiedAmount(t *testing.T) {
	table := &Table{
		Header: []string{"Date", "Narration", "Amount"},
		Rows: []Row{
			{"16/01/2026", "ATM Withdrawal Ikeja", "-15,000.00"},
			{"15/01/2026", "Transfer from Acme Ltd", "₦250,000.00"},
			{"17/01/2026", "Pending reversal", "N/A"},
		},
	}

	res, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, res.Ledger, 2)

	// Sorted ascending by date.
	assert.Equal(t, "Transfer from Acme Ltd", res.Ledger[0].Description)
	assert.True(t, res.Ledger[0].Amount.Equal(decimal.RequireFromString("250000.00")))
	assert.Equal(t, model.TypeCredit, res.Ledger[0].Type)

	assert.Equal(t, "ATM Withdrawal Ikeja", res.Ledger[1].Description)
	assert.True(t, res.Ledger[1].Amount.Equal(decimal.RequireFromString("-15000.00")))
	assert.Equal(t, model.TypeDebit, res.Ledger[1].Type)

	// The unparseable amount row is dropped and counted.
	assert.Equal(t, 1, res.Dropped)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[len(res.Warnings)-1], "unparseable amounts")
}

func TestNormalizeSplitColumns(t *testing.T) {
	table := &Table{
		Header: []string{"Trans Date", "Details", "Debit (₦)", "Credit (₦)", "Balance"},
		Rows: []Row{
			{"15/01/2026", "Transfer from Acme Ltd", "", "250,000.00", "250,000.00"},
			{"16/01/2026", "POS Purchase Fuel", "5,000.00", "--", "245,000.00"},
		},
	}

	res, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, res.Ledger, 2)
	assert.True(t, res.Ledger[0].Amount.Equal(decimal.RequireFromString("250000.00")))
	assert.True(t, res.Ledger[1].Amount.Equal(decimal.RequireFromString("-5000.00")))
	assert.Equal(t, 0, res.Dropped)
}

func TestNormalizePositionalColumns(t *testing.T) {
	table := &Table{
		Header: []string{"date", "description", "amount_1", "amount_2", "amount_3"},
		Rows: []Row{
			{"15/01/2026", "Transfer to ABC Fuel Station", "5,000.00", "--", "245,000.00"},
			{"16/01/2026", "NIP from Customer X", "--", "30,000.00", "275,000.00"},
		},
	}

	res, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, res.Ledger, 2)
	assert.True(t, res.Ledger[0].Amount.Equal(decimal.RequireFromString("-5000.00")))
	assert.Equal(t, model.TypeDebit, res.Ledger[0].Type)
	assert.True(t, res.Ledger[1].Amount.Equal(decimal.RequireFromString("30000.00")))
	assert.Equal(t, model.TypeCredit, res.Ledger[1].Type)
}

func TestNormalizeMissingColumns(t *testing.T) {
	table := &Table{
		Header: []string{"Date", "Balance"},
		Rows:   []Row{{"15/01/2026", "100.00"}},
	}

	_, err := Normalize(table)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMissingColumn))
}

func TestNormalizeUnparseableDates(t *testing.T) {
	table := &Table{
		Header: []string{"Date", "Narration", "Amount"},
		Rows: []Row{
			{"15/01/2026", "keeps this row", "100.00"},
			{"someday", "drops this row", "200.00"},
		},
	}

	res, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, res.Ledger, 1)
	assert.Equal(t, "keeps this row", res.Ledger[0].Description)
	assert.Equal(t, 1, res.Dropped)
}

func TestNormalizeCanonicalRoundTrip(t *testing.T) {
	table := &Table{
		Header: []string{"Date", "Narration", "Amount"},
		Rows: []Row{
			{"16/01/2026", "ATM Withdrawal Ikeja", "-15,000.00"},
			{"15/01/2026", "Transfer from Acme Ltd", "₦250,000.00"},
			{"15/01/2026", "Stamp Duty Charge", "(50.00)"},
		},
	}

	first, err := Normalize(table)
	require.NoError(t, err)
	require.Len(t, first.Ledger, 3)

	// Feed the canonical output back through as an already-clean table:
	// ISO dates, signed decimal amounts. The second pass must be a no-op.
	canonical := &Table{Header: []string{"Date", "Description", "Amount"}}
	for _, txn := range first.Ledger {
		canonical.Rows = append(canonical.Rows, Row{
			txn.Date.Format("2006-01-02"),
			txn.Description,
			txn.Amount.StringFixed(2),
		})
	}

	second, err := Normalize(canonical)
	require.NoError(t, err)
	assert.Empty(t, second.Warnings)
	assert.Equal(t, 0, second.Dropped)
	require.Len(t, second.Ledger, len(first.Ledger))
	for i := range first.Ledger {
		assert.Equal(t, first.Ledger[i].Date, second.Ledger[i].Date)
		assert.Equal(t, first.Ledger[i].Description, second.Ledger[i].Description)
		assert.True(t, first.Ledger[i].Amount.Equal(second.Ledger[i].Amount),
			"row %d: %s != %s", i, first.Ledger[i].Amount, second.Ledger[i].Amount)
		assert.Equal(t, first.Ledger[i].Type, second.Ledger[i].Type)
	}
}

func TestNormalizeValidDateScore(t *testing.T) {
	table := &Table{
		Header: []string{"Date", "Narration", "Amount"},
		Rows: []Row{
			{"15/01/2026", "valid", "1.00"},
			{"16/01/2026", "valid", "2.00"},
			{"garbage", "invalid", "3.00"},
		},
	}

	res, err := Normalize(table)
	require.NoError(t, err)
	assert.Equal(t, 2, res.ValidDates)
}
