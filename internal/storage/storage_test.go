package storage_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaflow/nairaflow/internal/model"
	"github.com/nairaflow/nairaflow/internal/storage"
	"github.com/nairaflow/nairaflow/internal/testutil"
)

func sampleStatement() *model.Statement {
	ledger := testutil.NewLedgerBuilder().
		WithCredit("2026-01-05", "Transfer from Acme Ltd", "250000.00").
		WithDebit("2026-01-06", "POS Purchase Fuel", "5000.00").
		Build()
	return &model.Statement{
		Source:   "statement.csv",
		Strategy: "csv",
		Ledger:   ledger,
		Warnings: []string{"example warning"},
	}
}

func TestSaveAndListTransactions(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveStatement(ctx, sampleStatement())
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	ledger, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 2)

	assert.Equal(t, "Transfer from Acme Ltd", ledger[0].Description)
	assert.True(t, ledger[0].Amount.Equal(decimal.RequireFromString("250000.00")))
	assert.Equal(t, model.TypeCredit, ledger[0].Type)
	assert.Equal(t, testutil.MustDate(t, "2026-01-05"), ledger[0].Date)
	assert.NotEmpty(t, ledger[0].Hash)

	assert.Equal(t, model.TypeDebit, ledger[1].Type)
	assert.True(t, ledger[1].Amount.Equal(decimal.RequireFromString("-5000.00")))
}

func TestSaveStatementDeduplicates(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	saved, err := store.SaveStatement(ctx, sampleStatement())
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	// Re-ingesting the same statement saves nothing new.
	saved, err = store.SaveStatement(ctx, sampleStatement())
	require.NoError(t, err)
	assert.Equal(t, 0, saved)

	ledger, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
}

func TestUpdateCategories(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ctx := context.Background()

	_, err := store.SaveStatement(ctx, sampleStatement())
	require.NoError(t, err)

	ledger, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	for i := range ledger {
		ledger[i].Category = "Business Income"
		ledger[i].Reason = "test reason"
	}
	require.NoError(t, store.UpdateCategories(ctx, ledger))

	reloaded, err := store.ListTransactions(ctx)
	require.NoError(t, err)
	for _, txn := range reloaded {
		assert.Equal(t, "Business Income", txn.Category)
		assert.Equal(t, "test reason", txn.Reason)
	}
}

func TestListTransactionsEmpty(t *testing.T) {
	store := testutil.SetupTestStore(t)
	ledger, err := store.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestNewRequiresPath(t *testing.T) {
	_, err := storage.New("")
	require.Error(t, err)
}
