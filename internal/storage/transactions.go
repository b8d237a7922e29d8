package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/model"
)

const dateLayout = "2006-01-02"

// SaveStatement stores a statement's ledger and records the ingest.
// Transactions are deduplicated by hash, so re-ingesting the same
// statement is safe.
func (s *Store) SaveStatement(ctx context.Context, stmt *model.Statement) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insert, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			hash, date, description, amount, type, category, reason, source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = insert.Close() }()

	saved := 0
	for _, txn := range stmt.Ledger {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}
		res, execErr := insert.ExecContext(ctx,
			txn.Hash,
			txn.Date.Format(dateLayout),
			txn.Description,
			txn.Amount.StringFixed(2),
			string(txn.Type),
			txn.Category,
			txn.Reason,
			stmt.Source,
		)
		if execErr != nil {
			return 0, fmt.Errorf("failed to save transaction: %w", execErr)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			saved++
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO ingests (source, strategy, transactions, warnings)
		VALUES (?, ?, ?, ?)
	`, stmt.Source, stmt.Strategy, len(stmt.Ledger), strings.Join(stmt.Warnings, "\n")); err != nil {
		return 0, fmt.Errorf("failed to record ingest: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}
	return saved, nil
}

// ListTransactions returns the stored ledger ordered ascending by date.
func (s *Store) ListTransactions(ctx context.Context) (model.Ledger, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, date, description, amount, type, category, reason
		FROM transactions
		ORDER BY date ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ledger model.Ledger
	for rows.Next() {
		var (
			txn     model.Transaction
			date    string
			amount  string
			txnType string
		)
		if err := rows.Scan(&txn.Hash, &date, &txn.Description, &amount, &txnType, &txn.Category, &txn.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("corrupt date %q in store: %w", date, err)
		}
		txn.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount %q in store: %w", amount, err)
		}
		txn.Type = model.TransactionType(txnType)
		ledger = append(ledger, txn)
	}
	return ledger, rows.Err()
}

// UpdateCategories writes category assignments back for the given
// ledger entries, matched by hash.
func (s *Store) UpdateCategories(ctx context.Context, ledger model.Ledger) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	update, err := tx.PrepareContext(ctx,
		`UPDATE transactions SET category = ?, reason = ? WHERE hash = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = update.Close() }()

	for _, txn := range ledger {
		if _, err := update.ExecContext(ctx, txn.Category, txn.Reason, txn.Hash); err != nil {
			return fmt.Errorf("failed to update category: %w", err)
		}
	}
	return tx.Commit()
}
