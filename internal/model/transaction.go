// Package model defines the core data structures for the nairaflow application.
package model

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType labels a transaction as money in or money out.
type TransactionType string

const (
	// TypeCredit is money flowing into the account.
	TypeCredit TransactionType = "Credit"
	// TypeDebit is money flowing out of the account.
	TypeDebit TransactionType = "Debit"
)

// Transaction is a single canonical ledger entry. Amount is signed:
// positive means credit, negative means debit. Type is always derived
// from the sign, never trusted from source data.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Reason      string
	Hash        string
	Amount      decimal.Decimal
	Type        TransactionType
}

// NewTransaction builds a canonical transaction with its type derived
// from the amount sign.
func NewTransaction(date time.Time, description string, amount decimal.Decimal) Transaction {
	t := Transaction{
		Date:        date,
		Description: description,
		Amount:      amount,
		Type:        TypeFromAmount(amount),
	}
	t.Hash = t.GenerateHash()
	return t
}

// TypeFromAmount derives the transaction type from a signed amount.
// Zero counts as credit, matching the amount >= 0 invariant.
func TypeFromAmount(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TypeDebit
	}
	return TypeCredit
}

// GenerateHash creates a stable hash for duplicate detection across
// re-ingestions of the same statement.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount.StringFixed(2),
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// IsCredit reports whether the transaction is money in.
func (t *Transaction) IsCredit() bool {
	return t.Type == TypeCredit
}

// Ledger is the ordered sequence of canonical transactions, sorted
// ascending by date. It is the sole artifact handed to downstream
// consumers (categorizer, scorer, forecaster).
type Ledger []Transaction

// Sort orders the ledger ascending by date. Equal dates keep their
// original relative order so statement ordering survives.
func (l Ledger) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		return l[i].Date.Before(l[j].Date)
	})
}

// TotalCredits sums all positive amounts.
func (l Ledger) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, t := range l {
		if t.Amount.IsPositive() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// TotalDebits sums the magnitudes of all negative amounts.
func (l Ledger) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, t := range l {
		if t.Amount.IsNegative() {
			total = total.Add(t.Amount.Abs())
		}
	}
	return total
}
