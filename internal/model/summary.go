package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyBreakdown aggregates one calendar month of ledger activity.
type MonthlyBreakdown struct {
	Month   string // "2026-01"
	Credits decimal.Decimal
	Debits  decimal.Decimal
	Count   int
}

// Summary describes the period and volume a statement covers. It is
// derived from the ledger and recomputed whenever the ledger changes.
type Summary struct {
	StartDate         time.Time
	EndDate           time.Time
	Monthly           []MonthlyBreakdown
	TotalCredits      decimal.Decimal
	TotalDebits       decimal.Decimal
	TotalTransactions int
	DaysCovered       int
	MonthsCovered     int
}

// Statement is the output of a single document's ingestion: the
// canonical ledger, its derived summary, and any non-fatal warnings
// accumulated along the way.
type Statement struct {
	Source   string
	Strategy string
	Ledger   Ledger
	Summary  Summary
	Warnings []string
}
