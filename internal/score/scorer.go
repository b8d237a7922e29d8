// Package score computes a 0-100 credit risk score from a categorized
// ledger using a weighted formula over aggregate metrics.
package score

import (
	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/categorize"
	"github.com/nairaflow/nairaflow/internal/model"
)

// Scoring weights. Expense ratio can cost up to half the score; each
// high-risk transaction costs a flat penalty.
const (
	expenseRatioWeight = 50.0
	highRiskPenalty    = 10.0
)

// Metrics are the aggregates the score is computed from.
type Metrics struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	ExpenseRatio  float64
	HighRiskCount int
}

// CalculateMetrics aggregates a categorized ledger. The expense ratio
// is capped at 1.0, and an income of zero scores the worst-case ratio
// of 1.0 rather than dividing by zero.
func CalculateMetrics(ledger model.Ledger) Metrics {
	m := Metrics{
		TotalIncome:   decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, txn := range ledger {
		switch txn.Category {
		case categorize.CategoryIncome:
			m.TotalIncome = m.TotalIncome.Add(txn.Amount)
		case categorize.CategoryOperational, categorize.CategoryPersonal:
			m.TotalExpenses = m.TotalExpenses.Add(txn.Amount.Abs())
		case categorize.CategoryHighRisk:
			m.HighRiskCount++
		}
	}

	if m.TotalIncome.IsPositive() {
		ratio, _ := m.TotalExpenses.Div(m.TotalIncome).Float64()
		if ratio > 1.0 {
			ratio = 1.0
		}
		m.ExpenseRatio = ratio
	} else {
		m.ExpenseRatio = 1.0
	}

	return m
}

// Score computes the credit risk score for a categorized ledger,
// clamped to [0, 100]. Higher is better.
func Score(ledger model.Ledger) float64 {
	m := CalculateMetrics(ledger)

	s := 100.0
	s -= m.ExpenseRatio * expenseRatioWeight
	s -= float64(m.HighRiskCount) * highRiskPenalty

	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
