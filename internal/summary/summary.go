// Package summary derives statement-period coverage and monthly
// breakdowns from a canonical ledger.
package summary

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/model"
)

// DefaultMinMonths is the minimum recommended statement coverage for
// reliable scoring.
const DefaultMinMonths = 3

// Build computes the statement summary for a ledger and returns it
// with any coverage warnings. Months are a 30-day approximation, not
// calendar-month counting; a statement shorter than minMonths months
// yields a warning, never an error.
func Build(ledger model.Ledger, minMonths int) (model.Summary, []string) {
	var warnings []string

	s := model.Summary{
		TotalTransactions: len(ledger),
		TotalCredits:      ledger.TotalCredits(),
		TotalDebits:       ledger.TotalDebits(),
	}
	if len(ledger) == 0 {
		return s, warnings
	}

	start, end := ledger[0].Date, ledger[0].Date
	for _, t := range ledger {
		if t.Date.Before(start) {
			start = t.Date
		}
		if t.Date.After(end) {
			end = t.Date
		}
	}

	s.StartDate = start
	s.EndDate = end
	s.DaysCovered = int(end.Sub(start).Hours() / 24)
	s.MonthsCovered = MonthsCovered(s.DaysCovered)
	s.Monthly = monthlyBreakdown(ledger)

	if s.MonthsCovered < minMonths {
		warnings = append(warnings, fmt.Sprintf(
			"statement covers only %d month(s); a minimum of %d months is recommended for reliable scoring",
			s.MonthsCovered, minMonths))
	}

	return s, warnings
}

// MonthsCovered approximates coverage as round(days/30), never less
// than one month.
func MonthsCovered(days int) int {
	months := int(math.Round(float64(days) / 30.0))
	if months < 1 {
		return 1
	}
	return months
}

// monthlyBreakdown groups ledger activity by year-month, ordered by
// month ascending.
func monthlyBreakdown(ledger model.Ledger) []model.MonthlyBreakdown {
	byMonth := make(map[string]*model.MonthlyBreakdown)
	for _, t := range ledger {
		key := t.Date.Format("2006-01")
		mb, ok := byMonth[key]
		if !ok {
			mb = &model.MonthlyBreakdown{
				Month:   key,
				Credits: decimal.Zero,
				Debits:  decimal.Zero,
			}
			byMonth[key] = mb
		}
		if t.Amount.IsPositive() {
			mb.Credits = mb.Credits.Add(t.Amount)
		} else if t.Amount.IsNegative() {
			mb.Debits = mb.Debits.Add(t.Amount.Abs())
		}
		mb.Count++
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]model.MonthlyBreakdown, 0, len(months))
	for _, m := range months {
		out = append(out, *byMonth[m])
	}
	return out
}
