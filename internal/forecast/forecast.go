// Package forecast projects a ledger's cumulative net position forward
// using a least-squares linear trend over daily balances.
package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/model"
)

// DefaultDaysAhead is the default projection horizon.
const DefaultDaysAhead = 30

// Point is one day's balance, historical or projected.
type Point struct {
	Date    time.Time
	Balance decimal.Decimal
}

// Result holds the daily balance history and its linear projection.
type Result struct {
	History    []Point
	Projection []Point
}

// Balance projects the ledger's balance proxy (the cumulative sum of
// signed amounts; the statement's true running balance is not
// recoverable) daysAhead days past the last transaction. Days with no
// activity carry the previous day's balance forward. At least two days
// of history are required to fit a trend; with fewer, the projection
// is empty.
func Balance(ledger model.Ledger, daysAhead int) Result {
	history := dailyBalances(ledger)
	res := Result{History: history}
	if len(history) < 2 || daysAhead <= 0 {
		return res
	}

	// Fit y = slope*x + intercept with x = days since start.
	n := float64(len(history))
	var sumX, sumY, sumXY, sumXX float64
	for i, p := range history {
		x := float64(i)
		y, _ := p.Balance.Float64()
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return res
	}
	slope := (n*sumXY - sumX*sumY) / denom
	intercept := (sumY - slope*sumX) / n

	last := history[len(history)-1]
	lastX := float64(len(history) - 1)
	for d := 1; d <= daysAhead; d++ {
		y := slope*(lastX+float64(d)) + intercept
		res.Projection = append(res.Projection, Point{
			Date:    last.Date.AddDate(0, 0, d),
			Balance: decimal.NewFromFloat(y).Round(2),
		})
	}

	return res
}

// dailyBalances folds the ledger into one cumulative balance per
// calendar day, filling gaps by carrying the last balance forward.
func dailyBalances(ledger model.Ledger) []Point {
	if len(ledger) == 0 {
		return nil
	}

	perDay := make(map[string]decimal.Decimal)
	first, last := day(ledger[0].Date), day(ledger[0].Date)
	for _, txn := range ledger {
		d := day(txn.Date)
		key := d.Format("2006-01-02")
		perDay[key] = perDay[key].Add(txn.Amount)
		if d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}

	var points []Point
	balance := decimal.Zero
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if flow, ok := perDay[d.Format("2006-01-02")]; ok {
			balance = balance.Add(flow)
		}
		points = append(points, Point{Date: d, Balance: balance})
	}
	return points
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
