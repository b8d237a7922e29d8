package normalize

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/model"
)

// Result carries one extraction candidate through normalization: the
// canonical rows it produced, its strategy score, and the non-fatal
// warnings accumulated on the way. Warnings are explicit return values
// threaded through each stage, never incidental state.
type Result struct {
	Ledger     model.Ledger
	Warnings   []string
	ValidDates int
	Dropped    int
}

// Normalize converts a sanitized raw table into canonical
// transactions. The table's header is mapped onto canonical roles,
// required roles are validated, dates are parsed column-wise with the
// 80% format bar, and amounts are resolved from whichever source the
// table exposes: a unified column, a split credit/debit pair, or
// positional tokens. Rows whose required fields fail to parse are
// dropped and counted, never retained with a sentinel.
func Normalize(t *Table) (*Result, error) {
	roles := MapColumns(t.Header)
	if err := roles.Validate(t.Header); err != nil {
		return nil, err
	}

	clean := SanitizeTable(t, roles)

	res := &Result{
		ValidDates: CountValidDates(clean, roles),
	}

	dateValues := make([]string, len(clean.Rows))
	for i, row := range clean.Rows {
		dateValues[i] = row.Cell(roles.Date)
	}
	dates, dateOK, detected := ParseDateColumn(dateValues)
	if detected == "" && len(clean.Rows) > 0 {
		res.Warnings = append(res.Warnings,
			"could not parse dates; ensure the date column uses a recognizable format")
	} else if detected != "" {
		slog.Debug("date format detected", "format", detected, "rows", len(clean.Rows))
	}

	dateDrops := 0
	amountDrops := 0

	for i, row := range clean.Rows {
		if !dateOK[i] {
			dateDrops++
			continue
		}

		amount, ok, warns := resolveRowAmount(row, roles)
		res.Warnings = append(res.Warnings, warns...)
		if !ok {
			amountDrops++
			continue
		}

		desc := CollapseWhitespace(row.Cell(roles.Description))
		res.Ledger = append(res.Ledger, model.NewTransaction(dates[i], desc, amount))
	}

	if dateDrops > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("dropped %d row(s) with unparseable dates", dateDrops))
	}
	if amountDrops > 0 {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("dropped %d row(s) with unparseable amounts", amountDrops))
	}
	res.Dropped = dateDrops + amountDrops

	res.Ledger.Sort()
	return res, nil
}

// resolveRowAmount produces the signed amount for one row from
// whichever amount source the table exposes. Precedence: positional
// tokens, then a split credit/debit pair, then the unified column.
func resolveRowAmount(row Row, roles Roles) (decimal.Decimal, bool, []string) {
	switch {
	case len(roles.Positional) >= 2:
		tokens := make([]string, 0, len(roles.Positional))
		for _, idx := range roles.Positional {
			tokens = append(tokens, row.Cell(idx))
		}
		amount, warns := ResolveAmounts(tokens, row.Cell(roles.Description))
		return amount, true, warns

	case roles.Credit >= 0 && roles.Debit >= 0:
		return MergeSplitAmount(row.Cell(roles.Credit), row.Cell(roles.Debit)), true, nil

	default:
		amount, kind := ParseAmount(row.Cell(roles.Amount))
		if kind == AmountMissing {
			return amount, false, nil
		}
		return amount, true, nil
	}
}
