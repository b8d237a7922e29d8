package normalize

import (
	"regexp"
	"strings"
)

// junkDescriptionRe matches a description cell whose sole content is a
// repeated header or footer label leaked into the data rows.
var junkDescriptionRe = regexp.MustCompile(
	`(?i)^(date|description|narration|trans\.?\s*time|channel|balance|s/n|no\.)$`)

// nullDateValues are date cells treated as missing outright.
var nullDateValues = map[string]bool{
	"":     true,
	"nan":  true,
	"none": true,
	"null": true,
}

// SanitizeTable removes junk rows from a raw table before conversion:
// rows with missing dates, re-detected header artifacts, and rows that
// are entirely empty. All cells are trimmed and whitespace-collapsed.
// The operation is idempotent: sanitizing an already-clean table is a
// no-op.
func SanitizeTable(t *Table, roles Roles) *Table {
	out := &Table{Header: t.Header}

	for _, row := range t.Rows {
		clean := make(Row, len(row))
		for i, c := range row {
			clean[i] = CollapseWhitespace(c)
		}

		if clean.IsEmpty() {
			continue
		}
		if roles.Date >= 0 {
			if nullDateValues[strings.ToLower(clean.Cell(roles.Date))] {
				continue
			}
		}
		if roles.Description >= 0 {
			if junkDescriptionRe.MatchString(clean.Cell(roles.Description)) {
				continue
			}
		}

		out.Rows = append(out.Rows, clean)
	}

	return out
}

// CountValidDates counts rows whose date cell is structurally valid,
// i.e. matches a known date shape. This is the strategy score: a
// result with many junk rows but few valid dates loses to a smaller,
// cleaner one.
func CountValidDates(t *Table, roles Roles) int {
	if roles.Date < 0 {
		return 0
	}
	n := 0
	for _, row := range t.Rows {
		if DatePattern.MatchString(row.Cell(roles.Date)) {
			n++
		}
	}
	return n
}
