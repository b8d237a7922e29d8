// Package normalize maps raw extracted statement tables onto the
// canonical transaction schema: synonym-based column mapping, tolerant
// date and numeric parsing, positional amount resolution, and row
// sanitization.
package normalize

import (
	"regexp"
	"strings"
)

// Row is an ordered sequence of raw cell values.
type Row []string

// Table is a raw extraction result: an optional header plus data rows.
// Tables are transient, created per extraction attempt and discarded
// after conversion to the canonical ledger.
type Table struct {
	Header []string
	Rows   []Row
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// CollapseWhitespace trims a cell and squeezes internal runs of
// whitespace to single spaces.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

// Cell returns the value at column idx, or "" when the row is narrower.
func (r Row) Cell(idx int) string {
	if idx < 0 || idx >= len(r) {
		return ""
	}
	return r[idx]
}

// IsEmpty reports whether every cell is blank after trimming.
func (r Row) IsEmpty() bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
