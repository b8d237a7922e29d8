package ingest

import (
	"strings"

	"github.com/nairaflow/nairaflow/internal/normalize"
)

// headerKeywords are the labels whose presence marks a row as a column
// header. A row containing at least two of them, case-insensitively,
// is treated as the header.
var headerKeywords = []string{
	"date", "narration", "description", "particulars", "details",
	"debit", "credit", "amount", "withdrawal", "deposit", "balance",
	"value date", "trans date", "reference", "remarks", "type",
}

// headerKeywordCount counts how many header keywords appear in the
// joined text of a row's cells.
func headerKeywordCount(cells []string) int {
	text := strings.ToLower(strings.Join(cells, " "))
	n := 0
	for _, kw := range headerKeywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// isHeaderRow reports whether a row looks like a column header.
func isHeaderRow(cells []string) bool {
	return headerKeywordCount(cells) >= 2
}

// cleanCell trims a cell and collapses internal line breaks.
func cleanCell(cell string) string {
	return strings.TrimSpace(strings.ReplaceAll(cell, "\n", " "))
}

// ExtractTable runs the table strategy over a document's pages: every
// detected cell row is cleaned, the first header row found anywhere in
// the document is captured once and excluded from the data, empty rows
// are skipped, and all retained rows are width-normalized to the
// header's width — or to the most frequent row width when no header
// was found. Columns that are empty across every row are dropped.
// Returns nil when no data rows resulted.
func ExtractTable(pages []Page) *normalize.Table {
	var header []string
	var rows []normalize.Row

	for _, page := range pages {
		for _, raw := range page.Cells {
			cells := make([]string, len(raw))
			for i, c := range raw {
				cells[i] = cleanCell(c)
			}

			if header == nil && isHeaderRow(cells) {
				header = cells
				continue
			}

			if normalize.Row(cells).IsEmpty() {
				continue
			}
			rows = append(rows, cells)
		}
	}

	if len(rows) == 0 {
		return nil
	}

	width := len(header)
	if header == nil {
		width = modalWidth(rows)
	}

	for i, row := range rows {
		rows[i] = normalizeWidth(row, width)
	}
	if header != nil {
		header = normalizeWidth(header, width)
	} else {
		// No header row anywhere; nothing to map columns against, but a
		// leading data row may still be one.
		if isHeaderRow(rows[0]) {
			header = rows[0]
			rows = rows[1:]
		}
	}

	table := &normalize.Table{Header: header, Rows: rows}
	dropEmptyColumns(table)
	if len(table.Rows) == 0 {
		return nil
	}
	return table
}

// modalWidth returns the most frequent row width.
func modalWidth(rows []normalize.Row) int {
	counts := make(map[int]int)
	for _, r := range rows {
		counts[len(r)]++
	}
	best, bestCount := 0, 0
	for w, c := range counts {
		if c > bestCount || (c == bestCount && w > best) {
			best, bestCount = w, c
		}
	}
	return best
}

// normalizeWidth truncates or right-pads a row to the target width.
func normalizeWidth(row normalize.Row, width int) normalize.Row {
	switch {
	case len(row) > width:
		return row[:width]
	case len(row) < width:
		padded := make(normalize.Row, width)
		copy(padded, row)
		return padded
	default:
		return row
	}
}

// dropEmptyColumns removes columns whose every data cell is blank.
// Headerless tables are left alone: there is no header to keep the
// mask aligned with, and the rows must survive as extracted so a
// degraded fallback still has data to offer.
func dropEmptyColumns(t *normalize.Table) {
	if t.Header == nil || len(t.Rows) == 0 {
		return
	}
	width := len(t.Header)

	keep := make([]bool, width)
	for _, row := range t.Rows {
		for i := 0; i < width; i++ {
			if strings.TrimSpace(row.Cell(i)) != "" {
				keep[i] = true
			}
		}
	}

	var header []string
	for i := 0; i < width; i++ {
		if keep[i] {
			header = append(header, stringAt(t.Header, i))
		}
	}
	rows := make([]normalize.Row, len(t.Rows))
	for ri, row := range t.Rows {
		var out normalize.Row
		for i := 0; i < width; i++ {
			if keep[i] {
				out = append(out, row.Cell(i))
			}
		}
		rows[ri] = out
	}

	t.Header = header
	t.Rows = rows
}

func stringAt(s []string, i int) string {
	if i < 0 || i >= len(s) {
		return ""
	}
	return s[i]
}
