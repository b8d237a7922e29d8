// Package ingest loads bank-statement documents of unknown layout and
// extracts a canonical transaction ledger from them. PDF sources run
// two competing extraction strategies and keep whichever produced more
// verifiably valid rows; CSV and OFX sources carry a single table and
// skip selection.
package ingest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nairaflow/nairaflow/internal/common"
)

// Format identifies a supported statement document format.
type Format string

const (
	// FormatCSV is a tabular export in any of many dialects.
	FormatCSV Format = "csv"
	// FormatPDF is a digitally generated statement PDF.
	FormatPDF Format = "pdf"
	// FormatOFX is an OFX/QFX export.
	FormatOFX Format = "ofx"
)

// Page is one PDF page's extracted content, available in two shapes:
// Cells, rows already split into columns by layout gaps, for the
// table strategy; and Lines, the page's flowed text, for the text
// strategy.
type Page struct {
	Cells [][]string
	Lines []string
}

// DetectFormat maps a file path onto a statement format by extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return FormatCSV, nil
	case ".pdf":
		return FormatPDF, nil
	case ".ofx", ".qfx":
		return FormatOFX, nil
	default:
		return "", common.NewUserError(
			fmt.Sprintf("unsupported file type %q; supply a CSV, PDF, or OFX statement", filepath.Ext(path)),
			common.ErrUnsupportedFormat,
		)
	}
}
