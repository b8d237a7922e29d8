package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/nairaflow/nairaflow/internal/common"
	"github.com/nairaflow/nairaflow/internal/normalize"
)

// delimiterCandidates are tried in order when sniffing a CSV dialect.
var delimiterCandidates = []rune{',', ';', '\t', '|'}

// maxMetadataLines bounds how far down a file the header row may sit;
// bank exports often prefix a few lines of account metadata.
const maxMetadataLines = 10

// LoadCSV opens a CSV export and returns it as a single raw table.
// The delimiter and the header row position are sniffed: the header is
// the first line within the leading lines that contains at least two
// known column keywords, earlier lines are skipped as metadata.
func LoadCSV(path string) (*normalize.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not open %s", path), fmt.Errorf("%w: %v", common.ErrDocumentOpen, err))
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	delim, skip, err := sniffDialect(lines)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not detect a header row in %s", path),
			fmt.Errorf("%w: %v", common.ErrDocumentOpen, err))
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(lines[skip:], "\n")))
	reader.Comma = delim
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not parse %s as CSV", path),
			fmt.Errorf("%w: %v", common.ErrDocumentOpen, err))
	}
	if len(records) == 0 {
		return nil, common.NewUserError(
			fmt.Sprintf("%s contains no rows", path), common.ErrDocumentOpen)
	}

	table := &normalize.Table{Header: records[0]}
	for _, rec := range records[1:] {
		table.Rows = append(table.Rows, normalize.Row(rec))
	}
	return table, nil
}

// sniffDialect finds the delimiter and the number of metadata lines
// preceding the header. A line qualifies as the header when splitting
// it on a candidate delimiter yields at least two fields and at least
// two of them are known header keywords.
func sniffDialect(lines []string) (rune, int, error) {
	limit := len(lines)
	if limit > maxMetadataLines {
		limit = maxMetadataLines
	}

	for i := 0; i < limit; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		for _, delim := range delimiterCandidates {
			fields := strings.Split(line, string(delim))
			if len(fields) < 2 {
				continue
			}
			if headerKeywordCount(fields) >= 2 {
				return delim, i, nil
			}
		}
	}

	return 0, 0, fmt.Errorf("no header row found in first %d lines", limit)
}
