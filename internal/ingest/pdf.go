package ingest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/nairaflow/nairaflow/internal/common"
)

// columnGap is the horizontal gap, in PDF points, between two text
// fragments on the same row that marks a column boundary.
const columnGap = 12.0

// LoadPDF opens a digitally generated statement PDF and returns its
// pages with both row/cell structure and flowed text lines. Corrupt or
// encrypted files fail with a document-open error; there is no retry.
// The pdf library panics on some malformed files, so extraction runs
// behind a recover.
func LoadPDF(path string) (pages []Page, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = common.NewUserError(
				fmt.Sprintf("could not read %s; the PDF may be corrupt or encrypted", path),
				fmt.Errorf("%w: pdf reader panic: %v", common.ErrDocumentOpen, r))
		}
	}()

	f, reader, openErr := pdf.Open(path)
	if openErr != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not open %s; the PDF may be corrupt or encrypted", path),
			fmt.Errorf("%w: %v", common.ErrDocumentOpen, openErr))
	}
	defer func() { _ = f.Close() }()

	numPages := reader.NumPage()
	if numPages == 0 {
		return nil, common.NewUserError(
			fmt.Sprintf("%s has no pages", path), common.ErrDocumentOpen)
	}

	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, extractPage(page))
	}

	return pages, nil
}

// extractPage reconstructs one page's rows from positioned text
// fragments. Fragments are grouped into rows by rounded Y coordinate
// (PDF Y grows bottom-to-top, so rows sort descending), ordered by X
// within a row, and split into cells wherever the gap to the previous
// fragment exceeds columnGap.
func extractPage(page pdf.Page) Page {
	content := page.Content()

	type fragment struct {
		s    string
		x, w float64
	}
	rowMap := make(map[int][]fragment)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		y := int(t.Y + 0.5)
		rowMap[y] = append(rowMap[y], fragment{s: t.S, x: t.X, w: t.W})
	}

	ys := make([]int, 0, len(rowMap))
	for y := range rowMap {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	var p Page
	for _, y := range ys {
		frags := rowMap[y]
		sort.Slice(frags, func(a, b int) bool { return frags[a].x < frags[b].x })

		var cells []string
		var cell strings.Builder
		prevEnd := 0.0
		for i, fr := range frags {
			if i > 0 && fr.x-prevEnd > columnGap {
				cells = append(cells, strings.TrimSpace(cell.String()))
				cell.Reset()
			} else if i > 0 {
				cell.WriteByte(' ')
			}
			cell.WriteString(fr.s)
			prevEnd = fr.x + fr.w
		}
		if cell.Len() > 0 {
			cells = append(cells, strings.TrimSpace(cell.String()))
		}

		if len(cells) == 0 {
			continue
		}
		p.Cells = append(p.Cells, cells)
		p.Lines = append(p.Lines, strings.Join(cells, " "))
	}

	return p
}
