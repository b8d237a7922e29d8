package ingest

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nairaflow/nairaflow/internal/normalize"
)

// amountTokenRe matches amount-shaped substrings: decimal numbers with
// optional thousands separators, or a double-dash placeholder. Single
// dashes standing alone between spaces are also placeholders but are
// matched separately, since RE2 has no lookarounds.
var amountTokenRe = regexp.MustCompile(`\d{1,3}(?:,\d{3})*\.\d{2}|\d+\.\d{2}|--`)

// minDescriptionLen rejects descriptions too short to be a real
// counterparty after date/amount subtraction.
const minDescriptionLen = 3

// descriptionJunkRe strips residual punctuation from a reconstructed
// description, keeping comma, period, and hyphen.
var descriptionJunkRe = regexp.MustCompile(`[^a-zA-Z0-9\s.,-]`)

// span is a half-open byte range within a line.
type span struct {
	start, end int
}

// ExtractText runs the text strategy over a document's flowed lines.
// A line qualifies as a transaction candidate when it holds at least
// one date-shaped token and two amount-or-placeholder tokens; the
// description is what remains after subtracting every matched token.
// The first up-to-three amount tokens are retained positionally, in
// left-to-right order, for later resolution.
func ExtractText(pages []Page) *normalize.Table {
	table := &normalize.Table{
		Header: []string{"date", "description", "amount_1", "amount_2", "amount_3"},
	}

	for _, page := range pages {
		for _, line := range page.Lines {
			line = strings.TrimSpace(line)
			if line == "" || !containsDigit(line) {
				continue
			}

			dates := normalize.DatePattern.FindAllStringIndex(line, -1)
			if len(dates) == 0 {
				continue
			}
			amounts := findAmountTokens(line, dates)
			if len(amounts) < 2 {
				continue
			}

			desc := subtractSpans(line, append(append([]span{}, toSpans(dates)...), amounts...))
			desc = descriptionJunkRe.ReplaceAllString(desc, "")
			desc = normalize.CollapseWhitespace(desc)
			if len(desc) < minDescriptionLen || strings.Contains(desc, "Opening Balance") {
				continue
			}

			row := normalize.Row{
				line[dates[0][0]:dates[0][1]],
				desc,
				tokenAt(line, amounts, 0),
				tokenAt(line, amounts, 1),
				tokenAt(line, amounts, 2),
			}
			table.Rows = append(table.Rows, row)
		}
	}

	if len(table.Rows) == 0 {
		return nil
	}
	return table
}

func containsDigit(s string) bool {
	return strings.ContainsAny(s, "0123456789")
}

// findAmountTokens locates amount and placeholder tokens outside the
// date matches, preserving left-to-right order. Standalone single
// dashes are placeholders too; they are found by scanning
// whitespace-delimited words because the regex engine cannot express
// the surrounding-space constraint.
func findAmountTokens(line string, dates [][]int) []span {
	var tokens []span

	for _, m := range amountTokenRe.FindAllStringIndex(line, -1) {
		if overlapsAny(m[0], m[1], dates) {
			continue
		}
		tokens = append(tokens, span{m[0], m[1]})
	}

	// Standalone "-" words.
	pos := 0
	for _, word := range strings.Fields(line) {
		start := strings.Index(line[pos:], word) + pos
		pos = start + len(word)
		if word != "-" {
			continue
		}
		if overlapsAny(start, pos, dates) {
			continue
		}
		tokens = append(tokens, span{start, pos})
	}

	sort.Slice(tokens, func(i, j int) bool { return tokens[i].start < tokens[j].start })
	return tokens
}

func overlapsAny(start, end int, matches [][]int) bool {
	for _, m := range matches {
		if start < m[1] && end > m[0] {
			return true
		}
	}
	return false
}

func toSpans(matches [][]int) []span {
	out := make([]span, len(matches))
	for i, m := range matches {
		out[i] = span{m[0], m[1]}
	}
	return out
}

// subtractSpans blanks every matched token out of the line.
func subtractSpans(line string, spans []span) string {
	buf := []byte(line)
	for _, sp := range spans {
		for i := sp.start; i < sp.end && i < len(buf); i++ {
			buf[i] = ' '
		}
	}
	return string(buf)
}

// tokenAt returns the idx-th token's text, or "" past the end.
func tokenAt(line string, tokens []span, idx int) string {
	if idx >= len(tokens) {
		return ""
	}
	return line[tokens[idx].start:tokens[idx].end]
}
