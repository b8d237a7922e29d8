package normalize

import (
	"regexp"
	"strings"
	"time"
)

// dateFormats is the ordered list of explicit formats tried against a
// whole date column. Day-first formats come before month-first: the
// source statements are day-first and the 80% acceptance bar below
// protects against a wrong guess winning on a minority of ambiguous
// values.
var dateFormats = []string{
	"2006-01-02",      // 2026-01-15
	"02/01/2006",      // 15/01/2026
	"01/02/2006",      // 01/15/2026
	"02-01-2006",      // 15-01-2026
	"02-Jan-2006",     // 15-Jan-2026
	"02-January-2006", // 15-January-2026
	"02 Jan 2006",     // 15 Jan 2026
	"02 January 2006", // 15 January 2026
	"2006/01/02",      // 2026/01/15
}

// DatePattern matches date-shaped substrings: DD/MM/YYYY, DD-MM-YYYY,
// and "DD Mon YYYY". Used both by text-strategy extraction and by
// strategy scoring, where a structurally valid date is one that
// matches this pattern.
var DatePattern = regexp.MustCompile(
	`(?i)\d{2}[-/]\d{2}[-/]\d{4}|\d{2}\s(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s\d{4}`)

// minFormatRatio is the share of a column's non-null values a single
// explicit format must parse before it is adopted for the whole column.
const minFormatRatio = 0.8

// normalizeDateValue canonicalizes a raw date cell before parsing:
// whitespace collapsed, month names title-cased so "15 JAN 2026" and
// "15 jan 2026" both hit the Jan layouts.
func normalizeDateValue(raw string) string {
	s := CollapseWhitespace(raw)
	parts := strings.Split(s, " ")
	for i, p := range parts {
		if len(p) >= 3 && isAlpha(p) {
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		}
	}
	return strings.Join(parts, " ")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

// ParseDateColumn parses a whole date column. Each explicit format is
// tried in order and accepted only when it parses more than 80% of the
// non-null values; otherwise parsing falls back to per-value inference.
// The returned ok slice marks which rows parsed; failed rows are the
// caller's to drop and count. The detected format string ("inferred"
// for the fallback path, "" when nothing parsed) is reported for
// diagnostics.
func ParseDateColumn(values []string) ([]time.Time, []bool, string) {
	parsed := make([]time.Time, len(values))
	ok := make([]bool, len(values))

	nonNull := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			nonNull++
		}
	}
	if nonNull == 0 {
		return parsed, ok, ""
	}

	for _, layout := range dateFormats {
		hits := 0
		candidate := make([]time.Time, len(values))
		candidateOK := make([]bool, len(values))
		for i, v := range values {
			s := normalizeDateValue(v)
			if s == "" {
				continue
			}
			if t, err := time.Parse(layout, s); err == nil {
				candidate[i] = t
				candidateOK[i] = true
				hits++
			}
		}
		if float64(hits) > float64(nonNull)*minFormatRatio {
			return candidate, candidateOK, layout
		}
	}

	// No single format cleared the bar; infer per value.
	any := false
	for i, v := range values {
		if t, found := InferDate(v); found {
			parsed[i] = t
			ok[i] = true
			any = true
		}
	}
	if !any {
		return parsed, ok, ""
	}
	return parsed, ok, "inferred"
}

// InferDate parses a single date value by trying every known layout in
// order, day-first layouts winning ambiguous values.
func InferDate(raw string) (time.Time, bool) {
	s := normalizeDateValue(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
