package normalize

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountKind distinguishes how a numeric token parsed. A placeholder
// dash resolves to exactly zero but is not the same thing as a genuine
// zero that came from real digits; the positional resolver relies on
// that distinction, and a truly unparseable value must drop the row
// rather than masquerade as zero.
type AmountKind int

const (
	// AmountMissing means the token was non-numeric and non-placeholder.
	AmountMissing AmountKind = iota
	// AmountPlaceholder means a dash variant standing in for "no value
	// in this column".
	AmountPlaceholder
	// AmountValue means real digits were parsed.
	AmountValue
)

// currencyMarkers are stripped before numeric parsing.
var currencyMarkers = []string{"₦", "NGN", "N ", "$", "€", "£", "USD", "GBP", "EUR"}

// ParseAmount parses a raw amount string tolerant of thousands
// separators, currency symbols, and placeholder dashes.
func ParseAmount(raw string) (decimal.Decimal, AmountKind) {
	s := strings.TrimSpace(raw)
	switch s {
	case "", "-", "--", "---":
		return decimal.Zero, AmountPlaceholder
	}

	upper := strings.ToUpper(s)
	for _, marker := range currencyMarkers {
		upper = strings.ReplaceAll(upper, marker, "")
	}
	upper = strings.ReplaceAll(upper, ",", "")
	upper = strings.ReplaceAll(upper, " ", "")

	// Accounting-style parentheses mean negative: (500.00)
	negative := false
	if strings.HasPrefix(upper, "(") && strings.HasSuffix(upper, ")") {
		negative = true
		upper = strings.TrimSuffix(strings.TrimPrefix(upper, "("), ")")
	}

	d, err := decimal.NewFromString(upper)
	if err != nil {
		return decimal.Zero, AmountMissing
	}
	if negative {
		d = d.Neg()
	}
	return d, AmountValue
}

// MergeSplitAmount combines split credit/debit columns into one signed
// amount: credit − debit. Unparseable values in either column count as
// zero, mirroring how banks leave the unused side blank.
func MergeSplitAmount(creditRaw, debitRaw string) decimal.Decimal {
	credit, _ := ParseAmount(creditRaw)
	debit, _ := ParseAmount(debitRaw)
	return credit.Sub(debit)
}

// creditKeywords are description phrases that indicate money in. They
// are a fallback signal only, consulted when placeholder-based
// positional disambiguation was unavailable.
var creditKeywords = []string{
	"transfer from", "deposit", "credit", "inward", "nip from", "trf from",
	"fip", "ut", "dividend", "interest", "refund", "reversal", "topup",
	"received", "fbn mobile", "uba mobile", "access mobile", "gtb mobile",
	"zenith mobile", "firstmobile", "alat", "opay", "loan", "disbursement",
}

func hasCreditKeyword(description string) bool {
	desc := strings.ToLower(description)
	for _, kw := range creditKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}

// ResolveAmounts turns up to three positional amount tokens into one
// signed amount. Columns are assumed ordered Debit | Credit | Balance;
// the third token, when present, is taken to be the running balance and
// ignored.
//
// When a placeholder distinguishes the two leading columns the
// positional signal decides alone. When both columns carry values the
// first is trusted as the transaction amount and the credit keyword
// list breaks the direction tie, defaulting to debit: misclassifying a
// debit as credit is the costlier error for risk scoring. Disagreement
// between positional and keyword signals is flagged as a data-quality
// warning, never silently resolved.
func ResolveAmounts(tokens []string, description string) (decimal.Decimal, []string) {
	var warnings []string

	var col1, col2 decimal.Decimal
	if len(tokens) > 0 {
		col1, _ = ParseAmount(tokens[0])
	}
	if len(tokens) > 1 {
		col2, _ = ParseAmount(tokens[1])
	}

	keywordCredit := hasCreditKeyword(description)

	switch {
	case col1.IsPositive() && col2.IsZero():
		// Explicit debit: column 1 present, column 2 empty or placeholder.
		if keywordCredit {
			warnings = append(warnings, fmt.Sprintf(
				"amount direction conflict for %q: position says debit, keywords say credit; kept debit",
				CollapseWhitespace(description)))
		}
		return col1.Abs().Neg(), warnings

	case col2.IsPositive() && col1.IsZero():
		// Explicit credit: column 1 empty or placeholder, column 2 present.
		return col2.Abs(), warnings

	default:
		// No placeholder distinguished the columns, so the two numbers
		// are most likely [transaction, balance]. Trust column 1 and
		// fall back to keywords for direction.
		if keywordCredit {
			return col1.Abs(), warnings
		}
		return col1.Abs().Neg(), warnings
	}
}
