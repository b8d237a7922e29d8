package categorize

import (
	"fmt"
	"regexp"

	"github.com/nairaflow/nairaflow/internal/model"
)

// compiledRule holds a rule with its precompiled pattern.
type compiledRule struct {
	re *regexp.Regexp
	Rule
}

// Categorizer evaluates an immutable ordered sequence of precompiled
// rules against transaction descriptions. It is read-only after
// construction and safe for concurrent use.
type Categorizer struct {
	rules []compiledRule
}

// New compiles a rule list into a categorizer. Patterns are made
// case-insensitive.
func New(rules []Rule) (*Categorizer, error) {
	compiled := make([]compiledRule, 0, len(rules))
	for _, r := range rules {
		re, err := regexp.Compile("(?i)" + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to compile rule %q: %w", r.Pattern, err)
		}
		compiled = append(compiled, compiledRule{re: re, Rule: r})
	}
	return &Categorizer{rules: compiled}, nil
}

// NewDefault compiles the default rule set. The defaults are known
// valid, so compilation cannot fail.
func NewDefault() *Categorizer {
	c, err := New(DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}

// Categorize annotates every ledger transaction with a category and
// reason, returning a new ledger; the input is not mutated.
func (c *Categorizer) Categorize(ledger model.Ledger) model.Ledger {
	out := make(model.Ledger, len(ledger))
	for i, txn := range ledger {
		txn.Category, txn.Reason = c.classify(txn)
		out[i] = txn
	}
	return out
}

// classify applies the rules to one transaction. Transactions without
// a description fall back to the amount sign. A rule that assigns
// Business Income to a debit is overridden to Operational Expense:
// money going out is not income no matter what the narration says.
func (c *Categorizer) classify(txn model.Transaction) (category, reason string) {
	if txn.Description == "" {
		if txn.Amount.IsPositive() {
			return CategoryIncome, "Incoming amount (no description)"
		}
		return CategoryPersonal, "Outgoing amount (no description)"
	}

	for _, rule := range c.rules {
		if !rule.re.MatchString(txn.Description) {
			continue
		}
		if rule.Category == CategoryIncome && txn.Amount.IsNegative() {
			return CategoryOperational, rule.Reason + " (debit)"
		}
		return rule.Category, rule.Reason
	}

	return CategoryPersonal, "Could not categorize"
}
