// Package categorize assigns categories to canonical transactions
// using an ordered, first-match-wins list of pattern rules.
package categorize

// Categories assigned by the default rule set.
const (
	CategoryHighRisk    = "High Risk"
	CategoryIncome      = "Business Income"
	CategoryOperational = "Operational Expense"
	CategoryPersonal    = "Personal"
)

// Rule pairs a description pattern with the category and reason it
// assigns. Rules are evaluated top to bottom; the first match wins.
type Rule struct {
	Pattern  string
	Category string
	Reason   string
}

// DefaultRules returns the default categorization rule set, ordered by
// precedence. High-risk markers come first so a gambling transfer is
// never swallowed by the generic transfer rules.
func DefaultRules() []Rule {
	return []Rule{
		// High risk
		{`\b(sporty|bet9ja|betway|1xbet|nairabet|betking|betting|gambl)`, CategoryHighRisk, "Gambling/betting activity"},
		{`\b(loan shark|ponzi|fraud)`, CategoryHighRisk, "Suspicious activity"},

		// Business income (incoming transfers / credits)
		{`^transfer from\b`, CategoryIncome, "Incoming transfer"},
		{`\binterest earned\b`, CategoryIncome, "Interest income"},
		{`\binward\b.*\btransfer\b`, CategoryIncome, "Inward transfer"},
		{`\bcredit alert\b`, CategoryIncome, "Credit alert"},

		// Personal / savings movements
		{`\bowealth\b`, CategoryPersonal, "OWealth savings movement"},
		{`\bauto[- ]?save\b`, CategoryPersonal, "Auto-save to savings"},
		{`\bsavings?\b.*\b(withdrawal|deposit|transfer)\b`, CategoryPersonal, "Savings movement"},

		// Government levies and taxes
		{`\bstamp duty\b`, CategoryOperational, "Government levy"},
		{`\belectronic money transfer levy\b`, CategoryOperational, "Government levy"},
		{`\bvat\b|\bwithholding tax\b`, CategoryOperational, "Tax/levy"},

		// Operational expenses (outgoing transfers with business keywords)
		{`transfer to\b.*\b(fuel|oil|gas|diesel|petrol|energy)`, CategoryOperational, "Fuel/energy expense"},
		{`transfer to\b.*\b(rent|landlord)`, CategoryOperational, "Rent payment"},
		{`transfer to\b.*\b(food|bread|drink|rice|plantain|fish|egg|buns|cafe)`, CategoryOperational, "Food/provisions"},
		{`transfer to\b.*\b(engine|brake|mechanic|spare|part|tyre|tire)`, CategoryOperational, "Vehicle maintenance"},
		{`transfer to\b.*\b(shoe|material|fabric|cloth|tailor)`, CategoryOperational, "Materials/supplies"},
		{`transfer to\b.*\b(phone|airtime|data)`, CategoryOperational, "Communication expense"},
		{`transfer to\b.*\b(waste|clean|sanit)`, CategoryOperational, "Utility expense"},
		{`\bmobile data\b|\bairtime\b`, CategoryOperational, "Communication expense"},
		{`\bthird[- ]?party merchant\b`, CategoryOperational, "Merchant payment"},
		{`\bvirtual card\b`, CategoryOperational, "Card fee"},

		// General outgoing transfers default to personal
		{`^transfer to\b`, CategoryPersonal, "Outgoing transfer"},

		// POS transactions
		{`\bpos\b.*\btransfer\b`, CategoryOperational, "POS/cash withdrawal"},

		// Catch-all for anything with a description
		{`.+`, CategoryPersonal, "Uncategorized transaction"},
	}
}
