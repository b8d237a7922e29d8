package normalize

import (
	"fmt"
	"strings"

	"github.com/nairaflow/nairaflow/internal/common"
)

// Canonical column roles. The split credit/debit roles are transient:
// they exist only until the two columns are merged into one signed
// amount.
const (
	roleDate        = "date"
	roleDescription = "description"
	roleAmount      = "amount"
	roleType        = "type"
	roleCredit      = "_credit"
	roleDebit       = "_debit"
)

// columnSynonyms maps header labels seen across bank exports onto
// canonical roles. Lookup is case-insensitive on the trimmed label,
// with a second attempt after stripping a parenthesized currency
// annotation such as "(₦)" or "(NGN)".
var columnSynonyms = map[string]string{
	// Date columns
	"date":             roleDate,
	"trans date":       roleDate,
	"trans. date":      roleDate,
	"transaction date": roleDate,
	"value date":       roleDate,
	"posting date":     roleDate,
	"txn date":         roleDate,

	// Description columns
	"description":         roleDescription,
	"narration":           roleDescription,
	"remarks":             roleDescription,
	"details":             roleDescription,
	"transaction details": roleDescription,
	"particulars":         roleDescription,
	"reference":           roleDescription,

	// Unified amount columns
	"amount":             roleAmount,
	"transaction amount": roleAmount,
	"txn amount":         roleAmount,

	// Split credit/debit columns
	"credit":        roleCredit,
	"credit amount": roleCredit,
	"deposit":       roleCredit,
	"deposits":      roleCredit,
	"money in":      roleCredit,
	"debit":         roleDebit,
	"debit amount":  roleDebit,
	"withdrawal":    roleDebit,
	"withdrawals":   roleDebit,
	"money out":     roleDebit,

	// Type columns (informational only; type is re-derived from sign)
	"type":             roleType,
	"transaction type": roleType,
	"txn type":         roleType,
	"dr/cr":            roleType,
}

// Roles holds the column index for each canonical role, -1 when the
// source table does not expose it. Positional holds the indices of
// amount_1..amount_3 columns produced by text-strategy extraction,
// in order.
type Roles struct {
	Positional  []int
	Date        int
	Description int
	Amount      int
	Type        int
	Credit      int
	Debit       int
}

// CanonicalRole resolves a raw header label to its canonical role, or
// "" when the label is unknown.
func CanonicalRole(label string) string {
	h := strings.ToLower(strings.TrimSpace(label))
	if role, ok := columnSynonyms[h]; ok {
		return role
	}
	// Retry with a trailing currency annotation stripped: "credit (₦)",
	// "debit amount (NGN)".
	if i := strings.Index(h, "("); i > 0 {
		base := strings.TrimSpace(h[:i])
		if role, ok := columnSynonyms[base]; ok {
			return role
		}
	}
	return ""
}

// MapColumns assigns canonical roles to a header row. The first column
// claiming a role wins; later duplicates are ignored.
func MapColumns(header []string) Roles {
	roles := Roles{
		Date:        -1,
		Description: -1,
		Amount:      -1,
		Type:        -1,
		Credit:      -1,
		Debit:       -1,
	}

	for i, label := range header {
		h := strings.ToLower(strings.TrimSpace(label))
		switch {
		case h == "amount_1" || h == "amount_2" || h == "amount_3":
			roles.Positional = append(roles.Positional, i)
			continue
		}

		switch CanonicalRole(label) {
		case roleDate:
			if roles.Date < 0 {
				roles.Date = i
			}
		case roleDescription:
			if roles.Description < 0 {
				roles.Description = i
			}
		case roleAmount:
			if roles.Amount < 0 {
				roles.Amount = i
			}
		case roleType:
			if roles.Type < 0 {
				roles.Type = i
			}
		case roleCredit:
			if roles.Credit < 0 {
				roles.Credit = i
			}
		case roleDebit:
			if roles.Debit < 0 {
				roles.Debit = i
			}
		}
	}

	return roles
}

// HasAmount reports whether the table exposes any usable amount source:
// a unified column, a credit/debit pair, or positional token columns.
func (r Roles) HasAmount() bool {
	return r.Amount >= 0 || (r.Credit >= 0 && r.Debit >= 0) || len(r.Positional) >= 2
}

// Validate checks that the required canonical fields are present.
// On failure it reports the columns that were recognized, for
// diagnosis, wrapped in a user-renderable error.
func (r Roles) Validate(header []string) error {
	var missing []string
	if r.Date < 0 {
		missing = append(missing, roleDate)
	}
	if r.Description < 0 {
		missing = append(missing, roleDescription)
	}
	if !r.HasAmount() {
		missing = append(missing, roleAmount)
	}
	if len(missing) == 0 {
		return nil
	}

	var found []string
	for _, label := range header {
		if role := CanonicalRole(label); role != "" {
			found = append(found, role)
		}
	}
	if len(found) == 0 {
		found = append(found, "none")
	}

	return common.NewUserError(
		fmt.Sprintf("missing required columns: %s (found: %s)",
			strings.Join(missing, ", "), strings.Join(found, ", ")),
		common.ErrMissingColumn,
	)
}
