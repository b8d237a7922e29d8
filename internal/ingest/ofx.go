package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	"github.com/nairaflow/nairaflow/internal/common"
	"github.com/nairaflow/nairaflow/internal/model"
)

var (
	ofxSeverityRe = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	ofxOpenTagRe  = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocessOFX fixes common formatting issues in bank-exported OFX
// files: leading whitespace before the header, mixed-case SEVERITY
// values, and SGML-style tags missing their closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = ofxSeverityRe.ReplaceAllStringFunc(content, strings.ToUpper)
	content = ofxOpenTagRe.ReplaceAllString(content, "$1>")
	return content
}

// LoadOFX parses an OFX/QFX statement into the canonical ledger. OFX
// carries explicit signed amounts and dates, so it bypasses strategy
// selection entirely; negative amounts are debits, matching the
// canonical sign convention.
func LoadOFX(_ context.Context, path string) (model.Ledger, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not open %s", path),
			fmt.Errorf("%w: %v", common.ErrDocumentOpen, err))
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, common.NewUserError(
			fmt.Sprintf("could not parse %s as OFX", path),
			fmt.Errorf("%w: %v", common.ErrDocumentOpen, err))
	}

	var ledger model.Ledger
	var bankStmts, ccStmts int

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			bankStmts++
			for _, tx := range stmt.BankTranList.Transactions {
				ledger = append(ledger, convertOFXTransaction(tx))
			}
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			ccStmts++
			for _, tx := range stmt.BankTranList.Transactions {
				ledger = append(ledger, convertOFXTransaction(tx))
			}
		}
	}

	slog.Debug("parsed OFX file",
		"transactions", len(ledger),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return ledger, nil
}

// convertOFXTransaction maps one OFX transaction onto the canonical
// model. The description prefers the payee name over the raw NAME
// field, with MEMO as a tiebreaker when NAME is generic.
func convertOFXTransaction(tx ofxgo.Transaction) model.Transaction {
	desc := string(tx.Name)
	if tx.Payee != nil && tx.Payee.Name != "" {
		desc = string(tx.Payee.Name)
	} else if tx.Memo != "" && isGenericOFXName(desc) {
		desc = string(tx.Memo)
	}
	desc = strings.TrimSpace(desc)

	amount := decimal.NewFromBigRat(&tx.TrnAmt.Rat, 2)
	return model.NewTransaction(tx.DtPosted.Time, desc, amount)
}

// isGenericOFXName reports whether a NAME field carries no real
// counterparty information.
func isGenericOFXName(name string) bool {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBIT", "CREDIT", "PURCHASE", "PAYMENT", "POS TRANSACTION", "CARD PURCHASE":
		return true
	}
	return false
}
