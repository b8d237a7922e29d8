package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nairaflow/nairaflow/internal/cli"
	"github.com/nairaflow/nairaflow/internal/storage"
)

func transactionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "List the stored canonical ledger",
		RunE:  runTransactions,
	}
	cmd.Flags().IntP("limit", "n", 0, "Show at most N transactions (0 = all)")
	return cmd
}

func runTransactions(cmd *cobra.Command, _ []string) error {
	path, err := dbPath()
	if err != nil {
		return err
	}
	store, err := storage.New(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	ledger, err := store.ListTransactions(cmd.Context())
	if err != nil {
		return err
	}
	if len(ledger) == 0 {
		cmd.Println("No transactions stored; run `nairaflow ingest` first.")
		return nil
	}

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && len(ledger) > limit {
		ledger = ledger[len(ledger)-limit:]
	}

	header := fmt.Sprintf("%-12s %-8s %12s  %-20s %s", "DATE", "TYPE", "AMOUNT", "CATEGORY", "DESCRIPTION")
	cmd.Println(cli.TableHeaderStyle.Render(header))
	for _, txn := range ledger {
		desc := truncate(txn.Description, 48)
		cmd.Printf("%-12s %-8s %12s  %-20s %s\n",
			txn.Date.Format("2006-01-02"),
			txn.Type,
			txn.Amount.StringFixed(2),
			txn.Category,
			desc)
	}
	cmd.Println(cli.SubtleStyle.Render(fmt.Sprintf("%d transaction(s)", len(ledger))))
	return nil
}

// truncate shortens s to at most max characters, counted in runes so a
// multi-byte description is never split mid-character.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
