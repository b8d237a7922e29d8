package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nairaflow/nairaflow/internal/cli"
	"github.com/nairaflow/nairaflow/internal/storage"
	"github.com/nairaflow/nairaflow/internal/summary"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show statement period and monthly breakdown",
		RunE:  runSummary,
	}
}

func runSummary(cmd *cobra.Command, _ []string) error {
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

	sum, warnings := summary.Build(ledger, viper.GetInt("summary.min_months"))

	cmd.Println(cli.FormatTitle("Statement summary"))
	cmd.Printf("  transactions: %d\n", sum.TotalTransactions)
	cmd.Printf("  period:       %s to %s (%d days, ~%d months)\n",
		sum.StartDate.Format("2006-01-02"),
		sum.EndDate.Format("2006-01-02"),
		sum.DaysCovered,
		sum.MonthsCovered)
	cmd.Printf("  credits:      %s\n", sum.TotalCredits.StringFixed(2))
	cmd.Printf("  debits:       %s\n", sum.TotalDebits.StringFixed(2))

	cmd.Println()
	header := fmt.Sprintf("%-9s %12s %12s %7s", "MONTH", "CREDITS", "DEBITS", "COUNT")
	cmd.Println(cli.TableHeaderStyle.Render(header))
	for _, mb := range sum.Monthly {
		cmd.Printf("%-9s %12s %12s %7d\n",
			mb.Month, mb.Credits.StringFixed(2), mb.Debits.StringFixed(2), mb.Count)
	}

	for _, w := range warnings {
		cmd.Println(cli.FormatWarning(w))
	}
	return nil
}
