package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nairaflow/nairaflow/internal/categorize"
	"github.com/nairaflow/nairaflow/internal/cli"
	"github.com/nairaflow/nairaflow/internal/score"
	"github.com/nairaflow/nairaflow/internal/storage"
)

func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Compute the credit risk score for the stored ledger",
		RunE:  runScore,
	}
}

func runScore(cmd *cobra.Command, _ []string) error {
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

	// Categorize anything that was stored uncategorized, and persist
	// the assignments so repeated scoring is stable.
	needsCategories := false
	for _, txn := range ledger {
		if txn.Category == "" {
			needsCategories = true
			break
		}
	}
	if needsCategories {
		ledger = categorize.NewDefault().Categorize(ledger)
		if err := store.UpdateCategories(cmd.Context(), ledger); err != nil {
			return err
		}
	}

	metrics := score.CalculateMetrics(ledger)
	result := score.Score(ledger)

	cmd.Println(cli.FormatTitle("Credit risk score"))
	cmd.Printf("  income:        %s\n", metrics.TotalIncome.StringFixed(2))
	cmd.Printf("  expenses:      %s\n", metrics.TotalExpenses.StringFixed(2))
	cmd.Printf("  expense ratio: %.2f\n", metrics.ExpenseRatio)
	cmd.Printf("  high risk:     %d transaction(s)\n", metrics.HighRiskCount)
	cmd.Println()

	line := fmt.Sprintf("Score: %.0f / 100", result)
	switch {
	case result >= 70:
		cmd.Println(cli.FormatSuccess(line))
	case result >= 40:
		cmd.Println(cli.FormatWarning(line))
	default:
		cmd.Println(cli.FormatError(line))
	}
	return nil
}
