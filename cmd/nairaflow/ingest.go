package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nairaflow/nairaflow/internal/categorize"
	"github.com/nairaflow/nairaflow/internal/cli"
	"github.com/nairaflow/nairaflow/internal/ingest"
	"github.com/nairaflow/nairaflow/internal/model"
	"github.com/nairaflow/nairaflow/internal/storage"
)

func ingestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest [files...]",
		Short: "Ingest bank statements into the canonical ledger",
		Long: `Ingest one or more bank statements (CSV, PDF, or OFX/QFX exports),
normalize them into the canonical ledger, categorize every transaction,
and persist the result.

Examples:
  # Ingest a single CSV export
  nairaflow ingest ~/Downloads/statement_jan.csv

  # Ingest every statement PDF in a directory
  nairaflow ingest ~/Downloads/statements/*.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}

	cmd.Flags().BoolP("dry-run", "d", false, "Preview ingestion without saving")
	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to ingest")
	}

	var store *storage.Store
	if !dryRun {
		path, pathErr := dbPath()
		if pathErr != nil {
			return pathErr
		}
		store, err = storage.New(path)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
	}

	pipeline := ingest.NewPipeline()
	pipeline.MinMonths = viper.GetInt("summary.min_months")
	categorizer := categorize.NewDefault()

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Ingesting statements"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	failures := 0
	for _, file := range files {
		stmt, procErr := pipeline.Process(cmd.Context(), file)
		if procErr != nil {
			// Fatal failures carry a user-renderable message; report and
			// continue with the remaining files.
			cmd.PrintErrln(cli.FormatError(fmt.Sprintf("%s: %v", filepath.Base(file), procErr)))
			failures++
			_ = bar.Add(1)
			continue
		}

		stmt.Ledger = categorizer.Categorize(stmt.Ledger)

		if !dryRun {
			saved, saveErr := store.SaveStatement(cmd.Context(), stmt)
			if saveErr != nil {
				return saveErr
			}
			slog.Info("statement saved",
				"source", filepath.Base(file),
				"new_transactions", saved,
				"duplicates", len(stmt.Ledger)-saved)
		}

		_ = bar.Add(1)
		printStatement(cmd, stmt)
	}

	if failures == len(files) {
		return fmt.Errorf("all %d file(s) failed to ingest", failures)
	}
	return nil
}

func printStatement(cmd *cobra.Command, stmt *model.Statement) {
	cmd.Println(cli.FormatTitle(filepath.Base(stmt.Source)))
	cmd.Printf("  strategy:     %s\n", stmt.Strategy)
	cmd.Printf("  transactions: %d\n", stmt.Summary.TotalTransactions)
	if stmt.Summary.TotalTransactions > 0 {
		cmd.Printf("  period:       %s to %s (%d days, ~%d months)\n",
			stmt.Summary.StartDate.Format("2006-01-02"),
			stmt.Summary.EndDate.Format("2006-01-02"),
			stmt.Summary.DaysCovered,
			stmt.Summary.MonthsCovered)
		cmd.Printf("  credits:      %s\n", stmt.Summary.TotalCredits.StringFixed(2))
		cmd.Printf("  debits:       %s\n", stmt.Summary.TotalDebits.StringFixed(2))
	}
	for _, w := range stmt.Warnings {
		cmd.Println("  " + cli.FormatWarning(w))
	}
}

// expandGlobs resolves glob patterns and direct paths into a file list.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
