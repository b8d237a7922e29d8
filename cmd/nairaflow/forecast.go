package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nairaflow/nairaflow/internal/cli"
	"github.com/nairaflow/nairaflow/internal/forecast"
	"github.com/nairaflow/nairaflow/internal/storage"
)

func forecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Project the balance trend forward",
		Long: `Project the ledger's cumulative net position forward using a linear
trend over daily balances. The projection is a proxy: the statement's
true running balance is not recovered, only the net flow it implies.`,
		RunE: runForecast,
	}
	cmd.Flags().Int("days", 0, "Days to project ahead (default from config)")
	return cmd
}

func runForecast(cmd *cobra.Command, _ []string) error {
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

	days, _ := cmd.Flags().GetInt("days")
	if days <= 0 {
		days = viper.GetInt("forecast.days_ahead")
	}
	if days <= 0 {
		days = forecast.DefaultDaysAhead
	}

	result := forecast.Balance(ledger, days)
	if len(result.Projection) == 0 {
		cmd.Println(cli.FormatWarning("not enough daily history to fit a trend"))
		return nil
	}

	last := result.History[len(result.History)-1]
	end := result.Projection[len(result.Projection)-1]

	cmd.Println(cli.FormatTitle("Balance forecast"))
	cmd.Printf("  history:   %d day(s), net position %s\n",
		len(result.History), last.Balance.StringFixed(2))
	cmd.Printf("  projected: %s on %s\n",
		end.Balance.StringFixed(2), end.Date.Format("2006-01-02"))

	trend := end.Balance.Sub(last.Balance)
	line := fmt.Sprintf("%d-day trend: %s", days, trend.StringFixed(2))
	if trend.IsNegative() {
		cmd.Println(cli.FormatWarning(line))
	} else {
		cmd.Println(cli.FormatSuccess(line))
	}
	return nil
}
