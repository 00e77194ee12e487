package main

import (
	"github.com/piresc/tripstats/internal/pkg/models"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Short:   "Print the stored daily summaries",
	Example: "  tripctl summary --from 2016-07-11 --to 2016-07-15",
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

var summaryFlags struct {
	from string
	to   string
}

func init() {
	summaryCmd.Flags().StringVar(&summaryFlags.from, "from", "", "first date, yyyy-mm-dd")
	summaryCmd.Flags().StringVar(&summaryFlags.to, "to", "", "last date, yyyy-mm-dd (inclusive)")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	rng, err := models.ParseDateRange(summaryFlags.from, summaryFlags.to)
	if err != nil {
		return err
	}
	uc, err := cli.summaryUC()
	if err != nil {
		return err
	}
	rows, err := uc.GetSummaries(cmd.Context(), rng)
	if err != nil {
		return err
	}
	if rows == nil {
		rows = []models.DailySummary{}
	}
	return printJSON(cmd, rows)
}
