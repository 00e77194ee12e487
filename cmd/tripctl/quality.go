package main

import (
	"github.com/piresc/tripstats/services/trips/usecase"
	"github.com/spf13/cobra"
)

var qualityCmd = &cobra.Command{
	Use:   "quality <check>",
	Short: "Run a data-quality check on the trip store",
	Long: `Runs one of the data-quality checks:

  anomalies   trips that end before they start or exceed QUALITY_MAX_DURATION_MINUTES
  nulls       null count per nullable column
  duplicates  request ids stored more than once`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{usecase.CheckAnomalies, usecase.CheckNulls, usecase.CheckDuplicates},
	RunE:      runQuality,
}

func init() {
	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, args []string) error {
	repo, err := cli.tripRepo()
	if err != nil {
		return err
	}
	data, err := usecase.NewQualityUC(cli.cfg, repo).Check(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, data)
}
