package main

import (
	"github.com/piresc/tripstats/services/trips/usecase"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Run a read-only trip report",
	Long: `Runs one of the trip reports:

  pickup-counts       trips per pickup point
  pickup-durations    average trip minutes per pickup point
  hourly-demand       requests per hour of day, 0-23
  top-drivers         drivers with the most trips (--limit)
  driver-utilization  drivers with the most minutes on trips (--limit)
  driver-gaps         average idle minutes between a driver's trips (--limit)
  peak-dates          busiest request dates (--limit)`,
	Example: "  tripctl report top-drivers --limit 5",
	Args:    cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{
		usecase.ReportPickupCounts,
		usecase.ReportPickupDurations,
		usecase.ReportHourlyDemand,
		usecase.ReportTopDrivers,
		usecase.ReportDriverUtilization,
		usecase.ReportDriverGaps,
		usecase.ReportPeakDates,
	},
	RunE: runReport,
}

var reportFlags struct {
	limit int
}

func init() {
	reportCmd.Flags().IntVarP(&reportFlags.limit, "limit", "n", usecase.DefaultReportLimit, "rows for top-N reports")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	repo, err := cli.tripRepo()
	if err != nil {
		return err
	}
	data, err := usecase.NewReportUC(repo).Report(cmd.Context(), args[0], reportFlags.limit)
	if err != nil {
		return err
	}
	return printJSON(cmd, data)
}
