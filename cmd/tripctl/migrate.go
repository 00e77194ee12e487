package main

import (
	"github.com/piresc/tripstats/internal/pkg/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the embedded schema migrations",
	Long:  "Creates the trip_requests and daily_summary tables and the reporting views. Safe to run repeatedly.",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	pg, err := cli.postgresClient()
	if err != nil {
		return err
	}
	names, err := database.Migrations()
	if err != nil {
		return err
	}
	if err := database.Migrate(cmd.Context(), pg.GetDB()); err != nil {
		return err
	}
	return printJSON(cmd, map[string]interface{}{"applied": names})
}
