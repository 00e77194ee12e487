package main

import (
	"fmt"
	"io"
	"os"

	"github.com/piresc/tripstats/services/trips/usecase"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Bulk load a trip request extract (CSV)",
	Long: `Loads the trip request extract into trip_requests.

Expected columns: Request id, Pickup point, Driver id, Status, Request timestamp,
Drop timestamp. "NA" or an empty cell means null. Rows whose id already exists
are skipped, so a file can be loaded twice safely.`,
	Example: "  tripctl load --file data/Uber_Request_Data.csv\n  cat extract.csv | tripctl load --file -",
	Args:    cobra.NoArgs,
	RunE:    runLoad,
}

var loadFlags struct {
	file string
}

func init() {
	loadCmd.Flags().StringVarP(&loadFlags.file, "file", "f", "", `CSV file to load, "-" for stdin`)
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, _ []string) error {
	in, err := openInput(cmd, loadFlags.file)
	if err != nil {
		return err
	}
	defer in.Close()

	repo, err := cli.tripRepo()
	if err != nil {
		return err
	}

	result, err := usecase.NewLoaderUC(cli.cfg, repo).LoadCSV(cmd.Context(), in)
	if result != nil {
		if printErr := printJSON(cmd, result); printErr != nil && err == nil {
			err = printErr
		}
	}
	return err
}

func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open extract: %w", err)
	}
	return f, nil
}
