package cmd

import (
	"github.com/spf13/cobra"
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "List available time-series metrics",
	Long: `List every time-series metric the provider exposes, with its id,
description, whether it requires a paid key, and attribution sources.

Example:
  diligent metrics`,
	Args: cobra.NoArgs,
	RunE: runMetrics,
}

func runMetrics(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	table, err := client.AvailableTimeseries()
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Available Timeseries")
	printTable(table)
	return nil
}
