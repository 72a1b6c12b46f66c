package cmd

import (
	"fmt"
	"strings"

	"github.com/diligentcrypto/diligent/api"
	"github.com/spf13/cobra"
)

var timeseriesCmd = &cobra.Command{
	Use:   "timeseries [asset] [metric-id]",
	Short: "Fetch one research metric over a date range",
	Long: `Fetch one named time-series metric for an asset. Metric ids come
from 'diligent metrics'.

Examples:
  diligent timeseries btc mcap.dom
  diligent timeseries eth sply.circ --interval 1w --start 2021-01-01`,
	Args: cobra.ExactArgs(2),
	RunE: runTimeseries,
}

func runTimeseries(cmd *cobra.Command, args []string) error {
	interval, _ := cmd.Flags().GetString("interval")
	start, _ := cmd.Flags().GetString("start")
	end, _ := cmd.Flags().GetString("end")

	if !api.IsValidInterval(interval) {
		return fmt.Errorf("unsupported interval: %s. Supported intervals: %s",
			interval, strings.Join(api.Intervals, ", "))
	}

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	series, err := client.Timeseries(args[0], args[1], interval, start, end)
	if err := reportFetchError(err); err != nil {
		return err
	}

	printTimeSeries(series)
	return nil
}

func init() {
	timeseriesCmd.Flags().String("interval", "1d", "sampling interval (5m, 15m, 30m, 1h, 1d, 1w)")
	timeseriesCmd.Flags().String("start", "", "start date (e.g., 2021-10-01)")
	timeseriesCmd.Flags().String("end", "", "end date (e.g., 2021-12-01)")
}
