package cmd

import (
	"fmt"
	"strings"

	"github.com/diligentcrypto/diligent/api"
	"github.com/spf13/cobra"
)

var dominanceCmd = &cobra.Command{
	Use:   "dominance [asset]",
	Short: "Market-cap dominance of an asset over time",
	Long: `Fetch the asset's share of total crypto market cap over a date range.

Examples:
  diligent dominance btc
  diligent dominance eth --interval 1w --start 2021-01-01`,
	Args: cobra.ExactArgs(1),
	RunE: runDominance,
}

func runDominance(cmd *cobra.Command, args []string) error {
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

	series, err := client.MarketcapDominance(args[0], interval, start, end)
	if err := reportFetchError(err); err != nil {
		return err
	}

	printTimeSeries(series)
	return nil
}

func init() {
	dominanceCmd.Flags().String("interval", "1d", "sampling interval (5m, 15m, 30m, 1h, 1d, 1w)")
	dominanceCmd.Flags().String("start", "", "start date (e.g., 2021-10-01)")
	dominanceCmd.Flags().String("end", "", "end date (e.g., 2021-12-01)")
}
