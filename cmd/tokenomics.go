package cmd

import (
	"github.com/spf13/cobra"
)

var tokenomicsCmd = &cobra.Command{
	Use:   "tokenomics [asset] [coingecko-id]",
	Short: "Tokenomics of an asset",
	Long: `Fetch the asset's consensus and emission profile, supplemented with
CoinGecko supply economics and the circulating-supply series.

The second argument is the CoinGecko coin id for the same asset, which
differs from the Messari symbol (e.g., 'btc bitcoin').

Example:
  diligent tokenomics btc bitcoin`,
	Args: cobra.ExactArgs(2),
	RunE: runTokenomics,
}

func runTokenomics(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	table, circulating, err := client.Tokenomics(args[0], args[1])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Tokenomics")
	printTable(table)
	printTimeSeries(circulating)
	return nil
}
