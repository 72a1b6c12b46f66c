package cmd

import (
	"github.com/spf13/cobra"
)

var linksCmd = &cobra.Command{
	Use:   "links [asset]",
	Short: "Official links for an asset",
	Long: `Fetch the asset's official links (website, whitepaper, social).

Example:
  diligent links btc`,
	Args: cobra.ExactArgs(1),
	RunE: runLinks,
}

func runLinks(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	table, err := client.Links(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Official Links")
	printTable(table)
	return nil
}
