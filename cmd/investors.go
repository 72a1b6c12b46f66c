package cmd

import (
	"github.com/spf13/cobra"
)

var investorsCmd = &cobra.Command{
	Use:   "investors [asset]",
	Short: "Investors of an asset",
	Long: `Fetch the asset's investors: individuals and organizations.

Example:
  diligent investors sol`,
	Args: cobra.ExactArgs(1),
	RunE: runInvestors,
}

func runInvestors(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	individuals, organizations, err := client.Investors(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Individuals")
	printTable(individuals)
	printSection("Organizations")
	printTable(organizations)
	return nil
}
