package cmd

import (
	"github.com/spf13/cobra"
)

var governanceCmd = &cobra.Command{
	Use:   "governance [asset]",
	Short: "Governance of an asset",
	Long: `Fetch the asset's governance summary and, when documented, its
on-chain governance details.

Example:
  diligent governance mkr`,
	Args: cobra.ExactArgs(1),
	RunE: runGovernance,
}

func runGovernance(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	summary, table, err := client.Governance(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Governance Summary")
	printText(summary)
	if !table.Empty() {
		printSection("On-chain Governance")
		printTable(table)
	}
	return nil
}
