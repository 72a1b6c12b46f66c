package cmd

import (
	"github.com/spf13/cobra"
)

var teamCmd = &cobra.Command{
	Use:   "team [asset]",
	Short: "Team behind an asset",
	Long: `Fetch the asset's contributors: individuals and organizations.

Example:
  diligent team eth`,
	Args: cobra.ExactArgs(1),
	RunE: runTeam,
}

func runTeam(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	individuals, organizations, err := client.Team(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Individuals")
	printTable(individuals)
	printSection("Organizations")
	printTable(organizations)
	return nil
}
