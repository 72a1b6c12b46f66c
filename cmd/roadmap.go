package cmd

import (
	"github.com/spf13/cobra"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap [asset]",
	Short: "Project roadmap for an asset",
	Long: `Fetch the asset's roadmap milestones.

Example:
  diligent roadmap eth`,
	Args: cobra.ExactArgs(1),
	RunE: runRoadmap,
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	table, err := client.Roadmap(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Roadmap")
	printTable(table)
	return nil
}
