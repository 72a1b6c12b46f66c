package cmd

import (
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [asset]",
	Short: "Project and technology info for an asset",
	Long: `Fetch the asset's project and technology write-ups plus its public
repositories, audits, and known vulnerabilities.

Example:
  diligent info btc`,
	Args: cobra.ExactArgs(1),
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	info, err := client.ProjectProductInfo(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Project Info")
	printTable(info.Info)
	printSection("Public Repositories")
	printTable(info.Repositories)
	printSection("Audits")
	printTable(info.Audits)
	printSection("Known Vulnerabilities")
	printTable(info.Vulnerabilities)
	return nil
}
