package cmd

import (
	"github.com/spf13/cobra"
)

var fundraisingCmd = &cobra.Command{
	Use:   "fundraising [asset]",
	Short: "Launch and fundraising details of an asset",
	Long: `Fetch the asset's launch narrative, sales rounds, treasury accounts,
and initial-distribution summary.

Example:
  diligent fundraising sol`,
	Args: cobra.ExactArgs(1),
	RunE: runFundraising,
}

func runFundraising(cmd *cobra.Command, args []string) error {
	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	result, err := client.Fundraising(args[0])
	if err := reportFetchError(err); err != nil {
		return err
	}

	printSection("Launch Details")
	printText(result.LaunchDetails)
	printSection("Sales Rounds")
	printTable(result.SalesRounds)
	printSection("Treasury Accounts")
	printTable(result.TreasuryAccounts)
	printSection("Initial Distribution")
	printTable(result.Distribution)
	return nil
}
