package cmd

import (
	"fmt"

	"github.com/diligentcrypto/diligent/api"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report [asset]",
	Short: "Full due-diligence report for an asset",
	Long: `Fetch every profile section for an asset and render them in one go:
links, roadmap, project info, team, investors, governance, and fundraising.

Pass --coingecko-id to include tokenomics, which needs the asset's
CoinGecko coin id.

Examples:
  diligent report btc
  diligent report btc --coingecko-id bitcoin`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

// reportSection is one fetch step; render runs after the bar finishes so
// progress output does not interleave with tables.
type reportSection struct {
	name   string
	fetch  func(client *api.Client, asset string) (func(), error)
	render func()
}

func runReport(cmd *cobra.Command, args []string) error {
	asset := args[0]
	coingeckoID, _ := cmd.Flags().GetString("coingecko-id")

	client, err := newClient(cmd)
	if err != nil {
		return err
	}

	sections := []reportSection{
		{name: "links", fetch: fetchLinks},
		{name: "roadmap", fetch: fetchRoadmap},
		{name: "project info", fetch: fetchInfo},
		{name: "team", fetch: fetchTeam},
		{name: "investors", fetch: fetchInvestors},
		{name: "governance", fetch: fetchGovernance},
		{name: "fundraising", fetch: fetchFundraising},
	}
	if coingeckoID != "" {
		sections = append(sections, reportSection{
			name: "tokenomics",
			fetch: func(client *api.Client, asset string) (func(), error) {
				table, circulating, err := client.Tokenomics(asset, coingeckoID)
				return func() {
					printSection("Tokenomics")
					printTable(table)
					printTimeSeries(circulating)
				}, err
			},
		})
	}

	bar := progressbar.NewOptions(len(sections),
		progressbar.OptionSetDescription(fmt.Sprintf("Fetching %s profile", asset)),
		progressbar.OptionClearOnFinish(),
	)

	for i := range sections {
		render, err := sections[i].fetch(client, asset)
		if err := reportFetchError(err); err != nil {
			return fmt.Errorf("fetching %s: %w", sections[i].name, err)
		}
		sections[i].render = render
		bar.Add(1)
	}
	bar.Finish()

	for _, section := range sections {
		if section.render != nil {
			section.render()
		}
	}
	return nil
}

func fetchLinks(client *api.Client, asset string) (func(), error) {
	table, err := client.Links(asset)
	return func() {
		printSection("Official Links")
		printTable(table)
	}, err
}

func fetchRoadmap(client *api.Client, asset string) (func(), error) {
	table, err := client.Roadmap(asset)
	return func() {
		printSection("Roadmap")
		printTable(table)
	}, err
}

func fetchInfo(client *api.Client, asset string) (func(), error) {
	info, err := client.ProjectProductInfo(asset)
	return func() {
		printSection("Project Info")
		printTable(info.Info)
		printSection("Public Repositories")
		printTable(info.Repositories)
		printSection("Audits")
		printTable(info.Audits)
		printSection("Known Vulnerabilities")
		printTable(info.Vulnerabilities)
	}, err
}

func fetchTeam(client *api.Client, asset string) (func(), error) {
	individuals, organizations, err := client.Team(asset)
	return func() {
		printSection("Team: Individuals")
		printTable(individuals)
		printSection("Team: Organizations")
		printTable(organizations)
	}, err
}

func fetchInvestors(client *api.Client, asset string) (func(), error) {
	individuals, organizations, err := client.Investors(asset)
	return func() {
		printSection("Investors: Individuals")
		printTable(individuals)
		printSection("Investors: Organizations")
		printTable(organizations)
	}, err
}

func fetchGovernance(client *api.Client, asset string) (func(), error) {
	summary, table, err := client.Governance(asset)
	return func() {
		printSection("Governance Summary")
		printText(summary)
		if !table.Empty() {
			printSection("On-chain Governance")
			printTable(table)
		}
	}, err
}

func fetchFundraising(client *api.Client, asset string) (func(), error) {
	result, err := client.Fundraising(asset)
	return func() {
		printSection("Launch Details")
		printText(result.LaunchDetails)
		printSection("Sales Rounds")
		printTable(result.SalesRounds)
		printSection("Treasury Accounts")
		printTable(result.TreasuryAccounts)
		printSection("Initial Distribution")
		printTable(result.Distribution)
	}, err
}

func init() {
	reportCmd.Flags().String("coingecko-id", "", "CoinGecko coin id for the tokenomics section")
}
