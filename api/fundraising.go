package api

import (
	"strings"

	"github.com/diligentcrypto/diligent/tabular"
)

// Fundraising holds the launch narrative and the three fundraising tables.
type Fundraising struct {
	// LaunchDetails is the launch narrative text.
	LaunchDetails string
	SalesRounds   *tabular.Table
	// TreasuryAccounts flattens each account's address list into one
	// "Name: link" string per row.
	TreasuryAccounts *tabular.Table
	// Distribution is the fixed six-row initial-distribution summary.
	Distribution *tabular.Table
}

// Fundraising returns the asset's launch and fundraising profile.
func (c *Client) Fundraising(asset string) (Fundraising, error) {
	result := Fundraising{
		SalesRounds: tabular.New(
			"Title", "Start Date", "End Date",
			"Tokens Allocated", "Price [$]", "Amount Collected [$]",
		),
		TreasuryAccounts: tabular.New("Name", "Addresses"),
		Distribution:     tabular.New("Metric", "Value"),
	}

	p, err := c.profile(asset, "profile/economics/launch", c.apiKey)
	if err != nil {
		return result, err
	}
	if p.Economics == nil || p.Economics.Launch == nil {
		return result, nil
	}
	l := p.Economics.Launch

	if l.General.LaunchDetails != nil {
		result.LaunchDetails = *l.General.LaunchDetails
	}

	for _, round := range l.Fundraising.SalesRounds {
		result.SalesRounds.Append(
			tabular.Cell(round.Title),
			splitISODate(round.StartDate),
			splitISODate(round.EndDate),
			tabular.CellFloat(round.NativeTokensAllocated),
			tabular.CellFloat(round.EquivalentPricePerTokenInUSD),
			tabular.CellFloat(round.AmountCollectedInUSD),
		)
	}

	for _, account := range l.Fundraising.SalesTreasuryAccounts {
		var addresses strings.Builder
		for _, addr := range account.Addresses {
			addresses.WriteString(addr.Name + ": " + addr.Link)
		}
		result.TreasuryAccounts.Append(tabular.Cell(account.Name), addresses.String())
	}

	dist := l.InitialDistribution
	repartition := dist.InitialSupplyRepartition

	totalSupply := tabular.Placeholder
	if dist.InitialSupply != nil {
		totalSupply = tabular.FormatLongNumber(*dist.InitialSupply)
	}

	result.Distribution.Append("Genesis Date", splitISODate(dist.GenesisBlockDate))
	result.Distribution.Append("Type", tabular.Cell(l.General.LaunchStyle))
	result.Distribution.Append("Total Supply", totalSupply)
	result.Distribution.Append("Investors [%]", tabular.CellFloat(repartition.AllocatedToInvestorsPercentage))
	result.Distribution.Append("Organization/Founders [%]", tabular.CellFloat(repartition.AllocatedToOrganizationOrFoundersPercentage))
	result.Distribution.Append("Rewards/Airdrops [%]", tabular.CellFloat(repartition.AllocatedToPreminedRewardsOrAirdropsPercentage))

	return result, nil
}
