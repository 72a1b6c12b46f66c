package api

import (
	"regexp"

	"github.com/diligentcrypto/diligent/tabular"
)

// governance summaries arrive with embedded HTML-like markup
var tagPattern = regexp.MustCompile("<[^>]*>")

// Governance returns the asset's governance summary with markup stripped
// and, when both on-chain governance type and details are documented, a
// two-row Metric/Value table. The table stays empty otherwise.
func (c *Client) Governance(asset string) (string, *tabular.Table, error) {
	table := tabular.New("Metric", "Value")

	p, err := c.profile(asset, "profile/governance", c.apiKey)
	if err != nil {
		return "", table, err
	}
	if p.Governance == nil {
		return "", table, nil
	}

	summary := tagPattern.ReplaceAllString(p.Governance.GovernanceDetails, "")

	onchain := p.Governance.OnchainGovernance
	if onchain.OnchainGovernanceType != nil && onchain.OnchainGovernanceDetails != nil {
		table.Append("Type", *onchain.OnchainGovernanceType)
		table.Append("Details", *onchain.OnchainGovernanceDetails)
	}
	return summary, table, nil
}
