package api

import "github.com/diligentcrypto/diligent/tabular"

// Tokenomics combines the asset's consensus/emission profile with the
// supplementary CoinGecko economics table, concatenated row-wise, and
// fetches the circulating-supply series (daily, unbounded range).
//
// coingeckoID is the CoinGecko coin id, distinct from the asset symbol. The
// consensus/emission section is public; the key header is sent empty here.
func (c *Client) Tokenomics(asset, coingeckoID string) (*tabular.Table, TimeSeries, error) {
	table := tabular.New("Metric", "Value")

	p, err := c.profile(asset, "profile/economics/consensus_and_emission", "")
	if err != nil {
		return table, TimeSeries{}, err
	}

	if p.Economics != nil && p.Economics.ConsensusAndEmission != nil {
		ce := p.Economics.ConsensusAndEmission
		table.Append("Emission Type", cellNA(ce.Supply.GeneralEmissionType))
		table.Append("Consensus Mechanism", cellNA(ce.Consensus.GeneralConsensusMechanism))
		table.Append("Consensus Details", cellNA(ce.Consensus.ConsensusDetails))
		table.Append("Mining Algorithm", cellNA(ce.Consensus.MiningAlgorithm))
		table.Append("Block Reward", cellNA(ce.Consensus.BlockReward))
	}

	supplement, err := c.gecko.CoinTokenomics(coingeckoID)
	if err != nil {
		c.logger.Warn("coingecko tokenomics unavailable", "id", coingeckoID, "error", err)
	} else {
		table.Concat(supplement)
	}

	circulating, err := c.Timeseries(asset, "sply.circ", "1d", "", "")
	if err != nil {
		return table, TimeSeries{}, err
	}
	return table, circulating, nil
}

// cellNA maps nil, empty, and the provider's "n/a" marker to the placeholder.
func cellNA(s *string) string {
	if s == nil || *s == "" || *s == "n/a" {
		return tabular.Placeholder
	}
	return *s
}
