package api

import "encoding/json"

// metricsEnvelope wraps the v1 metric catalogue response.
type metricsEnvelope struct {
	Data struct {
		Metrics []metricInfo `json:"metrics"`
	} `json:"data"`
}

type metricInfo struct {
	MetricID    string `json:"metric_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// RoleRestriction is kept raw: its mere presence (even null) marks the
	// metric as requiring a paid key.
	RoleRestriction   json.RawMessage `json:"role_restriction"`
	SourceAttribution []struct {
		Name string `json:"name"`
	} `json:"source_attribution"`
}

// timeseriesEnvelope wraps the v1 time-series response. Values rows start
// with a millisecond epoch timestamp followed by one number per value column.
type timeseriesEnvelope struct {
	Data struct {
		Schema struct {
			Name string `json:"name"`
		} `json:"schema"`
		Parameters struct {
			Columns []string `json:"columns"`
		} `json:"parameters"`
		Values [][]float64 `json:"values"`
	} `json:"data"`
}

// profileEnvelope wraps every v2 profile response. Only the sub-tree selected
// by the request's fields parameter is populated; everything else stays nil.
type profileEnvelope struct {
	Data struct {
		Profile profile `json:"profile"`
	} `json:"data"`
}

type profile struct {
	General      *generalProfile `json:"general"`
	Economics    *economics      `json:"economics"`
	Technology   *technology     `json:"technology"`
	Contributors *people         `json:"contributors"`
	Investors    *people         `json:"investors"`
	Governance   *governanceInfo `json:"governance"`
}

type generalProfile struct {
	Overview *generalOverview `json:"overview"`
	Roadmap  []roadmapItem    `json:"roadmap"`
}

type generalOverview struct {
	ProjectDetails string         `json:"project_details"`
	OfficialLinks  []officialLink `json:"official_links"`
}

type officialLink struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type roadmapItem struct {
	Title   *string `json:"title"`
	Date    *string `json:"date"`
	Type    *string `json:"type"`
	Details *string `json:"details"`
}

type economics struct {
	ConsensusAndEmission *consensusAndEmission `json:"consensus_and_emission"`
	Launch               *launch               `json:"launch"`
}

type consensusAndEmission struct {
	Supply struct {
		GeneralEmissionType *string `json:"general_emission_type"`
	} `json:"supply"`
	Consensus struct {
		GeneralConsensusMechanism *string `json:"general_consensus_mechanism"`
		ConsensusDetails          *string `json:"consensus_details"`
		MiningAlgorithm           *string `json:"mining_algorithm"`
		BlockReward               *string `json:"block_reward"`
	} `json:"consensus"`
}

type technology struct {
	Overview struct {
		TechnologyDetails  string       `json:"technology_details"`
		ClientRepositories []repository `json:"client_repositories"`
	} `json:"overview"`
	Security struct {
		Audits                          []audit         `json:"audits"`
		KnownExploitsAndVulnerabilities []vulnerability `json:"known_exploits_and_vulnerabilities"`
	} `json:"security"`
}

type repository struct {
	Name        *string `json:"name"`
	Link        *string `json:"link"`
	LicenseType *string `json:"license_type"`
}

type audit struct {
	Title   *string `json:"title"`
	Details *string `json:"details"`
	Date    *string `json:"date"`
}

type vulnerability struct {
	Title   *string `json:"title"`
	Details *string `json:"details"`
	Date    *string `json:"date"`
	Type    *string `json:"type"`
}

type people struct {
	Individuals   []individual   `json:"individuals"`
	Organizations []organization `json:"organizations"`
}

type individual struct {
	Slug        *string `json:"slug"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	AvatarURL   *string `json:"avatar_url"`
}

type organization struct {
	Slug        *string `json:"slug"`
	Name        *string `json:"name"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
}

type governanceInfo struct {
	GovernanceDetails string `json:"governance_details"`
	OnchainGovernance struct {
		OnchainGovernanceType    *string `json:"onchain_governance_type"`
		OnchainGovernanceDetails *string `json:"onchain_governance_details"`
	} `json:"onchain_governance"`
}

type launch struct {
	General struct {
		LaunchStyle   *string `json:"launch_style"`
		LaunchDetails *string `json:"launch_details"`
	} `json:"general"`
	Fundraising struct {
		SalesRounds           []salesRound      `json:"sales_rounds"`
		SalesTreasuryAccounts []treasuryAccount `json:"sales_treasury_accounts"`
	} `json:"fundraising"`
	InitialDistribution struct {
		GenesisBlockDate         *string  `json:"genesis_block_date"`
		InitialSupply            *float64 `json:"initial_supply"`
		InitialSupplyRepartition struct {
			AllocatedToInvestorsPercentage                 *float64 `json:"allocated_to_investors_percentage"`
			AllocatedToOrganizationOrFoundersPercentage    *float64 `json:"allocated_to_organization_or_founders_percentage"`
			AllocatedToPreminedRewardsOrAirdropsPercentage *float64 `json:"allocated_to_premined_rewards_or_airdrops_percentage"`
		} `json:"initial_supply_repartition"`
	} `json:"initial_distribution"`
}

type salesRound struct {
	Title                        *string  `json:"title"`
	StartDate                    *string  `json:"start_date"`
	EndDate                      *string  `json:"end_date"`
	NativeTokensAllocated        *float64 `json:"native_tokens_allocated"`
	EquivalentPricePerTokenInUSD *float64 `json:"equivalent_price_per_token_in_usd"`
	AmountCollectedInUSD         *float64 `json:"amount_collected_in_usd"`
}

type treasuryAccount struct {
	Name      *string `json:"name"`
	Addresses []struct {
		Name string `json:"name"`
		Link string `json:"link"`
	} `json:"addresses"`
}
