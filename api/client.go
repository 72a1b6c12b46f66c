package api

// Messari research API client.
//
// Files:
//   config.go      - API endpoints and request constants
//   types.go       - Response struct definitions (profile, timeseries, etc.)
//   base.go        - Core client functionality (client struct, NewClient, helpers)
//   metrics.go     - Metric catalogue and time-series functions
//   profile.go     - Official links and roadmap functions
//   tokenomics.go  - Consensus/emission and supply functions
//   project.go     - Project and technology info functions
//   people.go      - Team and investor functions
//   governance.go  - Governance summary functions
//   fundraising.go - Launch and fundraising functions
//
// Usage:
//   client := api.NewClient(cfg.MessariAPIKey)  // from base.go
//   links, err := client.Links("btc")           // from profile.go
//   series, err := client.Timeseries("btc", "mcap.dom", "1d", start, end)
