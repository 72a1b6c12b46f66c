package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/diligentcrypto/diligent/api"
	"github.com/diligentcrypto/diligent/coingecko"
	"github.com/diligentcrypto/diligent/config"
	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "diligent",
	Aliases: []string{"dil"},
	Short:   "A command-line crypto due-diligence research tool",
	Long: `Diligent fetches crypto research data from the Messari API and renders
it as tables: available metrics, time-series, official links, roadmaps,
tokenomics, project info, team, investors, governance, and fundraising.

Most resources need a Messari API key. Supply one with 'diligent key set'
or the MESSARI_API_KEY environment variable.

Examples:
  diligent key set                     # Store your API key
  diligent metrics                     # List available time-series metrics
  diligent timeseries btc mcap.dom     # Fetch a metric for an asset
  diligent dominance eth               # Market-cap dominance over time
  diligent links btc                   # Official links
  diligent tokenomics btc bitcoin      # Tokenomics (Messari symbol + CoinGecko id)
  diligent report btc                  # Full due-diligence report`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Add subcommands
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(metricsCmd)
	rootCmd.AddCommand(timeseriesCmd)
	rootCmd.AddCommand(dominanceCmd)
	rootCmd.AddCommand(linksCmd)
	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(tokenomicsCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(investorsCmd)
	rootCmd.AddCommand(governanceCmd)
	rootCmd.AddCommand(fundraisingCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient builds the API client from the stored configuration.
func newClient(cmd *cobra.Command) (*api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return api.NewClient(cfg.MessariAPIKey,
		api.WithLogger(logger),
		api.WithBaseURLs(cfg.MessariBaseURLV1, cfg.MessariBaseURLV2),
		api.WithCoinGecko(coingecko.NewClient(coingecko.WithBaseURL(cfg.CoinGeckoBaseURL))),
	), nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Diligent v%s\n", version)
	},
}
