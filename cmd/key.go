package cmd

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/diligentcrypto/diligent/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage your Messari API key",
}

var keySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store your Messari API key",
	Long: `Store your Messari API key in ~/.diligent/config.yaml.
The key is read without echoing it to the terminal.

Example:
  diligent key set`,
	RunE: runKeySet,
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the configured API key (masked)",
	RunE:  runKeyShow,
}

func runKeySet(cmd *cobra.Command, args []string) error {
	fmt.Print("Enter your Messari API key: ")
	key, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return fmt.Errorf("failed to read key: %w", err)
	}
	fmt.Println() // New line after hidden input

	trimmed := strings.TrimSpace(string(key))
	if trimmed == "" {
		return fmt.Errorf("key must not be empty")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.MessariAPIKey = trimmed
	if err := cfg.Save(); err != nil {
		return err
	}

	fmt.Println("✅ API key saved")
	return nil
}

func runKeyShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.MessariAPIKey == "" {
		fmt.Println("No API key configured. Run 'diligent key set' first")
		return nil
	}
	fmt.Println(maskKey(cfg.MessariAPIKey))
	return nil
}

// maskKey keeps the first and last four characters visible.
func maskKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func init() {
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
}
