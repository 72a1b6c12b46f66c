// Package config loads and stores the user configuration kept under
// ~/.diligent/config.yaml. The MESSARI_API_KEY environment variable
// overrides the key from the file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirName  = ".diligent"
	fileName = "config.yaml"

	// EnvAPIKey overrides the configured Messari API key.
	EnvAPIKey = "MESSARI_API_KEY"
)

// Config holds the process-wide settings read once at startup.
type Config struct {
	MessariAPIKey string `yaml:"messari_api_key"`

	// Optional endpoint overrides, mainly for testing against a stub.
	MessariBaseURLV1 string `yaml:"messari_base_url_v1,omitempty"`
	MessariBaseURLV2 string `yaml:"messari_base_url_v2,omitempty"`
	CoinGeckoBaseURL string `yaml:"coingecko_base_url,omitempty"`
}

// Path returns the location of the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName, fileName), nil
}

// Load reads the config file if it exists. A missing file yields a zero
// config, not an error.
func Load() (Config, error) {
	var cfg Config

	path, err := Path()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return applyEnv(cfg), nil
}

// Save writes the config file, creating ~/.diligent if needed. The file is
// user-readable only since it carries the API key.
func (c Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func applyEnv(cfg Config) Config {
	if key := os.Getenv(EnvAPIKey); key != "" {
		cfg.MessariAPIKey = key
	}
	return cfg
}
