package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MessariAPIKey != "" {
		t.Errorf("expected empty key, got %q", cfg.MessariAPIKey)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "")

	cfg := Config{
		MessariAPIKey:    "secret-key",
		CoinGeckoBaseURL: "http://localhost:9999",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.MessariAPIKey != "secret-key" {
		t.Errorf("key = %q, want secret-key", loaded.MessariAPIKey)
	}
	if loaded.CoinGeckoBaseURL != "http://localhost:9999" {
		t.Errorf("coingecko base url = %q", loaded.CoinGeckoBaseURL)
	}

	path, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat config: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config mode = %v, want 0600", info.Mode().Perm())
	}
}

func TestEnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if err := os.MkdirAll(filepath.Join(home, dirName), 0o700); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(home, dirName, fileName)
	if err := os.WriteFile(file, []byte("messari_api_key: from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIKey, "from-env")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MessariAPIKey != "from-env" {
		t.Errorf("key = %q, want from-env", cfg.MessariAPIKey)
	}
}
