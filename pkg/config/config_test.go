package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

const validConfig = `
server:
  port: 9090
providers:
  provider1:
    base_url: https://provider1.example.com/property
    api_key: key-one
  provider2:
    base_url: https://provider2.example.com/property
    api_key: key-two
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Providers.Provider1.APIKey != "key-one" {
		t.Errorf("Unexpected provider1 api key: %s", cfg.Providers.Provider1.APIKey)
	}
	if cfg.Log.Level != "INFO" {
		t.Errorf("Expected default log level INFO, got %s", cfg.Log.Level)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("PROVIDER_1_API_KEY", "env-key")
	t.Setenv("PROVIDER_2_BASE_URL", "https://override.example.com/property")

	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadConfig returned unexpected error: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("Expected env override port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Providers.Provider1.APIKey != "env-key" {
		t.Errorf("Expected env override api key, got %s", cfg.Providers.Provider1.APIKey)
	}
	if cfg.Providers.Provider2.BaseURL != "https://override.example.com/property" {
		t.Errorf("Expected env override base url, got %s", cfg.Providers.Provider2.BaseURL)
	}
}

// API keys have no safe default: loading must fail rather than fall back.
func TestLoadConfigMissingAPIKey(t *testing.T) {
	missingKey := strings.Replace(validConfig, "api_key: key-two", "api_key: \"\"", 1)

	_, err := LoadConfig(writeConfig(t, missingKey))
	if err == nil {
		t.Fatal("Expected an error for a missing provider api key")
	}
	if !strings.Contains(err.Error(), "PROVIDER_2_API_KEY") {
		t.Errorf("Expected error to name the missing key, got: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("Expected an error for a missing config file")
	}
}
