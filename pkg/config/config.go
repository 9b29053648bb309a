package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ProviderConfig holds the connection settings for one upstream AVM provider.
// API keys have no default on purpose: a missing key fails the load instead of
// silently falling back to a compiled-in credential.
type ProviderConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
}

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Providers struct {
		Provider1 ProviderConfig `yaml:"provider1"`
		Provider2 ProviderConfig `yaml:"provider2"`
	} `yaml:"providers"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if url := os.Getenv("PROVIDER_1_BASE_URL"); url != "" {
		cfg.Providers.Provider1.BaseURL = url
	}
	if key := os.Getenv("PROVIDER_1_API_KEY"); key != "" {
		cfg.Providers.Provider1.APIKey = key
	}
	if url := os.Getenv("PROVIDER_2_BASE_URL"); url != "" {
		cfg.Providers.Provider2.BaseURL = url
	}
	if key := os.Getenv("PROVIDER_2_API_KEY"); key != "" {
		cfg.Providers.Provider2.APIKey = key
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "INFO"
	}

	// Validation
	if cfg.Providers.Provider1.BaseURL == "" {
		return nil, fmt.Errorf("PROVIDER_1_BASE_URL is required")
	}
	if cfg.Providers.Provider1.APIKey == "" {
		return nil, fmt.Errorf("PROVIDER_1_API_KEY is required")
	}
	if cfg.Providers.Provider2.BaseURL == "" {
		return nil, fmt.Errorf("PROVIDER_2_BASE_URL is required")
	}
	if cfg.Providers.Provider2.APIKey == "" {
		return nil, fmt.Errorf("PROVIDER_2_API_KEY is required")
	}

	return &cfg, nil
}
