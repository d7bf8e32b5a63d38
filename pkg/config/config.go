package config

import (
	"os"
	"path/filepath"

	"github.com/user/esg-auditor/pkg/engine"
	"gopkg.in/yaml.v3"
)

type ProviderConfig struct {
	APIKey string `yaml:"api_key"`
}

// AuditSettings are the tunable knobs of the audit policy
type AuditSettings struct {
	Threshold           int            `yaml:"threshold"`
	Weights             engine.Weights `yaml:"weights"`
	FetchTimeoutSeconds int            `yaml:"fetch_timeout_seconds"`
	Workers             int            `yaml:"workers"`
	CriteriaDir         string         `yaml:"criteria_dir,omitempty"`
}

type Config struct {
	Audit            AuditSettings             `yaml:"audit"`
	SelectedProvider string                    `yaml:"selected_provider"`
	SelectedModel    string                    `yaml:"selected_model"`
	Providers        map[string]ProviderConfig `yaml:"providers"`
}

func defaultConfig() *Config {
	return &Config{
		Audit: AuditSettings{
			Threshold:           engine.DefaultThreshold,
			Weights:             engine.DefaultWeights(),
			FetchTimeoutSeconds: 10,
			Workers:             engine.DefaultWorkers,
		},
		SelectedProvider: "gemini",
		SelectedModel:    "gemini-pro",
		Providers:        make(map[string]ProviderConfig),
	}
}

func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(home, ".esg-auditor")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Providers == nil {
		cfg.Providers = make(map[string]ProviderConfig)
	}
	if cfg.Audit.Threshold <= 0 {
		cfg.Audit.Threshold = engine.DefaultThreshold
	}
	if cfg.Audit.Weights == (engine.Weights{}) {
		cfg.Audit.Weights = engine.DefaultWeights()
	}
	if cfg.Audit.FetchTimeoutSeconds <= 0 {
		cfg.Audit.FetchTimeoutSeconds = 10
	}
	if cfg.Audit.Workers <= 0 {
		cfg.Audit.Workers = engine.DefaultWorkers
	}
	return cfg, nil
}

func SaveConfig(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	// 0600 permissions for security (api keys)
	return os.WriteFile(path, data, 0600)
}

func (c *Config) SetAPIKey(provider, key string) {
	p := c.Providers[provider]
	p.APIKey = key
	c.Providers[provider] = p
}

func (c *Config) GetAPIKey(provider string) string {
	return c.Providers[provider].APIKey
}
