package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up by default.
const FileName = "minibank.yaml"

// Config represents the top-level minibank.yaml configuration.
type Config struct {
	Bank     BankConfig    `yaml:"bank"`
	Logging  LoggingConfig `yaml:"logging"`
	Accounts []SeedAccount `yaml:"accounts,omitempty"`
}

// BankConfig identifies the bank. Its name heads the run summary.
type BankConfig struct {
	Name string `yaml:"name"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// SeedAccount is opened before a script runs.
type SeedAccount struct {
	Holder         string `yaml:"holder"`
	InitialDeposit string `yaml:"initial_deposit"` // decimal string, e.g. "1000.00"
}

// Amount parses the initial deposit.
func (s SeedAccount) Amount() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s.InitialDeposit)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing initial deposit for %s: %w", s.Holder, err)
	}
	return d, nil
}

// Load reads a minibank.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults. An empty name falls back
// to "Minibank".
func Default(bankName string) *Config {
	if bankName == "" {
		bankName = "Minibank"
	}
	return &Config{
		Bank: BankConfig{
			Name: bankName,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
