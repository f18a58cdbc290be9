// Package config loads the optional rollover configuration file. Values
// from the file act as defaults; command-line flags override them.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a bookroll.yaml configuration file.
type Config struct {
	// Infile is the source book of the closing period.
	Infile string `yaml:"infile"`
	// Outfile is the book file to create for the new period.
	Outfile string `yaml:"outfile"`

	// OpeningAccount is the default target path for opening balances,
	// colon-separated, e.g. "Equity:Opening Balances".
	OpeningAccount string `yaml:"opening_account"`
	// TargetAsset books asset opening balances to its own path.
	TargetAsset string `yaml:"target_asset"`
	// TargetLiability books liability opening balances to its own path.
	TargetLiability string `yaml:"target_liability"`

	// PreferredCurrency is the mnemonic that keeps the unsuffixed opening
	// account name, e.g. "EUR".
	PreferredCurrency string `yaml:"preferred_currency"`
	// OpeningDate is the posting date in YYYY-MM-DD form.
	OpeningDate string `yaml:"opening_date"`
	// Description is stamped on every opening transaction.
	Description string `yaml:"description"`
}

// Load reads a config file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
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
