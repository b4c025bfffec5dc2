// Package config loads table, simulation and logging settings from HCL.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete configuration file
type Config struct {
	Table      *TableSettings      `hcl:"table,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Log        *LogSettings        `hcl:"log,block"`
}

// TableSettings configures the single blackjack table
type TableSettings struct {
	DefaultBet    int `hcl:"default_bet,optional"`
	StartingScore int `hcl:"starting_score,optional"`
}

// SimulationSettings configures automated play
type SimulationSettings struct {
	Sessions    int    `hcl:"sessions,optional"`
	Rounds      int    `hcl:"rounds,optional"`
	Strategy    string `hcl:"strategy,optional"`
	Threshold   int    `hcl:"threshold,optional"`
	Seed        int64  `hcl:"seed,optional"`
	Concurrency int    `hcl:"concurrency,optional"`
	HistoryFile string `hcl:"history_file,optional"`
}

// LogSettings configures the CLI logger
type LogSettings struct {
	Level  string `hcl:"level,optional"`
	Format string `hcl:"format,optional"`
}

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

// Parse decodes HCL source held in memory. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Table == nil {
		c.Table = &TableSettings{}
	}
	if c.Table.DefaultBet == 0 {
		c.Table.DefaultBet = 100
	}
	if c.Table.StartingScore == 0 {
		c.Table.StartingScore = 1000
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Sessions == 0 {
		c.Simulation.Sessions = 1
	}
	if c.Simulation.Rounds == 0 {
		c.Simulation.Rounds = 1000
	}
	if c.Simulation.Strategy == "" {
		c.Simulation.Strategy = "threshold"
	}
	if c.Simulation.Threshold == 0 {
		c.Simulation.Threshold = 17
	}
	if c.Simulation.Concurrency == 0 {
		c.Simulation.Concurrency = 4
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks values after defaults are applied
func (c *Config) Validate() error {
	var errs []error
	if c.Table.DefaultBet < 0 {
		errs = append(errs, fmt.Errorf("table.default_bet must be positive, got %d", c.Table.DefaultBet))
	}
	if c.Table.StartingScore < 0 {
		errs = append(errs, fmt.Errorf("table.starting_score must not be negative, got %d", c.Table.StartingScore))
	}
	if c.Simulation.Sessions < 0 {
		errs = append(errs, fmt.Errorf("simulation.sessions must be positive, got %d", c.Simulation.Sessions))
	}
	if c.Simulation.Rounds < 0 {
		errs = append(errs, fmt.Errorf("simulation.rounds must be positive, got %d", c.Simulation.Rounds))
	}
	if c.Simulation.Threshold < 0 || c.Simulation.Threshold > 21 {
		errs = append(errs, fmt.Errorf("simulation.threshold must be between 1 and 21, got %d", c.Simulation.Threshold))
	}
	if c.Simulation.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("simulation.concurrency must be positive, got %d", c.Simulation.Concurrency))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
