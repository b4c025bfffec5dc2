package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/config"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" type:"path" default:"blackjack.hcl" help:"HCL config file (ignored if missing)"`
	LogLevel string `help:"Log level: debug, info, warn, error (overrides config)"`
	JSON     bool   `help:"Log as JSON (overrides config)"`
}

// Load reads the config file and builds the logger it describes, with
// command-line flags taking precedence.
func (g *Globals) Load() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}

	level := cfg.Log.Level
	if g.LogLevel != "" {
		level = g.LogLevel
	}
	json := cfg.Log.Format == "json" || g.JSON

	logger, err := shared.SetupLogger(level, json)
	if err != nil {
		return nil, nil, fmt.Errorf("configure logging: %w", err)
	}
	return cfg, logger, nil
}
