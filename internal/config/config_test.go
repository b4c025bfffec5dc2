package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 100, cfg.Table.DefaultBet)
	assert.Equal(t, 1000, cfg.Table.StartingScore)
	assert.Equal(t, 1, cfg.Simulation.Sessions)
	assert.Equal(t, 1000, cfg.Simulation.Rounds)
	assert.Equal(t, "threshold", cfg.Simulation.Strategy)
	assert.Equal(t, 17, cfg.Simulation.Threshold)
	assert.Equal(t, 4, cfg.Simulation.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	src := `
table {
  default_bet    = 50
  starting_score = 500
}

simulation {
  sessions    = 8
  rounds      = 250
  strategy    = "mimic"
  seed        = 42
  history_file = "rounds.toml"
}

log {
  level  = "debug"
  format = "json"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Table.DefaultBet)
	assert.Equal(t, 500, cfg.Table.StartingScore)
	assert.Equal(t, 8, cfg.Simulation.Sessions)
	assert.Equal(t, 250, cfg.Simulation.Rounds)
	assert.Equal(t, "mimic", cfg.Simulation.Strategy)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.Equal(t, 17, cfg.Simulation.Threshold, "default applied")
	assert.Equal(t, 4, cfg.Simulation.Concurrency, "default applied")
	assert.Equal(t, "rounds.toml", cfg.Simulation.HistoryFile)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestParsePartialBlocks(t *testing.T) {
	cfg, err := Parse([]byte(`table { default_bet = 25 }`), "inline.hcl")
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.Table.DefaultBet)
	assert.Equal(t, 1000, cfg.Table.StartingScore)
	assert.Equal(t, "threshold", cfg.Simulation.Strategy)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax", src: `table {`},
		{name: "unknown attribute", src: `table { colour = "green" }`},
		{name: "wrong type", src: `table { default_bet = "lots" }`},
		{name: "bad threshold", src: `simulation { threshold = 30 }`},
		{name: "negative bet", src: `table { default_bet = -1 }`},
		{name: "bad log format", src: `log { format = "xml" }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			assert.Error(t, err)
		})
	}
}
