package main

import (
	"bytes"
	"io"
	rand "math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stackedController(top string) *blackjack.Controller {
	cs := cards.MustParseCards(top)
	return blackjack.NewController(
		blackjack.WithRNG(randutil.New(1)),
		blackjack.WithShoeSource(func(rng *rand.Rand) *cards.Shoe {
			return cards.NewStackedShoe(rng, cs...)
		}),
		blackjack.WithLogger(log.New(io.Discard)),
		blackjack.WithSessionID("t"),
	)
}

func TestNarrateRound(t *testing.T) {
	strategy, err := simulator.NewStrategy("mimic", 0, nil)
	require.NoError(t, err)

	tests := []struct {
		name     string
		top      string
		opts     blackjack.FormattingOptions
		want     blackjack.State
		contains []string
		excludes []string
	}{
		{
			name: "push with hidden hole card",
			top:  "Th 9d 7c 8s",
			want: blackjack.Push,
			contains: []string{
				"*** ROUND t-1 *** Player bets 100 (score 1000)",
				"Player: dealt Th (count 10)",
				"Dealer: dealt a face-down card",
				"Dealer: dealt 8s (count 8)",
				"Draw hand",
			},
			excludes: []string{"Dealer: dealt 9d", "->"},
		},
		{
			name: "player busts with verbose output",
			top:  "Th 9d 6c 8s Ks",
			opts: blackjack.FormattingOptions{ShowHoleCard: true, ShowTransitions: true, ShowShoe: true},
			want: blackjack.PlayerBust,
			contains: []string{
				"Dealer: dealt 9d (count 9)",
				"Player: dealt Ks (count 26)",
				"-- player_turn -> resolving",
				"[shoe ",
				"Dealer wins - player bust",
			},
			excludes: []string{"dealer_turn"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			got := narrateRound(&out, stackedController(tt.top), strategy, tt.opts)
			assert.Equal(t, tt.want, got)
			for _, s := range tt.contains {
				assert.Contains(t, out.String(), s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out.String(), s)
			}
		})
	}
}

func TestRenderReport(t *testing.T) {
	stats := statistics.New()
	stats.Add(statistics.RoundResult{Outcome: blackjack.PlayerWin, Wager: 100, Payout: 250})
	stats.Add(statistics.RoundResult{Outcome: blackjack.DealerWin, Wager: 100})
	stats.EndSession(1050)

	out := renderReport("Simulation", []field{plain("Strategy", "threshold(17)")}, stats)
	for _, s := range []string{"Simulation", "threshold(17)", "player_win", "push", "Wagered", "200", "+50", "125.00%"} {
		assert.Contains(t, out, s)
	}
}

func TestFormatRecord(t *testing.T) {
	line := formatRecord(history.RoundRecord{
		RoundID:     "abc-3",
		Outcome:     "dealer_bust",
		Wager:       100,
		Payout:      250,
		Score:       1150,
		PlayerCards: []string{"Th", "8c"},
		DealerCards: []string{"6d", "Ts", "9h"},
		PlayerCount: 18,
		DealerCount: 25,
		Reshuffled:  true,
	})
	assert.Contains(t, line, "abc-3")
	assert.Contains(t, line, "dealer_bust")
	assert.Contains(t, line, "P[Th 8c] 18")
	assert.Contains(t, line, "+150")
	assert.Contains(t, line, "(reshuffled)")
}

func TestGlobalsLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file uses defaults", func(t *testing.T) {
		g := Globals{Config: filepath.Join(dir, "missing.hcl")}
		cfg, logger, err := g.Load()
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Table.DefaultBet)
		assert.Equal(t, log.InfoLevel, logger.GetLevel())
	})

	t.Run("flags override file", func(t *testing.T) {
		path := filepath.Join(dir, "blackjack.hcl")
		src := "table {\n  default_bet = 25\n}\n\nlog {\n  level = \"warn\"\n}\n"
		require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

		cfg, logger, err := (&Globals{Config: path}).Load()
		require.NoError(t, err)
		assert.Equal(t, 25, cfg.Table.DefaultBet)
		assert.Equal(t, log.WarnLevel, logger.GetLevel())

		_, logger, err = (&Globals{Config: path, LogLevel: "debug"}).Load()
		require.NoError(t, err)
		assert.Equal(t, log.DebugLevel, logger.GetLevel())
	})

	t.Run("bad level", func(t *testing.T) {
		_, _, err := (&Globals{Config: filepath.Join(dir, "missing.hcl"), LogLevel: "loud"}).Load()
		assert.ErrorContains(t, err, "configure logging")
	})
}

func TestOverrideInt(t *testing.T) {
	v := 10
	overrideInt(&v, 0)
	assert.Equal(t, 10, v)
	overrideInt(&v, 3)
	assert.Equal(t, 3, v)
}

func TestHistoryRoundTripThroughCommand(t *testing.T) {
	res, err := simulator.New(simulator.Config{
		Sessions:      2,
		Rounds:        10,
		Strategy:      "mimic",
		Seed:          5,
		StartingScore: 100_000,
		RecordHistory: true,
	}).Run(t.Context())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "rounds.toml")
	require.NoError(t, history.WriteFile(path, res.History))

	rounds, err := history.ReadFile(path)
	require.NoError(t, err)
	stats, err := history.Summarize(rounds)
	require.NoError(t, err)
	assert.Equal(t, res.Stats.Rounds, stats.Rounds)
	assert.Equal(t, res.Stats.Net(), stats.Net())
	assert.True(t, strings.Contains(renderReport("History", nil, stats), "Rounds"))
}
