package main

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
	"github.com/lox/blackjack/cmd/blackjack/shared"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// SimulateCmd runs automated sessions. Unset flags fall back to the config
// file's simulation block.
type SimulateCmd struct {
	Sessions    int    `help:"Number of independent sessions"`
	Rounds      int    `help:"Maximum rounds per session"`
	Strategy    string `help:"Player strategy: threshold, mimic, never, random"`
	Threshold   int    `help:"Stand threshold for the threshold strategy"`
	Seed        *int64 `help:"Deterministic RNG seed (optional)"`
	Concurrency int    `help:"Sessions to run in parallel"`
	DefaultBet  int    `help:"Wager placed each round"`
	HistoryFile string `type:"path" help:"Write every round to this TOML file"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, logger, err := g.Load()
	if err != nil {
		return err
	}

	sim := cfg.Simulation
	overrideInt(&sim.Sessions, c.Sessions)
	overrideInt(&sim.Rounds, c.Rounds)
	overrideInt(&sim.Threshold, c.Threshold)
	overrideInt(&sim.Concurrency, c.Concurrency)
	overrideInt(&cfg.Table.DefaultBet, c.DefaultBet)
	if c.Strategy != "" {
		sim.Strategy = c.Strategy
	}
	if c.HistoryFile != "" {
		sim.HistoryFile = c.HistoryFile
	}
	if c.Seed != nil {
		sim.Seed = *c.Seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	seed := randutil.Seed(sim.Seed)

	ctx := shared.SetupSignalHandler(logger)
	clock := quartz.NewReal()

	s := simulator.New(simulator.Config{
		Sessions:      sim.Sessions,
		Rounds:        sim.Rounds,
		Strategy:      sim.Strategy,
		Threshold:     sim.Threshold,
		Seed:          seed,
		Concurrency:   sim.Concurrency,
		DefaultBet:    cfg.Table.DefaultBet,
		StartingScore: cfg.Table.StartingScore,
		RecordHistory: sim.HistoryFile != "",
		Logger:        logger,
		Clock:         clock,
	})

	start := clock.Now()
	res, err := s.Run(ctx)
	if err != nil {
		return err
	}
	elapsed := clock.Since(start)

	if sim.HistoryFile != "" {
		if err := history.WriteFile(sim.HistoryFile, res.History); err != nil {
			return err
		}
		logger.Info("Wrote history", "file", sim.HistoryFile, "rounds", len(res.History))
	}

	fmt.Println(renderReport("Simulation", []field{
		plain("Strategy", res.Strategy),
		plain("Seed", fmt.Sprintf("%d", res.Seed)),
		plain("Elapsed", elapsed.Round(time.Millisecond).String()),
	}, res.Stats))
	return nil
}

func overrideInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}
