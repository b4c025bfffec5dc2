package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/simulator"
)

// RoundCmd plays one round with an automated player and narrates it
type RoundCmd struct {
	Seed      *int64 `help:"Deterministic RNG seed (optional)"`
	Strategy  string `default:"mimic" help:"Player strategy: threshold, mimic, never, random"`
	Threshold int    `default:"17" help:"Stand threshold for the threshold strategy"`
	Bet       int    `help:"Wager for the round (defaults to the table's default bet)"`
	ShowHole  bool   `help:"Reveal the dealer's hole card as it is dealt"`
	Verbose   bool   `help:"Show state transitions and the shoe count"`
}

func (c *RoundCmd) Run(g *Globals) error {
	cfg, logger, err := g.Load()
	if err != nil {
		return err
	}

	seed := randutil.Seed(0)
	if c.Seed != nil {
		seed = *c.Seed
	}
	bet := cfg.Table.DefaultBet
	if c.Bet > 0 {
		bet = c.Bet
	}

	strategy, err := simulator.NewStrategy(c.Strategy, c.Threshold, randutil.New(randutil.Derive(seed, 1)))
	if err != nil {
		return err
	}

	logger.Debug("Playing round", "seed", seed, "strategy", strategy.Name())
	narrateRound(os.Stdout, blackjack.NewController(
		blackjack.WithRNG(randutil.New(seed)),
		blackjack.WithLogger(logger),
		blackjack.WithDefaultBet(bet),
		blackjack.WithStartingScore(cfg.Table.StartingScore),
	), strategy, blackjack.FormattingOptions{
		ShowHoleCard:    c.ShowHole,
		ShowTransitions: c.Verbose,
		ShowShoe:        c.Verbose,
	})
	fmt.Printf("seed %d\n", seed)
	return nil
}

// narrateRound plays a fresh game's first round and writes one line per
// event to w.
func narrateRound(w io.Writer, c *blackjack.Controller, strategy simulator.Strategy, opts blackjack.FormattingOptions) blackjack.State {
	formatter := blackjack.NewEventFormatter(opts)
	c.Events().Subscribe(blackjack.SubscriberFunc(func(e blackjack.Event) {
		line, ok := formatter.Format(e)
		if !ok {
			return
		}
		if end, isEnd := e.(blackjack.RoundEndEvent); isEnd {
			line = outcomeStyle(end.Outcome).Render(line)
		}
		fmt.Fprintln(w, line)
	}))

	c.NewGame()
	simulator.PlayRound(c, strategy)
	return c.CurrentState()
}
