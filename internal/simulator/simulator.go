// Package simulator plays many automated blackjack sessions and aggregates
// the results.
package simulator

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Sessions      int
	Rounds        int // per session; a session also ends when the score hits 0
	Strategy      string
	Threshold     int
	Seed          int64
	Concurrency   int
	DefaultBet    int
	StartingScore int
	RecordHistory bool
	Logger        *log.Logger
	Clock         quartz.Clock
}

// Result is the merged output of every session
type Result struct {
	Stats    *statistics.Statistics
	History  []history.RoundRecord // empty unless RecordHistory is set
	Strategy string
	Seed     int64
}

// Simulator runs blackjack sessions, each with its own Controller
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Sessions <= 0 {
		config.Sessions = 1
	}
	if config.Rounds <= 0 {
		config.Rounds = 1
	}
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if config.DefaultBet <= 0 {
		config.DefaultBet = blackjack.DefaultBet
	}
	if config.StartingScore <= 0 {
		config.StartingScore = blackjack.StartingScore
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config}
}

type sessionResult struct {
	stats   *statistics.Statistics
	history []history.RoundRecord
}

// Run executes every session and merges the results in session order, so a
// fixed seed reproduces the same statistics regardless of scheduling.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	probe, err := NewStrategy(s.config.Strategy, s.config.Threshold, randutil.New(s.config.Seed))
	if err != nil {
		return nil, err
	}

	s.config.Logger.Info("Starting simulation",
		"sessions", s.config.Sessions,
		"rounds", s.config.Rounds,
		"strategy", probe.Name(),
		"seed", s.config.Seed)

	results := make([]sessionResult, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i := range s.config.Sessions {
		g.Go(func() error {
			res, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Result{
		Stats:    statistics.New(),
		Strategy: probe.Name(),
		Seed:     s.config.Seed,
	}
	for _, res := range results {
		out.Stats.Merge(res.stats)
		out.History = append(out.History, res.history...)
	}

	if err := out.Stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return out, nil
}

// playSession plays one session from NewGame until the round limit or an
// empty balance.
func (s *Simulator) playSession(ctx context.Context, idx int) (sessionResult, error) {
	seed := randutil.Derive(s.config.Seed, idx)
	strategy, err := NewStrategy(s.config.Strategy, s.config.Threshold, randutil.New(randutil.Derive(seed, 1)))
	if err != nil {
		return sessionResult{}, err
	}

	c := blackjack.NewController(
		blackjack.WithRNG(randutil.New(seed)),
		blackjack.WithLogger(s.config.Logger),
		blackjack.WithClock(s.config.Clock),
		blackjack.WithDefaultBet(s.config.DefaultBet),
		blackjack.WithStartingScore(s.config.StartingScore),
	)
	logger := s.config.Logger.With("session", c.SessionID())

	stats := statistics.New()
	c.Events().Subscribe(blackjack.SubscriberFunc(func(e blackjack.Event) {
		if end, ok := e.(blackjack.RoundEndEvent); ok {
			stats.Add(statistics.FromRoundEnd(end))
		}
	}))

	var recorder *history.Recorder
	if s.config.RecordHistory {
		recorder = history.NewRecorder(c.SessionID())
		c.Events().Subscribe(recorder)
	}

	c.NewGame()
	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return sessionResult{}, err
		}
		PlayRound(c, strategy)
		if round >= s.config.Rounds {
			break
		}
		if c.Snapshot().Player.Score == 0 {
			logger.Debug("Session busted out", "round", round)
			break
		}
		c.Deal()
	}

	final := c.Snapshot().Player.Score
	stats.EndSession(final)
	logger.Debug("Session complete", "rounds", stats.Rounds, "score", final)

	res := sessionResult{stats: stats}
	if recorder != nil {
		res.history = recorder.Rounds()
	}
	return res, nil
}

// PlayRound asks strategy for decisions until the player's turn is over.
// Anything other than Hit is treated as Stand.
func PlayRound(c *blackjack.Controller, strategy Strategy) {
	for c.CurrentState() == blackjack.PlayerTurn {
		intent := strategy.Decide(c.Snapshot())
		if intent != blackjack.Hit {
			intent = blackjack.Stand
		}
		c.Submit(intent)
	}
}
