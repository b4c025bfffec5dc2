package blackjack

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/blackjack/cards"
)

const (
	// DefaultBet is the table bet when a round is dealt without an amount
	DefaultBet = 100
	// StartingScore is the player's balance at the start of a session
	StartingScore = 1000
)

// ShoeSource builds the shoe for a new game.
type ShoeSource func(rng *rand.Rand) *cards.Shoe

// Option configures a Controller during creation.
type Option func(*controllerConfig)

type controllerConfig struct {
	rng           *rand.Rand
	shoeSource    ShoeSource
	logger        *log.Logger
	clock         quartz.Clock
	bus           EventBus
	defaultBet    int
	startingScore int
	sessionID     string
}

// WithRNG sets the random source used to shuffle the shoe.
func WithRNG(rng *rand.Rand) Option {
	return func(c *controllerConfig) { c.rng = rng }
}

// WithShoeSource replaces how the shoe is built on NewGame. Tests use it to
// install a stacked shoe.
func WithShoeSource(src ShoeSource) Option {
	return func(c *controllerConfig) { c.shoeSource = src }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *controllerConfig) { c.logger = logger }
}

// WithClock sets the clock used to timestamp events.
func WithClock(clock quartz.Clock) Option {
	return func(c *controllerConfig) { c.clock = clock }
}

// WithEventBus publishes onto an existing bus instead of a private one.
func WithEventBus(bus EventBus) Option {
	return func(c *controllerConfig) { c.bus = bus }
}

// WithDefaultBet sets the wager placed on every deal.
func WithDefaultBet(amount int) Option {
	return func(c *controllerConfig) {
		if amount > 0 {
			c.defaultBet = amount
		}
	}
}

// WithStartingScore sets the player's balance for each new game.
func WithStartingScore(score int) Option {
	return func(c *controllerConfig) {
		if score >= 0 {
			c.startingScore = score
		}
	}
}

// WithSessionID fixes the session identifier used to build round IDs.
func WithSessionID(id string) Option {
	return func(c *controllerConfig) { c.sessionID = id }
}
