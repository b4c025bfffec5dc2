package simulator

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/lox/blackjack/blackjack"
)

// Strategy drives the player seat. It sees the same snapshot a human would,
// with the dealer's hole card hidden, and answers Hit or Stand.
type Strategy interface {
	Name() string
	Decide(snap blackjack.Snapshot) blackjack.Intent
}

// Threshold hits while the player count is below StandOn
type Threshold struct {
	StandOn int
}

func (s Threshold) Name() string { return fmt.Sprintf("threshold(%d)", s.StandOn) }

func (s Threshold) Decide(snap blackjack.Snapshot) blackjack.Intent {
	if snap.Player.Count < s.StandOn {
		return blackjack.Hit
	}
	return blackjack.Stand
}

// AlwaysStand never takes a card
type AlwaysStand struct{}

func (AlwaysStand) Name() string { return "never" }

func (AlwaysStand) Decide(blackjack.Snapshot) blackjack.Intent { return blackjack.Stand }

// Random flips a coin on every decision
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy. Each session needs its own rng.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

func (r *Random) Name() string { return "random" }

func (r *Random) Decide(blackjack.Snapshot) blackjack.Intent {
	if r.rng.IntN(2) == 0 {
		return blackjack.Hit
	}
	return blackjack.Stand
}

// StrategyNames lists the names accepted by NewStrategy
func StrategyNames() []string {
	return []string{"threshold", "mimic", "never", "random"}
}

// NewStrategy builds a strategy by name. threshold only applies to
// "threshold"; "mimic" plays the dealer's rule.
func NewStrategy(name string, threshold int, rng *rand.Rand) (Strategy, error) {
	switch strings.ToLower(name) {
	case "threshold":
		if threshold < 1 || threshold > blackjack.BustThreshold {
			return nil, fmt.Errorf("threshold must be between 1 and %d, got %d", blackjack.BustThreshold, threshold)
		}
		return Threshold{StandOn: threshold}, nil
	case "mimic":
		return Threshold{StandOn: blackjack.DealerStandCount}, nil
	case "never":
		return AlwaysStand{}, nil
	case "random":
		if rng == nil {
			return nil, fmt.Errorf("random strategy requires an rng")
		}
		return NewRandom(rng), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(StrategyNames(), ", "))
	}
}
