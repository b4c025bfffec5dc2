package blackjack

import (
	"strconv"

	"github.com/lox/blackjack/cards"
)

// Role identifies which side of the table a seat plays.
type Role int

const (
	PlayerRole Role = iota
	DealerRole
)

func (r Role) String() string {
	switch r {
	case PlayerRole:
		return "Player"
	case DealerRole:
		return "Dealer"
	default:
		return "Unknown"
	}
}

// Participant is the capability set shared by the player and the dealer.
type Participant interface {
	Role() Role
	Hit(shoe *cards.Shoe) cards.Card
	Stand()
	Count() int
}

// Rate is a settlement multiplier applied to the escrowed wager, held as a
// ratio so chip arithmetic stays integral.
type Rate struct {
	num, den int
}

var (
	// WinRate pays 3:2 and is the default when no rate is given
	WinRate = Rate{3, 2}
	// PushRate returns the wager with no profit
	PushRate = Rate{1, 1}
)

// NewRate returns the rate num/den. It panics on a non-positive denominator.
func NewRate(num, den int) Rate {
	if den <= 0 {
		panic("blackjack: rate denominator must be positive")
	}
	return Rate{num, den}
}

// Apply returns wager scaled by r, truncated to whole chips.
func (r Rate) Apply(wager int) int {
	if r.den == 0 {
		r = WinRate
	}
	return wager * r.num / r.den
}

func (r Rate) String() string {
	if r.den == 0 {
		r = WinRate
	}
	return strconv.FormatFloat(float64(r.num)/float64(r.den), 'f', -1, 64)
}

// Seat is a participant at the table: a hand, a running score and the
// current escrowed wager. Only the player's score takes part in settlement.
type Seat struct {
	role  Role
	hand  Hand
	score int
	wager int
	stood bool
}

// NewSeat creates a seat for role holding score chips.
func NewSeat(role Role, score int) *Seat {
	return &Seat{role: role, score: score}
}

func (s *Seat) Role() Role { return s.role }

// Hit draws one card from shoe into the hand and returns it.
func (s *Seat) Hit(shoe *cards.Shoe) cards.Card {
	c := shoe.Draw()
	s.hand.AddCard(c)
	return c
}

// Stand marks the seat as finished acting. It takes no card.
func (s *Seat) Stand() {
	s.stood = true
}

// Stood reports whether Stand was called since the last reset.
func (s *Seat) Stood() bool { return s.stood }

func (s *Seat) Count() int { return s.hand.Count() }

// Hand returns the seat's hand. Callers outside the engine should treat it
// as read-only.
func (s *Seat) Hand() *Hand { return &s.hand }

func (s *Seat) Score() int { return s.score }

func (s *Seat) Wager() int { return s.wager }

// ResetHand clears cards and the standing flag for a new deal.
func (s *Seat) ResetHand() {
	s.hand.Reset()
	s.stood = false
}

// PlaceBet escrows a wager. An amount of zero or less uses defaultAmount;
// anything above the current score is clamped to the full score. At a zero
// score the wager is zero and nothing changes. Returns the wager placed.
func (s *Seat) PlaceBet(amount, defaultAmount int) int {
	if amount <= 0 {
		amount = defaultAmount
	}
	if amount >= s.score {
		amount = s.score
	}
	s.wager = amount
	s.score -= amount
	return amount
}

// Settle credits wager scaled by rate to the score and zeroes the wager, so
// a second call within the same round pays nothing. The zero Rate means
// WinRate. Returns the amount credited.
func (s *Seat) Settle(rate Rate) int {
	payout := rate.Apply(s.wager)
	s.score += payout
	s.wager = 0
	return payout
}

// forfeit drops the escrowed wager after a loss.
func (s *Seat) forfeit() int {
	lost := s.wager
	s.wager = 0
	return lost
}
