package blackjack

import "github.com/lox/blackjack/cards"

// SeatView is a read-only copy of one seat.
type SeatView struct {
	Role  Role
	Cards []cards.Card
	Count int
	Soft  bool
	Score int
	Wager int
}

// Snapshot is the read-only state a presentation layer or automated
// player works from.
type Snapshot struct {
	State         State
	RoundID       string
	Round         int
	Player        SeatView
	Dealer        SeatView
	DealerHidden  bool // dealer's first card is face down
	ShoeRemaining int
	DefaultBet    int
	LastWager     int // wager of the most recently resolved round
	LastPayout    int
}

// DealerUpCard returns the dealer's visible card while the first card is
// face down, or the first card once revealed. ok is false with no cards.
func (s Snapshot) DealerUpCard() (card cards.Card, ok bool) {
	switch {
	case len(s.Dealer.Cards) == 0:
		return 0, false
	case s.DealerHidden && len(s.Dealer.Cards) > 1:
		return s.Dealer.Cards[1], true
	default:
		return s.Dealer.Cards[0], true
	}
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:         c.state,
		RoundID:       c.roundID,
		Round:         c.round,
		ShoeRemaining: c.ShoeRemaining(),
		DefaultBet:    c.cfg.defaultBet,
		LastWager:     c.lastWager,
		LastPayout:    c.lastPayout,
	}
	if c.player != nil {
		snap.Player = viewOf(c.player)
	}
	if c.dealer != nil {
		snap.Dealer = viewOf(c.dealer)
		snap.DealerHidden = c.state < DealerTurn && c.dealer.Hand().Size() > 0
	}
	return snap
}

func viewOf(s *Seat) SeatView {
	hand := s.Hand()
	return SeatView{
		Role:  s.Role(),
		Cards: hand.Cards(),
		Count: hand.Count(),
		Soft:  hand.Soft(),
		Score: s.Score(),
		Wager: s.Wager(),
	}
}
