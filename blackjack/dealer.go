package blackjack

import "github.com/lox/blackjack/cards"

// DealerStandCount is the count at which the dealer stops drawing.
const DealerStandCount = 17

// DealerPolicy is the house's fixed drawing rule: hit while the count is
// below 17, then stand. Soft totals are not treated differently.
type DealerPolicy struct{}

// Play runs the dealer's turn to completion. afterHit, if non-nil, is
// called after every drawn card so the intermediate hand can be shown.
func (DealerPolicy) Play(dealer Participant, shoe *cards.Shoe, afterHit func(cards.Card)) {
	for dealer.Count() < DealerStandCount {
		c := dealer.Hit(shoe)
		if afterHit != nil {
			afterHit(c)
		}
	}
	dealer.Stand()
}
