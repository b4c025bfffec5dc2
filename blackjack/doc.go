// Package blackjack implements a single-table blackjack rules engine.
//
// The main type is Controller, which owns a six-pack shoe, a player seat
// and a dealer seat, and sequences each round through a closed set of
// states: Idle, Setup, Betting, PlayerTurn, DealerTurn, Resolving and one
// of the outcomes PlayerWin, DealerWin, PlayerBust, DealerBust or Push.
//
// # Basic Usage
//
// A presentation layer forwards intents and reads snapshots:
//
//	c := blackjack.NewController()
//	c.NewGame() // shuffles, bets the default 100, deals
//	for c.CurrentState() == blackjack.PlayerTurn {
//	    if c.Snapshot().Player.Count < 17 {
//	        c.Hit()
//	    } else {
//	        c.Stand()
//	    }
//	}
//	fmt.Println(c.CurrentState(), c.Snapshot().Player.Score)
//	c.Deal() // next round
//
// Intents outside their state are ignored. Every intent runs to completion
// before returning, including the dealer's automated turn.
//
// # Deterministic Testing
//
// Inject a seeded RNG, or a stacked shoe whose first cards are fixed:
//
//	top := cards.MustParseCards("Ts Kd 9h 6c")
//	c := blackjack.NewController(blackjack.WithShoeSource(func(rng *rand.Rand) *cards.Shoe {
//	    return cards.NewStackedShoe(rng, top...)
//	}))
//
// Cards are dealt player, dealer, player, dealer.
//
// # Events
//
// Every card, transition and settlement is published synchronously on the
// controller's EventBus so a display can animate the dealer's draws or a
// recorder can keep a history.
package blackjack
