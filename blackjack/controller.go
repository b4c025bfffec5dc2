package blackjack

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/randutil"
)

// Controller runs a single-table session: it owns the shoe, both seats and
// the round state, and is the only thing that mutates them. Intents that
// are not valid in the current state are ignored.
//
// A Controller is not safe for concurrent use. Concurrent hosts give every
// session its own Controller.
type Controller struct {
	cfg    controllerConfig
	logger *log.Logger
	clock  quartz.Clock
	bus    EventBus
	policy DealerPolicy

	state   State
	shoe    *cards.Shoe
	player  *Seat
	dealer  *Seat
	round   int
	roundID string

	lastWager  int
	lastPayout int
}

// NewController creates a controller in the Idle state.
func NewController(opts ...Option) *Controller {
	cfg := controllerConfig{
		defaultBet:    DefaultBet,
		startingScore: StartingScore,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.rng == nil {
		cfg.rng = randutil.New(time.Now().UnixNano())
	}
	if cfg.shoeSource == nil {
		cfg.shoeSource = cards.NewShoe
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard)
	}
	if cfg.clock == nil {
		cfg.clock = quartz.NewReal()
	}
	if cfg.bus == nil {
		cfg.bus = NewEventBus()
	}
	if cfg.sessionID == "" {
		cfg.sessionID = uuid.NewString()[:8]
	}

	return &Controller{
		cfg:    cfg,
		logger: cfg.logger.WithPrefix("engine").With("session", cfg.sessionID),
		clock:  cfg.clock,
		bus:    cfg.bus,
		state:  Idle,
	}
}

// Events returns the bus the controller publishes on.
func (c *Controller) Events() EventBus {
	return c.bus
}

// SessionID returns the identifier prefixed to every round ID.
func (c *Controller) SessionID() string {
	return c.cfg.sessionID
}

// DefaultBet returns the wager placed on every deal.
func (c *Controller) DefaultBet() int {
	return c.cfg.defaultBet
}

// CurrentState returns the round state.
func (c *Controller) CurrentState() State {
	return c.state
}

// ShoeRemaining returns the number of undrawn cards, or 0 before the first
// game.
func (c *Controller) ShoeRemaining() int {
	if c.shoe == nil {
		return 0
	}
	return c.shoe.Remaining()
}

// ValidIntents lists the intents the current state accepts.
func (c *Controller) ValidIntents() []Intent {
	switch {
	case c.state == Idle:
		return []Intent{NewGame}
	case c.state == PlayerTurn:
		return []Intent{Hit, Stand}
	case c.state.IsOutcome():
		return []Intent{NewGame, Deal}
	default:
		return nil
	}
}

// Submit dispatches an intent to the matching command.
func (c *Controller) Submit(intent Intent) {
	switch intent {
	case NewGame:
		c.NewGame()
	case Deal:
		c.Deal()
	case Hit:
		c.Hit()
	case Stand:
		c.Stand()
	default:
		c.logger.Debug("Ignoring unknown intent", "intent", int(intent))
	}
}

// NewGame starts a fresh session: new shoe, new seats at the starting
// score, and the first round dealt. Accepted from Idle or any outcome.
func (c *Controller) NewGame() {
	if c.state != Idle && !c.state.IsOutcome() {
		c.ignore(NewGame)
		return
	}

	c.transition(Setup)
	c.round = 0
	c.nextRound()
	c.shoe = c.cfg.shoeSource(c.cfg.rng)
	c.publish(ShuffleEvent{RoundID: c.roundID, Remaining: c.shoe.Remaining()})
	c.player = NewSeat(PlayerRole, c.cfg.startingScore)
	c.dealer = NewSeat(DealerRole, c.cfg.startingScore)
	c.logger.Debug("New game", "score", c.player.Score(), "shoe", c.shoe.Remaining())

	c.transition(Betting)
	c.betAndDeal()
}

// Deal starts the next round of the current session. Accepted only from an
// outcome state.
func (c *Controller) Deal() {
	if !c.state.IsOutcome() {
		c.ignore(Deal)
		return
	}

	c.nextRound()
	c.transition(Betting)
	c.betAndDeal()
}

// Hit draws a card for the player. Accepted only during PlayerTurn.
func (c *Controller) Hit() {
	if c.state != PlayerTurn {
		c.ignore(Hit)
		return
	}

	c.dealTo(c.player)
	c.afterPlayerCard()
}

// Stand ends the player's turn and runs the dealer. Accepted only during
// PlayerTurn.
func (c *Controller) Stand() {
	if c.state != PlayerTurn {
		c.ignore(Stand)
		return
	}

	c.player.Stand()
	c.playDealer()
}

func (c *Controller) nextRound() {
	c.round++
	c.roundID = fmt.Sprintf("%s-%d", c.cfg.sessionID, c.round)
	c.lastWager, c.lastPayout = 0, 0
}

// betAndDeal escrows the wager, reshuffles if the shoe is below the
// low-water mark, and deals two cards each, player first.
func (c *Controller) betAndDeal() {
	wager := c.player.PlaceBet(0, c.cfg.defaultBet)
	if wager == 0 {
		c.logger.Debug("Betting with empty balance", "round", c.roundID)
	}
	c.publish(RoundStartEvent{RoundID: c.roundID, Wager: wager, Score: c.player.Score()})

	c.player.ResetHand()
	c.dealer.ResetHand()

	if c.shoe.NeedsReshuffle() {
		c.logger.Debug("Reshuffling shoe", "remaining", c.shoe.Remaining())
		c.shoe.Shuffle()
		c.publish(ShuffleEvent{RoundID: c.roundID, Remaining: c.shoe.Remaining()})
	}

	for range 2 {
		c.dealTo(c.player)
		c.dealTo(c.dealer)
	}

	c.transition(PlayerTurn)
	c.afterPlayerCard()
}

// afterPlayerCard moves on from PlayerTurn once the player can no longer
// act: a bust resolves immediately, 21 hands over to the dealer.
func (c *Controller) afterPlayerCard() {
	count := c.player.Count()
	switch {
	case count > BustThreshold:
		c.transition(Resolving)
		c.resolve()
	case count == BustThreshold:
		c.playDealer()
	}
}

func (c *Controller) playDealer() {
	c.transition(DealerTurn)
	c.policy.Play(c.dealer, c.shoe, func(card cards.Card) {
		c.publishCard(c.dealer, card)
	})
	c.transition(Resolving)
	c.resolve()
}

// resolve compares final counts once and settles the player's wager.
func (c *Controller) resolve() {
	playerCount := c.player.Count()
	dealerCount := c.dealer.Count()
	wager := c.player.Wager()

	var outcome State
	payout := 0
	switch {
	case playerCount > dealerCount:
		if playerCount <= BustThreshold {
			outcome = PlayerWin
			payout = c.player.Settle(WinRate)
		} else {
			outcome = PlayerBust
			c.player.forfeit()
		}
	case playerCount < dealerCount:
		if dealerCount <= BustThreshold {
			outcome = DealerWin
			c.player.forfeit()
		} else {
			// pays the same 3:2 as a normal win
			outcome = DealerBust
			payout = c.player.Settle(WinRate)
		}
	default:
		outcome = Push
		payout = c.player.Settle(PushRate)
	}

	c.lastWager, c.lastPayout = wager, payout
	c.logger.Debug("Round resolved",
		"round", c.roundID,
		"outcome", outcome,
		"player", playerCount,
		"dealer", dealerCount,
		"wager", wager,
		"payout", payout,
		"score", c.player.Score())

	c.transition(outcome)
	c.publish(RoundEndEvent{
		RoundID:     c.roundID,
		Outcome:     outcome,
		PlayerCards: c.player.Hand().Cards(),
		DealerCards: c.dealer.Hand().Cards(),
		PlayerCount: playerCount,
		DealerCount: dealerCount,
		Wager:       wager,
		Payout:      payout,
		Score:       c.player.Score(),
	})
}

func (c *Controller) dealTo(seat *Seat) {
	card := seat.Hit(c.shoe)
	c.publishCard(seat, card)
}

func (c *Controller) publishCard(seat *Seat, card cards.Card) {
	hand := seat.Hand()
	hidden := seat.Role() == DealerRole && c.state < DealerTurn
	visible := hand.Count()
	if hidden {
		visible = upCount(hand)
	}
	c.publish(CardDealtEvent{
		RoundID:       c.roundID,
		Role:          seat.Role(),
		Card:          card,
		Count:         hand.Count(),
		VisibleCount:  visible,
		HandSize:      hand.Size(),
		FaceDown:      hidden && hand.Size() == 1,
		ShoeRemaining: c.shoe.Remaining(),
	})
}

// upCount scores every card but the first
func upCount(h *Hand) int {
	var up Hand
	for i := 1; i < h.Size(); i++ {
		up.AddCard(h.CardAt(i))
	}
	return up.Count()
}

func (c *Controller) transition(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("State change", "from", from, "to", to)
	c.publish(StateChangeEvent{RoundID: c.roundID, From: from, To: to})
}

func (c *Controller) ignore(intent Intent) {
	c.logger.Debug("Ignoring intent", "intent", intent, "state", c.state)
}

// publish stamps the event with the controller clock and delivers it.
func (c *Controller) publish(event Event) {
	now := c.clock.Now()
	switch e := event.(type) {
	case ShuffleEvent:
		e.timestamp = now
		event = e
	case RoundStartEvent:
		e.timestamp = now
		event = e
	case CardDealtEvent:
		e.timestamp = now
		event = e
	case StateChangeEvent:
		e.timestamp = now
		event = e
	case RoundEndEvent:
		e.timestamp = now
		event = e
	}
	c.bus.Publish(event)
}
