package blackjack

import (
	"time"

	"github.com/lox/blackjack/cards"
)

// EventType represents a round event type with type safety
type EventType string

const (
	EventTypeShuffle     EventType = "shuffle"
	EventTypeRoundStart  EventType = "round_start"
	EventTypeCardDealt   EventType = "card_dealt"
	EventTypeStateChange EventType = "state_change"
	EventTypeRoundEnd    EventType = "round_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything the Controller publishes while processing an intent
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// ShuffleEvent is published whenever the shoe is refilled and permuted
type ShuffleEvent struct {
	RoundID   string
	Remaining int
	timestamp time.Time
}

func (e ShuffleEvent) EventType() EventType { return EventTypeShuffle }
func (e ShuffleEvent) Timestamp() time.Time { return e.timestamp }

// RoundStartEvent is published once the wager is escrowed, before the deal
type RoundStartEvent struct {
	RoundID   string
	Wager     int
	Score     int // player score after the wager was deducted
	timestamp time.Time
}

func (e RoundStartEvent) EventType() EventType { return EventTypeRoundStart }
func (e RoundStartEvent) Timestamp() time.Time { return e.timestamp }

// CardDealtEvent is published for every card drawn into a hand, including
// each dealer hit during the automated turn
type CardDealtEvent struct {
	RoundID       string
	Role          Role
	Card          cards.Card
	Count         int // hand count after the card
	VisibleCount  int // count of the face-up cards only
	HandSize      int
	FaceDown      bool // dealer's first card while it is still hidden
	ShoeRemaining int
	timestamp     time.Time
}

func (e CardDealtEvent) EventType() EventType { return EventTypeCardDealt }
func (e CardDealtEvent) Timestamp() time.Time { return e.timestamp }

// StateChangeEvent is published on every state machine transition
type StateChangeEvent struct {
	RoundID   string
	From      State
	To        State
	timestamp time.Time
}

func (e StateChangeEvent) EventType() EventType { return EventTypeStateChange }
func (e StateChangeEvent) Timestamp() time.Time { return e.timestamp }

// RoundEndEvent is published after the outcome is resolved and settled
type RoundEndEvent struct {
	RoundID     string
	Outcome     State
	PlayerCards []cards.Card
	DealerCards []cards.Card
	PlayerCount int
	DealerCount int
	Wager       int
	Payout      int // chips credited back; 0 on a loss
	Score       int // player score after settlement
	timestamp   time.Time
}

func (e RoundEndEvent) EventType() EventType { return EventTypeRoundEnd }
func (e RoundEndEvent) Timestamp() time.Time { return e.timestamp }

// Net returns the round's profit or loss relative to the pre-bet score.
func (e RoundEndEvent) Net() int {
	return e.Payout - e.Wager
}

// EventSubscriber can subscribe to round events
type EventSubscriber interface {
	OnEvent(event Event)
}

// SubscriberFunc adapts a plain function to EventSubscriber
type SubscriberFunc func(Event)

func (f SubscriberFunc) OnEvent(event Event) { f(event) }

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus delivers events synchronously, in subscription order
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events. Function
// subscribers are not comparable and cannot be removed.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	if _, ok := subscriber.(SubscriberFunc); ok {
		return
	}
	for i, sub := range bus.subscribers {
		if _, ok := sub.(SubscriberFunc); ok {
			continue
		}
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
