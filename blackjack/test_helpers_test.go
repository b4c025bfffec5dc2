package blackjack

import (
	"io"
	rand "math/rand/v2"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/randutil"
)

// eventRecorder captures every published event in order
type eventRecorder struct {
	events []Event
}

func (r *eventRecorder) OnEvent(event Event) {
	r.events = append(r.events, event)
}

func (r *eventRecorder) reset() {
	r.events = nil
}

func (r *eventRecorder) cardsDealt() []CardDealtEvent {
	var out []CardDealtEvent
	for _, e := range r.events {
		if cd, ok := e.(CardDealtEvent); ok {
			out = append(out, cd)
		}
	}
	return out
}

func (r *eventRecorder) shuffles() []ShuffleEvent {
	var out []ShuffleEvent
	for _, e := range r.events {
		if s, ok := e.(ShuffleEvent); ok {
			out = append(out, s)
		}
	}
	return out
}

func (r *eventRecorder) visited(s State) bool {
	for _, e := range r.events {
		if sc, ok := e.(StateChangeEvent); ok && sc.To == s {
			return true
		}
	}
	return false
}

func (r *eventRecorder) lastRoundEnd() (RoundEndEvent, bool) {
	for i := len(r.events) - 1; i >= 0; i-- {
		if re, ok := r.events[i].(RoundEndEvent); ok {
			return re, true
		}
	}
	return RoundEndEvent{}, false
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.DebugLevel})
}

func stackedSource(top string) ShoeSource {
	cs := cards.MustParseCards(top)
	return func(rng *rand.Rand) *cards.Shoe {
		return cards.NewStackedShoe(rng, cs...)
	}
}

// newStackedController builds a controller whose first shoe starts with top.
// Cards are dealt player, dealer, player, dealer, then hits in order.
func newStackedController(t *testing.T, top string, opts ...Option) (*Controller, *eventRecorder) {
	t.Helper()
	base := []Option{
		WithRNG(randutil.New(42)),
		WithShoeSource(stackedSource(top)),
		WithLogger(quietLogger()),
		WithSessionID("test"),
	}
	c := NewController(append(base, opts...)...)
	rec := &eventRecorder{}
	c.Events().Subscribe(rec)
	return c, rec
}

func handOf(s string) *Hand {
	h := &Hand{}
	for _, c := range cards.MustParseCards(s) {
		h.AddCard(c)
	}
	return h
}

func formatCards(cs []cards.Card) string {
	return cards.FormatCards(cs)
}
