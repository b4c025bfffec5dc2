package cards

import (
	"fmt"
	rand "math/rand/v2"
)

const (
	// PacksPerShoe is how many standard packs make up a full shoe
	PacksPerShoe = 6
	// ShoeSize is the card count of a freshly shuffled shoe
	ShoeSize = PacksPerShoe * CardsPerPack
	// ReshuffleMark is the low-water mark: a deal that starts with fewer
	// cards than this reshuffles first.
	ReshuffleMark = 78
)

// Shoe is the multi-pack card supply for a session. Cards are drawn from
// the front and never returned until the next Shuffle.
type Shoe struct {
	cards [ShoeSize]Card
	next  int
	rng   *rand.Rand
}

// NewShoe creates a full, shuffled shoe. A nil rng falls back to the
// package-level source.
func NewShoe(rng *rand.Rand) *Shoe {
	s := &Shoe{rng: rng}
	s.Shuffle()
	return s
}

// NewStackedShoe creates a full shuffled shoe and then moves top to the
// front in the given order, so the first len(top) draws are exactly top.
// The shoe still holds every card of six packs; it panics if top names a
// card more times than the shoe contains it.
func NewStackedShoe(rng *rand.Rand, top ...Card) *Shoe {
	s := NewShoe(rng)
	if len(top) > ShoeSize {
		panic("cards: stacked shoe larger than a full shoe")
	}
	for i, want := range top {
		j := i
		for j < ShoeSize && s.cards[j] != want {
			j++
		}
		if j == ShoeSize {
			panic(fmt.Sprintf("cards: cannot stack %s more than %d times", want, PacksPerShoe))
		}
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	return s
}

// Shuffle refills the shoe with six full packs and applies a Fisher-Yates
// permutation. Any undrawn cards are discarded.
func (s *Shoe) Shuffle() {
	s.next = 0
	i := 0
	for range PacksPerShoe {
		for suit := range uint8(SuitsPerPack) {
			for rank := range uint8(RanksPerSuit) {
				s.cards[i] = NewCard(rank, suit)
				i++
			}
		}
	}

	for i := len(s.cards) - 1; i > 0; i-- {
		var j int
		if s.rng != nil {
			j = s.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the front card. Drawing from an empty shoe is a
// programming error and panics.
func (s *Shoe) Draw() Card {
	if s.next >= len(s.cards) {
		panic("cards: draw from empty shoe")
	}
	c := s.cards[s.next]
	s.next++
	return c
}

// Remaining returns the number of undrawn cards
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// NeedsReshuffle reports whether the shoe has fallen below ReshuffleMark.
func (s *Shoe) NeedsReshuffle() bool {
	return s.Remaining() < ReshuffleMark
}

// ValueOf returns the base point value of c.
func (s *Shoe) ValueOf(c Card) int {
	return c.Value()
}
