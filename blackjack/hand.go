package blackjack

import "github.com/lox/blackjack/cards"

// BustThreshold is the highest count a hand can hold without busting.
const BustThreshold = 21

// Hand holds one participant's cards for the current round.
type Hand struct {
	cards  []cards.Card
	hasAce bool // set on the first ace, cleared only by Reset
}

// Reset empties the hand and clears the ace flag.
func (h *Hand) Reset() {
	h.cards = h.cards[:0]
	h.hasAce = false
}

// AddCard appends c to the hand.
func (h *Hand) AddCard(c cards.Card) {
	if c.IsAce() {
		h.hasAce = true
	}
	h.cards = append(h.cards, c)
}

// Count returns the hand total. One ace is promoted to 11 whenever that
// keeps the total at or below 21; the check is recomputed on every call.
func (h *Hand) Count() int {
	count := h.hardCount()
	if h.hasAce && count+10 <= BustThreshold {
		count += 10
	}
	return count
}

// Soft reports whether an ace is currently being counted as 11.
func (h *Hand) Soft() bool {
	return h.hasAce && h.hardCount()+10 <= BustThreshold
}

// Busted reports whether the count exceeds 21.
func (h *Hand) Busted() bool {
	return h.Count() > BustThreshold
}

// Size returns the number of cards held
func (h *Hand) Size() int {
	return len(h.cards)
}

// CardAt returns the card at index i in deal order
func (h *Hand) CardAt(i int) cards.Card {
	return h.cards[i]
}

// Cards returns a copy of the held cards in deal order
func (h *Hand) Cards() []cards.Card {
	out := make([]cards.Card, len(h.cards))
	copy(out, h.cards)
	return out
}

func (h *Hand) hardCount() int {
	sum := 0
	for _, c := range h.cards {
		sum += c.Value()
	}
	return sum
}
