// Package cards provides playing cards and the six-pack blackjack shoe.
package cards

import (
	"fmt"
	"strings"
)

// Card is a single playing card packed into one byte: suit*13 + rank.
// The zero value is the ace of clubs.
type Card uint8

// Suit constants
const (
	Clubs    uint8 = 0
	Diamonds uint8 = 1
	Hearts   uint8 = 2
	Spades   uint8 = 3
)

// Rank constants (0-12 for A-K)
const (
	Ace   uint8 = 0
	Two   uint8 = 1
	Three uint8 = 2
	Four  uint8 = 3
	Five  uint8 = 4
	Six   uint8 = 5
	Seven uint8 = 6
	Eight uint8 = 7
	Nine  uint8 = 8
	Ten   uint8 = 9
	Jack  uint8 = 10
	Queen uint8 = 11
	King  uint8 = 12
)

const (
	// SuitsPerPack is the number of suits in a standard pack
	SuitsPerPack = 4
	// RanksPerSuit is the number of ranks in each suit
	RanksPerSuit = 13
	// CardsPerPack is the size of one standard pack
	CardsPerPack = SuitsPerPack * RanksPerSuit
)

const (
	rankChars = "A23456789TJQK"
	suitChars = "cdhs"
)

// NewCard creates a card from rank and suit
func NewCard(rank, suit uint8) Card {
	return Card(suit*RanksPerSuit + rank)
}

// Rank returns the rank of the card (0-12, Ace first)
func (c Card) Rank() uint8 {
	return uint8(c) % RanksPerSuit
}

// Suit returns the suit of the card (0-3)
func (c Card) Suit() uint8 {
	return uint8(c) / RanksPerSuit
}

// Valid reports whether c encodes one of the 52 cards.
func (c Card) Valid() bool {
	return int(c) < CardsPerPack
}

// IsAce reports whether the card is an ace.
func (c Card) IsAce() bool {
	return c.Rank() == Ace
}

// Value returns the base blackjack point value: ace 1, number cards their
// face value, tens and court cards 10. Soft-ace promotion is a property of
// the hand, not the card.
func (c Card) Value() int {
	r := c.Rank()
	if r >= Ten {
		return 10
	}
	return int(r) + 1
}

// String returns the two-character form, e.g. "As", "Th", "7d"
func (c Card) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rankChars[c.Rank()]) + string(suitChars[c.Suit()])
}

// ParseCard parses a string like "As", "Td" or "10d" into a Card
func ParseCard(s string) (Card, error) {
	if strings.HasPrefix(s, "10") {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return 0, fmt.Errorf("invalid card string: %q", s)
	}

	rank := strings.IndexByte(rankChars, upper(s[0]))
	if rank < 0 {
		return 0, fmt.Errorf("invalid rank: %c", s[0])
	}
	suit := strings.IndexByte(suitChars, lower(s[1]))
	if suit < 0 {
		return 0, fmt.Errorf("invalid suit: %c", s[1])
	}

	return NewCard(uint8(rank), uint8(suit)), nil
}

// MustParseCards parses a space-separated list of cards and panics on the
// first invalid entry. Intended for tests and fixtures.
func MustParseCards(s string) []Card {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		out = append(out, c)
	}
	return out
}

// FormatCards joins cards with spaces.
func FormatCards(cs []Card) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}
