package blackjack

import (
	"testing"

	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/stretchr/testify/assert"
)

func TestDealerPolicy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		hand      string
		shoeTop   string
		wantCount int
		wantHits  int
	}{
		{name: "hits sixteen", hand: "Ts 6d", shoeTop: "5h", wantCount: 21, wantHits: 1},
		{name: "stands on hard seventeen", hand: "Ts 7d", shoeTop: "5h", wantCount: 17, wantHits: 0},
		{name: "stands on soft seventeen", hand: "As 6d", shoeTop: "5h", wantCount: 17, wantHits: 0},
		{name: "draws several cards", hand: "2s 3d", shoeTop: "2h 4c 3s 5d", wantCount: 19, wantHits: 4},
		{name: "busts", hand: "Ts 6d", shoeTop: "Kh", wantCount: 26, wantHits: 1},
		{name: "soft hand turns hard", hand: "As 5d", shoeTop: "Tc 3h", wantCount: 19, wantHits: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dealer := NewSeat(DealerRole, 0)
			for _, c := range cards.MustParseCards(tt.hand) {
				dealer.Hand().AddCard(c)
			}
			shoe := cards.NewStackedShoe(randutil.New(3), cards.MustParseCards(tt.shoeTop)...)

			hits := 0
			DealerPolicy{}.Play(dealer, shoe, func(cards.Card) { hits++ })

			assert.Equal(t, tt.wantCount, dealer.Count())
			assert.Equal(t, tt.wantHits, hits)
			assert.True(t, dealer.Stood())
			assert.GreaterOrEqual(t, dealer.Count(), DealerStandCount)
		})
	}
}

func TestDealerPolicyNilCallback(t *testing.T) {
	t.Parallel()
	dealer := NewSeat(DealerRole, 0)
	shoe := cards.NewShoe(randutil.New(8))
	assert.NotPanics(t, func() { DealerPolicy{}.Play(dealer, shoe, nil) })
	assert.GreaterOrEqual(t, dealer.Count(), DealerStandCount)
}
