package statistics

import (
	"math"
	"testing"

	"github.com/lox/blackjack/blackjack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func win() RoundResult { return RoundResult{Outcome: blackjack.PlayerWin, Wager: 100, Payout: 150} }
func loss() RoundResult { return RoundResult{Outcome: blackjack.DealerWin, Wager: 100} }
func push() RoundResult { return RoundResult{Outcome: blackjack.Push, Wager: 100, Payout: 100} }

func TestEmptyStatistics(t *testing.T) {
	s := New()
	assert.Equal(t, 0.0, s.Mean())
	assert.Equal(t, 0.0, s.StdDev())
	assert.Equal(t, 0.0, s.StdError())
	assert.Equal(t, 0.0, s.Median())
	assert.Equal(t, 0.0, s.WinRate())
	assert.Equal(t, 0.0, s.ReturnToPlayer())
	require.NoError(t, s.Validate())
}

func TestAddAndAggregate(t *testing.T) {
	s := New()
	s.Add(win())
	s.Add(loss())
	s.Add(push())
	s.Add(RoundResult{Outcome: blackjack.DealerBust, Wager: 100, Payout: 150})
	s.EndSession(1100)

	require.NoError(t, s.Validate())
	assert.Equal(t, 4, s.Rounds)
	assert.Equal(t, 1, s.Sessions)
	assert.Equal(t, 0, s.BustOuts)
	assert.Equal(t, 400, s.TotalWagered)
	assert.Equal(t, 400, s.TotalPaid)
	assert.Equal(t, 0, s.Net())
	assert.InDelta(t, 0.0, s.Mean(), 1e-9)
	assert.InDelta(t, 0.5, s.WinRate(), 1e-9)
	assert.InDelta(t, 0.25, s.Rate(blackjack.Push), 1e-9)
	assert.InDelta(t, 1.0, s.ReturnToPlayer(), 1e-9)

	// values 50, -100, 0, 50
	assert.InDelta(t, math.Sqrt(5000), s.StdDev(), 1e-9)
	assert.InDelta(t, 0.0, s.Median(), 1e-9)

	lo, hi := s.ConfidenceInterval95()
	assert.Less(t, lo, s.Mean())
	assert.Greater(t, hi, s.Mean())
	assert.InDelta(t, s.Mean(), (lo+hi)/2, 1e-9)
}

func TestMerge(t *testing.T) {
	a := New()
	a.Add(win())
	a.EndSession(1050)

	b := New()
	b.Add(loss())
	b.Add(loss())
	b.EndSession(0)

	a.Merge(b)
	a.Merge(nil)
	require.NoError(t, a.Validate())
	assert.Equal(t, 3, a.Rounds)
	assert.Equal(t, 2, a.Sessions)
	assert.Equal(t, 1, a.BustOuts)
	assert.Equal(t, 2, a.Outcomes[blackjack.DealerWin])
	assert.Equal(t, []int{1050, 0}, a.FinalScores)
}

func TestValidateCatchesInconsistency(t *testing.T) {
	s := New()
	s.Add(win())
	s.Rounds = 2
	assert.Error(t, s.Validate())

	s = New()
	s.Add(win())
	s.Outcomes[blackjack.PlayerTurn] = 1
	s.Rounds = 2
	s.Values = append(s.Values, 0)
	assert.Error(t, s.Validate())
}

func TestFromRoundEnd(t *testing.T) {
	r := FromRoundEnd(blackjack.RoundEndEvent{
		Outcome:     blackjack.PlayerBust,
		Wager:       100,
		PlayerCount: 23,
		DealerCount: 17,
	})
	assert.Equal(t, -100, r.Net())
	assert.Equal(t, blackjack.PlayerBust, r.Outcome)
	assert.Equal(t, 23, r.PlayerCount)
}

func TestZeroValueAdd(t *testing.T) {
	var s Statistics
	s.Add(push())
	assert.Equal(t, 1, s.Outcomes[blackjack.Push])
}
