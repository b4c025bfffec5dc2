package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/blackjack"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// RoundResult is the outcome of a single resolved round
type RoundResult struct {
	Outcome     blackjack.State
	Wager       int
	Payout      int
	PlayerCount int
	DealerCount int
	PlayerCards int // cards held by the player at the end of the round
}

// Net returns chips won or lost relative to the pre-bet score
func (r RoundResult) Net() int {
	return r.Payout - r.Wager
}

// FromRoundEnd converts a published round end event
func FromRoundEnd(e blackjack.RoundEndEvent) RoundResult {
	return RoundResult{
		Outcome:     e.Outcome,
		Wager:       e.Wager,
		Payout:      e.Payout,
		PlayerCount: e.PlayerCount,
		DealerCount: e.DealerCount,
		PlayerCards: len(e.PlayerCards),
	}
}

// Statistics aggregates round results across one or more sessions
type Statistics struct {
	Rounds   int
	Sessions int
	BustOuts int // sessions that ended with an empty balance

	Outcomes map[blackjack.State]int

	TotalWagered int
	TotalPaid    int
	Values       []float64 // net chips per round, for mean/median/stddev

	FinalScores []int // one per session
}

// New returns empty statistics
func New() *Statistics {
	return &Statistics{Outcomes: make(map[blackjack.State]int)}
}

// Add records one round
func (s *Statistics) Add(r RoundResult) {
	if s.Outcomes == nil {
		s.Outcomes = make(map[blackjack.State]int)
	}
	s.Rounds++
	s.Outcomes[r.Outcome]++
	s.TotalWagered += r.Wager
	s.TotalPaid += r.Payout
	s.Values = append(s.Values, float64(r.Net()))
}

// EndSession records a finished session and its final score
func (s *Statistics) EndSession(finalScore int) {
	s.Sessions++
	s.FinalScores = append(s.FinalScores, finalScore)
	if finalScore == 0 {
		s.BustOuts++
	}
}

// Merge folds other into s
func (s *Statistics) Merge(other *Statistics) {
	if other == nil {
		return
	}
	if s.Outcomes == nil {
		s.Outcomes = make(map[blackjack.State]int)
	}
	s.Rounds += other.Rounds
	s.Sessions += other.Sessions
	s.BustOuts += other.BustOuts
	for k, v := range other.Outcomes {
		s.Outcomes[k] += v
	}
	s.TotalWagered += other.TotalWagered
	s.TotalPaid += other.TotalPaid
	s.Values = append(s.Values, other.Values...)
	s.FinalScores = append(s.FinalScores, other.FinalScores...)
}

// Net returns total chips won or lost
func (s *Statistics) Net() int {
	return s.TotalPaid - s.TotalWagered
}

// Mean returns the average net chips per round
func (s *Statistics) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return stat.Mean(s.Values, nil)
}

// StdDev returns the sample standard deviation of net chips per round
func (s *Statistics) StdDev() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	_, std := stat.MeanStdDev(s.Values, nil)
	return std
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(len(s.Values)))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	z := distuv.UnitNormal.Quantile(0.975)
	margin := z * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net chips per round
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// Rate returns the fraction of rounds that ended in outcome
func (s *Statistics) Rate(outcome blackjack.State) float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.Outcomes[outcome]) / float64(s.Rounds)
}

// WinRate returns the fraction of rounds the player won, dealer busts
// included
func (s *Statistics) WinRate() float64 {
	return s.Rate(blackjack.PlayerWin) + s.Rate(blackjack.DealerBust)
}

// ReturnToPlayer returns chips paid back per chip wagered
func (s *Statistics) ReturnToPlayer() float64 {
	if s.TotalWagered == 0 {
		return 0
	}
	return float64(s.TotalPaid) / float64(s.TotalWagered)
}

// Validate checks internal consistency
func (s *Statistics) Validate() error {
	total := 0
	for outcome, n := range s.Outcomes {
		if !outcome.IsOutcome() {
			return fmt.Errorf("non-terminal state %s recorded as outcome", outcome)
		}
		total += n
	}
	if total != s.Rounds {
		return fmt.Errorf("outcome counts %d do not match rounds %d", total, s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("recorded %d values for %d rounds", len(s.Values), s.Rounds)
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	if int(math.Round(sum)) != s.Net() {
		return fmt.Errorf("per-round net %v does not match total net %d", sum, s.Net())
	}
	if len(s.FinalScores) != s.Sessions {
		return fmt.Errorf("recorded %d final scores for %d sessions", len(s.FinalScores), s.Sessions)
	}
	return nil
}
