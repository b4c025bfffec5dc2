// Package history records completed rounds from a Controller's event stream
// and stores them as TOML.
package history

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/fileutil"
	"github.com/lox/blackjack/internal/statistics"
)

// RoundRecord is one resolved round
type RoundRecord struct {
	RoundID     string    `toml:"round_id"`
	Session     string    `toml:"session"`
	Outcome     string    `toml:"outcome"`
	Wager       int       `toml:"wager"`
	Payout      int       `toml:"payout"`
	Score       int       `toml:"score"`
	PlayerCards []string  `toml:"player_cards"`
	DealerCards []string  `toml:"dealer_cards"`
	PlayerCount int       `toml:"player_count"`
	DealerCount int       `toml:"dealer_count"`
	Reshuffled  bool      `toml:"reshuffled"`
	EndedAt     time.Time `toml:"ended_at"`
}

// Result converts the record back into a statistics row
func (r RoundRecord) Result() (statistics.RoundResult, error) {
	outcome, ok := blackjack.ParseOutcome(r.Outcome)
	if !ok {
		return statistics.RoundResult{}, fmt.Errorf("round %s: unknown outcome %q", r.RoundID, r.Outcome)
	}
	return statistics.RoundResult{
		Outcome:     outcome,
		Wager:       r.Wager,
		Payout:      r.Payout,
		PlayerCount: r.PlayerCount,
		DealerCount: r.DealerCount,
		PlayerCards: len(r.PlayerCards),
	}, nil
}

// File is the on-disk layout: an array of [[round]] tables
type File struct {
	Rounds []RoundRecord `toml:"round"`
}

// Recorder is an EventSubscriber that keeps a RoundRecord per RoundEndEvent.
type Recorder struct {
	session    string
	reshuffled map[string]bool
	rounds     []RoundRecord
}

// NewRecorder creates a recorder tagging records with session.
func NewRecorder(session string) *Recorder {
	return &Recorder{
		session:    session,
		reshuffled: make(map[string]bool),
	}
}

// OnEvent implements blackjack.EventSubscriber
func (r *Recorder) OnEvent(event blackjack.Event) {
	switch e := event.(type) {
	case blackjack.ShuffleEvent:
		r.reshuffled[e.RoundID] = true
	case blackjack.RoundEndEvent:
		r.rounds = append(r.rounds, RoundRecord{
			RoundID:     e.RoundID,
			Session:     r.session,
			Outcome:     e.Outcome.String(),
			Wager:       e.Wager,
			Payout:      e.Payout,
			Score:       e.Score,
			PlayerCards: cardStrings(e.PlayerCards),
			DealerCards: cardStrings(e.DealerCards),
			PlayerCount: e.PlayerCount,
			DealerCount: e.DealerCount,
			Reshuffled:  r.reshuffled[e.RoundID],
			EndedAt:     e.Timestamp(),
		})
		delete(r.reshuffled, e.RoundID)
	}
}

// Rounds returns the recorded rounds in order
func (r *Recorder) Rounds() []RoundRecord {
	out := make([]RoundRecord, len(r.rounds))
	copy(out, r.rounds)
	return out
}

// Write encodes rounds as TOML
func Write(w io.Writer, rounds []RoundRecord) error {
	if err := toml.NewEncoder(w).Encode(File{Rounds: rounds}); err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	return nil
}

// WriteFile writes rounds to path, replacing any existing file atomically
func WriteFile(path string, rounds []RoundRecord) error {
	return fileutil.WriteAtomic(filepath.Clean(path), 0o644, func(w io.Writer) error {
		return Write(w, rounds)
	})
}

// Read decodes a TOML history
func Read(r io.Reader) ([]RoundRecord, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode history: %w", err)
	}
	for i, rec := range file.Rounds {
		if err := validateCards(rec); err != nil {
			return nil, fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return file.Rounds, nil
}

// ReadFile loads a history written by WriteFile
func ReadFile(path string) ([]RoundRecord, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Summarize folds records into statistics, one session per distinct
// session tag, taking the last score seen as the session's final score.
func Summarize(rounds []RoundRecord) (*statistics.Statistics, error) {
	stats := statistics.New()
	final := make(map[string]int)
	var order []string
	for _, rec := range rounds {
		res, err := rec.Result()
		if err != nil {
			return nil, err
		}
		stats.Add(res)
		if _, seen := final[rec.Session]; !seen {
			order = append(order, rec.Session)
		}
		final[rec.Session] = rec.Score
	}
	for _, session := range order {
		stats.EndSession(final[session])
	}
	return stats, nil
}

func validateCards(rec RoundRecord) error {
	for _, list := range [][]string{rec.PlayerCards, rec.DealerCards} {
		for _, s := range list {
			if _, err := cards.ParseCard(s); err != nil {
				return err
			}
		}
	}
	return nil
}

func cardStrings(cs []cards.Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
