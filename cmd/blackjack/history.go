package main

import (
	"fmt"

	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/cards"
	"github.com/lox/blackjack/internal/history"
)

// HistoryCmd summarises a history file written by simulate --history-file
type HistoryCmd struct {
	File   string `arg:"" name:"file" type:"existingfile" help:"Path to a TOML history file"`
	Rounds bool   `help:"List every round before the summary"`
}

func (c *HistoryCmd) Run(g *Globals) error {
	_, logger, err := g.Load()
	if err != nil {
		return err
	}

	rounds, err := history.ReadFile(c.File)
	if err != nil {
		return err
	}
	if len(rounds) == 0 {
		return fmt.Errorf("no rounds found in %s", c.File)
	}
	logger.Debug("Loaded history", "file", c.File, "rounds", len(rounds))

	stats, err := history.Summarize(rounds)
	if err != nil {
		return fmt.Errorf("summarise %s: %w", c.File, err)
	}

	if c.Rounds {
		for _, rec := range rounds {
			fmt.Println(formatRecord(rec))
		}
		fmt.Println()
	}
	fmt.Println(renderReport("History", []field{plain("File", c.File)}, stats))
	return nil
}

func formatRecord(rec history.RoundRecord) string {
	line := fmt.Sprintf("%-12s %-11s P[%s] %2d  D[%s] %2d  %+5d  score %d",
		rec.RoundID, rec.Outcome,
		cards.FormatCards(parseCards(rec.PlayerCards)), rec.PlayerCount,
		cards.FormatCards(parseCards(rec.DealerCards)), rec.DealerCount,
		rec.Payout-rec.Wager, rec.Score)
	if rec.Reshuffled {
		line += "  (reshuffled)"
	}
	if outcome, ok := blackjack.ParseOutcome(rec.Outcome); ok {
		return outcomeStyle(outcome).Render(line)
	}
	return line
}

// parseCards skips anything unparseable; ReadFile has already validated
func parseCards(list []string) []cards.Card {
	out := make([]cards.Card, 0, len(list))
	for _, s := range list {
		if c, err := cards.ParseCard(s); err == nil {
			out = append(out, c)
		}
	}
	return out
}
