package blackjack

import (
	"fmt"

	"github.com/lox/blackjack/cards"
)

// FormattingOptions controls how events are formatted for different contexts
type FormattingOptions struct {
	ShowHoleCard    bool // reveal the dealer's face-down card as it is dealt
	ShowTransitions bool // include state changes
	ShowShoe        bool // append the shoe count to dealt cards
}

// EventFormatter turns round events into one-line narration
type EventFormatter struct {
	opts FormattingOptions
}

// NewEventFormatter creates a new event formatter with the given options
func NewEventFormatter(opts FormattingOptions) *EventFormatter {
	return &EventFormatter{opts: opts}
}

// Format returns the narration for event and false if the event is
// suppressed by the options.
func (ef *EventFormatter) Format(event Event) (string, bool) {
	switch e := event.(type) {
	case ShuffleEvent:
		return fmt.Sprintf("*** Shoe shuffled (%d cards) ***", e.Remaining), true
	case RoundStartEvent:
		return ef.FormatRoundStart(e), true
	case CardDealtEvent:
		return ef.FormatCardDealt(e), true
	case StateChangeEvent:
		if !ef.opts.ShowTransitions {
			return "", false
		}
		return fmt.Sprintf("-- %s -> %s", e.From, e.To), true
	case RoundEndEvent:
		return ef.FormatRoundEnd(e), true
	default:
		return "", false
	}
}

// FormatRoundStart formats the wager line
func (ef *EventFormatter) FormatRoundStart(e RoundStartEvent) string {
	return fmt.Sprintf("*** ROUND %s *** Player bets %d (score %d)", e.RoundID, e.Wager, e.Score)
}

// FormatCardDealt formats a single dealt card
func (ef *EventFormatter) FormatCardDealt(e CardDealtEvent) string {
	var text string
	if e.FaceDown && !ef.opts.ShowHoleCard {
		text = fmt.Sprintf("%s: dealt a face-down card", e.Role)
	} else {
		count := e.VisibleCount
		if ef.opts.ShowHoleCard {
			count = e.Count
		}
		text = fmt.Sprintf("%s: dealt %s (count %d)", e.Role, e.Card, count)
	}
	if ef.opts.ShowShoe {
		text += fmt.Sprintf(" [shoe %d]", e.ShoeRemaining)
	}
	return text
}

// FormatRoundEnd formats the outcome summary
func (ef *EventFormatter) FormatRoundEnd(e RoundEndEvent) string {
	return fmt.Sprintf("%s | Player [%s] %d vs Dealer [%s] %d | wager %d paid %d | score %d",
		ef.outcomeText(e.Outcome),
		cards.FormatCards(e.PlayerCards), e.PlayerCount,
		cards.FormatCards(e.DealerCards), e.DealerCount,
		e.Wager, e.Payout, e.Score)
}

func (ef *EventFormatter) outcomeText(s State) string {
	switch s {
	case PlayerWin:
		return "Player wins"
	case DealerWin:
		return "Dealer wins"
	case PlayerBust:
		return "Dealer wins - player bust"
	case DealerBust:
		return "Player wins - dealer bust"
	case Push:
		return "Draw hand"
	default:
		return s.String()
	}
}
