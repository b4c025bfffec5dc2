package blackjack

// State is the round state machine value owned by the Controller.
type State int

const (
	Idle State = iota
	Setup
	Betting
	PlayerTurn
	DealerTurn
	Resolving

	// Terminal outcomes. Each holds until a Deal or NewGame intent.
	PlayerWin
	DealerWin
	PlayerBust
	DealerBust
	Push
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Setup:
		return "setup"
	case Betting:
		return "betting"
	case PlayerTurn:
		return "player_turn"
	case DealerTurn:
		return "dealer_turn"
	case Resolving:
		return "resolving"
	case PlayerWin:
		return "player_win"
	case DealerWin:
		return "dealer_win"
	case PlayerBust:
		return "player_bust"
	case DealerBust:
		return "dealer_bust"
	case Push:
		return "push"
	default:
		return "unknown"
	}
}

// IsOutcome reports whether s is one of the terminal round outcomes.
func (s State) IsOutcome() bool {
	return s >= PlayerWin && s <= Push
}

// PlayerWon reports whether the outcome paid the player a win.
func (s State) PlayerWon() bool {
	return s == PlayerWin || s == DealerBust
}

// Outcomes lists the terminal states in declaration order.
func Outcomes() []State {
	return []State{PlayerWin, DealerWin, PlayerBust, DealerBust, Push}
}

// ParseOutcome maps an outcome name produced by String back to its State.
func ParseOutcome(name string) (State, bool) {
	for _, s := range Outcomes() {
		if s.String() == name {
			return s, true
		}
	}
	return Idle, false
}

// Intent is a command forwarded from the presentation layer.
type Intent int

const (
	NewGame Intent = iota
	Deal
	Hit
	Stand
)

func (i Intent) String() string {
	switch i {
	case NewGame:
		return "new_game"
	case Deal:
		return "deal"
	case Hit:
		return "hit"
	case Stand:
		return "stand"
	default:
		return "unknown"
	}
}
