package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/blackjack"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(16)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	WinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	PushStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

// outcomeStyle colours an outcome from the player's side of the table
func outcomeStyle(s blackjack.State) lipgloss.Style {
	switch {
	case s == blackjack.Push:
		return PushStyle
	case s.PlayerWon():
		return WinStyle
	default:
		return LossStyle
	}
}

// signedStyle colours a net chip figure
func signedStyle(v float64) lipgloss.Style {
	switch {
	case v > 0:
		return WinStyle
	case v < 0:
		return LossStyle
	default:
		return ValueStyle
	}
}
