package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/blackjack/blackjack"
	"github.com/lox/blackjack/internal/statistics"
)

type field struct {
	label string
	value string
	style lipgloss.Style
}

func plain(label, value string) field {
	return field{label: label, value: value, style: ValueStyle}
}

func renderFields(fields []field) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(f.label), f.style.Render(f.value))
	}
	return strings.Join(lines, "\n")
}

// renderReport lays out the outcome breakdown and chip statistics under
// title. header rows are printed above the statistics.
func renderReport(title string, header []field, stats *statistics.Statistics) string {
	fields := append([]field{}, header...)
	fields = append(fields,
		plain("Rounds", fmt.Sprintf("%d", stats.Rounds)),
		plain("Sessions", fmt.Sprintf("%d (%d busted out)", stats.Sessions, stats.BustOuts)),
	)

	outcomes := make([]field, 0, len(blackjack.Outcomes()))
	for _, s := range blackjack.Outcomes() {
		outcomes = append(outcomes, field{
			label: s.String(),
			value: fmt.Sprintf("%6d  %5.1f%%", stats.Outcomes[s], stats.Rate(s)*100),
			style: outcomeStyle(s),
		})
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()
	chips := []field{
		plain("Wagered", fmt.Sprintf("%d", stats.TotalWagered)),
		plain("Paid", fmt.Sprintf("%d", stats.TotalPaid)),
		{label: "Net", value: fmt.Sprintf("%+d", stats.Net()), style: signedStyle(float64(stats.Net()))},
		plain("Return", fmt.Sprintf("%.2f%%", stats.ReturnToPlayer()*100)),
		{label: "Mean/round", value: fmt.Sprintf("%+.3f ± %.3f", mean, stats.StdError()), style: signedStyle(mean)},
		plain("95% CI", fmt.Sprintf("[%+.3f, %+.3f]", low, high)),
		plain("Median", fmt.Sprintf("%+.1f", stats.Median())),
		plain("Std dev", fmt.Sprintf("%.3f", stats.StdDev())),
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		renderFields(fields),
		"",
		renderFields(outcomes),
		"",
		renderFields(chips),
	)
	return lipgloss.JoinVertical(lipgloss.Left, HeaderStyle.Render(title), BoxStyle.Render(body))
}
