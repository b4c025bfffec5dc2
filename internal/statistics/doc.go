// Package statistics aggregates simulated blackjack rounds: outcome
// frequencies, chips wagered and returned, and the distribution of net
// chips per round.
package statistics
