// Package stats computes aggregate performance statistics over trade records.
// All functions are pure: they never mutate their input, perform no I/O, and
// are deterministic for a given input multiset.
package stats

import (
	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

// Summary holds the overall tallies for a set of trades.
type Summary struct {
	TotalTrades int
	Wins        int
	Losses      int
	Breakevens  int
	WinRate     float64 // percentage, 0 when TotalTrades == 0
	TotalPnL    float64
}

// Group is a sub-aggregate keyed by a grouping dimension (session, pair,
// setup, hour-of-day, or risk-reward bucket).
type Group struct {
	Key string
	Summary
}

// Aggregate folds a list of trades into a Summary. Order of the input is
// irrelevant; an empty list produces the zero-valued summary with WinRate 0.
func Aggregate(trades []models.TradeRecord) Summary {
	var s Summary
	for i := range trades {
		s.add(&trades[i])
	}
	s.finalize()
	return s
}

// TradePnL is a single trade's contribution to total P&L: +reward on a win,
// -risk on a loss, 0 for breakevens and for wins/losses missing the amount.
func TradePnL(t *models.TradeRecord) float64 {
	switch t.Outcome {
	case models.OutcomeWin:
		if t.Reward != nil {
			return *t.Reward
		}
	case models.OutcomeLoss:
		if t.Risk != nil {
			return -*t.Risk
		}
	}
	return 0
}

// add tallies a single trade. A win with no recorded reward (or a loss with
// no recorded risk) counts toward the outcome tally but contributes 0 to P&L.
func (s *Summary) add(t *models.TradeRecord) {
	s.TotalTrades++
	switch t.Outcome {
	case models.OutcomeWin:
		s.Wins++
	case models.OutcomeLoss:
		s.Losses++
	case models.OutcomeBreakEven:
		s.Breakevens++
	}
	s.TotalPnL += TradePnL(t)
}

func (s *Summary) finalize() {
	if s.TotalTrades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.TotalTrades) * 100
	}
}
