package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

func trade(outcome models.Outcome, risk, reward *float64, session string) models.TradeRecord {
	return models.TradeRecord{
		ID:        "T1",
		Pair:      "EURUSD",
		Session:   session,
		TradeTime: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Outcome:   outcome,
		Risk:      risk,
		Reward:    reward,
	}
}

func TestAggregateEmpty(t *testing.T) {
	s := Aggregate(nil)

	assert.Equal(t, 0, s.TotalTrades)
	assert.Equal(t, 0.0, s.WinRate)
	assert.Equal(t, 0.0, s.TotalPnL)
}

func TestAggregateMixedOutcomes(t *testing.T) {
	trades := []models.TradeRecord{
		trade(models.OutcomeWin, models.Float64Ptr(100), models.Float64Ptr(200), models.SessionLondon),
		trade(models.OutcomeLoss, models.Float64Ptr(100), nil, models.SessionLondon),
		trade(models.OutcomeBreakEven, nil, nil, models.SessionAsia),
	}

	s := Aggregate(trades)

	assert.Equal(t, 3, s.TotalTrades)
	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Breakevens)
	assert.InDelta(t, 100.0/3.0, s.WinRate, 1e-9)
	assert.Equal(t, 100.0, s.TotalPnL) // +200 win, -100 loss, breakeven 0

	sessions := BySession(trades)
	require.Len(t, sessions, 2)
	assert.Equal(t, "London", sessions[0].Key)
	assert.Equal(t, 2, sessions[0].TotalTrades)
	assert.Equal(t, 100.0, sessions[0].TotalPnL)
	assert.Equal(t, "Asia", sessions[1].Key)
	assert.Equal(t, 1, sessions[1].TotalTrades)
	assert.Equal(t, 0.0, sessions[1].TotalPnL)
}

func TestMissingAmountsContributeZeroPnL(t *testing.T) {
	trades := []models.TradeRecord{
		trade(models.OutcomeWin, nil, nil, models.SessionAsia),
		trade(models.OutcomeLoss, nil, nil, models.SessionAsia),
	}

	s := Aggregate(trades)

	assert.Equal(t, 1, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 0.0, s.TotalPnL)
}

func TestBySetupFoldsBlankIntoUnknown(t *testing.T) {
	trades := []models.TradeRecord{
		trade(models.OutcomeWin, nil, nil, models.SessionAsia),
		trade(models.OutcomeLoss, nil, nil, models.SessionAsia),
	}
	trades[0].Setup = "Breakout"

	groups := BySetup(trades)

	require.Len(t, groups, 2)
	assert.Equal(t, "Breakout", groups[0].Key)
	assert.Equal(t, "Unknown", groups[1].Key)
}

func TestByHourAlwaysReturns24Slots(t *testing.T) {
	trades := []models.TradeRecord{
		trade(models.OutcomeWin, models.Float64Ptr(50), models.Float64Ptr(150), models.SessionNewYork),
	}

	groups := ByHour(trades)

	require.Len(t, groups, 24)
	assert.Equal(t, "0", groups[0].Key)
	assert.Equal(t, "23", groups[23].Key)
	assert.Equal(t, 1, groups[9].TotalTrades) // trade helper fixes 09:30
	for h, g := range groups {
		if h != 9 {
			assert.Equal(t, 0, g.TotalTrades, "hour %d should be empty", h)
		}
	}
}

func TestByHourEmptyInputStillFullDay(t *testing.T) {
	groups := ByHour(nil)

	require.Len(t, groups, 24)
	for _, g := range groups {
		assert.Equal(t, 0, g.TotalTrades)
		assert.Equal(t, 0.0, g.WinRate)
	}
}

func TestTopByCountStableOnTies(t *testing.T) {
	groups := []Group{
		{Key: "A", Summary: Summary{TotalTrades: 2}},
		{Key: "B", Summary: Summary{TotalTrades: 5}},
		{Key: "C", Summary: Summary{TotalTrades: 2}},
	}

	top := TopByCount(groups, 2)

	require.Len(t, top, 2)
	assert.Equal(t, "B", top[0].Key)
	assert.Equal(t, "A", top[1].Key) // A before C: first-encountered wins ties
}

func TestRankByPnLStableOnTies(t *testing.T) {
	groups := []Group{
		{Key: "Asia", Summary: Summary{TotalPnL: 10}},
		{Key: "London", Summary: Summary{TotalPnL: 50}},
		{Key: "New York", Summary: Summary{TotalPnL: 10}},
	}

	ranked := RankByPnL(groups)

	assert.Equal(t, []string{"London", "Asia", "New York"},
		[]string{ranked[0].Key, ranked[1].Key, ranked[2].Key})
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	risk := 100.0
	reward := 250.0
	trades := []models.TradeRecord{
		trade(models.OutcomeWin, &risk, &reward, models.SessionLondon),
	}

	_ = Aggregate(trades)
	_ = BySession(trades)
	_ = ByRiskReward(trades, BucketSetA)

	assert.Equal(t, 100.0, *trades[0].Risk)
	assert.Equal(t, 250.0, *trades[0].Reward)
	assert.Equal(t, models.OutcomeWin, trades[0].Outcome)
}
