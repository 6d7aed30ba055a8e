package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrade() TradeRecord {
	return TradeRecord{
		ID:        "T1",
		Pair:      "EURUSD",
		Session:   SessionLondon,
		TradeTime: time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC),
		Outcome:   OutcomeWin,
	}
}

func TestParseOutcome(t *testing.T) {
	for _, valid := range []string{"WIN", "LOSS", "BREAKEVEN"} {
		outcome, err := ParseOutcome(valid)
		require.NoError(t, err)
		assert.Equal(t, Outcome(valid), outcome)
	}

	for _, invalid := range []string{"", "win", "DRAW", "W"} {
		_, err := ParseOutcome(invalid)
		assert.Error(t, err, "outcome %q", invalid)
	}
}

func TestRiskRewardUndefinedOnZeroOrMissingRisk(t *testing.T) {
	tr := validTrade()

	_, ok := tr.RiskReward()
	assert.False(t, ok, "missing risk and reward")

	tr.Risk = Float64Ptr(0)
	tr.Reward = Float64Ptr(200)
	_, ok = tr.RiskReward()
	assert.False(t, ok, "zero risk must not yield an infinite ratio")

	tr.Risk = Float64Ptr(100)
	ratio, ok := tr.RiskReward()
	require.True(t, ok)
	assert.Equal(t, 2.0, ratio)
}

func TestSetupLabel(t *testing.T) {
	tr := validTrade()
	assert.Equal(t, SetupUnknown, tr.SetupLabel())

	tr.Setup = "Liquidity sweep"
	assert.Equal(t, "Liquidity sweep", tr.SetupLabel())
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TradeRecord)
		errMsg string
	}{
		{"valid", func(tr *TradeRecord) {}, ""},
		{"missing pair", func(tr *TradeRecord) { tr.Pair = "" }, "pair is required"},
		{"missing session", func(tr *TradeRecord) { tr.Session = "" }, "session is required"},
		{"zero time", func(tr *TradeRecord) { tr.TradeTime = time.Time{} }, "trade time is required"},
		{"bad outcome", func(tr *TradeRecord) { tr.Outcome = "DRAW" }, "invalid outcome"},
		{"negative risk", func(tr *TradeRecord) { tr.Risk = Float64Ptr(-1) }, "risk must be non-negative"},
		{"negative reward", func(tr *TradeRecord) { tr.Reward = Float64Ptr(-1) }, "reward must be non-negative"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTrade()
			tc.mutate(&tr)
			err := tr.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}
