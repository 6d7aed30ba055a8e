package stats

import (
	"math/rand"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

// genTrades builds a random trade list: outcomes across the full set, risk
// and reward randomly present or absent, times spread across the day.
func genTrades() gopter.Gen {
	outcomes := []models.Outcome{models.OutcomeWin, models.OutcomeLoss, models.OutcomeBreakEven}
	sessions := models.KnownSessions
	pairs := []string{"EURUSD", "GBPUSD", "USDJPY", "XAUUSD"}

	return gen.SliceOf(gen.IntRange(0, 1<<30).Map(func(seed int) models.TradeRecord {
		r := rand.New(rand.NewSource(int64(seed)))
		t := models.TradeRecord{
			ID:        "T",
			Pair:      pairs[r.Intn(len(pairs))],
			Session:   sessions[r.Intn(len(sessions))],
			TradeTime: time.Date(2026, 1, 1, r.Intn(24), r.Intn(60), 0, 0, time.UTC),
			Outcome:   outcomes[r.Intn(len(outcomes))],
		}
		if r.Intn(4) > 0 {
			t.Risk = models.Float64Ptr(float64(r.Intn(500)))
		}
		if r.Intn(4) > 0 {
			t.Reward = models.Float64Ptr(float64(r.Intn(1500)))
		}
		return t
	}))
}

// Property: the outcome tallies always partition the trade count.
func TestProperty_OutcomeCountsPartitionTotal(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("wins + losses + breakevens == totalTrades", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			s := Aggregate(trades)
			return s.Wins+s.Losses+s.Breakevens == s.TotalTrades
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: total P&L is invariant under reordering of the input.
func TestProperty_PnLOrderIndependent(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("reversed input yields identical summary", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			reversed := make([]models.TradeRecord, len(trades))
			for i, tr := range trades {
				reversed[len(trades)-1-i] = tr
			}
			a, b := Aggregate(trades), Aggregate(reversed)
			return a == b
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: win rate is 0 for empty input and 100*wins/total otherwise.
func TestProperty_WinRateDefinition(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("winRate matches its definition", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			s := Aggregate(trades)
			if s.TotalTrades == 0 {
				return s.WinRate == 0
			}
			return s.WinRate == float64(s.Wins)/float64(s.TotalTrades)*100
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: every grouping's sub-aggregates sum back to the overall summary
// (hour slots cover every trade; sessions and pairs partition the input).
func TestProperty_GroupTotalsSumToOverall(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	sumGroups := func(groups []Group) (int, float64) {
		trades, pnl := 0, 0.0
		for _, g := range groups {
			trades += g.TotalTrades
			pnl += g.TotalPnL
		}
		return trades, pnl
	}

	properties.Property("session, pair, setup, and hour groups partition the trades", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			s := Aggregate(trades)
			for _, groups := range [][]Group{
				BySession(trades), ByPair(trades), BySetup(trades), ByHour(trades),
			} {
				n, pnl := sumGroups(groups)
				if n != s.TotalTrades || !almostEqual(pnl, s.TotalPnL) {
					return false
				}
			}
			return true
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

// Property: bucketed trades are exactly those with a defined ratio.
func TestProperty_BucketsCoverDefinedRatios(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("bucket counts equal trades with a defined risk-reward", prop.ForAll(
		func(trades []models.TradeRecord) bool {
			defined := 0
			for i := range trades {
				if _, ok := trades[i].RiskReward(); ok {
					defined++
				}
			}
			for _, set := range []BucketSet{BucketSetA, BucketSetB} {
				n := 0
				for _, g := range ByRiskReward(trades, set) {
					n += g.TotalTrades
				}
				if n != defined {
					return false
				}
			}
			return true
		},
		genTrades(),
	))

	properties.TestingRun(t)
}

func almostEqual(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-6
}
