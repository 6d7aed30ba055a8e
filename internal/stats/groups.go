package stats

import (
	"sort"
	"strconv"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

// groupBy buckets trades under keyFn, preserving first-encountered key order.
// Trades for which keyFn reports ok == false are excluded entirely.
func groupBy(trades []models.TradeRecord, keyFn func(*models.TradeRecord) (string, bool)) []Group {
	index := make(map[string]int)
	var groups []Group
	for i := range trades {
		key, ok := keyFn(&trades[i])
		if !ok {
			continue
		}
		gi, seen := index[key]
		if !seen {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, Group{Key: key})
		}
		groups[gi].add(&trades[i])
	}
	for i := range groups {
		groups[i].finalize()
	}
	return groups
}

// BySession groups trades by session name.
func BySession(trades []models.TradeRecord) []Group {
	return groupBy(trades, func(t *models.TradeRecord) (string, bool) {
		return t.Session, true
	})
}

// ByPair groups trades by instrument symbol.
func ByPair(trades []models.TradeRecord) []Group {
	return groupBy(trades, func(t *models.TradeRecord) (string, bool) {
		return t.Pair, true
	})
}

// BySetup groups trades by setup label, folding blanks into "Unknown".
func BySetup(trades []models.TradeRecord) []Group {
	return groupBy(trades, func(t *models.TradeRecord) (string, bool) {
		return t.SetupLabel(), true
	})
}

// ByHour groups trades by the hour-of-day of their trade time and always
// returns all 24 slots, keyed "0" through "23", zero-valued where no trades
// fall. The hour is taken from the time's location as stored; no timezone
// normalization is applied.
func ByHour(trades []models.TradeRecord) []Group {
	groups := make([]Group, 24)
	for h := range groups {
		groups[h].Key = strconv.Itoa(h)
	}
	for i := range trades {
		groups[trades[i].TradeTime.Hour()].add(&trades[i])
	}
	for h := range groups {
		groups[h].finalize()
	}
	return groups
}

// TopByCount returns the n groups with the most trades, descending. The sort
// is stable: ties keep their first-encountered order.
func TopByCount(groups []Group, n int) []Group {
	ranked := make([]Group, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalTrades > ranked[j].TotalTrades
	})
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// RankByPnL orders groups by total P&L, descending, stable on ties.
func RankByPnL(groups []Group) []Group {
	ranked := make([]Group, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalPnL > ranked[j].TotalPnL
	})
	return ranked
}
