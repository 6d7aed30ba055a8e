package stats

import (
	"strconv"

	"github.com/akshay543210/trade-paste-analytics/internal/models"
)

// BucketSet defines the lower boundaries of the risk-reward buckets. Each
// bucket spans [bound[i], bound[i+1]); the final bucket is unbounded above.
type BucketSet []float64

// Two boundary sets are in use by different report surfaces.
var (
	BucketSetA = BucketSet{0, 0.5, 1, 1.5, 2, 3}
	BucketSetB = BucketSet{0, 1, 1.5, 2, 3}
)

// Labels returns the display label for each bucket, e.g. "1.5-2" and "3+".
func (b BucketSet) Labels() []string {
	labels := make([]string, len(b))
	for i, lo := range b {
		if i == len(b)-1 {
			labels[i] = trimFloat(lo) + "+"
			continue
		}
		labels[i] = trimFloat(lo) + "-" + trimFloat(b[i+1])
	}
	return labels
}

// bucketIndex places a ratio into a bucket. Boundaries are left-inclusive,
// so a ratio of exactly 1.5 lands in [1.5,2), never [1,1.5).
func (b BucketSet) bucketIndex(ratio float64) int {
	idx := 0
	for i, lo := range b {
		if ratio >= lo {
			idx = i
		}
	}
	return idx
}

// ByRiskReward groups trades into the set's risk-reward buckets. Every bucket
// appears in the output, in ascending order, even when empty. Trades with an
// undefined ratio (risk absent or zero) are not counted in any bucket.
func ByRiskReward(trades []models.TradeRecord, set BucketSet) []Group {
	if len(set) == 0 {
		return nil
	}
	groups := make([]Group, len(set))
	for i, label := range set.Labels() {
		groups[i].Key = label
	}
	for i := range trades {
		ratio, ok := trades[i].RiskReward()
		if !ok {
			continue
		}
		groups[set.bucketIndex(ratio)].add(&trades[i])
	}
	for i := range groups {
		groups[i].finalize()
	}
	return groups
}

// trimFloat renders a boundary without trailing zeros (1.5 -> "1.5", 2 -> "2").
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
