package analyze

import "math"

// Score weighting: message symmetry counts more than word symmetry.
const (
	messageBalanceWeight = 0.6
	wordBalanceWeight    = 0.4

	labelBalancedMin = 60
	labelMixedMin    = 40
)

// BalanceScore converts the two ratios into a 0–100 symmetry score. A ratio
// of exactly 1 on both axes scores 100.
func BalanceScore(stats Stats) int {
	mb := balance(stats.MessageRatio)
	wb := balance(stats.WordRatio)
	raw := 100 * (messageBalanceWeight*mb + wordBalanceWeight*wb)
	return int(math.Round(math.Max(0, math.Min(100, raw))))
}

// ScoreLabel buckets a score into its display label.
func ScoreLabel(score int) string {
	switch {
	case score >= labelBalancedMin:
		return "BALANCED"
	case score >= labelMixedMin:
		return "MIXED"
	default:
		return "ONE-SIDED"
	}
}

// balance folds a ratio onto [0,1]: 1.0 means perfectly even, approaching 0
// means one-sided in either direction.
func balance(ratio float64) float64 {
	if ratio <= 0 {
		return 0
	}
	return math.Min(ratio, 1/ratio)
}
