package contracts

import (
	"math"
	"strconv"
)

// ScoreResult is the outcome of one Z-Score evaluation
// ⭐ SSOT: Scorer → CLI/Dashboard 결과 전달
type ScoreResult struct {
	Company string  `json:"company,omitempty"`
	ZScore  float64 `json:"z_score"`
	Ratios  Ratios  `json:"ratios"`
	Zone    Zone    `json:"zone"`
	Status  string  `json:"status"`
	Finite  bool    `json:"finite"` // false when a zero divisor produced Inf/NaN
}

// IsFinite reports whether the score and every ratio are finite numbers
func IsFinite(z float64, r Ratios) bool {
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return false
	}
	for _, v := range r {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// FormatScore renders a score with two decimals
func FormatScore(z float64) string {
	return strconv.FormatFloat(z, 'f', 2, 64)
}

// FormattedScore returns the score rounded to two decimals
func (r ScoreResult) FormattedScore() string {
	return FormatScore(r.ZScore)
}
