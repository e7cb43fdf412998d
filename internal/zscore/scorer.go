// Package zscore computes the Altman Z-Score for public manufacturing companies.
//
//	Z = 1.2·X1 + 1.4·X2 + 3.3·X3 + 0.6·X4 + 1.0·X5
//
//	X1 = working capital / total assets
//	X2 = retained earnings / total assets
//	X3 = EBIT / total assets
//	X4 = market value of equity / total liabilities
//	X5 = sales / total assets
//
// Zero divisors are not rejected here; the IEEE result (±Inf or NaN) flows
// through to the score and the band. Callers that need strict input checks
// validate at their boundary.
package zscore

import "github.com/wonny/altman/internal/contracts"

// Weights are the model coefficients for X1..X5
var Weights = [5]float64{1.2, 1.4, 3.3, 0.6, 1.0}

const (
	// SafeThreshold: scores strictly above are Safe
	SafeThreshold = 2.99
	// DistressThreshold: scores strictly below are Distress
	DistressThreshold = 1.81
)

// Score evaluates one snapshot
// ⭐ SSOT: Z-Score 계산은 여기서만
func Score(s contracts.FinancialSnapshot) contracts.ScoreResult {
	ratios := ComputeRatios(s)
	z := Combine(ratios)
	zone := Classify(z)

	return contracts.ScoreResult{
		Company: s.Company,
		ZScore:  z,
		Ratios:  ratios,
		Zone:    zone,
		Status:  zone.Status(),
		Finite:  contracts.IsFinite(z, ratios),
	}
}

// ComputeRatios derives X1..X5 from the snapshot
func ComputeRatios(s contracts.FinancialSnapshot) contracts.Ratios {
	return contracts.Ratios{
		s.WorkingCapital / s.TotalAssets,
		s.RetainedEarnings / s.TotalAssets,
		s.EBIT / s.TotalAssets,
		s.MarketCap / s.TotalLiabilities,
		s.Sales / s.TotalAssets,
	}
}

// Combine applies the weights to the ratio vector
func Combine(r contracts.Ratios) float64 {
	z := 0.0
	for i, w := range Weights {
		z += w * r[i]
	}
	return z
}

// Classify maps a score to its band.
// Both thresholds belong to the Grey Zone; NaN lands in Distress.
func Classify(z float64) contracts.Zone {
	switch {
	case z > SafeThreshold:
		return contracts.ZoneSafe
	case z >= DistressThreshold && z <= SafeThreshold:
		return contracts.ZoneGrey
	default:
		return contracts.ZoneDistress
	}
}
