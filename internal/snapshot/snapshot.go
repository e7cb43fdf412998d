// Package snapshot supplies FinancialSnapshot inputs to the scorer: the built-in
// example company, YAML snapshot files, and the checks the CLI and dashboard run
// before scoring.
package snapshot

import "github.com/wonny/altman/internal/contracts"

// Default returns the Tesla FY2024 estimate (billions USD) used as the form default
func Default() contracts.FinancialSnapshot {
	return contracts.FinancialSnapshot{
		Company:          "Tesla Inc.",
		WorkingCapital:   20.0,
		RetainedEarnings: 28.0,
		EBIT:             9.0,
		MarketCap:        600.0,
		TotalLiabilities: 43.0,
		Sales:            97.0,
		TotalAssets:      106.0,
	}
}
