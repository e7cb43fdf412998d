package zscore

import (
	"context"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/pkg/logger"
)

// Calculator wraps Score with structured logging
type Calculator struct {
	logger *logger.Logger
}

// NewCalculator creates a new calculator
func NewCalculator(log *logger.Logger) *Calculator {
	return &Calculator{
		logger: log,
	}
}

// Calculate scores a snapshot and logs the outcome at debug level
func (c *Calculator) Calculate(ctx context.Context, s contracts.FinancialSnapshot) contracts.ScoreResult {
	result := Score(s)

	c.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"company": s.Company,
		"x1":      result.Ratios.Liquidity(),
		"x2":      result.Ratios.Profitability(),
		"x3":      result.Ratios.Efficiency(),
		"x4":      result.Ratios.Market(),
		"x5":      result.Ratios.Turnover(),
		"z_score": result.ZScore,
		"zone":    result.Zone,
		"finite":  result.Finite,
	}).Debug("Calculated Z-Score")

	return result
}
