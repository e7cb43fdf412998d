package snapshot

import (
	"errors"
	"fmt"
	"math"

	"github.com/wonny/altman/internal/contracts"
)

// ErrZeroDenominator marks a snapshot whose total assets or total liabilities is zero
var ErrZeroDenominator = errors.New("must be non-zero")

// ValidationError names the offending input field
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// Validate runs the boundary checks applied before scoring user input.
// The scorer itself accepts anything and propagates Inf/NaN.
func Validate(s contracts.FinancialSnapshot) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"working_capital", s.WorkingCapital},
		{"retained_earnings", s.RetainedEarnings},
		{"ebit", s.EBIT},
		{"market_cap", s.MarketCap},
		{"total_liabilities", s.TotalLiabilities},
		{"sales", s.Sales},
		{"total_assets", s.TotalAssets},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return ValidationError{Field: f.name, Message: "must be a finite number"}
		}
	}

	if s.TotalAssets == 0 {
		return ValidationError{Field: "total_assets", Message: ErrZeroDenominator.Error(), Err: ErrZeroDenominator}
	}
	if s.TotalLiabilities == 0 {
		return ValidationError{Field: "total_liabilities", Message: ErrZeroDenominator.Error(), Err: ErrZeroDenominator}
	}

	return nil
}
