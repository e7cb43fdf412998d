package contracts

// FinancialSnapshot holds the seven balance-sheet and income inputs of one company
// ⭐ SSOT: 스코어 계산 입력은 이 구조체로만 전달
// All amounts must share one currency unit. TotalAssets and TotalLiabilities are
// divisors and are expected to be non-zero.
type FinancialSnapshot struct {
	Company          string  `json:"company,omitempty" yaml:"company"`
	WorkingCapital   float64 `json:"working_capital" yaml:"working_capital"`
	RetainedEarnings float64 `json:"retained_earnings" yaml:"retained_earnings"`
	EBIT             float64 `json:"ebit" yaml:"ebit"`
	MarketCap        float64 `json:"market_cap" yaml:"market_cap"`
	TotalLiabilities float64 `json:"total_liabilities" yaml:"total_liabilities"`
	Sales            float64 `json:"sales" yaml:"sales"`
	TotalAssets      float64 `json:"total_assets" yaml:"total_assets"`
}

// Ratios is the X1..X5 vector, ordered like the model weights
type Ratios [5]float64

// RatioLabels are the display names of X1..X5
var RatioLabels = [5]string{
	"Liquidity (X1)",
	"Profitability (X2)",
	"Efficiency (X3)",
	"Market (X4)",
	"Turnover (X5)",
}

// Liquidity returns X1 (working capital / total assets)
func (r Ratios) Liquidity() float64 { return r[0] }

// Profitability returns X2 (retained earnings / total assets)
func (r Ratios) Profitability() float64 { return r[1] }

// Efficiency returns X3 (EBIT / total assets)
func (r Ratios) Efficiency() float64 { return r[2] }

// Market returns X4 (market cap / total liabilities)
func (r Ratios) Market() float64 { return r[3] }

// Turnover returns X5 (sales / total assets)
func (r Ratios) Turnover() float64 { return r[4] }
