package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/wonny/altman/internal/contracts"
)

// formField binds one numeric dashboard input to its snapshot field
type formField struct {
	Name  string
	Label string
	ref   func(s *contracts.FinancialSnapshot) *float64
}

// formFields are listed in the order the dashboard shows them
var formFields = []formField{
	{"total_assets", "Total Assets", func(s *contracts.FinancialSnapshot) *float64 { return &s.TotalAssets }},
	{"working_capital", "Working Capital", func(s *contracts.FinancialSnapshot) *float64 { return &s.WorkingCapital }},
	{"retained_earnings", "Retained Earnings", func(s *contracts.FinancialSnapshot) *float64 { return &s.RetainedEarnings }},
	{"ebit", "EBIT", func(s *contracts.FinancialSnapshot) *float64 { return &s.EBIT }},
	{"market_cap", "Market Cap", func(s *contracts.FinancialSnapshot) *float64 { return &s.MarketCap }},
	{"total_liabilities", "Total Liabilities", func(s *contracts.FinancialSnapshot) *float64 { return &s.TotalLiabilities }},
	{"sales", "Sales", func(s *contracts.FinancialSnapshot) *float64 { return &s.Sales }},
}

// fieldView is one rendered form input
type fieldView struct {
	Name  string
	Label string
	Value string
	Error string
}

// parseForm overlays query values on base.
// Blank fields keep the base value; unparsable ones are reported by name.
func parseForm(values url.Values, base contracts.FinancialSnapshot) (contracts.FinancialSnapshot, map[string]string) {
	snap := base
	errs := map[string]string{}

	if company, ok := values["company"]; ok && len(company) > 0 {
		snap.Company = strings.TrimSpace(company[0])
	}

	for _, f := range formFields {
		raw := strings.TrimSpace(values.Get(f.Name))
		if raw == "" {
			continue
		}

		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			errs[f.Name] = "must be a number"
			continue
		}
		*f.ref(&snap) = v
	}

	return snap, errs
}

// fieldViews renders the current snapshot and any parse errors
func fieldViews(values url.Values, snap contracts.FinancialSnapshot, errs map[string]string) []fieldView {
	views := make([]fieldView, 0, len(formFields))
	for _, f := range formFields {
		view := fieldView{
			Name:  f.Name,
			Label: f.Label,
			Value: formatInput(*f.ref(&snap)),
		}
		if msg, bad := errs[f.Name]; bad {
			view.Error = msg
			view.Value = values.Get(f.Name)
		}
		views = append(views, view)
	}
	return views
}

func formatInput(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
