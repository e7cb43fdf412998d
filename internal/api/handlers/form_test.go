package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/altman/internal/snapshot"
)

func TestParseForm(t *testing.T) {
	base := snapshot.Default()

	t.Run("empty keeps defaults", func(t *testing.T) {
		snap, errs := parseForm(url.Values{}, base)
		assert.Empty(t, errs)
		assert.Equal(t, base, snap)
	})

	t.Run("overrides", func(t *testing.T) {
		snap, errs := parseForm(url.Values{
			"company":      {"  Acme  "},
			"total_assets": {"250.5"},
			"ebit":         {"-3"},
			"sales":        {"   "},
		}, base)

		assert.Empty(t, errs)
		assert.Equal(t, "Acme", snap.Company)
		assert.Equal(t, 250.5, snap.TotalAssets)
		assert.Equal(t, -3.0, snap.EBIT)
		assert.Equal(t, base.Sales, snap.Sales, "blank field keeps the default")
	})

	t.Run("non numeric", func(t *testing.T) {
		snap, errs := parseForm(url.Values{"market_cap": {"600B"}, "sales": {"1e2"}}, base)
		assert.Equal(t, map[string]string{"market_cap": "must be a number"}, errs)
		assert.Equal(t, base.MarketCap, snap.MarketCap)
		assert.Equal(t, 100.0, snap.Sales)
	})
}

func TestFieldViews(t *testing.T) {
	values := url.Values{"ebit": {"abc"}}
	snap, errs := parseForm(values, snapshot.Default())
	views := fieldViews(values, snap, errs)

	assert.Len(t, views, 7)
	assert.Equal(t, "total_assets", views[0].Name)
	assert.Equal(t, "106.0", views[0].Value)

	for _, v := range views {
		if v.Name == "ebit" {
			assert.Equal(t, "abc", v.Value)
			assert.Equal(t, "must be a number", v.Error)
		} else {
			assert.Empty(t, v.Error)
		}
	}
}

func TestFormatInput(t *testing.T) {
	assert.Equal(t, "106.0", formatInput(106))
	assert.Equal(t, "0.25", formatInput(0.25))
	assert.Equal(t, "-12.0", formatInput(-12))
}
