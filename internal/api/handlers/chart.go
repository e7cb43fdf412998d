package handlers

import (
	"math"
	"strconv"

	"github.com/wonny/altman/internal/contracts"
)

// Chart geometry in SVG user units
const (
	chartWidth        = 560.0
	chartHeight       = 300.0
	chartPadTop       = 24.0
	chartPadBottom    = 48.0
	chartBarFill      = 0.6 // share of each slot taken by the bar
	chartLabelOffsetY = 18.0
)

// chartBar is one ratio bar, ready to draw
type chartBar struct {
	Index    int     `json:"index"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	Display  string  `json:"display"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Negative bool    `json:"negative"`
}

// chart is the bar chart of X1..X5
type chart struct {
	Width     float64
	Height    float64
	BaselineY float64
	LabelY    float64
	Bars      []chartBar
}

// buildChart scales the ratios into a shared axis.
// Negative ratios hang below the baseline.
func buildChart(r contracts.Ratios) chart {
	maxPos, minNeg := 0.0, 0.0
	for _, v := range r {
		maxPos = math.Max(maxPos, v)
		minNeg = math.Min(minNeg, v)
	}

	plot := chartHeight - chartPadTop - chartPadBottom
	scale := 0.0
	if span := maxPos - minNeg; span > 0 {
		scale = plot / span
	}
	baseline := chartPadTop + maxPos*scale

	slot := chartWidth / float64(len(r))
	barWidth := slot * chartBarFill

	c := chart{
		Width:     chartWidth,
		Height:    chartHeight,
		BaselineY: baseline,
		LabelY:    chartHeight - chartPadBottom + chartLabelOffsetY,
		Bars:      make([]chartBar, len(r)),
	}

	for i, v := range r {
		h := math.Abs(v) * scale
		y := baseline - h
		if v < 0 {
			y = baseline
		}
		c.Bars[i] = chartBar{
			Index:    i,
			Label:    contracts.RatioLabels[i],
			Value:    v,
			Display:  strconv.FormatFloat(v, 'f', 4, 64),
			X:        float64(i)*slot + (slot-barWidth)/2,
			Y:        y,
			Width:    barWidth,
			Height:   h,
			Negative: v < 0,
		}
	}

	return c
}
