package handlers

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strconv"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/internal/zscore"
	"github.com/wonny/altman/pkg/logger"
)

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTemplate = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"f1": func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) },
}).Parse(dashboardHTML))

// dashboardView is the template model
type dashboardView struct {
	Company           string
	Fields            []fieldView
	Result            *contracts.ScoreResult
	Chart             chart
	Error             string
	Zones             []contracts.Zone
	SafeThreshold     string
	DistressThreshold string
}

// DashboardHandler renders the interactive Z-Score page
type DashboardHandler struct {
	evaluator *Evaluator
	defaults  contracts.FinancialSnapshot
	logger    *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(evaluator *Evaluator, defaults contracts.FinancialSnapshot, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		evaluator: evaluator,
		defaults:  defaults,
		logger:    log,
	}
}

// Render scores the form values (or the defaults) and renders the page
// GET /
func (h *DashboardHandler) Render(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	snap, parseErrs := parseForm(values, h.defaults)

	view := dashboardView{
		Company:           snap.Company,
		Fields:            fieldViews(values, snap, parseErrs),
		Zones:             contracts.Zones,
		SafeThreshold:     contracts.FormatScore(zscore.SafeThreshold),
		DistressThreshold: contracts.FormatScore(zscore.DistressThreshold),
	}

	status := http.StatusOK
	if len(parseErrs) > 0 {
		view.Error = "Some inputs are not numbers"
		status = http.StatusBadRequest
	} else {
		result, err := h.evaluator.Evaluate(r.Context(), "dashboard", snap)
		if err != nil {
			view.Error = err.Error()
			status = http.StatusBadRequest
		} else {
			view.Result = &result
			view.Chart = buildChart(result.Ratios)
		}
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, view); err != nil {
		h.logger.WithError(err).Error("Failed to render dashboard")
		respondError(w, http.StatusInternalServerError, "Failed to render dashboard")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
