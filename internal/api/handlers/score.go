package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/internal/snapshot"
	"github.com/wonny/altman/pkg/logger"
)

// maxBodyBytes caps the JSON request body
const maxBodyBytes = 1 << 14

// ScoreHandler serves the JSON scoring API
// ⭐ SSOT: 스코어 API 핸들러는 이 구조체에서만
type ScoreHandler struct {
	evaluator *Evaluator
	defaults  contracts.FinancialSnapshot
	logger    *logger.Logger
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(evaluator *Evaluator, defaults contracts.FinancialSnapshot, log *logger.Logger) *ScoreHandler {
	return &ScoreHandler{
		evaluator: evaluator,
		defaults:  defaults,
		logger:    log,
	}
}

// Score evaluates the snapshot in the request body
// POST /api/score
func (h *ScoreHandler) Score(w http.ResponseWriter, r *http.Request) {
	snap, err := decodeSnapshot(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	h.respondResult(w, r, snap)
}

// Default evaluates the configured default snapshot
// GET /api/score/default
func (h *ScoreHandler) Default(w http.ResponseWriter, r *http.Request) {
	h.respondResult(w, r, h.defaults)
}

func (h *ScoreHandler) respondResult(w http.ResponseWriter, r *http.Request, snap contracts.FinancialSnapshot) {
	result, err := h.evaluator.Evaluate(r.Context(), "api", snap)
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, result)
	case errors.Is(err, ErrNonFiniteScore):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		var verr snapshot.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Error())
			return
		}
		h.logger.WithError(err).Error("Failed to score snapshot")
		respondError(w, http.StatusInternalServerError, "Failed to score snapshot")
	}
}

// decodeSnapshot parses a JSON snapshot, rejecting unknown keys
func decodeSnapshot(body io.Reader) (contracts.FinancialSnapshot, error) {
	var snap contracts.FinancialSnapshot

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&snap); err != nil {
		return contracts.FinancialSnapshot{}, err
	}

	return snap, nil
}
