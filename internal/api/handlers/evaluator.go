package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/internal/metrics"
	"github.com/wonny/altman/internal/snapshot"
	"github.com/wonny/altman/internal/zscore"
	"github.com/wonny/altman/pkg/logger"
)

// ErrNonFiniteScore is returned when valid inputs still overflow to Inf/NaN
var ErrNonFiniteScore = errors.New("score is not a finite number")

// Evaluator validates a snapshot, scores it and records metrics.
// Every HTTP entry point (dashboard, JSON API, websocket) goes through it.
type Evaluator struct {
	calc    *zscore.Calculator
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewEvaluator creates a new evaluator; m may be nil when metrics are disabled
func NewEvaluator(calc *zscore.Calculator, m *metrics.Metrics, log *logger.Logger) *Evaluator {
	return &Evaluator{
		calc:    calc,
		metrics: m,
		logger:  log,
	}
}

// Evaluate scores s on behalf of source ("api", "dashboard", "ws")
func (e *Evaluator) Evaluate(ctx context.Context, source string, s contracts.FinancialSnapshot) (contracts.ScoreResult, error) {
	if err := snapshot.Validate(s); err != nil {
		field := "unknown"
		var verr snapshot.ValidationError
		if errors.As(err, &verr) {
			field = verr.Field
		}
		e.metrics.ObserveRejected(field)
		e.logger.WithError(err).WithField("source", source).Debug("Rejected snapshot")
		return contracts.ScoreResult{}, err
	}

	result := e.calc.Calculate(ctx, s)
	e.metrics.ObserveResult(source, result)

	if !result.Finite {
		return result, fmt.Errorf("%s: %w", s.Company, ErrNonFiniteScore)
	}

	return result, nil
}
