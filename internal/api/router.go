package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wonny/altman/internal/api/handlers"
	"github.com/wonny/altman/internal/metrics"
	"github.com/wonny/altman/pkg/logger"
)

// Handlers groups the endpoint handlers mounted by NewRouter
type Handlers struct {
	Score     *handlers.ScoreHandler
	Dashboard *handlers.DashboardHandler
	Live      *handlers.LiveHandler
}

// NewRouter creates and configures the HTTP router.
// m may be nil, in which case /metrics is not mounted.
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(h Handlers, m *metrics.Metrics, limiter *ClientLimiter, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	if m != nil {
		r.Handle("/metrics", m.Handler()).Methods("GET")
	}

	// Dashboard
	r.HandleFunc("/", h.Dashboard.Render).Methods("GET")

	// API (rate limited per client)
	limit := rateLimitMiddleware(limiter, log)
	r.Handle("/api/score", limit(http.HandlerFunc(h.Score.Score))).Methods("POST")
	r.Handle("/api/score/default", limit(http.HandlerFunc(h.Score.Default))).Methods("GET")
	r.HandleFunc("/api/score", methodNotAllowed("POST"))

	// Live re-scoring
	r.HandleFunc("/ws/score", h.Live.Serve).Methods("GET")

	// Apply middleware
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(log, m))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": logger.ServiceName,
	})
}

// methodNotAllowed answers 405 for a path that exists under other methods
func methodNotAllowed(allow string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", allow)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{
			"error": "method not allowed",
		})
	}
}
