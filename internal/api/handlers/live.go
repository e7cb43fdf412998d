package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/pkg/logger"
)

const (
	liveReadLimit  = 4096
	livePongWait   = 60 * time.Second
	livePingPeriod = livePongWait * 9 / 10
	liveWriteWait  = 10 * time.Second
)

// liveResponse is one websocket reply
type liveResponse struct {
	Result      *contracts.ScoreResult `json:"result,omitempty"`
	Score       string                 `json:"score,omitempty"`
	ZoneClass   string                 `json:"zone_class,omitempty"`
	ZoneColor   string                 `json:"zone_color,omitempty"`
	Description string                 `json:"description,omitempty"`
	BaselineY   float64                `json:"baseline_y,omitempty"`
	Bars        []chartBar             `json:"bars,omitempty"`
	Error       string                 `json:"error,omitempty"`
}

// LiveHandler re-scores a snapshot for every websocket message.
// Each message is evaluated independently; nothing is kept between messages.
type LiveHandler struct {
	evaluator *Evaluator
	upgrader  websocket.Upgrader
	logger    *logger.Logger
}

// NewLiveHandler creates a new websocket handler
func NewLiveHandler(evaluator *Evaluator, log *logger.Logger) *LiveHandler {
	return &LiveHandler{
		evaluator: evaluator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: log,
	}
}

// Serve upgrades the connection and runs the request/reply loop
// GET /ws/score
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.WithError(err).Debug("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(liveReadLimit)
	conn.SetReadDeadline(time.Now().Add(livePongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(livePongWait))
	})

	var writeMu sync.Mutex
	done := make(chan struct{})
	defer close(done)

	go h.pingLoop(conn, &writeMu, done)

	ctx := r.Context()
	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.logger.WithError(err).Debug("Websocket read ended")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(livePongWait))

		reply := h.evaluate(ctx, message)

		writeMu.Lock()
		conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
		err = conn.WriteJSON(reply)
		writeMu.Unlock()
		if err != nil {
			h.logger.WithError(err).Debug("Websocket write failed")
			return
		}
	}
}

func (h *LiveHandler) evaluate(ctx context.Context, message []byte) liveResponse {
	snap, err := decodeSnapshot(bytes.NewReader(message))
	if err != nil {
		return liveResponse{Error: "invalid snapshot: " + err.Error()}
	}

	result, err := h.evaluator.Evaluate(ctx, "ws", snap)
	if err != nil {
		if errors.Is(err, ErrNonFiniteScore) {
			return liveResponse{Error: ErrNonFiniteScore.Error()}
		}
		return liveResponse{Error: err.Error()}
	}

	c := buildChart(result.Ratios)
	return liveResponse{
		Result:      &result,
		Score:       result.FormattedScore(),
		ZoneClass:   result.Zone.CSSClass(),
		ZoneColor:   result.Zone.Color(),
		Description: result.Zone.Description(),
		BaselineY:   c.BaselineY,
		Bars:        c.Bars,
	}
}

// pingLoop keeps the connection alive until done is closed
func (h *LiveHandler) pingLoop(conn *websocket.Conn, writeMu *sync.Mutex, done <-chan struct{}) {
	ticker := time.NewTicker(livePingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			writeMu.Lock()
			err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(liveWriteWait))
			writeMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
