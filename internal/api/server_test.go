package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/altman/pkg/config"
	"github.com/wonny/altman/pkg/logger"
)

func TestNew_AppliesConfig(t *testing.T) {
	cfg := &config.Config{
		Port: "9123",
		Env:  "development",
		HTTP: config.HTTPConfig{
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 3 * time.Second,
			IdleTimeout:  4 * time.Second,
		},
	}

	srv := New(cfg, logger.Nop(), nil)

	assert.Equal(t, ":9123", srv.Addr())
	assert.Equal(t, 2*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 3*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, 4*time.Second, srv.httpServer.IdleTimeout)
}
