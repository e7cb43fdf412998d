package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonny/altman/internal/api"
	"github.com/wonny/altman/internal/api/handlers"
	"github.com/wonny/altman/internal/contracts"
	"github.com/wonny/altman/internal/metrics"
	"github.com/wonny/altman/internal/snapshot"
	"github.com/wonny/altman/internal/zscore"
	"github.com/wonny/altman/pkg/config"
	"github.com/wonny/altman/pkg/logger"
)

type serveOptions struct {
	port string
	file string
}

func newServeCmd(global *globalOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "대시보드 서버 시작",
		Long: `Starts the Z-Score dashboard and JSON API.

Endpoints:
  GET  /                    - Dashboard (form + ratio chart)
  POST /api/score           - Score a JSON snapshot
  GET  /api/score/default   - Score the default snapshot
  GET  /ws/score            - Live re-scoring over websocket
  GET  /health              - Health check
  GET  /metrics             - Prometheus metrics (METRICS_ENABLED)

Example:
  go run ./cmd/zscore serve
  go run ./cmd/zscore serve --port 9000 --file acme.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, global, opts)
		},
	}

	cmd.Flags().StringVar(&opts.port, "port", "", "listen port (default PORT or 8080)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML snapshot used as the form default (default SNAPSHOT_FILE)")

	return cmd
}

func runServe(cmd *cobra.Command, global *globalOptions, opts *serveOptions) error {
	// 1. Load config
	cfg, err := global.loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.port != "" {
		cfg.Port = opts.port
	}
	if opts.file != "" {
		cfg.SnapshotFile = opts.file
	}

	// 2. Initialize logger
	log := logger.New(cfg)

	// 3. Default snapshot for the form
	defaults, err := loadDefaults(cfg)
	if err != nil {
		return err
	}

	log.WithFields(map[string]interface{}{
		"port":     cfg.Port,
		"env":      cfg.Env,
		"company":  defaults.Company,
		"metrics":  cfg.MetricsEnabled,
		"rate_rps": cfg.HTTP.RateLimitRPS,
	}).Info("Initializing dashboard server")

	// 4. Wire handlers
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}
	evaluator := handlers.NewEvaluator(zscore.NewCalculator(log), m, log)
	router := api.NewRouter(api.Handlers{
		Score:     handlers.NewScoreHandler(evaluator, defaults, log),
		Dashboard: handlers.NewDashboardHandler(evaluator, defaults, log),
		Live:      handlers.NewLiveHandler(evaluator, log),
	}, m, api.NewClientLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst), log)

	// 5. Start server with graceful shutdown
	server := api.New(cfg, log, router)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	fmt.Fprintf(cmd.OutOrStdout(), "Dashboard running on http://localhost%s\nPress Ctrl+C to stop\n", server.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil {
		return err
	}

	log.Info("Server stopped")
	return nil
}

// loadDefaults returns the configured snapshot file or the built-in example
func loadDefaults(cfg *config.Config) (contracts.FinancialSnapshot, error) {
	if cfg.SnapshotFile == "" {
		return snapshot.Default(), nil
	}

	snap, err := snapshot.Load(cfg.SnapshotFile)
	if err != nil {
		return contracts.FinancialSnapshot{}, fmt.Errorf("load snapshot %s: %w", cfg.SnapshotFile, err)
	}

	return snap, nil
}
