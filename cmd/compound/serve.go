package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-go/compound/internal/config"
	"github.com/vango-go/compound/internal/dev"
	"github.com/vango-go/compound/pkg/middleware"
	"github.com/vango-go/compound/pkg/render"
)

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the demo server",
		Long: `Serve the compound component demo page.

Routes:
  /         the demo page
  /ws       props playground WebSocket
  /metrics  Prometheus metrics
  /healthz  liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if port != 0 {
				cfg.Server.Port = port
			}
			return runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "override the configured port")
	return cmd
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	renderer := render.NewRenderer(render.RendererConfig{Pretty: cfg.Server.Pretty})
	playground := dev.NewPlaygroundServer(demoChildren, logger)
	defer playground.Close()

	r := chi.NewRouter()
	r.Use(middleware.Prometheus())
	r.Use(middleware.OpenTelemetry())

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.RenderToWriter(w, demoPage()); err != nil {
			logger.Error("render page", "error", err)
		}
	})
	r.Get("/ws", playground.HandleWebSocket)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("demo server listening", "addr", cfg.Addr())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
