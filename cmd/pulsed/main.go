package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/application/usecase"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/port"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/domain/service"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/infrastructure/config"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/infrastructure/ml"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/infrastructure/telemetry"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/presentation/rest"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/internal/presentation/web"
	"github.com/kakkerlagourishankar/Predictive-Pulse-Harnessing-Machine-Learning-for-Blood-Pressure-Analysis/pkg/observability"
)

const serviceName = "pulsed"

func main() {
	if err := run(); err != nil {
		slog.Error("pulsed exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration.
	cfg, err := config.Load(getEnv("CONFIG_FILE", config.DefaultPath))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: serviceName,
	})

	logger.Info("starting pulsed",
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
		"model_path", cfg.ModelPath,
		"demo_mode", cfg.DemoMode,
	)

	// Initialize tracing.
	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: serviceName,
		Endpoint:    cfg.OTLPEndpoint,
		Insecure:    true,
		SampleRatio: cfg.TraceSampleRatio,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.Background()); err != nil {
				logger.Warn("tracer shutdown error", "error", err)
			}
		}()
	}

	// Metrics.
	var (
		recorder       port.AssessmentRecorder
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		provider, handler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
		if err != nil {
			return fmt.Errorf("init metrics: %w", err)
		}
		defer func() { _ = provider.Shutdown(context.Background()) }()

		rec, err := telemetry.NewMetricsRecorder(provider)
		if err != nil {
			return fmt.Errorf("init assessment metrics: %w", err)
		}
		recorder = rec
		metricsHandler = handler
	}

	// Stage metadata must cover every stage before any request is served.
	catalog, err := service.NewCatalog(service.DefaultStageMetadata())
	if err != nil {
		return fmt.Errorf("stage catalog: %w", err)
	}

	// Classifier.
	loaded := ml.Load(cfg.ModelPath, cfg.AllowDemo(), logger)

	// Wire use case and presentation.
	assessRisk := usecase.NewAssessRisk(loaded.Classifier, catalog, recorder, logger)

	renderer, err := web.NewRenderer()
	if err != nil {
		return fmt.Errorf("init renderer: %w", err)
	}

	router := web.NewRouter(web.RouterConfig{
		Handler: web.NewHandler(assessRisk, renderer, logger),
		Health: rest.NewHealthHandler(logger, serviceName, rest.ClassifierState{
			Mode:  string(loaded.Mode),
			Ready: loaded.Ready(),
		}),
		Metrics:   metricsHandler,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress(), "classifier", loaded.Mode)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	// Graceful shutdown.
	logger.Info("shutting down pulsed")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}

	logger.Info("pulsed stopped")
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
