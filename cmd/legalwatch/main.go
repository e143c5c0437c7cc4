package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"legalwatch/internal/acquisition"
	"legalwatch/internal/api"
	"legalwatch/internal/capture"
	"legalwatch/internal/config"
	"legalwatch/internal/ledger"
	"legalwatch/internal/monitoring"
	"legalwatch/internal/notify"
	"legalwatch/internal/provider"
	"legalwatch/internal/provider/escavador"
	"legalwatch/internal/provider/judit"
	"legalwatch/internal/publisher"
	"legalwatch/internal/scheduler"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	st, err := openStores(cfg)
	if err != nil {
		logger.Error("failed to open datastore", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer st.close()
	logger.Info("datastore ready", "driver", cfg.Database.Driver)

	// RabbitMQ is optional; notifications are still persisted without it
	var broker notify.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		broker = rabbitMQ
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Provider registry
	var source provider.ConfigSource = provider.StaticSource(cfg.Providers.Entries)
	if cfg.Providers.Source == "database" {
		source = st.providers
	}
	registry := provider.NewRegistry(source, map[string]provider.Factory{
		escavador.ProviderName: escavador.New,
		judit.ProviderName:     judit.New,
	}, logger)
	if err := registry.Refresh(ctx); err != nil {
		logger.Error("failed to load provider registry", "error", err)
		os.Exit(1)
	}
	go registry.Watch(ctx, cfg.Providers.RefreshInterval)

	gateway := provider.NewGateway(registry, provider.NewResolver(st.providers, logger))

	// Services
	credits := ledger.New(st.ledger, cfg.Pricing.PerCreditCost, logger)
	orchestrator := acquisition.New(st.cache, gateway, credits, cfg.Cache.TTL, cfg.Pricing.Operations, logger)
	fanout := notify.New(st.notifications, broker, logger)

	monitorings := monitoring.NewService(
		st.monitorings,
		st.alerts,
		st.tx,
		orchestrator,
		credits,
		fanout,
		cfg.Monitoring,
		cfg.Pricing.Operations.Monitoring,
		logger,
	)

	runner := capture.NewRunner(st.jobs, st.attachments, gateway, fanout, cfg.Capture, logger)
	if n, err := runner.Resume(ctx); err != nil {
		logger.Error("failed to resume capture jobs", "error", err)
	} else if n > 0 {
		logger.Info("resumed capture jobs", "count", n)
	}

	server := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           api.NewServer(orchestrator, credits, monitorings, runner, st.notifications, logger).Routes(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	go func() {
		logger.Info("http listening", "addr", cfg.HTTP.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			cancel()
		}
	}()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", "signal", sig)
		case <-ctx.Done():
		}
		cancel()
	}()

	sched := scheduler.NewScheduler(monitorings, cfg.Monitoring.Interval, cfg.Monitoring.SweepTimeout, logger)

	logger.Info("starting legalwatch",
		"providers", len(registry.Snapshot().Entries()),
		"sweep_interval", cfg.Monitoring.Interval,
		"batch_size", cfg.Monitoring.BatchSize,
	)

	if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("scheduler error", "error", err)
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	if err := runner.Close(shutdownCtx); err != nil {
		logger.Error("capture runner shutdown failed", "error", err)
	}
	logger.Info("legalwatch stopped")
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
