package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"net"
	"newswatch/contract"
	"newswatch/domain"
	"newswatch/infrastructure/discord"
	"newswatch/infrastructure/grpc/server"
	"newswatch/infrastructure/inference"
	"newswatch/infrastructure/storage"
	"newswatch/internal"
	"newswatch/lexicon"
	"newswatch/links"
	"newswatch/moderation"
	"newswatch/observability"
	"newswatch/runtime"
	"newswatch/runtime/workers"
	"newswatch/services"
	"newswatch/summarizer"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 5 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the bot lifecycle, and centralizes error reporting.
// Returning instead of exiting lets every deferred cleanup run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()
	debug := logger.Enabled(ctx, slog.LevelDebug)

	// 2. Signals and scanners
	registry, err := loadRegistry(config.LexiconDir)
	if err != nil {
		return exitConfig, fmt.Errorf("lexicon error: %w", err)
	}
	logger.Info(fmt.Sprintf("%d phrases, %d blacklisted domains and %d social domains loaded",
		len(registry.Phrases()), len(registry.Blacklisted()), len(registry.Social())))

	classifier, err := moderation.NewClassifier(registry)
	if err != nil {
		return exitConfig, fmt.Errorf("classifier error: %w", err)
	}
	triage := links.NewTriage(registry)

	// 3. Summary cache (BadgerDB)
	db, err := badger.Open(storage.BadgerOptions(config.CachePath, logger, debug))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	cache := storage.NewSummaryCache(db, logger, config.CacheTTL)
	stats := observability.NewPipelineStats()

	if debug && config.DebugPort > 0 {
		endpoint := "/inspect"
		debugServer := internal.NewDebugServer(db, logger, config.DebugPort, endpoint, SummaryMapper, stats.Snapshot)
		debugServer.Start()
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = debugServer.Shutdown(shutdownCtx)
		}()
	}

	// 4. Summarization pipeline
	service, err := buildSummaryService(ctx, config)
	if err != nil {
		return exitConfig, err
	}
	adapter := summarizer.NewAdapter(logger,
		summarizer.NewHTTPFetcher(nil, summarizer.DefaultMaxBodySize),
		service, cache,
		summarizer.Config{
			FetchTimeout:   config.FetchTimeout,
			SummaryTimeout: config.SummaryTimeout,
			Options:        domain.DefaultSummaryOptions,
			Limiter:        config.SummaryLimiter(),
		})

	// 5. Platform, supervision & dispatch
	session, err := discord.NewSession(logger, config.DiscordToken)
	if err != nil {
		return exitConfig, err
	}

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, stats,
		config.BufferSize, config.SummaryWorkers, config.HeartbeatInterval)

	router := services.NewRouter(config.CommandPrefix).Register(
		services.NewCheckNewsCommand(logger, triage, session),
		services.NewSummaryCommand(logger, orchestrator, session, stats),
		services.NewHelpCommand(config.CommandPrefix, session),
	)
	dispatcher := services.NewDispatcher(logger, classifier, router, session, session,
		session.BotID, config.AckLookupTimeout, stats)

	health := server.NewHealthServer(logger)
	session.OnConnectionChange(health.SetConnected)
	session.OnMessage(func(msg domain.InboundMessage) {
		orchestrator.Submit(msg)
	})

	// 6. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	orchestratorDone := make(chan struct{})

	go func() {
		defer close(orchestratorDone)
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx, dispatcher, adapter, session); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 7. Health endpoint
	var grpcServer *grpc.Server
	if config.HealthPort > 0 {
		address := fmt.Sprintf("0.0.0.0:%d", config.HealthPort)
		listener, err := net.Listen("tcp", address)
		if err != nil {
			orchestrator.Stop()
			awaitWorkers(logger, orchestratorDone, shutdownTimeout)
			return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
		}
		grpcServer = grpc.NewServer(grpc.ChainUnaryInterceptor(grpc3.UnaryLoggingInterceptor(logger)))
		health.Register(grpcServer)

		go func() {
			logger.Info("Starting gRPC health server", "address", address, "at", time.Now().UTC())
			if err := grpcServer.Serve(listener); err != nil && !stderrors.Is(err, grpc.ErrServerStopped) {
				errChan <- fmt.Errorf("gRPC server error: %w", err)
			}
		}()
	}

	// 8. Gateway connection
	if err := session.Open(ctx); err != nil {
		shutdown(logger, health, grpcServer, nil, orchestrator, orchestratorDone)
		return exitRuntime, err
	}
	health.SetConnected(true)
	logger.Info("Bot is online", "prefix", config.CommandPrefix, "backend", config.SummaryBackend)

	// 9. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		shutdown(logger, health, grpcServer, session, orchestrator, orchestratorDone)
		return exitRuntime, err
	}

	shutdown(logger, health, grpcServer, session, orchestrator, orchestratorDone)
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

// shutdown stops intake first, then the workers, and waits for them before deferred cleanup runs.
// session may be nil when it never opened.
func shutdown(logger *slog.Logger, health *server.HealthServer, grpcServer *grpc.Server,
	session *discord.Session, orchestrator *runtime.Orchestrator, orchestratorDone <-chan struct{}) {
	logger.Info("Shutting down gracefully...")
	health.Shutdown()
	if session != nil {
		if err := session.Close(); err != nil {
			logger.Warn("Discord session close failed", "error", err)
		}
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}
	orchestrator.Stop()
	awaitWorkers(logger, orchestratorDone, shutdownTimeout)
}

// awaitWorkers blocks until done is closed or timeout elapses, and reports which came first.
func awaitWorkers(logger *slog.Logger, done <-chan struct{}, timeout time.Duration) bool {
	select {
	case <-done:
		logger.Info("All workers stopped")
		return true
	case <-time.After(timeout):
		logger.Warn("Workers still running after shutdown timeout", "timeout", timeout)
		return false
	}
}

func loadRegistry(dir string) (*lexicon.Registry, error) {
	if dir == "" {
		return lexicon.Default()
	}
	return lexicon.Load(dir)
}

func buildSummaryService(ctx context.Context, config internal.Config) (contract.SummaryService, error) {
	switch config.SummaryBackend {
	case internal.BackendGemini:
		client, err := inference.NewGeminiClient(ctx, config.GeminiAPIKey, config.GeminiModel, "")
		if err != nil {
			return nil, fmt.Errorf("gemini backend: %w", err)
		}
		return client, nil
	default:
		return inference.NewHuggingFaceClient(config.HFAPIURL, config.HFAPIToken, nil), nil
	}
}

// SummaryMapper renders a cache entry for the debug inspector.
func SummaryMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)

	cached, err := storage.DecodeSummary(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = "SUMMARY"
	row.Detail = cached.Summary
	if !cached.CachedAt.IsZero() {
		row.Timestamp = cached.CachedAt.Format("2006-01-02 15:04:05")
	}
	return row
}
