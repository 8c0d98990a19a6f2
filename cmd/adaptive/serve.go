package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kennonjarvis-debug/JARVIS-AI/internal/codegen"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/config"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/engine"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/intent"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/memory"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/pattern"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/server"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/stats"
	"github.com/kennonjarvis-debug/JARVIS-AI/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the adaptive prediction REST service",
	Long: `Starts the HTTP service exposing intent prediction, pattern learning,
memory-backed prediction, code generation, and learning statistics.

Previously logged observations are replayed from the local database at startup
so the learner resumes where it left off.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
}

func runServe() error {
	// Logger
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	// Observation log
	dbPath := cfg.Storage.DBPath
	if dbPath == "" {
		dbPath = store.DefaultDBPath()
	}
	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("open observation store: %w", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrate observation store: %w", err)
	}

	// Learner, replayed from the log
	learner := pattern.NewLearner()
	if err := db.Replay(learner); err != nil {
		return fmt.Errorf("replay observations: %w", err)
	}
	if err := seedFromSnapshot(learner, cfg.Storage.SnapshotPath); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	logger.Info("learner state replayed",
		"observations", learner.ObservationCount(),
		"sequences", learner.SequenceCount(),
	)

	// Memory collaborator
	memClient := memory.NewClient(cfg.Memory.URL, cfg.Memory.APIKey, cfg.Memory.Timeout, logger)

	// Engine
	eng := engine.New(learner, memClient, engine.Options{
		RecallLimit: cfg.Predict.RecallLimit,
		CacheTTL:    cfg.Predict.CacheTTL,
		Logger:      logger,
		Log:         db,
	})

	// Intent matcher, with optional rules file and hot reload
	matcher := intent.NewMatcher()
	if cfg.Intent.RulesPath != "" {
		if err := intent.LoadRulesInto(matcher, cfg.Intent.RulesPath); err != nil {
			return fmt.Errorf("load intent rules: %w", err)
		}
		if cfg.Intent.WatchRules {
			watcher, err := intent.WatchRules(matcher, cfg.Intent.RulesPath, func(err error) {
				logger.Warn("intent rules reload failed", "error", err)
			})
			if err != nil {
				return fmt.Errorf("watch intent rules: %w", err)
			}
			defer watcher.Close()
		}
	}

	generator := codegen.NewGenerator()
	aggregator := stats.NewAggregator(eng)

	router := server.NewRouter(eng, matcher, generator, aggregator, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("adaptive server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	// Save a snapshot on the way out when configured
	if cfg.Storage.SnapshotPath != "" {
		if err := learner.Save(cfg.Storage.SnapshotPath); err != nil {
			logger.Error("snapshot save failed", "error", err)
		}
	}

	logger.Info("server stopped")
	return nil
}

// seedFromSnapshot restores learner state from the configured snapshot file.
// The observation log is the authoritative history, so the snapshot is only
// consulted when replay produced nothing (a fresh host or wiped database).
// A missing snapshot file is not an error.
func seedFromSnapshot(learner *pattern.Learner, path string) error {
	if path == "" {
		return nil
	}
	if learner.ObservationCount() > 0 || learner.SequenceCount() > 0 {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return learner.Load(path)
}
