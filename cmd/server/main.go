package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Simplici0/dfm-advisor/internal/config"
	"github.com/Simplici0/dfm-advisor/internal/db"
	"github.com/Simplici0/dfm-advisor/internal/materials"
	"github.com/Simplici0/dfm-advisor/internal/migrations"
	"github.com/Simplici0/dfm-advisor/internal/seed"
)

const shutdownTimeout = 10 * time.Second

func main() {
	bootLogger := mustBuildLogger(os.Getenv("LOG_LEVEL"), false)
	cfg := config.Load(bootLogger)

	logger := mustBuildLogger(cfg.LogLevel, cfg.IsDev())
	defer logger.Sync() //nolint:errcheck // best-effort flush

	ctx := context.Background()

	database, err := db.Open(ctx, cfg.DBPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	defer database.Close()

	if err := migrations.Up(database, logger); err != nil {
		logger.Fatal("failed to run database migrations", zap.Error(err))
	}

	stats, err := seed.Run(ctx, database)
	if err != nil {
		logger.Fatal("failed to seed material data", zap.Error(err))
	}
	logger.Info("material data seeded", zap.Int("inserts", stats.Inserts))

	store, err := materials.NewStore(database, cfg.MaterialCacheSize)
	if err != nil {
		logger.Fatal("failed to create material store", zap.Error(err))
	}

	srv := newServer(store, cfg.Rates, cfg.MaxBodyBytes, logger)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", httpServer.Addr),
			zap.String("env", cfg.Env),
		)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server stopped", zap.Error(err))
		return
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func mustBuildLogger(level string, development bool) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	logger, err := cfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	return logger
}
