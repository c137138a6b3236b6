// Package main is the entry point for the inventaro API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"inventaro/internal/config"
	"inventaro/internal/domain/article"
	v1 "inventaro/internal/infrastructure/http/v1"
	"inventaro/internal/infrastructure/storage/postgres"
	"inventaro/internal/infrastructure/storage/postgres/article_repo"
	"inventaro/migrations"
	"inventaro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Service:     "inventaro",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	logger.SetDefault(log)
	ctx := logger.WithLogger(context.Background(), log)
	logger.Info(ctx, "starting inventaro server")

	// --- Database ---
	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(cfg.Database))
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()
	postgres.LogPoolStats(ctx, pool.Pool)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
			logger.Fatal(ctx, "failed to apply migrations", "error", err)
		}
		log.Info("database schema is up to date")
	}

	txManager := postgres.NewTxManager(pool, cfg.Database.StatementTimeout)

	// --- Domain ---
	articleRepo := article_repo.NewArticleRepo(txManager)
	articleService := article.NewService(articleRepo, txManager)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Logger:   log,
		Articles: articleService,
		DB:       txManager,
		CORS:     cfg.CORS,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Infow("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
