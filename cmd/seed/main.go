// Package main provides a CLI tool for seeding the database with demo articles.
package main

import (
	"context"
	"fmt"
	"os"

	"inventaro/internal/config"
	"inventaro/internal/domain/article"
	"inventaro/internal/infrastructure/storage/postgres"
	"inventaro/internal/infrastructure/storage/postgres/article_repo"
	"inventaro/migrations"
	"inventaro/pkg/logger"
)

// demoArticles is the starter stock of a small clinic.
var demoArticles = []struct {
	name      string
	quantity  int32
	unit      string
	threshold int32
}{
	{"Face mask", 200, "pcs", 100},
	{"Nitrile gloves", 50, "box", 10},
	{"Hand sanitizer", 24, "bottle", 6},
	{"Gauze bandage", 120, "roll", 30},
	{"Disposable syringe 5ml", 300, "pcs", 50},
	{"Digital thermometer", 5, "pcs", 2},
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
		Service:     "inventaro-seed",
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	logger.SetDefault(log)
	ctx := logger.WithLogger(context.Background(), log)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(ctx, "failed to load config", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfigFrom(cfg.Database))
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	if err := postgres.Migrate(ctx, pool, migrations.FS); err != nil {
		logger.Fatal(ctx, "failed to apply migrations", "error", err)
	}

	txManager := postgres.NewTxManager(pool, cfg.Database.StatementTimeout)
	service := article.NewService(article_repo.NewArticleRepo(txManager), txManager)

	seeded, err := seedArticles(ctx, service)
	if err != nil {
		logger.Fatal(ctx, "failed to seed articles", "error", err)
	}

	log.Infow("seeding completed successfully", "created", seeded)
}

// seedArticles creates the demo articles unless the store already holds data.
func seedArticles(ctx context.Context, service *article.Service) (int, error) {
	existing, err := service.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list articles: %w", err)
	}
	if len(existing) > 0 {
		logger.Info(ctx, "articles already present, skipping", "count", len(existing))
		return 0, nil
	}

	for _, d := range demoArticles {
		qty, threshold := d.quantity, d.threshold
		created, err := service.Create(ctx, article.CreateInput{
			Name:              d.name,
			Quantity:          &qty,
			Unit:              d.unit,
			LowStockThreshold: &threshold,
		})
		if err != nil {
			return 0, fmt.Errorf("create %q: %w", d.name, err)
		}
		logger.Debug(ctx, "article created", "id", created.ID, "name", created.Name)
	}

	return len(demoArticles), nil
}
