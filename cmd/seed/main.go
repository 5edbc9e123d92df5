// Copyright (c) 2026 ApiChistes. All rights reserved.

// Command seed inserts a small set of sample jokes in one batch.
//
// It is intended for local development and demos; running it twice inserts
// the samples twice.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/unidentifiedchris/topicos/internal/joke"
	"github.com/unidentifiedchris/topicos/internal/platform/config"
	"github.com/unidentifiedchris/topicos/internal/platform/constants"
	"github.com/unidentifiedchris/topicos/internal/platform/migration"
	pgstore "github.com/unidentifiedchris/topicos/internal/platform/postgres"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("app", constants.AppName+"-seed"))
	slog.SetDefault(log)

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	samples := []*joke.Joke{
		{Text: "Joke 1", Author: "Author 1", Score: 1, Category: joke.CategoryMalo},
		{Text: "Joke 2", Author: "Author 2", Score: 5, Category: joke.CategoryChistoso},
		{Text: "Joke 3", Author: "Author 3", Score: 10, Category: joke.CategoryHumorNegro},
	}

	repository := joke.NewPostgresRepository(pool)
	must(log, repository.InsertMany(ctx, samples), "insert sample jokes")

	log.Info("database_seeded", slog.Int("jokes", len(samples)))
}

// must logs a structured fatal error and terminates the process if err is non-nil.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
