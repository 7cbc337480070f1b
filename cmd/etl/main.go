package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/maskrx/pharmacy-backend/internal/etl"
	"github.com/maskrx/pharmacy-backend/pkg/config"
	"github.com/maskrx/pharmacy-backend/pkg/db"
	"github.com/maskrx/pharmacy-backend/pkg/logger"
	"github.com/maskrx/pharmacy-backend/pkg/migrate"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "etl"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "etl",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	pharmaciesPath := flag.String("pharmacies", cfg.ETL.PharmaciesPath, "path to pharmacies.json")
	usersPath := flag.String("users", cfg.ETL.UsersPath, "path to users.json")
	flag.Parse()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
		os.Exit(1)
	}

	loader, err := etl.NewLoader(dbClient, logg)
	if err != nil {
		logg.Error(ctx, "failed to create loader", err)
		os.Exit(1)
	}

	ctx = logg.WithFields(ctx, map[string]any{
		"pharmacies": *pharmaciesPath,
		"users":      *usersPath,
	})
	logg.Info(ctx, "starting import")

	if err := loader.Run(ctx, *pharmaciesPath, *usersPath); err != nil {
		logg.Error(ctx, "import failed", err)
		os.Exit(1)
	}

	logg.Info(ctx, "import complete")
}
