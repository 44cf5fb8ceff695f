package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-trial-participants/internal/config"
	"github.com/sbilibin2017/gw-trial-participants/internal/logger"
	"github.com/sbilibin2017/gw-trial-participants/internal/migrations"
	"github.com/sbilibin2017/gw-trial-participants/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	if cfg.SeedDB {
		if err := migrations.Down(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to roll back migrations: %w", err)
		}
	}
	if err := migrations.Up(ctx, db.DB); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	res, err := seed.Run(ctx, db, cfg.SeedDB)
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Println("Database already seeded, set SEED_DB=true to reset")
		return nil
	}

	fmt.Printf("Seeded %d users and %d participants\n", res.Users, res.Participants)
	for _, u := range seed.Users {
		fmt.Printf("  %s / %s\n", u.Email, u.Password)
	}
	return nil
}
