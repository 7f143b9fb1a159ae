package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"sample-be/internal/entity"
	"sample-be/internal/model"
	"sample-be/internal/repository/unitofwork"
	"sample-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		color.Yellow("Info: No .env file found, using system env")
	}

	var dsn, driver string
	var seedUsers []string

	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&dsn, "dsn", os.Getenv("DB_CONNECTION_STRING"), "database connection string (default: $DB_CONNECTION_STRING)")
	flagSet.StringVar(&driver, "driver", envOr("DB_DRIVER", database.DriverPostgres), "database driver: postgres or sqlite")
	flagSet.StringArrayVar(&seedUsers, "seed-user", nil, "user to insert after migrating, as id:login (repeatable)")
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil
		}
		return err
	}

	if dsn == "" && driver != database.DriverSqlite {
		return fmt.Errorf("--dsn or DB_CONNECTION_STRING is required")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// 3. AutoMigrate All Models
	color.Cyan("Running AutoMigrate for %d tables...", len(model.All()))
	if err := db.AutoMigrate(model.All()...); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}

	// 4. Seed users referenced as child owners
	ctx := context.Background()
	users := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx).UserRepository()
	for _, raw := range seedUsers {
		user, err := parseSeedUser(raw)
		if err != nil {
			return err
		}
		if err := users.Upsert(ctx, user); err != nil {
			return fmt.Errorf("failed to seed user %s: %w", user.Id, err)
		}
		color.Green("Seeded user %s (%s)", user.Id, user.Login)
	}

	color.Green("Success: Database migration completed.")
	return nil
}

func parseSeedUser(raw string) (*entity.User, error) {
	id, login, ok := strings.Cut(raw, ":")
	if !ok || id == "" || login == "" {
		return nil, fmt.Errorf("invalid --seed-user %q, expected id:login", raw)
	}
	return &entity.User{Id: id, Login: login}, nil
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
