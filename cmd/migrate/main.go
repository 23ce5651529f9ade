package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"journey-api/internal/database/migrations"
	"journey-api/internal/logger"
)

// Applies the schema migrations and, with -seed, the CMS defaults.
// Usage: migrate [-dir ./migrations] [-seed] [up|down]
func main() {
	logger := logger.NewLogger()
	defer logger.Close()

	dir := flag.String("dir", "./migrations", "directory containing migration files")
	seed := flag.Bool("seed", false, "also run the CMS seed migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logger.Warn("CONFIG", ".env file not found, using environment variables")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logger.Fatal("CONFIG", "DATABASE_URL not set")
	}

	sqldb, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to open PostgreSQL: %v", err))
	}
	if err := sqldb.Ping(); err != nil {
		logger.Fatal("DATABASE", fmt.Sprintf("Failed to connect to PostgreSQL: %v", err))
	}
	bunDB := bun.NewDB(sqldb, pgdialect.New())
	defer bunDB.Close()

	runner := migrations.NewRunner(bunDB, migrations.MigrateOptions{
		MigrationsDir: *dir,
		SeedData:      *seed,
	})
	defer runner.Close()

	switch flag.Arg(0) {
	case "down":
		if err := runner.MigrateDown(); err != nil {
			logger.Fatal("DATABASE", fmt.Sprintf("Migration down failed: %v", err))
		}
		logger.Info("DATABASE", "✅ Rolled back all migrations")
	case "", "up":
		if err := runner.RunMigrations(); err != nil {
			logger.Fatal("DATABASE", fmt.Sprintf("Migration up failed: %v", err))
		}
		logger.Info("DATABASE", "✅ Migrations applied")
	default:
		logger.Fatal("CONFIG", fmt.Sprintf("Unknown command %q, expected up or down", flag.Arg(0)))
	}
}
