package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/config"
	"lane-analytics-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/shipments.csv")
	if err := initAndSeed(pool, seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(pool *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(pool); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Println("Schema ready.")

	log.Printf("Seeding shipments from %s...", seedPath)
	if err := repositories.SeedFromCSV(pool, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Println("Seeding complete.")

	return nil
}
