package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"lane-analytics-service/internal/adapters/cache"
	"lane-analytics-service/internal/adapters/lookup"
	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/api"
	"lane-analytics-service/internal/config"
	"lane-analytics-service/internal/platform/db"
	"lane-analytics-service/internal/ports"
	"lane-analytics-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, static lookups) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}
	port := config.Get("PORT", "8080")

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	// The Redis snapshot tier is optional: without REDIS_URL each process
	// derives its own lane dataset from Postgres.
	var snapshot ports.LaneSnapshotStore
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		snapshot = cache.NewRedisLaneSnapshot(redis.NewClient(opts))
		log.Println("Redis lane snapshot enabled")
	}

	locations := lookup.NewStaticLocationResolver()
	carriers := lookup.NewStaticCarrierResolver()
	source := repositories.NewPostgresAggregateSource(pool)

	laneCache := services.NewLaneCache(source, locations, snapshot)
	engine := services.NewEngine(laneCache, locations, carriers)
	router := api.NewRouter(engine)

	// WriteTimeout leaves room for the first request, which pays for the
	// full lane derivation.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
