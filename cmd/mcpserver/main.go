package main

import (
	"context"
	"io"
	"log"
	"os"
	"strings"

	"lane-analytics-service/internal/adapters/cache"
	"lane-analytics-service/internal/adapters/lookup"
	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/mcp"
	"lane-analytics-service/internal/platform/db"
	"lane-analytics-service/internal/ports"
	"lane-analytics-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main starts the analytics engine behind an MCP stdio transport. The
// process must keep stdout clean for protocol traffic, so all logging goes
// to stderr and only when LANE_DEBUG is set.
func main() {
	_ = godotenv.Load()

	if os.Getenv("LANE_DEBUG") == "" {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
		log.Println("Lane Analytics MCP server started")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.SetOutput(os.Stderr)
		log.Fatal("DATABASE_URL is required")
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	defer pool.Close()

	var snapshot ports.LaneSnapshotStore
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.SetOutput(os.Stderr)
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		snapshot = cache.NewRedisLaneSnapshot(redis.NewClient(opts))
	}

	locations := lookup.NewStaticLocationResolver()
	carriers := lookup.NewStaticCarrierResolver()
	source := repositories.NewPostgresAggregateSource(pool)

	laneCache := services.NewLaneCache(source, locations, snapshot)
	engine := services.NewEngine(laneCache, locations, carriers)

	server := mcp.NewServer(engine, os.Stdin, os.Stdout)
	if err := server.Run(context.Background()); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
