package main

import (
	"log"
	"os"
	"strings"

	"lane-analytics-service/internal/adapters/cache"
	"lane-analytics-service/internal/adapters/lookup"
	"lane-analytics-service/internal/adapters/repositories"
	"lane-analytics-service/internal/platform/db"
	"lane-analytics-service/internal/ports"
	"lane-analytics-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lanectl",
	Short: "Lane analytics from the command line",
	Long:  "lanectl queries the lane behavioral analytics engine directly against the shipment store.",
	// Subcommands build the engine themselves so --help never touches the DB.
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	rootCmd.AddCommand(
		statsCmd,
		clustersCmd,
		lanesCmd,
		frictionCmd,
		terminalsCmd,
		earlyCmd,
		regionCmd,
		similarCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newEngine wires the same adapter stack as the API server. The returned
// cleanup closes the DB pool.
func newEngine() (*services.Engine, func(), error) {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		return nil, nil, errMissingDatabaseURL
	}

	pool, err := db.Open(databaseURL)
	if err != nil {
		return nil, nil, err
	}

	var snapshot ports.LaneSnapshotStore
	if redisURL := os.Getenv("REDIS_URL"); strings.TrimSpace(redisURL) != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		snapshot = cache.NewRedisLaneSnapshot(redis.NewClient(opts))
	}

	locations := lookup.NewStaticLocationResolver()
	carriers := lookup.NewStaticCarrierResolver()
	source := repositories.NewPostgresAggregateSource(pool)

	laneCache := services.NewLaneCache(source, locations, snapshot)
	engine := services.NewEngine(laneCache, locations, carriers)

	return engine, func() { pool.Close() }, nil
}
