package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"travel-time-service/internal/adapters/repositories"
	"travel-time-service/internal/adapters/routing"
	"travel-time-service/internal/config"
	"travel-time-service/internal/platform/db"
	"travel-time-service/internal/ports"
	"travel-time-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/schollz/progressbar/v3"
	_ "modernc.org/sqlite"
)

// odtool runs offline OD-pair batches: initialize the store, seed it from
// JSON, resolve every pair against OSRM and write the results back.
// With DATABASE_URL set it targets Postgres (schema managed externally);
// otherwise it uses a local SQLite file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	baseURL := config.Get("OSRM_BASE_URL", "http://router.project-osrm.org")
	profile := config.Get("OSRM_PROFILE", "driving")
	delay := config.GetDuration("OD_DELAY", 500*time.Millisecond)
	seedPath := config.Get("SEED_PATH", "")

	repo, closeStore, err := openStore(seedPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeStore()

	provider, err := routing.NewOSRMProvider(baseURL, profile)
	if err != nil {
		log.Fatal(err)
	}

	calc, err := services.NewTravelTimeCalculator(provider)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	pairs, err := repo.ListODPairs(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(pairs) == 0 {
		log.Println("no od pairs stored, nothing to do")
		return
	}

	log.Printf("batch start pairs=%d profile=%s delay=%s", len(pairs), profile, delay)

	bar := progressbar.NewOptions(len(pairs),
		progressbar.OptionSetDescription("computing travel times"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
	)

	saveFailures := 0
	progress := func(processed, total int) {
		_ = bar.Set(processed)
		p := pairs[processed-1]
		if err := repo.SaveResult(ctx, p); err != nil {
			log.Printf("save result failed pair_id=%d err=%v", p.PairID, err)
			saveFailures++
		}
	}

	found, err := calc.CalculateODPairs(ctx, pairs, delay, progress)
	fmt.Println("")
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("batch done processed=%d routes_found=%d save_failures=%d", len(pairs), found, saveFailures)
	if saveFailures > 0 {
		os.Exit(1)
	}
}

// openStore picks the OD-pair store from the environment: Postgres when
// DATABASE_URL is set, a local SQLite file otherwise. The SQLite path also
// initializes the schema and seeds the dataset when SEED_PATH is given.
func openStore(seedPath string) (ports.ODPairRepository, func(), error) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			return nil, nil, err
		}
		return repositories.NewSQLODPairRepository(pool), func() { pool.Close() }, nil
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	store, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open sqlite database %q: %w", dbPath, err)
	}

	if err := repositories.InitSchema(store); err != nil {
		store.Close()
		return nil, nil, err
	}

	if seedPath != "" {
		if err := repositories.SeedFromJSON(store, seedPath); err != nil {
			store.Close()
			return nil, nil, err
		}
		log.Printf("seeded od pairs from %q", seedPath)
	}

	return repositories.NewSqliteODPairRepository(store), func() { store.Close() }, nil
}
