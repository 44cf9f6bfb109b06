package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"travel-time-service/internal/adapters/repositories"
	"travel-time-service/internal/adapters/routing"
	"travel-time-service/internal/api"
	"travel-time-service/internal/config"
	"travel-time-service/internal/services"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the OSRM provider and the SQLite OD-pair store behind ports and
// starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	baseURL := config.Get("OSRM_BASE_URL", "http://router.project-osrm.org")
	profile := config.Get("OSRM_PROFILE", "driving")
	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "")
	port := config.Get("PORT", "8080")
	odDelay := config.GetDuration("OD_DELAY", 500*time.Millisecond)

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}

	// Seeding is optional for the server; odtool is the usual loading path.
	if seedPath != "" {
		if _, err := os.Stat(seedPath); err == nil {
			if err := repositories.SeedFromJSON(db, seedPath); err != nil {
				log.Fatal(err)
			}
		} else {
			log.Printf("seed file %q not found, skipping", seedPath)
		}
	}

	provider, err := routing.NewOSRMProvider(baseURL, profile)
	if err != nil {
		log.Fatal(err)
	}

	calc, err := services.NewTravelTimeCalculator(provider)
	if err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteODPairRepository(db)
	router := api.NewRouter(repo, provider, calc, odDelay, baseURL, profile)

	// The write timeout must outlive rate-limited batch runs, not just the
	// single 30s table call.
	log.Printf("Server listening addr=:%s osrm=%s profile=%s", port, baseURL, profile)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Minute,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
