// Package config resolves process configuration from the environment, with a
// .env file loaded on startup when present.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads a .env file into the process environment if one exists. Missing
// files are fine; the environment wins over file values either way.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Port returns the HTTP listen port.
func Port() string { return getenv("PORT", "8080") }

// UploadDir returns the directory uploaded extracts are saved to.
func UploadDir() string { return getenv("UPLOAD_DIR", "uploads") }

// DBDriver returns the database driver name: "sqlite" or "postgres".
func DBDriver() string { return getenv("DB_DRIVER", "sqlite") }

// SQLitePath returns the sqlite database file path.
func SQLitePath() string { return getenv("SQLITE_PATH", "orders_etl.db") }
