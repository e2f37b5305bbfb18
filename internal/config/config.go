package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	AppEnv            string
	Port              string
	DBDSN             string // MySQL DSN; empty runs on in-memory SQLite
	JWTSecret         string
	CORSOrigin        string
	AllowRegistration bool
}

// Load reads .env (if present) and collects the server configuration.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	return Config{
		AppEnv:            getenv("APP_ENV", "development"),
		Port:              getenv("PORT", "8080"),
		DBDSN:             os.Getenv("DB_DSN"),
		JWTSecret:         getenv("JWT_SECRET", "dev_secret_change_me"),
		CORSOrigin:        getenv("CORS_ORIGIN", "http://localhost:5173"),
		AllowRegistration: os.Getenv("ALLOW_REGISTRATION") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
