package config // package config loads application configuration from environment variables

import (
	"log" // log is used to report configuration errors and halt execution
	"os"  // os provides access to environment variables
)

// Store modes. The variant is chosen once at startup and handlers never
// branch on it again.
const (
	StoreModeLive = "live" // MySQL-backed store
	StoreModeMock = "mock" // in-memory store, no external database
)

// Config holds all runtime configuration values. Each field corresponds to
// an environment variable. Database fields are only required when running
// with the live store; in mock mode the service carries no external
// database at all.
type Config struct {
	Env       string // application environment (e.g. "dev", "prod")
	Port      string // HTTP port to listen on
	StoreMode string // "live" or "mock"
	DBUser    string // database username
	DBPass    string // database password (optional)
	DBHost    string // database host address
	DBPort    string // database port number
	DBName    string // database name
}

// Load reads configuration values from environment variables and returns a
// Config. STORE_MODE defaults to live; anything other than "mock" is
// treated as live. Database variables are enforced by must() only for the
// live store, and missing values cause the program to exit with a fatal
// log message.
func Load() Config {
	cfg := Config{
		Env:       getenv("APP_ENV", "dev"),
		Port:      getenv("APP_PORT", "8080"),
		StoreMode: getenv("STORE_MODE", StoreModeLive),
	}
	if cfg.StoreMode != StoreModeMock {
		cfg.StoreMode = StoreModeLive
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS") // empty allowed
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// getenv returns the variable's value or a default when unset.
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
