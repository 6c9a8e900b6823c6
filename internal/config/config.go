// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables, once at startup.
// The value is passed by injection into every collaborator that needs it;
// nothing reads ambient global state after Load returns.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:3000"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// AuthURL is the base URL of the external auth service. Required.
	AuthURL string

	// AuthAnonKey is the publishable API key sent with unprivileged auth
	// service calls (signup, login, token validation). Required.
	AuthAnonKey string

	// AuthServiceKey is the privileged key for admin auth operations
	// (account deletion). Required.
	AuthServiceKey string

	// GeoNamesURL is the base URL of the geocoding API.
	GeoNamesURL string

	// GeoNamesUsername identifies this application to the geocoding API. Required.
	GeoNamesUsername string

	// CountriesURL is the base URL of the country-lookup API.
	CountriesURL string

	// PlacesURL is the base URL of the places search API.
	PlacesURL string

	// PlacesAPIKey authenticates requests to the places API. Required.
	PlacesAPIKey string

	// PlacesAPIVersion is sent as the X-Places-Api-Version header.
	PlacesAPIVersion string

	// UpstreamTimeout bounds every outbound HTTP call to the geocoding,
	// places, and auth services. No retries, no backoff. Defaults to 10s.
	UpstreamTimeout time.Duration

	// MaxBodyBytes limits incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64

	// ShareBaseURL is the frontend origin used to build public share links.
	ShareBaseURL string
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory is loaded first when present.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	// Ignore a missing .env — deployed environments set variables directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		GeoNamesURL:      getEnv("GEONAMES_URL", "http://api.geonames.org"),
		CountriesURL:     getEnv("COUNTRIES_URL", "https://restcountries.com/v3.1"),
		PlacesURL:        getEnv("PLACES_URL", "https://places-api.foursquare.com"),
		PlacesAPIVersion: getEnv("PLACES_API_VERSION", "2025-06-17"),
		UpstreamTimeout:  getDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		MaxBodyBytes:     getInt64("MAX_BODY_BYTES", 1<<20),
		ShareBaseURL:     getEnv("SHARE_BASE_URL", "http://localhost:3000"),
	}

	var missing []string
	required := []struct {
		key  string
		dest *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"AUTH_URL", &cfg.AuthURL},
		{"AUTH_ANON_KEY", &cfg.AuthAnonKey},
		{"AUTH_SERVICE_KEY", &cfg.AuthServiceKey},
		{"GEONAMES_USERNAME", &cfg.GeoNamesUsername},
		{"PLACES_API_KEY", &cfg.PlacesAPIKey},
	}
	for _, v := range required {
		*v.dest = os.Getenv(v.key)
		if *v.dest == "" {
			missing = append(missing, v.key)
		}
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses the named environment variable as a time.Duration,
// returning fallback when unset or unparsable.
func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

// getInt64 parses the named environment variable as an int64,
// returning fallback when unset or unparsable.
func getInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
