package config

import (
	"os"
	"strconv"
)

// Config holds all runtime configuration, read from environment variables.
// STORE_BACKEND selects "memory" (default) or "mongo"; Redis is optional and
// enables shared sessions plus listing-response caching when set.
type Config struct {
	Port         string
	StoreBackend string

	MongoURI string
	DBName   string

	RedisAddr string
	RedisPass string

	SessionTTLMin int

	// AuthTokenKey verifies identity tokens from the third-party sign-in
	// provider. Token sign-in is disabled when empty.
	AuthTokenKey string

	// API keys for the external listing sources, owned by the importers.
	DaftAPIKey string
	PPRAPIKey  string
}

func Load() Config {
	return Config{
		Port:          getenv("PORT", "8080"),
		StoreBackend:  getenv("STORE_BACKEND", "memory"),
		MongoURI:      os.Getenv("MONGOURI"),
		DBName:        getenv("DB", "homehunt"),
		RedisAddr:     os.Getenv("REDIS_ADD"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		SessionTTLMin: getenvInt("SESSION_TTL_MIN", 60),
		AuthTokenKey:  os.Getenv("AUTH_TOKEN_KEY"),
		DaftAPIKey:    os.Getenv("DAFT_API_KEY"),
		PPRAPIKey:     os.Getenv("PPR_API_KEY"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
