package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service configuration, read from the environment with an
// optional .env file.
type Config struct {
	Addr           string
	RedisAddr      string
	PostgresDSN    string
	KafkaBrokers   []string
	MigrationsPath string

	MinMonthlyPaymentCents int64
	RateLimitPerMinute     int
	QuoteCacheTTL          time.Duration
}

// Load reads the configuration. A missing .env file is not an error; plain
// environment variables work on their own (Docker, CI).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:                   getenv("LISTEN_ADDR", ":8080"),
		RedisAddr:              getenv("REDIS_ADDR", ""),
		PostgresDSN:            getenv("POSTGRES_DSN", ""),
		KafkaBrokers:           splitList(getenv("KAFKA_BROKERS", "")),
		MigrationsPath:         getenv("MIGRATIONS_PATH", "migrations"),
		MinMonthlyPaymentCents: getenvInt("MIN_MONTHLY_PAYMENT_CENTS", 5000),
		RateLimitPerMinute:     int(getenvInt("RATE_LIMIT_PER_MINUTE", 60)),
		QuoteCacheTTL:          time.Duration(getenvInt("QUOTE_CACHE_TTL_SECONDS", 300)) * time.Second,
	}
}

func getenv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getenvInt(key string, def int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	val, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return def
	}
	return val
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
