package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Settings is the client configuration, read from the environment.
type Settings struct {
	APIBaseURL  string        `env:"JAGUAR_API_URL,      default=http://localhost:3001"`
	Timeout     time.Duration `env:"JAGUAR_API_TIMEOUT,  default=10s"`
	GeoTimeout  time.Duration `env:"JAGUAR_GEO_TIMEOUT,  default=10s"`
	LogLevel    string        `env:"LOG_LEVEL,           default=info"`
	LogPretty   bool          `env:"LOG_PRETTY,          default=false"`
	StoragePath string        `env:"JAGUAR_STORAGE_PATH, default=.jaguarexpress/state.json"`

	Redis RedisSettings
}

// RedisSettings selects the Redis storage backend when Addr is set;
// otherwise the file backend at StoragePath is used.
type RedisSettings struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Settings, error) {
	var s Settings
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &s, nil
}
