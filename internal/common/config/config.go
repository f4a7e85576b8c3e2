package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"4000"`
		Origin string `env:"ORIGIN" envDefault:"https://gitfa.me"`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	GitHub struct {
		Token    string `env:"GITHUB_TOKEN,required,notEmpty"`
		Endpoint string `env:"GITHUB_GRAPHQL_ENDPOINT" envDefault:"https://api.github.com/graphql"`

		// Repositories fetched per page. GitHub caps connection pages at
		// 100 nodes; 25 keeps the per-repo commit history lookups cheap.
		PageSize int `env:"GITHUB_PAGE_SIZE" envDefault:"25"`
	}

	Cache struct {
		// TTL bounds both the Redis key expiry and the application-level
		// staleness threshold for explicit refreshes.
		TTL time.Duration `env:"CACHE_TTL" envDefault:"24h"`
	}
}

// Load reads configuration from the environment, with a best-effort .env
// file for local development.
func Load() (*Config, error) {
	// Ignore a missing .env file; in production the variables are set
	// directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// RedisAddr returns the host:port pair for the Redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
