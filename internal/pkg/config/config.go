package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	APIBaseURL string        `env:"API_BASE_URL, default=http://localhost:8000/api"`
	APITimeout time.Duration `env:"API_TIMEOUT,  default=15s"`
	Env        string        `env:"ENV,          default=development"`
	LogLevel   string        `env:"LOG_LEVEL,    default=info"`

	Storage StorageConfig
	Redis   RedisConfig
}

type StorageConfig struct {
	// Backend selects the durable key-value store: "file" or "redis".
	Backend string `env:"STORAGE_BACKEND, default=file"`
	Path    string `env:"STORAGE_PATH,    default=.clothingkit/state.json"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
