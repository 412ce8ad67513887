package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	SourceREST     = "rest"
	SourcePostgres = "postgres"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "account-analytics-service")
	v.SetDefault("app.environment", "development")
	v.SetDefault("http.port", 8080)
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("backend.failure_threshold", 5)
	v.SetDefault("backend.open_timeout", "30s")
	v.SetDefault("fetcher.source", SourceREST)
	v.SetDefault("fetcher.cache_ttl", "5m")
	v.SetDefault("fetcher.concurrency", 0)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

// Load reads config.yaml (optional) and the environment. Paths default to
// ./configs and the working directory.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Allow common env vars without APP_ prefix for container deploys
	_ = v.BindEnv("http.port", "HTTP_PORT", "APP_HTTP_PORT")
	_ = v.BindEnv("database.url", "DATABASE_URL", "POSTGRES_DSN", "APP_DATABASE_URL")
	_ = v.BindEnv("redis.url", "REDIS_URL", "APP_REDIS_URL")
	_ = v.BindEnv("backend.url", "BACKEND_URL", "APP_BACKEND_URL")
	_ = v.BindEnv("backend.token", "BACKEND_TOKEN", "APP_BACKEND_TOKEN")
	_ = v.BindEnv("logging.level", "LOG_LEVEL", "APP_LOGGING_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("database.url is not set")
	}
	switch c.Fetcher.Source {
	case SourcePostgres:
	case SourceREST:
		if c.Backend.URL == "" {
			return errors.New("backend.url is required when fetcher.source is rest")
		}
	default:
		return fmt.Errorf("unsupported fetcher.source %q", c.Fetcher.Source)
	}
	return nil
}
