package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	LogMaxSizeMB  int    `toml:"log_max_size_mb"`
	LogMaxBackups int    `toml:"log_max_backups"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// http
	CorsAllowedOrigins  []string `toml:"cors_allowed_origins"`
	MaxRequestBodyBytes int64    `toml:"max_request_body_bytes"`

	// storage
	StoreDriver      string `toml:"store_driver"`
	PostgresHost     string `toml:"postgres_host"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDBName   string `toml:"postgres_db_name"`
	PostgresUser     string `toml:"postgres_user"`
	PostgresSSLMode  string `toml:"postgres_sslmode"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`
	SQLitePath       string `toml:"sqlite_path"`

	// redis (rate limiting)
	RedisHost                string `toml:"redis_host"`
	RedisPort                string `toml:"redis_port"`
	WriteRateLimitAllowedMin int    `toml:"write_rate_limit_allowed_per_min"`
	// proxies whose X-Forwarded-For is used for rate limit keys
	TrustedProxies []string `toml:"trusted_proxies"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// remote scoring service; empty URL disables it
	RemoteScoringURL            string `toml:"remote_scoring_url"`
	RemoteScoringTimeoutSeconds int    `toml:"remote_scoring_timeout_seconds"`

	// progression
	RecentSessionsWindowDays int `toml:"recent_sessions_window_days"`
}

func (c *Config) RemoteScoringTimeout() time.Duration {
	if c.RemoteScoringTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.RemoteScoringTimeoutSeconds) * time.Second
}

func (c *Config) MaxRequestBody() int64 {
	if c.MaxRequestBodyBytes <= 0 {
		return 64 << 10
	}
	return c.MaxRequestBodyBytes
}

func (c *Config) RecentSessionsWindow() time.Duration {
	if c.RecentSessionsWindowDays <= 0 {
		return 7 * 24 * time.Hour
	}
	return time.Duration(c.RecentSessionsWindowDays) * 24 * time.Hour
}

type Toml struct {
	Development *Config
	Production  *Config
	DockerDev   *Config `toml:"dockerdev"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	case "ddev", "dockerdev":
		cfg = t.DockerDev
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] not set", env)
	}
	return cfg, nil
}

func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode toml config %s: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}

	switch cfg.StoreDriver {
	case "":
		cfg.StoreDriver = StoreDriverPostgres
	case StoreDriverPostgres, StoreDriverSQLite:
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.StoreDriver)
	}
	if cfg.StoreDriver == StoreDriverSQLite && cfg.SQLitePath == "" {
		return nil, fmt.Errorf("sqlite store driver set, but sqlite_path empty")
	}

	return cfg, nil
}
