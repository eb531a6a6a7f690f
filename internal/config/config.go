// Package config loads the process configuration: built-in defaults, then an
// optional YAML file named by APTOSWATCH_CONFIG, then environment variables.
// The result is validated before use.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/aptoswatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// FileEnv names the environment variable holding the YAML file path.
const FileEnv = "APTOSWATCH_CONFIG"

// Config is every setting of the process.
type Config struct {
	DatabaseURL  string `envconfig:"DATABASE_URL" yaml:"database_url" validate:"required"`
	RPCURL       string `envconfig:"RPC_URL" yaml:"rpc_url" validate:"required,url"`
	BackupRPCURL string `envconfig:"BLOCK_RPC_URL" yaml:"block_rpc_url" validate:"omitempty,url"`
	GraphQLURL   string `envconfig:"GRAPHQL_URL" yaml:"graphql_url" validate:"required,url"`

	// Threads is the number of shards, one worker each.
	Threads uint8 `envconfig:"THREAD" yaml:"thread" validate:"min=1"`

	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" yaml:"telegram_bot_token"`
	TelegramAPIURL   string `envconfig:"TELEGRAM_API_URL" yaml:"telegram_api_url" validate:"required,url"`
	ReportChat       int64  `envconfig:"REPORT_CHAT" yaml:"report_chat"`

	RedisAddr     string `envconfig:"REDIS_ADDR" yaml:"redis_addr" validate:"omitempty,hostname_port"`
	RedisUsername string `envconfig:"REDIS_USERNAME" yaml:"redis_username"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" yaml:"redis_password"`
	RedisDB       int    `envconfig:"REDIS_DB" yaml:"redis_db" validate:"gte=0"`

	LogLevel    string `envconfig:"LOG_LEVEL" yaml:"log_level" validate:"oneof=debug info warn error"`
	OTelEnabled bool   `envconfig:"OTEL_ENABLED" yaml:"otel_enabled"`
	ServiceName string `envconfig:"SERVICE_NAME" yaml:"service_name" validate:"required"`

	ExplorerURL string `envconfig:"EXPLORER_URL" yaml:"explorer_url" validate:"required,url"`

	StaleClaimAge         time.Duration `envconfig:"STALE_CLAIM_AGE" yaml:"stale_claim_age" validate:"gte=0"`
	HealthCheckInterval   time.Duration `envconfig:"HEALTH_CHECK_INTERVAL" yaml:"health_check_interval" validate:"gte=1s"`
	TipPollInterval       time.Duration `envconfig:"TIP_POLL_INTERVAL" yaml:"tip_poll_interval" validate:"gt=0"`
	PriceRefreshInterval  time.Duration `envconfig:"PRICE_REFRESH_INTERVAL" yaml:"price_refresh_interval" validate:"gt=0"`
	WalletRefreshInterval time.Duration `envconfig:"WALLET_REFRESH_INTERVAL" yaml:"wallet_refresh_interval" validate:"gt=0"`

	NotifyRatePerSecond float64       `envconfig:"NOTIFY_RATE_PER_SECOND" yaml:"notify_rate_per_second" validate:"gt=0"`
	NotifyConcurrency   int           `envconfig:"NOTIFY_CONCURRENCY" yaml:"notify_concurrency" validate:"min=1"`
	DedupeTTL           time.Duration `envconfig:"DEDUPE_TTL" yaml:"dedupe_ttl" validate:"gt=0"`
}

// Default returns the configuration used when nothing overrides a key.
func Default() Config {
	return Config{
		Threads:               3,
		TelegramAPIURL:        "https://api.telegram.org",
		LogLevel:              "info",
		ServiceName:           "aptoswatch",
		ExplorerURL:           "https://explorer.aptoslabs.com",
		StaleClaimAge:         10 * time.Minute,
		HealthCheckInterval:   120 * time.Second,
		TipPollInterval:       100 * time.Millisecond,
		PriceRefreshInterval:  30 * time.Second,
		WalletRefreshInterval: 5 * time.Second,
		NotifyRatePerSecond:   25,
		NotifyConcurrency:     8,
		DedupeTTL:             30 * time.Minute,
	}
}

// Load builds the configuration from defaults, the optional file and the
// environment, in that order.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(FileEnv); path != "" {
		if err := cfg.overlayFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	if cfg.BackupRPCURL == "" {
		cfg.BackupRPCURL = cfg.RPCURL
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) overlayFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// RedisEnabled reports whether a Redis dedupe backend is configured.
func (c Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
