package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration values.
// Tags like `envconfig:"APP_PORT"` specify the environment variable name,
// `default` applies when the variable is unset, `required:"true"` makes it
// mandatory.
type Config struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	LogLevel   string `envconfig:"LOG_LEVEL" default:"info"`
	HttpServer ServerConfig
	Postgres   PostgresConfig
	Media      MediaConfig
	Telegram   TelegramConfig
	Site       SiteConfig
	AdminToken string `envconfig:"ADMIN_TOKEN" required:"true"`
}

// ServerConfig holds HTTP server-specific configuration.
type ServerConfig struct {
	Port         string        `envconfig:"HTTP_SERVER_PORT" default:"8080"`
	TimeoutRead  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_READ" default:"15s"`
	TimeoutWrite time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_WRITE" default:"15s"`
	TimeoutIdle  time.Duration `envconfig:"HTTP_SERVER_TIMEOUT_IDLE" default:"60s"`
}

// PostgresConfig holds PostgreSQL database connection details.
type PostgresConfig struct {
	Host     string `envconfig:"POSTGRES_HOST" required:"true"`
	Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
	User     string `envconfig:"POSTGRES_USER" required:"true"`
	Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
	DBName   string `envconfig:"POSTGRES_DBNAME" required:"true"`
}

// MediaConfig locates uploaded files on disk and on the wire.
type MediaConfig struct {
	Root      string `envconfig:"MEDIA_ROOT" default:"./media"`
	URLPrefix string `envconfig:"MEDIA_URL" default:"/media"`
}

// TelegramConfig carries the contact-notification credentials. These were
// embedded in source in the system this service replaces; they are injected
// here instead. An empty token or chat ID disables notifications.
type TelegramConfig struct {
	BotToken string        `envconfig:"TELEGRAM_BOT_TOKEN"`
	ChatID   string        `envconfig:"TELEGRAM_CHAT_ID"`
	Timeout  time.Duration `envconfig:"TELEGRAM_TIMEOUT" default:"10s"`
}

// SiteConfig groups content-facing knobs: the language set, cache lifetime
// for read-mostly collections, and the catalog page size.
type SiteConfig struct {
	Languages       []string      `envconfig:"LANGUAGES" default:"ru,kk,en"`
	DefaultLanguage string        `envconfig:"DEFAULT_LANGUAGE" default:"ru"`
	CacheTTL        time.Duration `envconfig:"CACHE_TTL" default:"5m"`
	CatalogPageSize int           `envconfig:"CATALOG_PAGE_SIZE" default:"12"`
}

// KnownLanguage reports whether lang is part of the configured language set.
func (sc *SiteConfig) KnownLanguage(lang string) bool {
	for _, code := range sc.Languages {
		if code == lang {
			return true
		}
	}
	return false
}

// DSN constructs the Data Source Name string for connecting to PostgreSQL.
func (pc *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pc.Host, pc.Port, pc.User, pc.Password, pc.DBName)
}

// Load initializes the configuration from environment variables.
// It should be called once during application startup.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}
	if !cfg.Site.KnownLanguage(cfg.Site.DefaultLanguage) {
		return nil, fmt.Errorf("DEFAULT_LANGUAGE %q is not in LANGUAGES (%s)",
			cfg.Site.DefaultLanguage, strings.Join(cfg.Site.Languages, ","))
	}
	return &cfg, nil
}
