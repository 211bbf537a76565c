package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/ytget/catalog-browser/internal/logger"
)

// Default process settings
const (
	DefaultAppID          = "com.ytget.catalog-browser"
	DefaultSearchDebounce = 300 * time.Millisecond
)

var (
	ErrInvalidDebounce = errors.New("search debounce must be positive")
)

// AppConfig holds process configuration read from the environment
type AppConfig struct {
	AppID          string        `env:"CATALOG_APP_ID" envDefault:"com.ytget.catalog-browser"`
	CatalogPath    string        `env:"CATALOG_PATH"`
	SearchDebounce time.Duration `env:"CATALOG_SEARCH_DEBOUNCE" envDefault:"300ms"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat     string `env:"LOG_FORMAT" envDefault:"text"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"10"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogCompress   bool   `env:"LOG_COMPRESS" envDefault:"true"`
}

// LoadAppConfig reads configuration from the environment. Files listed in
// envFiles are loaded first when they exist; variables already set win.
func LoadAppConfig(envFiles ...string) (*AppConfig, error) {
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", file, err)
		}
	}

	cfg := &AppConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is usable
func (c *AppConfig) Validate() error {
	if c.SearchDebounce <= 0 {
		return fmt.Errorf("%w: got %s", ErrInvalidDebounce, c.SearchDebounce)
	}
	return nil
}

// Logger returns the logging part of the configuration
func (c *AppConfig) Logger() logger.Config {
	return logger.Config{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		File:       c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		MaxAge:     c.LogMaxAge,
		Compress:   c.LogCompress,
	}
}
