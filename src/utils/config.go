package utils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/yashkumarverma/cronphrase/src/cronphrase"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Language          string            `env:"CRON_LANGUAGE" envDefault:"en"`
	DayNameFormat     string            `env:"CRON_DAY_NAME_FORMAT" envDefault:"short"`
	CustomDayMappings map[string]string `env:"CRON_CUSTOM_DAY_MAPPINGS"`
	TimeZone          string            `env:"CRON_TIME_ZONE" envDefault:""`
	SettingsFile      string            `env:"CRON_SETTINGS_FILE" envDefault:""`

	CacheEnabled    bool          `env:"CACHE_ENABLED" envDefault:"false"`
	CacheURLScheme  string        `env:"CACHE_URL_SCHEME" envDefault:"redis"`
	CacheClusterURL string        `env:"CACHE_CLUSTER_URL" envDefault:"localhost"`
	CachePort       string        `env:"CACHE_PORT" envDefault:"6379"`
	CachePassword   string        `env:"CACHE_PASSWORD" envDefault:""`
	CacheUsername   string        `env:"CACHE_USERNAME" envDefault:""`
	CacheTLSDomain  string        `env:"CACHE_TLS_DOMAIN" envDefault:""`
	CacheTTL        time.Duration `env:"CACHE_TTL" envDefault:"24h"`
}

var appConfig *Config

func GetConfig(ctx context.Context) *Config {
	if appConfig != nil {
		return appConfig
	}

	err := godotenv.Load(".env")
	if err != nil {
		GetAppLogger(ctx).Infof("Unable to load .env file. Continuing without loading it...")
	}
	appConfig, err = ParseConfig()
	if err != nil {
		panic(err)
	}
	return appConfig
}

// ParseConfig reads the configuration from the environment only.
func ParseConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Settings returns the conversion settings. A settings file, when set,
// replaces the values taken from the environment.
func (c *Config) Settings() (cronphrase.Settings, error) {
	if c.SettingsFile != "" {
		return LoadSettingsFile(c.SettingsFile)
	}
	return cronphrase.Settings{
		Language:          c.Language,
		DayNameFormat:     cronphrase.DayNameFormat(c.DayNameFormat),
		CustomDayMappings: c.CustomDayMappings,
	}, nil
}

// Location resolves the configured time zone; an empty zone yields nil.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return nil, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %s: %w", c.TimeZone, err)
	}
	return loc, nil
}

// CacheAddr is the host:port of the cache server.
func (c *Config) CacheAddr() string {
	return fmt.Sprintf("%s:%s", c.CacheClusterURL, c.CachePort)
}

// LoadSettingsFile reads conversion settings from a YAML file. Missing
// language and format fall back to the defaults.
func LoadSettingsFile(path string) (cronphrase.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cronphrase.Settings{}, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	settings := cronphrase.DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return cronphrase.Settings{}, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return settings, nil
}
