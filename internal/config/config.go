// Package config loads and validates service configuration from a yaml file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Calendar CalendarConfig `yaml:"calendar"`
	Holidays HolidaysConfig `yaml:"holidays"`
	Redis    RedisConfig    `yaml:"redis"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, listening on all interfaces in containers.
func (c ServerConfig) GetHost() string {
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// CalendarConfig holds the work calendar: a civil timezone and the daily
// work and lunch windows in whole local hours.
// Invariant, checked once at startup: 0 <= start < lunchStart < lunchEnd < end <= 24.
type CalendarConfig struct {
	Timezone       string `yaml:"timezone"`
	StartHour      int    `yaml:"start_hour"`
	EndHour        int    `yaml:"end_hour"`
	LunchStartHour int    `yaml:"lunch_start_hour"`
	LunchEndHour   int    `yaml:"lunch_end_hour"`
}

// Location resolves the configured timezone identifier.
func (c CalendarConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// HolidaysConfig holds the remote holiday calendar settings.
type HolidaysConfig struct {
	APIURL         string `yaml:"api_url"`
	CacheTimeoutMs int    `yaml:"cache_timeout_ms"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// CacheTTL returns the snapshot TTL as a duration.
func (c HolidaysConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTimeoutMs) * time.Millisecond
}

// Timeout returns the fetch timeout as a duration.
func (c HolidaysConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RedisConfig holds the optional shared-cache settings. An empty URL means
// each instance keeps its own in-memory snapshot.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// Load reads and parses the configuration file and applies defaults.
// A missing file is not an error; defaults cover a complete local setup.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// fall through to defaults
	default:
		return nil, err
	}

	// Defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Calendar.Timezone == "" {
		cfg.Calendar.Timezone = "America/Bogota"
	}
	if cfg.Calendar.StartHour == 0 && cfg.Calendar.EndHour == 0 {
		cfg.Calendar.StartHour = 8
		cfg.Calendar.EndHour = 17
		cfg.Calendar.LunchStartHour = 12
		cfg.Calendar.LunchEndHour = 13
	}
	if cfg.Holidays.APIURL == "" {
		cfg.Holidays.APIURL = "https://content.capta.co/Recruitment/WorkingDays.json"
	}
	if cfg.Holidays.CacheTimeoutMs == 0 {
		cfg.Holidays.CacheTimeoutMs = 86400000
	}
	if cfg.Holidays.TimeoutSeconds == 0 {
		cfg.Holidays.TimeoutSeconds = 10
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It loads a .env file first (if present), so local secrets can live in
// .env and real env vars win on deployed instances.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("PORT must be an integer: %w", err)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("TIMEZONE"); v != "" {
		cfg.Calendar.Timezone = v
	}
	if err := overrideHour("WORK_START_HOUR", &cfg.Calendar.StartHour); err != nil {
		return nil, err
	}
	if err := overrideHour("WORK_END_HOUR", &cfg.Calendar.EndHour); err != nil {
		return nil, err
	}
	if err := overrideHour("LUNCH_START_HOUR", &cfg.Calendar.LunchStartHour); err != nil {
		return nil, err
	}
	if err := overrideHour("LUNCH_END_HOUR", &cfg.Calendar.LunchEndHour); err != nil {
		return nil, err
	}
	if v := os.Getenv("HOLIDAYS_API_URL"); v != "" {
		cfg.Holidays.APIURL = v
	}
	if v := os.Getenv("HOLIDAYS_CACHE_TIMEOUT"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("HOLIDAYS_CACHE_TIMEOUT must be milliseconds as an integer: %w", err)
		}
		cfg.Holidays.CacheTimeoutMs = ms
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
	}

	return cfg, nil
}

func overrideHour(name string, dst *int) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	h, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s must be a whole hour: %w", name, err)
	}
	*dst = h
	return nil
}

// Validate checks invariants that must hold before the process serves
// traffic: hour ordering, a resolvable timezone, and a holiday source URL.
func (c *Config) Validate() error {
	if !(0 <= c.Calendar.StartHour &&
		c.Calendar.StartHour < c.Calendar.LunchStartHour &&
		c.Calendar.LunchStartHour < c.Calendar.LunchEndHour &&
		c.Calendar.LunchEndHour < c.Calendar.EndHour &&
		c.Calendar.EndHour <= 24) {
		return fmt.Errorf("work hours must satisfy 0 <= start < lunchStart < lunchEnd < end <= 24, got start=%d lunchStart=%d lunchEnd=%d end=%d",
			c.Calendar.StartHour, c.Calendar.LunchStartHour, c.Calendar.LunchEndHour, c.Calendar.EndHour)
	}
	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Calendar.Timezone, err)
	}
	if c.Holidays.APIURL == "" {
		return fmt.Errorf("holidays api_url must be set")
	}
	if c.Holidays.CacheTimeoutMs < 0 {
		return fmt.Errorf("holidays cache_timeout_ms must not be negative")
	}
	return nil
}
