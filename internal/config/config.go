package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config carries everything the server needs at startup. Values come from
// an optional YAML settings file overridden by environment variables, so a
// fleet deployment can ship one file and tweak single hosts by env.
type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string

	// TablePrefix namespaces tables per environment (dev_, test_, prod_)
	// so environments can share one database.
	TablePrefix string

	// Timezone is the IANA zone used to interpret absolute scheduling
	// instants entered by operators.
	Timezone string
	Location *time.Location `yaml:"-"`

	// DefaultSlideDuration is the fallback slide duration in seconds when
	// a slide neither sets one nor delegates to its content.
	DefaultSlideDuration int
}

// settingsFile mirrors the optional YAML settings file.
type settingsFile struct {
	Port                 string `yaml:"port"`
	Environment          string `yaml:"environment"`
	DatabaseURL          string `yaml:"database_url"`
	CORSOrigins          string `yaml:"cors_origins"`
	TablePrefix          string `yaml:"table_prefix"`
	Timezone             string `yaml:"timezone"`
	DefaultSlideDuration int    `yaml:"default_slide_duration"`
}

// Load builds the configuration. Resolution order: built-in defaults, then
// the YAML file named by SETTINGS_FILE (if any), then environment
// variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                 "8080",
		Environment:          "dev",
		CORSOrigins:          "http://localhost:3000",
		Timezone:             "UTC",
		DefaultSlideDuration: 3,
	}

	if path := os.Getenv("SETTINGS_FILE"); path != "" {
		if err := applySettingsFile(cfg, path); err != nil {
			return nil, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("ENVIRONMENT", cfg.Environment)
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.CORSOrigins = getEnv("CORS_ORIGINS", cfg.CORSOrigins)
	cfg.TablePrefix = getEnv("TABLE_PREFIX", cfg.TablePrefix)
	cfg.Timezone = getEnv("TIMEZONE", cfg.Timezone)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return cfg, nil
}

func applySettingsFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings file: %w", err)
	}

	var file settingsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse settings file %s: %w", path, err)
	}

	if file.Port != "" {
		cfg.Port = file.Port
	}
	if file.Environment != "" {
		cfg.Environment = file.Environment
	}
	if file.DatabaseURL != "" {
		cfg.DatabaseURL = file.DatabaseURL
	}
	if file.CORSOrigins != "" {
		cfg.CORSOrigins = file.CORSOrigins
	}
	if file.TablePrefix != "" {
		cfg.TablePrefix = file.TablePrefix
	}
	if file.Timezone != "" {
		cfg.Timezone = file.Timezone
	}
	if file.DefaultSlideDuration > 0 {
		cfg.DefaultSlideDuration = file.DefaultSlideDuration
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
