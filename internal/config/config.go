package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultConfigFile = "plantcare.yaml"

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`

	Auth struct {
		Secret string `yaml:"secret"`
	} `yaml:"auth"`

	Timezone string `yaml:"timezone"`

	Reminders struct {
		UpcomingLimit int `yaml:"upcoming_limit"`
	} `yaml:"reminders"`

	Digest struct {
		Enabled  bool   `yaml:"enabled"`
		Schedule string `yaml:"schedule"`
	} `yaml:"digest"`
}

// Load reads path (or plantcare.yaml when path is empty and the file
// exists), fills defaults, applies environment overrides and validates.
func Load(path string) (*Config, error) {
	config := &Config{}

	resolved, explicit := resolveConfigPath(path)
	if resolved != "" {
		data, err := os.ReadFile(resolved)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse config file %s: %w", resolved, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("read config file %s: %w", resolved, err)
		}
	}

	config.applyDefaults()
	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func resolveConfigPath(path string) (string, bool) {
	if strings.TrimSpace(path) != "" {
		return path, true
	}
	if fromEnv := strings.TrimSpace(os.Getenv("PLANTCARE_CONFIG")); fromEnv != "" {
		return fromEnv, true
	}
	return DefaultConfigFile, false
}

func (config *Config) applyDefaults() {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.Database.Path == "" {
		config.Database.Path = filepath.Join("data", "plantcare.db")
	}
	if config.Timezone == "" {
		config.Timezone = "UTC"
	}
	if config.Reminders.UpcomingLimit == 0 {
		config.Reminders.UpcomingLimit = 5
	}
	if config.Digest.Schedule == "" {
		config.Digest.Schedule = "0 0 8 * * *"
	}
}

func (config *Config) applyEnv() error {
	config.Server.Port = getEnv("PORT", config.Server.Port)
	config.Database.Path = getEnv("DB_PATH", config.Database.Path)
	config.Timezone = getEnv("TZ", config.Timezone)
	config.Auth.Secret = getEnv("PLANTCARE_SECRET", config.Auth.Secret)
	config.Digest.Schedule = getEnv("PLANTCARE_DIGEST_SCHEDULE", config.Digest.Schedule)

	if raw := os.Getenv("PLANTCARE_DIGEST_ENABLED"); raw != "" {
		enabled, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("PLANTCARE_DIGEST_ENABLED: %w", err)
		}
		config.Digest.Enabled = enabled
	}
	if raw := os.Getenv("PLANTCARE_UPCOMING_LIMIT"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("PLANTCARE_UPCOMING_LIMIT: %w", err)
		}
		config.Reminders.UpcomingLimit = limit
	}
	return nil
}

func (config *Config) Validate() error {
	port, err := strconv.Atoi(config.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port %q", config.Server.Port)
	}
	if config.Reminders.UpcomingLimit < 1 {
		return fmt.Errorf("reminders.upcoming_limit must be positive, got %d", config.Reminders.UpcomingLimit)
	}
	if _, err := time.LoadLocation(config.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", config.Timezone, err)
	}
	return nil
}

// Location resolves Timezone; Validate guarantees it loads.
func (config *Config) Location() *time.Location {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
