// Package config reads process configuration from the environment. A .env
// file in the working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// PenaltyStore selects the penalty repository backend
type PenaltyStore string

const (
	// PenaltyStoreRedis keeps penalties next to obligations in Redis
	PenaltyStoreRedis PenaltyStore = "redis"

	// PenaltyStorePostgres keeps penalties in a Postgres table
	PenaltyStorePostgres PenaltyStore = "postgres"
)

// Config holds the process configuration
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PenaltyStore PenaltyStore
	DatabaseURL  string

	// Location decides where calendar days start
	Location *time.Location

	// SweepInterval is how often the scheduler checks for a new day
	SweepInterval time.Duration

	LogLevel slog.Level
}

// Load reads the configuration. Missing variables fall back to defaults;
// malformed ones are errors.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	return FromEnv()
}

// FromEnv reads the configuration from the current environment only
func FromEnv() (*Config, error) {
	cfg := &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		PenaltyStore:  PenaltyStore(strings.ToLower(getEnv("PENALTY_STORE", string(PenaltyStoreRedis)))),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil || db < 0 {
		return nil, fmt.Errorf("invalid REDIS_DB %q", os.Getenv("REDIS_DB"))
	}
	cfg.RedisDB = db

	switch cfg.PenaltyStore {
	case PenaltyStoreRedis:
	case PenaltyStorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required when PENALTY_STORE is postgres")
		}
	default:
		return nil, fmt.Errorf("invalid PENALTY_STORE %q: must be redis or postgres", cfg.PenaltyStore)
	}

	location, err := time.LoadLocation(getEnv("FORFEIT_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid FORFEIT_TIMEZONE: %w", err)
	}
	cfg.Location = location

	interval, err := time.ParseDuration(getEnv("SWEEP_INTERVAL", "1m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL: %w", err)
	}
	if interval <= 0 {
		return nil, fmt.Errorf("invalid SWEEP_INTERVAL %s: must be positive", interval)
	}
	cfg.SweepInterval = interval

	if err := cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
