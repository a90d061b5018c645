// Copyright (c) 2026 Leio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (store, cache) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the Leio API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// SlidesDir is the filesystem path to the markdown slide decks.
	SlidesDir string `env:"SLIDES_DIR" envDefault:"./data/slides"`

	// PageSize is the number of chapters returned per list page.
	PageSize int `env:"PAGE_SIZE" envDefault:"5"`

	// Key-Value Cache (Redis). Optional: when empty, slide decks are
	// read from disk on every request.
	RedisURL string `env:"REDIS_URL"`

	// SlideCacheTTL is how long cached slide markdown stays valid.
	SlideCacheTTL time.Duration `env:"SLIDE_CACHE_TTL" envDefault:"10m"`

	// ReaderTimeout bounds each network call made by the reader client.
	ReaderTimeout time.Duration `env:"READER_TIMEOUT" envDefault:"30s"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CacheEnabled reports whether a Redis slide cache has been configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}
