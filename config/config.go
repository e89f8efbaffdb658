// SPDX-FileCopyrightText: Copyright 2026 the go-fwapi authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads tenant credentials and client settings from the
// environment, a .env file or a YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/redmer/go-fwapi/conn"
	"github.com/redmer/go-fwapi/env"
)

// Environment variables read by FromEnv.
const (
	EnvHost           = "FOTOWARE_HOST"
	EnvClientID       = "FOTOWARE_CLIENT_ID"
	EnvClientSecret   = "FOTOWARE_CLIENT_SECRET"
	EnvRequestTimeout = "FOTOWARE_REQUEST_TIMEOUT"
)

// Config carries the credentials and client settings for one tenant.
type Config struct {
	// BaseURL is the tenant origin, e.g. `https://acme.fotoware.cloud`.
	BaseURL      string `yaml:"base_url"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`

	RequestTimeout    time.Duration `yaml:"request_timeout,omitempty"`
	TokenExpiryMargin time.Duration `yaml:"token_expiry_margin,omitempty"`
}

// UnmarshalYAML implements yaml.Unmarshaler. Durations are given as Go
// duration strings ("30s", "1m"), which yaml.v3 does not decode natively.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		BaseURL           string `yaml:"base_url"`
		ClientID          string `yaml:"client_id"`
		ClientSecret      string `yaml:"client_secret"`
		RequestTimeout    string `yaml:"request_timeout"`
		TokenExpiryMargin string `yaml:"token_expiry_margin"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	c.BaseURL = raw.BaseURL
	c.ClientID = raw.ClientID
	c.ClientSecret = raw.ClientSecret

	for _, d := range []struct {
		value string
		key   string
		dst   *time.Duration
	}{
		{raw.RequestTimeout, "request_timeout", &c.RequestTimeout},
		{raw.TokenExpiryMargin, "token_expiry_margin", &c.TokenExpiryMargin},
	} {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	return nil
}

// FromEnv reads the configuration from FOTOWARE_* environment variables.
func FromEnv(r env.Reader) (*Config, error) {
	cfg := &Config{
		BaseURL:      r.Getenv(EnvHost),
		ClientID:     r.Getenv(EnvClientID),
		ClientSecret: r.Getenv(EnvClientSecret),
	}
	if raw := r.Getenv(EnvRequestTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromDotenv loads a .env file into the process environment, then reads
// the configuration from it. Variables already set keep their value.
func FromDotenv(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return FromEnv(&env.OSReader{})
}

// DefaultPath returns the per-user location of the YAML configuration
// file, e.g. ~/.config/fwapi/config.yaml, creating parent directories as
// needed.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("fwapi/config.yaml")
}

// FromFile reads a YAML configuration file.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the credentials are complete.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL is required (%s)", EnvHost)
	}
	if c.ClientID == "" {
		return fmt.Errorf("client ID is required (%s)", EnvClientID)
	}
	if c.ClientSecret == "" {
		return fmt.Errorf("client secret is required (%s)", EnvClientSecret)
	}
	return nil
}

// Options renders the client settings as connection options, for use with
// tenant.Connect or conn.New.
func (c *Config) Options() []conn.Option {
	var opts []conn.Option
	if c.RequestTimeout > 0 {
		opts = append(opts, conn.WithTimeout(c.RequestTimeout))
	}
	if c.TokenExpiryMargin > 0 {
		opts = append(opts, conn.WithTokenExpiryMargin(c.TokenExpiryMargin))
	}
	return opts
}

// String renders the configuration with the client secret redacted. Config
// values must never reach logs unredacted.
func (c *Config) String() string {
	return fmt.Sprintf("Config{BaseURL: %s, ClientID: %s, ClientSecret: (redacted)}",
		c.BaseURL, c.ClientID)
}
