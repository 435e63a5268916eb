package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
)

type Config struct {
	App struct {
		Host string
		Port int
	}
	Database struct {
		// URL is the remote-store connection URL. Key, when set, replaces
		// the password embedded in the URL.
		URL             string
		Key             string
		MaxConns        int
		MaxConnLifetime string
		LogQueries      bool
	}
	Session struct {
		Secret string
	}
	Admin struct {
		Password string
	}
}

// Load reads the optional TOML file at path, then applies environment
// overrides for the values that never belong in a checked-in file.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.App.Host = "0.0.0.0"
	cfg.App.Port = 3000
	cfg.Database.MaxConns = 5
	cfg.Database.MaxConnLifetime = "300s"

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode config file: %w", err)
		}
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("DATABASE_KEY"); v != "" {
		cfg.Database.Key = v
	}
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.Session.Secret = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}

	return cfg, nil
}

// Validate reports the first missing required setting. All three are fatal at
// process start.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Admin.Password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}
	return nil
}

// PGOptions builds the go-pg connection options from the database settings.
func (c *Config) PGOptions() (*pg.Options, error) {
	opt, err := pg.ParseURL(c.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if c.Database.Key != "" {
		opt.Password = c.Database.Key
	}

	opt.MaxRetries = 3
	opt.PoolSize = c.Database.MaxConns

	if c.Database.MaxConnLifetime != "" {
		lifetime, err := time.ParseDuration(c.Database.MaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("parse max connection lifetime: %w", err)
		}
		opt.MaxConnAge = lifetime
	}

	return opt, nil
}
