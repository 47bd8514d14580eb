// Package config loads engine configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/oskarw/pantrylist/internal/engine"
)

// Config is the on-disk configuration.
//
// All fields are optional; missing values fall back to the defaults from
// Default().
type Config struct {
	// Database is the SQLite database path.
	Database string `yaml:"database"`

	// LowStockThreshold is the quantity at or below which an item counts
	// as low or absent. Deliberately independent of any UI-facing alert
	// threshold.
	LowStockThreshold int `yaml:"low_stock_threshold"`

	// LiveDebounce is the added-event suppression window during live
	// operation.
	LiveDebounce Duration `yaml:"live_debounce"`

	// InitDebounce is the suppression window during the bulk
	// initialization pass.
	InitDebounce Duration `yaml:"init_debounce"`
}

// Default returns the production defaults.
func Default() Config {
	return Config{
		Database:          "pantrylist.db",
		LowStockThreshold: engine.DefaultLowStockThreshold,
		LiveDebounce:      Duration(engine.DefaultLiveWindow),
		InitDebounce:      Duration(engine.DefaultInitWindow),
	}
}

// Load reads a YAML config file, layering it over the defaults.
// A missing path returns the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Config) Validate() error {
	if c.Database == "" {
		return errors.New("config: database path is empty")
	}
	if c.LowStockThreshold < 0 {
		return fmt.Errorf("config: low_stock_threshold is negative (%d)", c.LowStockThreshold)
	}
	if c.LiveDebounce < 0 {
		return fmt.Errorf("config: live_debounce is negative (%s)", time.Duration(c.LiveDebounce))
	}
	if c.InitDebounce < 0 {
		return fmt.Errorf("config: init_debounce is negative (%s)", time.Duration(c.InitDebounce))
	}
	return nil
}

// Engine converts the file config into the engine's runtime config.
func (c Config) Engine() engine.Config {
	return engine.Config{
		LowStockThreshold: c.LowStockThreshold,
		LiveWindow:        time.Duration(c.LiveDebounce),
		InitWindow:        time.Duration(c.InitDebounce),
	}
}
