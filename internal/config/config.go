// Package config handles configuration loading, saving, and defaults for launchdeck
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ntnucsie/launchdeck/internal/theme"
)

// AppName names the config directory
const AppName = "launchdeck"

// DefaultCode is the launch code used when none is configured
const DefaultCode = "NTNUCSIE"

// LaunchSettings configures the launch sequence
type LaunchSettings struct {
	Code  string `toml:"code"`
	Title string `toml:"title"`
}

// DisplaySettings contains UI display options
type DisplaySettings struct {
	Theme    string   `toml:"theme"`
	TickRate Duration `toml:"tick_rate"`
}

// SimulationSettings tunes the simulated telemetry
type SimulationSettings struct {
	LogRotateEvery    int    `toml:"log_rotate_every"`
	PacketRotateEvery int    `toml:"packet_rotate_every"`
	PowerWalkEvery    int    `toml:"power_walk_every"`
	Seed              uint64 `toml:"seed"`
}

// CatalogSettings points at an optional custom catalog file
type CatalogSettings struct {
	Path string `toml:"path"`
}

// LogSettings configures the structured log sink
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the main configuration container
type Config struct {
	Launch     LaunchSettings     `toml:"launch"`
	Display    DisplaySettings    `toml:"display"`
	Simulation SimulationSettings `toml:"simulation"`
	Catalog    CatalogSettings    `toml:"catalog"`
	Log        LogSettings        `toml:"log"`
}

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Launch: LaunchSettings{
			Code:  DefaultCode,
			Title: "Missile Launcher",
		},
		Display: DisplaySettings{
			Theme:    theme.Default,
			TickRate: Duration{250 * time.Millisecond},
		},
		Simulation: SimulationSettings{
			LogRotateEvery:    5,
			PacketRotateEvery: 3,
			PowerWalkEvery:    10,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}

// Validation errors
var (
	ErrEmptyCode    = errors.New("launch code must not be empty")
	ErrUnknownTheme = errors.New("unknown theme")
	ErrBadTickRate  = errors.New("tick rate must be positive")
	ErrBadPeriod    = errors.New("simulation period must be positive")
	ErrBadLogLevel  = errors.New("unknown log level")
)

// Validate checks the configuration for values the dashboard cannot run with
func (c *Config) Validate() error {
	if c.Launch.Code == "" {
		return ErrEmptyCode
	}
	if !theme.Exists(c.Display.Theme) {
		return fmt.Errorf("%q: %w (available: %s)", c.Display.Theme, ErrUnknownTheme, strings.Join(theme.List(), ", "))
	}
	if c.Display.TickRate.Duration <= 0 {
		return fmt.Errorf("%s: %w", c.Display.TickRate.Duration, ErrBadTickRate)
	}
	periods := map[string]int{
		"log_rotate_every":    c.Simulation.LogRotateEvery,
		"packet_rotate_every": c.Simulation.PacketRotateEvery,
		"power_walk_every":    c.Simulation.PowerWalkEvery,
	}
	for _, name := range []string{"log_rotate_every", "packet_rotate_every", "power_walk_every"} {
		if periods[name] <= 0 {
			return fmt.Errorf("%s = %d: %w", name, periods[name], ErrBadPeriod)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%q: %w", c.Log.Level, ErrBadLogLevel)
	}
	return lvl, nil
}

// Dir returns the config directory, honouring XDG_CONFIG_HOME
func Dir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(xdgConfigHome(home), AppName)
}

// Path returns the primary config file path
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// searchPaths returns the ordered list of config file paths to try
func searchPaths() []string {
	home, _ := os.UserHomeDir()
	paths := []string{Path()}

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default
	fallback := filepath.Join(home, ".config", AppName, "config.toml")
	if fallback != paths[0] {
		paths = append(paths, fallback)
	}
	return paths
}

func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
