package engine

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/lumen/engine/core"
)

// ApplicationConfig holds the settings the host application starts with.
// It can be loaded from a TOML file; missing fields fall back to defaults.
type ApplicationConfig struct {
	Name        string `toml:"name"`
	StartWidth  uint32 `toml:"width"`
	StartHeight uint32 `toml:"height"`
	AssetsRoot  string `toml:"assets_root"`
	LogLevel    string `toml:"log_level"`
	WatchAssets bool   `toml:"watch_assets"`
}

// DefaultApplicationConfig returns the configuration used when no file is
// present: a square 800x800 window with asset watching on.
func DefaultApplicationConfig() ApplicationConfig {
	return ApplicationConfig{
		Name:        "Lumen",
		StartWidth:  800,
		StartHeight: 800,
		AssetsRoot:  "assets",
		LogLevel:    "info",
		WatchAssets: true,
	}
}

// LoadApplicationConfig reads a TOML configuration file. A missing file is
// not an error; the defaults are returned instead.
func LoadApplicationConfig(path string) (ApplicationConfig, error) {
	config := DefaultApplicationConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			core.LogDebug("no configuration file at %s, using defaults", path)
			return config, nil
		}
		return config, fmt.Errorf("failed to read configuration %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return DefaultApplicationConfig(), fmt.Errorf("failed to parse configuration %q: %w", path, err)
	}

	config.applyDefaults()
	return config, nil
}

func (c *ApplicationConfig) applyDefaults() {
	defaults := DefaultApplicationConfig()
	if c.Name == "" {
		c.Name = defaults.Name
	}
	if c.StartWidth == 0 {
		core.LogWarn("width must be a positive number. Defaulting to %d.", defaults.StartWidth)
		c.StartWidth = defaults.StartWidth
	}
	if c.StartHeight == 0 {
		core.LogWarn("height must be a positive number. Defaulting to %d.", defaults.StartHeight)
		c.StartHeight = defaults.StartHeight
	}
	if c.AssetsRoot == "" {
		c.AssetsRoot = defaults.AssetsRoot
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// Level resolves the configured log level name, defaulting to info on an
// unknown value.
func (c *ApplicationConfig) Level() core.LogLevel {
	switch c.LogLevel {
	case "debug":
		return core.DebugLevel
	case "warn":
		return core.WarnLevel
	case "error":
		return core.ErrorLevel
	default:
		return core.InfoLevel
	}
}
