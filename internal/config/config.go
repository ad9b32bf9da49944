package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/takma/takma-desktop/internal/constants"
)

// Environment overrides, applied after the file is read.
const (
	EnvDebug      = "TAKMA_DEBUG"
	EnvInstanceID = "TAKMA_INSTANCE_ID"
)

// WindowConfig holds the main window geometry.
type WindowConfig struct {
	Width     int `toml:"width"`
	Height    int `toml:"height"`
	MinWidth  int `toml:"min_width"`
	MinHeight int `toml:"min_height"`
}

// Config is the shell configuration stored in shell.toml.
type Config struct {
	// InstanceID names the single-instance lock.
	InstanceID string `toml:"instance_id"`

	// Debug lowers the log level to debug.
	Debug bool `toml:"debug"`

	// FileLogging enables the rotating log file.
	FileLogging bool `toml:"file_logging"`

	// Notifications allows the UI layer to show desktop notifications.
	Notifications bool `toml:"notifications"`

	Window WindowConfig `toml:"window"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		InstanceID:    constants.DefaultInstanceID,
		FileLogging:   true,
		Notifications: true,
		Window: WindowConfig{
			Width:     constants.DefaultWindowWidth,
			Height:    constants.DefaultWindowHeight,
			MinWidth:  constants.DefaultWindowMinWidth,
			MinHeight: constants.DefaultWindowMinHeight,
		},
	}
}

// Load reads the configuration at path on top of the defaults.
// An empty path means GetDefaultConfigPath(). A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = GetDefaultConfigPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv applies TAKMA_* environment overrides.
func (c *Config) ApplyEnv() {
	if os.Getenv(EnvDebug) != "" {
		c.Debug = true
	}
	if id := os.Getenv(EnvInstanceID); id != "" {
		c.InstanceID = id
	}
}

// Validate checks the configuration for values the shell cannot run with.
func (c *Config) Validate() error {
	if c.InstanceID == "" {
		return fmt.Errorf("instance_id cannot be empty")
	}
	w := c.Window
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	if w.MinWidth < 0 || w.MinHeight < 0 {
		return fmt.Errorf("window minimum size cannot be negative, got %dx%d", w.MinWidth, w.MinHeight)
	}
	if w.MinWidth > w.Width || w.MinHeight > w.Height {
		return fmt.Errorf("window minimum size %dx%d exceeds size %dx%d", w.MinWidth, w.MinHeight, w.Width, w.Height)
	}
	return nil
}

// Save writes the configuration to path, or GetDefaultConfigPath() when empty.
func (c *Config) Save(path string) error {
	if path == "" {
		path = GetDefaultConfigPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
