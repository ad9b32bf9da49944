// Package config provides configuration management for the Takma desktop shell.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/takma/takma-desktop/internal/constants"
)

// ConfigDirectory returns the directory holding the shell configuration.
//
// Locations:
//   - Linux: $XDG_CONFIG_HOME/takma (~/.config/takma)
//   - macOS: ~/Library/Application Support/takma
//   - Windows: %LOCALAPPDATA%\takma
func ConfigDirectory() string {
	return filepath.Join(xdg.ConfigHome, constants.ConfigDirName)
}

// GetDefaultConfigPath returns the default path of shell.toml.
func GetDefaultConfigPath() string {
	return filepath.Join(ConfigDirectory(), constants.ConfigFileName)
}

// LogDirectory returns the directory for the rotating shell log.
// Logs are state, not configuration, so they live under XDG_STATE_HOME.
func LogDirectory() string {
	if xdg.StateHome == "" {
		return filepath.Join(os.TempDir(), "takma-logs")
	}
	return filepath.Join(xdg.StateHome, constants.ConfigDirName, "logs")
}
