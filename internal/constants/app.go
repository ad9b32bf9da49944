package constants

import (
	"time"
)

// Application identity
const (
	// AppName is the product name shown in window titles and the About panel.
	AppName = "Takma"

	// DefaultInstanceID is the name of the single-instance lock.
	// Changing it lets two differently-configured builds run side by side.
	DefaultInstanceID = "com.takma.desktop"

	// ConfigDirName is the directory under the XDG base directories.
	ConfigDirName = "takma"

	// ConfigFileName is the shell configuration file inside ConfigDirName.
	ConfigFileName = "shell.toml"

	// LogFileName is the rotating log file inside the log directory.
	LogFileName = "takma.log"
)

// Frontend events
const (
	// EventDeepLinkReceived carries a deep-link URL to the UI layer when a
	// link arrives while the UI is already running.
	EventDeepLinkReceived = "deep-link-received"
)

// Launch dispatch
const (
	// LaunchQueueSize - buffered inbound launches held until the dispatcher starts (16)
	// Second launches are user-driven, so this is generous.
	LaunchQueueSize = 16

	// DBusCallTimeout - upper bound for the FileManager1.ShowItems call (3s)
	DBusCallTimeout = 3 * time.Second
)

// Window defaults
const (
	DefaultWindowWidth     = 1280
	DefaultWindowHeight    = 800
	DefaultWindowMinWidth  = 800
	DefaultWindowMinHeight = 600
)

// File logging rotation
const (
	// LogMaxSizeMB - size of one log file before rotation
	LogMaxSizeMB = 10

	// LogMaxBackups - rotated files kept
	LogMaxBackups = 5

	// LogMaxAgeDays - age after which rotated files are removed
	LogMaxAgeDays = 30
)
