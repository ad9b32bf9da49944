package wailsapp

import "errors"

var (
	// ErrNotReady is returned when a binding needs the Wails runtime before startup.
	ErrNotReady = errors.New("application not started")

	// ErrNoDisplay is returned when GUI mode is requested without a display.
	ErrNoDisplay = errors.New("GUI mode requires a display: DISPLAY and WAYLAND_DISPLAY are not set")
)
