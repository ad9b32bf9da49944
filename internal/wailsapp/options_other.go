//go:build !darwin

package wailsapp

import "github.com/wailsapp/wails/v2/pkg/options"

// applyPlatformOptions is a no-op: on Windows and Linux deep links arrive as
// arguments of a new process and reach us through the single-instance lock.
func applyPlatformOptions(*options.App, *App) {}
