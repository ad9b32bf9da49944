//go:build darwin

package wailsapp

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	"github.com/takma/takma-desktop/internal/constants"
	"github.com/takma/takma-desktop/internal/version"
)

// applyPlatformOptions wires macOS URL delivery. Launch Services hands
// takma:// URLs to the running process instead of starting a new one.
func applyPlatformOptions(opts *options.App, a *App) {
	opts.Mac = &mac.Options{
		OnUrlOpen: a.dispatcher.URLOpened,
		About: &mac.AboutInfo{
			Title:   constants.AppName,
			Message: fmt.Sprintf("Version %s", version.Version),
		},
	}
}
