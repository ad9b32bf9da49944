// Takma desktop shell.
//
// Hosts the Takma UI in a native window and provides the few OS integrations
// the UI cannot do itself: single-instance enforcement, takma:// deep links,
// revealing files in the file manager and moving directories.
//
//   - No subcommand → GUI mode (a takma:// argument is opened once loaded)
//   - reveal, move, link, config, version → CLI helpers
//
// Build with: wails build
package main

import (
	"embed"
	"os"
	"runtime"

	"github.com/takma/takma-desktop/internal/cli"
	"github.com/takma/takma-desktop/internal/wailsapp"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// Wails uses its own webview input handling; ibus is unnecessary.
	if runtime.GOOS == "linux" && os.Getenv("GTK_IM_MODULE") == "" {
		os.Setenv("GTK_IM_MODULE", "none")
	}
	wailsapp.Assets = assets

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
