package wailsapp

import (
	"runtime"

	"github.com/takma/takma-desktop/internal/logging"
	"github.com/takma/takma-desktop/internal/version"
)

// VersionInfoDTO describes the running shell.
type VersionInfoDTO struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
	Platform  string `json:"platform"`
}

// MoveDirectory renames a directory. The rejected promise carries the OS
// error text.
func (a *App) MoveDirectory(from, to string) error {
	if err := a.move(from, to); err != nil {
		a.log.Warn().Err(err).Str("from", from).Str("to", to).Msg("Move directory failed")
		return err
	}
	a.log.Info().Str("from", from).Str("to", to).Msg("Directory moved")
	return nil
}

// TakePendingDeepLink returns the deep link captured at startup and clears
// it. An empty string means no link is pending.
func (a *App) TakePendingDeepLink() string {
	link, ok := a.pending.Take()
	if !ok {
		return ""
	}
	a.log.Info().Str("link", link).Msg("Pending deep link taken by UI")
	return link
}

// ShowInFolder reveals path in the system file manager. The file manager
// runs detached; only a failure to launch it is reported.
func (a *App) ShowInFolder(path string) error {
	if a.revealer == nil {
		return ErrNotReady
	}
	if err := a.revealer.Reveal(path); err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("Show in folder failed")
		return err
	}
	return nil
}

// Notify shows a desktop notification, unless disabled in the configuration.
func (a *App) Notify(title, message string) error {
	if a.notifier == nil {
		return ErrNotReady
	}
	return a.notifier.Notify(title, message)
}

// GetVersion returns build information for the About dialog.
func (a *App) GetVersion() VersionInfoDTO {
	return VersionInfoDTO{
		Version:   version.Version,
		BuildTime: version.BuildTime,
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// GetLogFilePath returns the current log file, or "" when file logging is off.
func (a *App) GetLogFilePath() string {
	return logging.GetLogFilePath()
}
