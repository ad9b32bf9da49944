package wailsapp

import (
	"fmt"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Wails dialog and lifecycle entry points, replaced in tests.
var (
	messageDialog       = runtime.MessageDialog
	openDirectoryDialog = runtime.OpenDirectoryDialog
	quitApp             = runtime.Quit
)

var dialogTypes = map[string]runtime.DialogType{
	"info":     runtime.InfoDialog,
	"warning":  runtime.WarningDialog,
	"error":    runtime.ErrorDialog,
	"question": runtime.QuestionDialog,
}

// ShowMessage shows a native message box and waits for it to close.
// kind is "info", "warning", "error" or "question"; empty means "info".
// The label of the button pressed is returned.
func (a *App) ShowMessage(title, message, kind string) (string, error) {
	if kind == "" {
		kind = "info"
	}
	dt, ok := dialogTypes[kind]
	if !ok {
		return "", fmt.Errorf("unknown dialog type %q", kind)
	}
	if a.ctx == nil {
		return "", ErrNotReady
	}
	return messageDialog(a.ctx, runtime.MessageDialogOptions{
		Type:    dt,
		Title:   title,
		Message: message,
	})
}

// SelectDirectory opens a directory dialog. An empty result means the user
// cancelled.
func (a *App) SelectDirectory(title string) (string, error) {
	if a.ctx == nil {
		return "", ErrNotReady
	}
	return openDirectoryDialog(a.ctx, runtime.OpenDialogOptions{Title: title})
}

// Quit closes the window and ends the process through the normal shutdown
// path.
func (a *App) Quit() error {
	if a.ctx == nil {
		return ErrNotReady
	}
	a.log.Info().Msg("Quit requested by UI")
	quitApp(a.ctx)
	return nil
}
