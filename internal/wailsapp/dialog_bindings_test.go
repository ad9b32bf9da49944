package wailsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

func stubDialogs(t *testing.T) (*runtime.MessageDialogOptions, *int) {
	t.Helper()
	origMsg, origDir, origQuit := messageDialog, openDirectoryDialog, quitApp
	t.Cleanup(func() {
		messageDialog, openDirectoryDialog, quitApp = origMsg, origDir, origQuit
	})

	var shown runtime.MessageDialogOptions
	quits := 0
	messageDialog = func(_ context.Context, o runtime.MessageDialogOptions) (string, error) {
		shown = o
		return "Ok", nil
	}
	openDirectoryDialog = func(_ context.Context, o runtime.OpenDialogOptions) (string, error) {
		return "/home/user/Documents", nil
	}
	quitApp = func(context.Context) { quits++ }
	return &shown, &quits
}

func TestShowMessage(t *testing.T) {
	shown, _ := stubDialogs(t)
	app := newTestApp(&fakeRevealer{})
	app.ctx = context.Background()

	button, err := app.ShowMessage("Takma", "The save file was corrupted", "error")
	if err != nil || button != "Ok" {
		t.Fatalf("ShowMessage = (%q, %v)", button, err)
	}
	if shown.Type != runtime.ErrorDialog || shown.Title != "Takma" || shown.Message != "The save file was corrupted" {
		t.Errorf("dialog options = %+v", *shown)
	}

	if _, err := app.ShowMessage("Takma", "hello", ""); err != nil || shown.Type != runtime.InfoDialog {
		t.Errorf("empty kind should show an info dialog, got type %q err %v", shown.Type, err)
	}
	if _, err := app.ShowMessage("Takma", "hello", "fancy"); err == nil {
		t.Error("unknown dialog type should be rejected")
	}
}

func TestDialogsBeforeStartup(t *testing.T) {
	_, quits := stubDialogs(t)
	app := newTestApp(&fakeRevealer{})

	if _, err := app.ShowMessage("Takma", "hello", "info"); !errors.Is(err, ErrNotReady) {
		t.Errorf("ShowMessage before startup = %v, want ErrNotReady", err)
	}
	if _, err := app.SelectDirectory("Choose"); !errors.Is(err, ErrNotReady) {
		t.Errorf("SelectDirectory before startup = %v, want ErrNotReady", err)
	}
	if err := app.Quit(); !errors.Is(err, ErrNotReady) {
		t.Errorf("Quit before startup = %v, want ErrNotReady", err)
	}
	if *quits != 0 {
		t.Errorf("runtime quit called %d times before startup", *quits)
	}
}

func TestSelectDirectoryAndQuit(t *testing.T) {
	_, quits := stubDialogs(t)
	app := newTestApp(&fakeRevealer{})
	app.ctx = context.Background()

	dir, err := app.SelectDirectory("Choose a save folder")
	if err != nil || dir != "/home/user/Documents" {
		t.Errorf("SelectDirectory = (%q, %v)", dir, err)
	}
	if err := app.Quit(); err != nil || *quits != 1 {
		t.Errorf("Quit = %v, quits = %d", err, *quits)
	}
}
