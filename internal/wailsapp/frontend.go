package wailsapp

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Frontend is the part of the UI layer the shell talks to.
type Frontend interface {
	// Emit sends an event to the UI layer.
	Emit(event string, data ...interface{})
	// Focus brings the main window to the foreground.
	Focus()
}

// Wails runtime entry points, replaced in tests.
var (
	eventsEmit           = runtime.EventsEmit
	windowUnminimise     = runtime.WindowUnminimise
	windowShow           = runtime.WindowShow
	appShow              = runtime.Show
	windowSetAlwaysOnTop = runtime.WindowSetAlwaysOnTop
)

// wailsFrontend drives the Wails runtime bound to ctx.
type wailsFrontend struct {
	ctx context.Context
}

func (f wailsFrontend) Emit(event string, data ...interface{}) {
	eventsEmit(f.ctx, event, data...)
}

// Focus restores and raises the main window. WindowShow alone does not take
// the foreground on Windows; briefly pinning the window on top does.
func (f wailsFrontend) Focus() {
	windowUnminimise(f.ctx)
	windowShow(f.ctx)
	appShow(f.ctx)
	windowSetAlwaysOnTop(f.ctx, true)
	windowSetAlwaysOnTop(f.ctx, false)
}
