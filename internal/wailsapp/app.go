// Package wailsapp hosts the Takma UI in a Wails window and exposes the
// native commands the UI layer invokes.
package wailsapp

import (
	"context"
	"embed"
	"fmt"
	"os"
	"runtime"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/takma/takma-desktop/internal/config"
	"github.com/takma/takma-desktop/internal/constants"
	"github.com/takma/takma-desktop/internal/deeplink"
	"github.com/takma/takma-desktop/internal/fsops"
	"github.com/takma/takma-desktop/internal/logging"
	"github.com/takma/takma-desktop/internal/notify"
	"github.com/takma/takma-desktop/internal/reveal"
)

// Assets holds the embedded frontend files, passed in from main package.
var Assets embed.FS

// App is the main Wails application struct.
// All public methods are exposed to the frontend as callable functions.
type App struct {
	ctx    context.Context
	config *config.Config
	log    *logging.Logger

	pending    *deeplink.PendingStore
	dispatcher *Dispatcher
	revealer   reveal.Revealer
	notifier   *notify.Notifier
	move       func(from, to string) error
}

// NewApp creates an application sharing pending with the startup path.
func NewApp(cfg *config.Config, pending *deeplink.PendingStore, revealer reveal.Revealer, log *logging.Logger) *App {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &App{
		config:     cfg,
		log:        log,
		pending:    pending,
		dispatcher: NewDispatcher(pending, log),
		revealer:   revealer,
		notifier:   notify.NewNotifier(cfg.Notifications, log),
		move:       fsops.MoveDirectory,
	}
}

// startup is called when the app starts. The context is saved
// so we can call the Wails runtime methods.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.dispatcher.Start(wailsFrontend{ctx: ctx})
	a.log.Info().Msg("Wails application started")
}

// domReady is called after the frontend DOM is ready.
func (a *App) domReady(ctx context.Context) {
	a.dispatcher.MarkReady()
	a.log.Debug().Msg("Frontend DOM ready")
}

// shutdown is called at application termination.
func (a *App) shutdown(ctx context.Context) {
	a.log.Info().Msg("Wails application shutting down")
	a.dispatcher.Stop()
	logging.CloseFileLogger()
}

// CaptureStartupLink stores the deep link in argv, if any, for the UI layer
// to take once it is listening. No event is emitted.
func CaptureStartupLink(argv []string, pending *deeplink.PendingStore) (string, bool) {
	link, ok := deeplink.FromArgs(argv)
	if ok {
		pending.Set(link)
	}
	return link, ok
}

// Run launches the Wails GUI application. args is the full process argument
// vector. When another instance already holds the single-instance lock, Wails
// forwards args to it and this process exits with status 0.
func Run(args []string, cfg *config.Config) error {
	logging.SetGlobalLevel(logging.GUILevelFor(cfg.Debug))
	if cfg.FileLogging {
		if err := logging.InitFileLogger(config.LogDirectory()); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
		}
	}
	log := logging.NewLogger("gui")

	if runtime.GOOS == "linux" && os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
		return ErrNoDisplay
	}

	pending := deeplink.NewPendingStore()
	if link, ok := CaptureStartupLink(args, pending); ok {
		log.Info().Str("link", link).Msg("Deep link captured at startup, waiting for UI")
	}

	app := NewApp(cfg, pending, reveal.New(log), log)
	opts := app.options()
	applyPlatformOptions(opts, app)

	if err := wails.Run(opts); err != nil {
		return fmt.Errorf("wails application error: %w", err)
	}
	return nil
}

func (a *App) options() *options.App {
	w := a.config.Window
	return &options.App{
		Title:     constants.AppName,
		Width:     w.Width,
		Height:    w.Height,
		MinWidth:  w.MinWidth,
		MinHeight: w.MinHeight,
		AssetServer: &assetserver.Options{
			Assets: Assets,
		},
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId:               a.config.InstanceID,
			OnSecondInstanceLaunch: a.dispatcher.SecondInstance,
		},
		Logger:             logging.NewWailsLogger(a.log.Component("wails")),
		LogLevel:           logging.WailsLevel(a.config.Debug),
		LogLevelProduction: logging.WailsLevel(a.config.Debug),
		OnStartup:          a.startup,
		OnDomReady:         a.domReady,
		OnShutdown:         a.shutdown,
		Bind: []interface{}{
			a,
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
		Linux: &linux.Options{
			ProgramName: constants.AppName,
		},
	}
}
