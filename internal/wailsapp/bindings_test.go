package wailsapp

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/takma/takma-desktop/internal/config"
	"github.com/takma/takma-desktop/internal/deeplink"
	"github.com/takma/takma-desktop/internal/logging"
)

type fakeRevealer struct {
	paths []string
	err   error
}

func (r *fakeRevealer) Reveal(path string) error {
	r.paths = append(r.paths, path)
	return r.err
}

func newTestApp(r *fakeRevealer) *App {
	return NewApp(config.Default(), deeplink.NewPendingStore(), r, logging.NewNopLogger())
}

// TestColdStartLinkTakenOnce covers a cold start with a deep link argument:
// nothing is emitted, and the UI's first query gets the link exactly once.
func TestColdStartLinkTakenOnce(t *testing.T) {
	app := newTestApp(&fakeRevealer{})
	fe := newFakeFrontend()
	app.dispatcher.Start(fe)
	defer app.dispatcher.Stop()

	if _, ok := CaptureStartupLink([]string{"/opt/takma/takma", "takma://board/42"}, app.pending); !ok {
		t.Fatal("startup link not captured")
	}
	app.dispatcher.MarkReady()

	if got := app.TakePendingDeepLink(); got != "takma://board/42" {
		t.Fatalf("first TakePendingDeepLink() = %q, want takma://board/42", got)
	}
	if got := app.TakePendingDeepLink(); got != "" {
		t.Errorf("second TakePendingDeepLink() = %q, want empty", got)
	}
	if _, events := fe.snapshot(); len(events) != 0 {
		t.Errorf("cold start must not emit events, got %+v", events)
	}
}

func TestCaptureStartupLinkIgnoresShortArgv(t *testing.T) {
	for _, argv := range [][]string{nil, {}, {"takma"}} {
		store := deeplink.NewPendingStore()
		if _, ok := CaptureStartupLink(argv, store); ok {
			t.Errorf("CaptureStartupLink(%q) captured a link", argv)
		}
		if _, ok := store.Peek(); ok {
			t.Errorf("store populated for argv %q", argv)
		}
	}
}

func TestTakePendingDeepLinkEmpty(t *testing.T) {
	app := newTestApp(&fakeRevealer{})
	if got := app.TakePendingDeepLink(); got != "" {
		t.Errorf("TakePendingDeepLink() = %q, want empty", got)
	}
}

func TestShowInFolder(t *testing.T) {
	r := &fakeRevealer{}
	app := newTestApp(r)

	if err := app.ShowInFolder("/home/user/Takma/board.json"); err != nil {
		t.Fatalf("ShowInFolder: %v", err)
	}
	if len(r.paths) != 1 || r.paths[0] != "/home/user/Takma/board.json" {
		t.Errorf("revealed %q", r.paths)
	}

	r.err = errors.New("failed to start xdg-open")
	if err := app.ShowInFolder("/tmp"); !errors.Is(err, r.err) {
		t.Errorf("ShowInFolder error = %v, want %v", err, r.err)
	}
}

func TestShowInFolderWithoutRevealer(t *testing.T) {
	app := &App{log: logging.NewNopLogger()}
	if err := app.ShowInFolder("/tmp"); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
}

func TestMoveDirectoryBinding(t *testing.T) {
	app := newTestApp(&fakeRevealer{})
	root := t.TempDir()
	src := filepath.Join(root, "boards")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(root, "moved")

	if err := app.MoveDirectory(src, dst); err != nil {
		t.Fatalf("MoveDirectory: %v", err)
	}
	if _, err := os.Stat(dst); err != nil {
		t.Errorf("destination missing: %v", err)
	}

	if err := app.MoveDirectory(src, filepath.Join(root, "again")); err == nil {
		t.Error("moving a missing source should fail")
	}
}

func TestGetVersion(t *testing.T) {
	app := newTestApp(&fakeRevealer{})
	v := app.GetVersion()
	if v.Version == "" || v.Platform == "" {
		t.Errorf("incomplete version info: %+v", v)
	}
}

func TestOptionsWireSingleInstanceLock(t *testing.T) {
	cfg := config.Default()
	cfg.InstanceID = "com.takma.desktop.test"
	app := NewApp(cfg, deeplink.NewPendingStore(), &fakeRevealer{}, nil)

	opts := app.options()
	if opts.SingleInstanceLock == nil {
		t.Fatal("SingleInstanceLock not configured")
	}
	if opts.SingleInstanceLock.UniqueId != "com.takma.desktop.test" {
		t.Errorf("UniqueId = %q", opts.SingleInstanceLock.UniqueId)
	}
	if opts.SingleInstanceLock.OnSecondInstanceLaunch == nil {
		t.Error("OnSecondInstanceLaunch not wired")
	}
	if opts.Logger == nil {
		t.Error("Wails logger not routed to the shell log")
	}
	if opts.LogLevelProduction != logging.WailsLevel(cfg.Debug) {
		t.Errorf("LogLevelProduction = %v, want %v", opts.LogLevelProduction, logging.WailsLevel(cfg.Debug))
	}
	if opts.Width != cfg.Window.Width || opts.MinHeight != cfg.Window.MinHeight {
		t.Errorf("window geometry not taken from config: %dx%d", opts.Width, opts.MinHeight)
	}
}

func TestNotifyDisabledByConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Notifications = false
	app := NewApp(cfg, deeplink.NewPendingStore(), &fakeRevealer{}, nil)

	if err := app.Notify("Board shared", "takma://board/42"); err != nil {
		t.Errorf("Notify with notifications off = %v, want nil", err)
	}
}

func TestNotifyWithoutNotifier(t *testing.T) {
	app := &App{log: logging.NewNopLogger()}
	if err := app.Notify("Title", "Body"); !errors.Is(err, ErrNotReady) {
		t.Errorf("expected ErrNotReady, got %v", err)
	}
}
