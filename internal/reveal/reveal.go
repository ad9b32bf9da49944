// Package reveal shows a path in the platform's file manager with the item
// selected. The implementation is chosen at build time.
package reveal

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/takma/takma-desktop/internal/logging"
	"github.com/takma/takma-desktop/internal/validation"
)

// ErrUnsupported is returned on platforms without a known file manager.
var ErrUnsupported = errors.New("show in folder is not supported on this platform")

// Revealer opens the system file browser at a path.
type Revealer interface {
	Reveal(path string) error
}

// Starter launches a child process without waiting for it.
type Starter func(name string, args ...string) error

// New returns the Revealer for the current platform.
func New(log *logging.Logger) Revealer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return newPlatform(log.Component("reveal"), StartDetached)
}

// StartDetached starts name in its own session/process group and reaps it in
// the background. Its exit status is not observed.
func StartDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.SysProcAttr = detachedAttr()
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", name, err)
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// commandRevealer runs one fixed command per reveal.
type commandRevealer struct {
	log     *logging.Logger
	start   Starter
	command func(path string) (string, []string)
}

func (r *commandRevealer) Reveal(path string) error {
	if err := validation.ValidateLocalPath(path); err != nil {
		return err
	}
	name, args := r.command(path)
	r.log.Debug().Str("cmd", name).Strs("args", args).Msg("Revealing path")
	return r.start(name, args...)
}

// explorerCommand selects path in Windows Explorer.
// The comma after /select is part of the switch.
func explorerCommand(path string) (string, []string) {
	return "explorer", []string{"/select,", path}
}

// finderCommand reveals path in the macOS Finder.
func finderCommand(path string) (string, []string) {
	return "open", []string{"-R", path}
}
