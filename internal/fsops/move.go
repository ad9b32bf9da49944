// Package fsops provides the file and directory operations the UI layer can
// invoke.
package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/takma/takma-desktop/internal/validation"
)

var (
	// ErrEmptyPath is returned when a source or destination is blank.
	ErrEmptyPath = errors.New("path cannot be empty")

	// ErrDestinationExists is returned when the destination is already present.
	// Rename semantics for an existing target differ between platforms, so the
	// move is refused everywhere.
	ErrDestinationExists = errors.New("destination already exists")
)

// MoveDirectory renames from to to with a single rename call.
//
// Both paths must be on the same filesystem; a cross-device move fails and is
// returned as is, never retried as a copy.
//
// The existing-destination check is best-effort: it runs before the rename,
// so a destination created in between is handled by the OS rename rules (on
// Unix an empty directory is replaced).
func MoveDirectory(from, to string) error {
	if err := checkPath("source", from); err != nil {
		return err
	}
	if err := checkPath("destination", to); err != nil {
		return err
	}

	if _, err := os.Lstat(to); err == nil {
		return fmt.Errorf("cannot move %s to %s: %w", from, to, ErrDestinationExists)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot inspect destination %s: %w", to, err)
	}

	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("failed to move directory: %w", err)
	}
	return nil
}

func checkPath(role, path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("invalid %s: %w", role, ErrEmptyPath)
	}
	if err := validation.ValidateLocalPath(path); err != nil {
		return fmt.Errorf("invalid %s: %w", role, err)
	}
	return nil
}
