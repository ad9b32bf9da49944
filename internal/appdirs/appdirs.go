// Package appdirs names the base directories the UI layer reads and writes
// under, and resolves UI-supplied names inside them.
package appdirs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/takma/takma-desktop/internal/constants"
	"github.com/takma/takma-desktop/internal/validation"
)

// Base is a directory the UI layer addresses by name.
type Base string

const (
	// AppLocalData is the per-user data directory for the application.
	AppLocalData Base = "appLocalData"
	// Document is the user's documents folder.
	Document Base = "document"
	// Temp is the system temporary directory.
	Temp Base = "temp"
)

var (
	// ErrUnknownBase is returned for a base directory name not listed above.
	ErrUnknownBase = errors.New("unknown base directory")

	// ErrOutsideBase is returned when a name would resolve outside its base.
	ErrOutsideBase = errors.New("path escapes base directory")
)

// Dir returns the absolute path of base.
//
// Locations for AppLocalData:
//   - Linux: $XDG_DATA_HOME/com.takma.desktop
//   - macOS: ~/Library/Application Support/com.takma.desktop
//   - Windows: %LOCALAPPDATA%\com.takma.desktop
func Dir(base Base) (string, error) {
	switch base {
	case AppLocalData:
		return filepath.Join(xdg.DataHome, constants.DefaultInstanceID), nil
	case Document:
		if xdg.UserDirs.Documents == "" {
			return "", fmt.Errorf("documents folder not configured: %w", os.ErrNotExist)
		}
		return xdg.UserDirs.Documents, nil
	case Temp:
		return os.TempDir(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBase, string(base))
	}
}

// Resolve joins name onto base. name uses forward slashes, is relative and
// may not climb out of base; an empty name means base itself.
func Resolve(base Base, name string) (string, error) {
	dir, err := Dir(base)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(name) == "" {
		return dir, nil
	}
	if err := validation.ValidateLocalPath(name); err != nil {
		return "", err
	}

	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %q", ErrOutsideBase, name)
	}
	return filepath.Join(dir, rel), nil
}
