package wailsapp

import (
	"github.com/takma/takma-desktop/internal/appdirs"
	"github.com/takma/takma-desktop/internal/fsops"
)

// GetDirectory returns the absolute path of a base directory:
// "appLocalData", "document" or "temp".
func (a *App) GetDirectory(base string) (string, error) {
	return appdirs.Dir(appdirs.Base(base))
}

// ReadTextFile reads name, relative to base.
func (a *App) ReadTextFile(base, name string) (string, error) {
	path, err := appdirs.Resolve(appdirs.Base(base), name)
	if err != nil {
		return "", err
	}
	return fsops.ReadTextFile(path)
}

// WriteTextFile replaces name, relative to base, with contents.
func (a *App) WriteTextFile(base, name, contents string) error {
	path, err := appdirs.Resolve(appdirs.Base(base), name)
	if err != nil {
		return err
	}
	if err := fsops.WriteTextFile(path, contents); err != nil {
		a.log.Warn().Err(err).Str("path", path).Msg("Write file failed")
		return err
	}
	a.log.Debug().Str("path", path).Int("bytes", len(contents)).Msg("File written")
	return nil
}

// CreateDir creates name, relative to base, with any missing parents.
func (a *App) CreateDir(base, name string) error {
	path, err := appdirs.Resolve(appdirs.Base(base), name)
	if err != nil {
		return err
	}
	return fsops.CreateDir(path)
}

// PathExists reports whether name exists under base.
func (a *App) PathExists(base, name string) (bool, error) {
	path, err := appdirs.Resolve(appdirs.Base(base), name)
	if err != nil {
		return false, err
	}
	return fsops.Exists(path)
}

// ListDirectory returns the entry names of name under base.
func (a *App) ListDirectory(base, name string) ([]string, error) {
	path, err := appdirs.Resolve(appdirs.Base(base), name)
	if err != nil {
		return nil, err
	}
	return fsops.ListDir(path)
}
