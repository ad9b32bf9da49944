package reveal

import (
	"context"
	"fmt"
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/takma/takma-desktop/internal/constants"
	"github.com/takma/takma-desktop/internal/logging"
	"github.com/takma/takma-desktop/internal/validation"
)

type linuxAction int

const (
	// actionShowItems asks the FileManager1 service to select the item.
	actionShowItems linuxAction = iota
	// actionOpenDir opens a directory without selecting anything.
	actionOpenDir
)

// linuxPlan is what a reveal on a freedesktop system will do.
type linuxPlan struct {
	action linuxAction
	target string // file URI for actionShowItems, directory for actionOpenDir
}

// planLinux decides how to reveal path.
//
// Paths containing a comma are opened as their containing directory instead
// of being selected. dbus-send splits array:string: arguments on commas
// (https://gitlab.freedesktop.org/dbus/dbus/-/issues/76). The godbus call
// passes the array intact; comma paths still take the directory route.
func planLinux(path string, stat func(string) (fs.FileInfo, error)) (linuxPlan, error) {
	if strings.Contains(path, ",") {
		dir, err := containingDir(path, stat)
		if err != nil {
			return linuxPlan{}, err
		}
		return linuxPlan{action: actionOpenDir, target: dir}, nil
	}
	return linuxPlan{action: actionShowItems, target: fileURI(path)}, nil
}

// containingDir returns path when it is a directory and its parent otherwise.
func containingDir(path string, stat func(string) (fs.FileInfo, error)) (string, error) {
	info, err := stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot reveal %s: %w", path, err)
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

// fileURI converts path to a file:// URI with reserved characters escaped.
func fileURI(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// fileManagerRevealer reveals paths through org.freedesktop.FileManager1,
// falling back to xdg-open on the containing directory when no file manager
// answers on the session bus.
type fileManagerRevealer struct {
	log       *logging.Logger
	start     Starter
	showItems func(ctx context.Context, uri string) error
	stat      func(string) (fs.FileInfo, error)
}

func (r *fileManagerRevealer) Reveal(path string) error {
	if err := validation.ValidateLocalPath(path); err != nil {
		return err
	}

	plan, err := planLinux(path, r.stat)
	if err != nil {
		return err
	}

	if plan.action == actionOpenDir {
		r.log.Debug().Str("dir", plan.target).Msg("Path contains a comma, opening containing directory")
		return r.start("xdg-open", plan.target)
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DBusCallTimeout)
	defer cancel()
	err = r.showItems(ctx, plan.target)
	if err == nil {
		return nil
	}
	r.log.Warn().Err(err).Str("path", path).Msg("FileManager1.ShowItems failed, falling back to xdg-open")

	dir, err := containingDir(path, r.stat)
	if err != nil {
		return err
	}
	return r.start("xdg-open", dir)
}
