//go:build linux

package reveal

import (
	"context"
	"fmt"
	"os"

	"github.com/godbus/dbus/v5"

	"github.com/takma/takma-desktop/internal/logging"
)

const (
	fileManagerDest   = "org.freedesktop.FileManager1"
	fileManagerPath   = "/org/freedesktop/FileManager1"
	fileManagerMethod = "org.freedesktop.FileManager1.ShowItems"
)

func newPlatform(log *logging.Logger, start Starter) Revealer {
	return &fileManagerRevealer{
		log:       log,
		start:     start,
		showItems: dbusShowItems,
		stat:      os.Stat,
	}
}

// dbusShowItems calls ShowItems on a private session bus connection.
func dbusShowItems(ctx context.Context, uri string) error {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object(fileManagerDest, dbus.ObjectPath(fileManagerPath))
	call := obj.CallWithContext(ctx, fileManagerMethod, 0, []string{uri}, "")
	if call.Err != nil {
		return fmt.Errorf("%s: %w", fileManagerMethod, call.Err)
	}
	return nil
}
