//go:build windows

package reveal

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// detachedAttr starts the child without a console in its own process group.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CreationFlags: windows.DETACHED_PROCESS | windows.CREATE_NEW_PROCESS_GROUP,
	}
}
