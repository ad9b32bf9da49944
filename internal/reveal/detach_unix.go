//go:build unix

package reveal

import "syscall"

// detachedAttr puts the child in a new session so it outlives the shell.
func detachedAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
