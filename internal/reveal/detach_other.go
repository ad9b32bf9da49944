//go:build !unix && !windows

package reveal

import "syscall"

func detachedAttr() *syscall.SysProcAttr {
	return nil
}
