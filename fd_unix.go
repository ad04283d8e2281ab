//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package eventqueue

import (
	"golang.org/x/sys/unix"
)

// closeFD closes a file descriptor on Unix systems.
func closeFD(fd int) error {
	return unix.Close(fd)
}
