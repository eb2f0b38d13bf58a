//go:build linux
// +build linux

package session

import "golang.org/x/sys/unix"

// getTermios and setTermios isolate the ioctl request constant that
// differs across unix flavors: Linux has no TIOCGETA/TIOCSETA (those
// are a BSD/Darwin-ism) and uses TCGETS/TCSETS instead.
func getTermios(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TCGETS)
}

func setTermios(fd int, state *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TCSETS, state)
}
