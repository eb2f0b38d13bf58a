//go:build darwin
// +build darwin

package session

import "golang.org/x/sys/unix"

// getTermios and setTermios isolate the ioctl request constant that
// differs across unix flavors: Darwin (and the other BSDs) use
// TIOCGETA/TIOCSETA where Linux uses TCGETS/TCSETS.
func getTermios(fd int) (*unix.Termios, error) {
	return unix.IoctlGetTermios(fd, unix.TIOCGETA)
}

func setTermios(fd int, state *unix.Termios) error {
	return unix.IoctlSetTermios(fd, unix.TIOCSETA, state)
}
