//go:build linux || darwin
// +build linux darwin

package session

import "golang.org/x/sys/unix"

// NewTestBackend creates a backend instance for testing purposes. This
// is exported for use in integration tests that need a real terminal
// file descriptor rather than a fake.
func NewTestBackend() Backend {
	return newBackend()
}

// DebugTerminalFlags reports whether canonical mode and echo are
// currently enabled on fd. It exists so integration tests can assert
// on raw-mode state without hard-coding a platform-specific termios
// ioctl request constant themselves.
func DebugTerminalFlags(fd int) (canonical, echo bool, err error) {
	state, err := getTermios(fd)
	if err != nil {
		return false, false, err
	}
	return state.Lflag&unix.ICANON != 0, state.Lflag&unix.ECHO != 0, nil
}
