//go:build windows
// +build windows

package session

import (
	"errors"
	"fmt"
)

// windowsBackend implements Backend for Windows systems. Like the
// teacher's own backend_windows.go, console-mode raw input is not yet
// implemented; contributions are welcome.
type windowsBackend struct {
	initialized bool
}

// newBackend creates a new platform-specific backend.
func newBackend() Backend {
	return &windowsBackend{}
}

// Init initializes the backend.
func (b *windowsBackend) Init() error {
	if b.initialized {
		return nil
	}
	// TODO: save console mode, enable ENABLE_VIRTUAL_TERMINAL_INPUT via
	// SetConsoleMode, disable line/echo input.
	return fmt.Errorf("windows backend not yet implemented - contributions welcome")
}

// Restore restores the terminal state.
func (b *windowsBackend) Restore() error {
	if !b.initialized {
		return nil
	}
	// TODO: restore saved console mode.
	return nil
}

// ReadChunk reads a chunk of raw console input.
func (b *windowsBackend) ReadChunk() ([]byte, error) {
	// TODO: ReadConsoleInput / ReadFile against the console handle.
	return nil, errors.New("windows backend not yet implemented")
}
