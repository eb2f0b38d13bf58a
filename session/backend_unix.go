//go:build linux || darwin
// +build linux darwin

package session

import (
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// readBufferPool provides reusable read buffers, avoiding a per-chunk
// allocation on the hot path.
var readBufferPool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 4096)
		return &b
	},
}

// unixBackend implements Backend for Unix-like systems using termios
// raw mode. Unlike the character-at-a-time design this is adapted
// from, it does no escape-sequence lookahead of its own: whatever the
// read() call returns is handed straight to the Tokenizer, which owns
// buffering partial sequences across calls.
type unixBackend struct {
	fd            int
	originalState *unix.Termios
	file          *os.File
	initialized   bool
}

// newBackend creates a new platform-specific backend.
func newBackend() Backend {
	return &unixBackend{
		fd:   int(os.Stdin.Fd()),
		file: os.Stdin,
	}
}

// Init saves the current terminal state and enters raw mode. Idempotent.
func (b *unixBackend) Init() error {
	if b.initialized {
		return nil
	}

	state, err := getTermios(b.fd)
	if err != nil {
		return fmt.Errorf("failed to get terminal state: %w", err)
	}
	b.originalState = state

	rawState := *state
	rawState.Lflag &^= unix.ICANON
	rawState.Lflag &^= unix.ECHO
	rawState.Lflag &^= unix.ISIG
	rawState.Lflag &^= unix.IEXTEN
	rawState.Iflag &^= unix.INPCK
	rawState.Iflag &^= unix.ISTRIP
	rawState.Iflag &^= unix.ICRNL
	rawState.Oflag &^= unix.OPOST
	rawState.Cflag &^= unix.CSIZE
	rawState.Cflag |= unix.CS8

	// Block for at least 1 byte per read, with no inter-byte timeout.
	// The Tokenizer handles sequences split across reads; the backend
	// does not need VTIME lookahead to assemble them itself.
	rawState.Cc[unix.VMIN] = 1
	rawState.Cc[unix.VTIME] = 0

	if err := setTermios(b.fd, &rawState); err != nil {
		return fmt.Errorf("failed to set raw mode: %w", err)
	}

	b.initialized = true
	return nil
}

// Restore restores the original terminal state.
func (b *unixBackend) Restore() error {
	if b.originalState == nil {
		return nil
	}
	if err := setTermios(b.fd, b.originalState); err != nil {
		return fmt.Errorf("failed to restore terminal state: %w", err)
	}
	return nil
}

// ReadChunk performs one blocking read and returns a copy of whatever
// bytes arrived.
func (b *unixBackend) ReadChunk() ([]byte, error) {
	bufPtr := readBufferPool.Get().(*[]byte)
	defer readBufferPool.Put(bufPtr)
	buf := *bufPtr

	n, err := b.file.Read(buf)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, io.EOF
	}

	chunk := make([]byte, n)
	copy(chunk, buf[:n])
	return chunk, nil
}
