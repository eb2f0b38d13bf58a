package session

import "github.com/dshills/vtstream/token"

// Event pairs one tokenizer result with the token stream's error slot:
// exactly one of Token, Err is meaningful, mirroring token.Dispatch's
// own contract.
type Event struct {
	Token token.Token
	Err   error
}

// Session reads a terminal's raw byte stream and republishes it as a
// channel of tokenized Events. All methods are safe for concurrent use
// from multiple goroutines.
type Session interface {
	// Start puts the terminal into raw mode and begins reading in a
	// background goroutine. Returns an error if the backend fails to
	// initialize or the session was already started.
	Start() error

	// Stop restores the terminal and stops reading. Idempotent and
	// safe to call multiple times; all blocked Poll calls return
	// (Event{}, false) afterward.
	Stop()

	// Poll blocks until the next Event is available or the session is
	// shutting down.
	Poll() (Event, bool)

	// Next returns the next available Event without blocking, or nil
	// if none is queued.
	Next() *Event
}

// Backend is the platform-specific terminal I/O contract Session relies
// on. It abstracts raw-mode entry/exit and chunked reads; it performs
// no tokenization of its own.
type Backend interface {
	// Init enters raw mode, saving state for Restore. Idempotent.
	Init() error

	// Restore exits raw mode. Idempotent and safe even if Init failed.
	Restore() error

	// ReadChunk blocks until at least one byte is available and
	// returns it. Returns io.EOF when the underlying descriptor is
	// closed.
	ReadChunk() ([]byte, error)
}

// New creates a Session using the platform-appropriate Backend and a
// fresh token.Tokenizer.
func New() Session {
	return newSession(newBackend())
}
