package ptyfeed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"

	"github.com/dshills/vtstream/session"
	"github.com/dshills/vtstream/token"
)

// Session runs name(args...) attached to a pseudo-terminal and
// publishes every byte the child writes, tokenized, on Events.
type Session struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	tok    *token.Tokenizer
	events chan session.Event
	wg     sync.WaitGroup
}

// NewSession constructs a Session for the given command without
// starting it.
func NewSession(name string, args ...string) *Session {
	return &Session{
		cmd: exec.Command(name, args...),
		tok: token.NewTokenizer(),
		// Buffered generously: a child process can burst far faster
		// than a consumer draining one token at a time.
		events: make(chan session.Event, 4096),
	}
}

// Start forks the child attached to a new pty, sizing it to match the
// host terminal (falling back to 80x24 when stdin is not a tty), and
// begins streaming its output through the tokenizer in a background
// goroutine.
func (s *Session) Start() error {
	ptmx, err := pty.Start(s.cmd)
	if err != nil {
		return fmt.Errorf("failed to start pty: %w", err)
	}
	s.ptmx = ptmx

	rows, cols := hostSize()
	_ = pty.Setsize(ptmx, &pty.Winsize{Rows: rows, Cols: cols})

	s.wg.Add(1)
	go s.readLoop()

	return nil
}

// hostSize reads the host terminal's dimensions via golang.org/x/term,
// falling back to a conventional 80x24 when stdin is not a terminal
// (e.g. when running under a test harness or CI).
func hostSize() (rows, cols uint16) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 24, 80
	}
	w, h, err := term.GetSize(int(os.Stdin.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 24, 80
	}
	return uint16(h), uint16(w)
}

// Resize propagates a new terminal size to the child's pty.
func (s *Session) Resize(rows, cols uint16) error {
	if s.ptmx == nil {
		return fmt.Errorf("pty session not started")
	}
	return pty.Setsize(s.ptmx, &pty.Winsize{Rows: rows, Cols: cols})
}

// Events returns the channel of tokenized output. It is closed once
// the pty master is exhausted (the child process exited and all
// buffered output has been read).
func (s *Session) Events() <-chan session.Event {
	return s.events
}

// Wait blocks until the child process exits.
func (s *Session) Wait() error {
	return s.cmd.Wait()
}

// Close closes the pty master, which unblocks Wait once the child
// notices its output stream is gone.
func (s *Session) Close() error {
	if s.ptmx == nil {
		return nil
	}
	return s.ptmx.Close()
}

func (s *Session) readLoop() {
	defer s.wg.Done()
	defer close(s.events)

	buf := make([]byte, 4096)
	dispatch := func(t token.Token, err error) {
		s.events <- session.Event{Token: t, Err: err}
	}

	for {
		n, err := s.ptmx.Read(buf)
		if n > 0 {
			s.tok.Enqueue(buf[:n], dispatch)
		}
		if err != nil {
			// On Linux a pty master reports the end of the child's
			// output as EIO rather than io.EOF.
			if err != io.EOF && !errors.Is(err, syscall.EIO) {
				s.events <- session.Event{Err: fmt.Errorf("pty read failed: %w", err)}
			}
			return
		}
	}
}
