package session

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/dshills/vtstream/token"
)

// sessionImpl is the concrete Session implementation: a background
// goroutine reads chunks from a Backend and feeds them to a
// token.Tokenizer, publishing results on a buffered channel.
type sessionImpl struct {
	backend   Backend
	tokenizer *token.Tokenizer
	events    chan Event
	done      chan struct{}
	wg        sync.WaitGroup
	mu        sync.Mutex
	started   bool
	stopOnce  sync.Once
}

func newSession(backend Backend) *sessionImpl {
	return &sessionImpl{
		backend:   backend,
		tokenizer: token.NewTokenizer(),
		events:    make(chan Event, 100),
		done:      make(chan struct{}),
	}
}

// Start initializes the backend and begins the capture goroutine.
func (s *sessionImpl) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("session already started")
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("failed to initialize backend: %w", err)
	}

	s.wg.Add(1)
	go s.captureLoop()

	s.started = true
	return nil
}

// Stop signals the capture goroutine to exit, waits for it, and
// restores the terminal. Safe to call multiple times.
func (s *sessionImpl) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		if !s.started {
			s.mu.Unlock()
			return
		}
		s.mu.Unlock()

		close(s.done)
		s.wg.Wait()

		_ = s.backend.Restore()

		s.mu.Lock()
		s.started = false
		s.mu.Unlock()

		close(s.events)
	})
}

// Poll returns the next available Event, blocking until one arrives or
// the session shuts down.
func (s *sessionImpl) Poll() (Event, bool) {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return Event{}, false
		}
		return ev, true
	case <-s.done:
		return Event{}, false
	}
}

// Next returns the next available Event without blocking, or nil if
// none is queued.
func (s *sessionImpl) Next() *Event {
	select {
	case ev, ok := <-s.events:
		if !ok {
			return nil
		}
		return &ev
	default:
		return nil
	}
}

// captureLoop reads chunks from the backend and tokenizes them until
// Stop is called or the backend reports a terminal error.
func (s *sessionImpl) captureLoop() {
	defer s.wg.Done()

	const (
		maxConsecutiveErrors = 10
		errorBackoff         = 100 * time.Millisecond
	)
	consecutiveErrors := 0

	dispatch := func(t token.Token, err error) {
		select {
		case s.events <- Event{Token: t, Err: err}:
		case <-s.done:
		}
	}

	for {
		select {
		case <-s.done:
			return
		default:
		}

		chunk, err := s.backend.ReadChunk()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			consecutiveErrors++
			if consecutiveErrors >= maxConsecutiveErrors {
				return
			}
			select {
			case <-time.After(errorBackoff):
				continue
			case <-s.done:
				return
			}
		}
		consecutiveErrors = 0

		if len(chunk) == 0 {
			continue
		}
		s.tokenizer.Enqueue(chunk, dispatch)
	}
}
