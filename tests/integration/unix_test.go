//go:build linux || darwin
// +build linux darwin

package integration_test

import (
	"os"
	"testing"

	"github.com/dshills/vtstream/session"
	"golang.org/x/term"
)

// TestUnixBackendTerminalStateSaveRestore validates that the Unix
// backend correctly saves and restores terminal state.
//
// This test requires a real terminal (tty). It is skipped if stdin is
// not a terminal.
func TestUnixBackendTerminalStateSaveRestore(t *testing.T) {
	if !isTerminal() {
		t.Skip("Skipping integration test: not running in a terminal")
	}

	fd := int(os.Stdin.Fd())

	originalCanonical, originalEcho, err := session.DebugTerminalFlags(fd)
	if err != nil {
		t.Fatalf("Failed to get original terminal state: %v", err)
	}

	b := session.NewTestBackend()

	if err := b.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	rawCanonical, rawEcho, err := session.DebugTerminalFlags(fd)
	if err != nil {
		t.Fatalf("Failed to get raw state: %v", err)
	}
	if rawCanonical {
		t.Error("Terminal should have ICANON disabled in raw mode")
	}
	if rawEcho {
		t.Error("Terminal should have ECHO disabled in raw mode")
	}

	if err := b.Restore(); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	restoredCanonical, restoredEcho, err := session.DebugTerminalFlags(fd)
	if err != nil {
		t.Fatalf("Failed to get restored state: %v", err)
	}
	if restoredCanonical != originalCanonical {
		t.Errorf("ICANON not restored: got %v, want %v", restoredCanonical, originalCanonical)
	}
	if restoredEcho != originalEcho {
		t.Errorf("ECHO not restored: got %v, want %v", restoredEcho, originalEcho)
	}
}

// TestUnixBackendIdempotent validates that Init and Restore are
// idempotent.
func TestUnixBackendIdempotent(t *testing.T) {
	if !isTerminal() {
		t.Skip("Skipping integration test: not running in a terminal")
	}

	b := session.NewTestBackend()

	if err := b.Init(); err != nil {
		t.Fatalf("First Init() failed: %v", err)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Second Init() failed: %v", err)
	}
	if err := b.Restore(); err != nil {
		t.Fatalf("First Restore() failed: %v", err)
	}
	if err := b.Restore(); err != nil {
		t.Fatalf("Second Restore() failed: %v", err)
	}

	b2 := session.NewTestBackend()
	if err := b2.Restore(); err != nil {
		t.Fatalf("Restore() without Init() failed: %v", err)
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
