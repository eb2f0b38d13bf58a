// Package token provides an incremental terminal input tokenizer.
//
// A Tokenizer consumes arbitrary byte chunks as they arrive from an
// xterm-compatible terminal emulator and emits a monotonically ordered
// stream of Token and error values through a caller-supplied Dispatch
// callback. Chunks may split any escape sequence at any byte boundary;
// the Tokenizer buffers incomplete sequences until enough bytes have
// arrived to make progress.
//
// # Basic usage
//
//	tok := token.NewTokenizer()
//	tok.Enqueue([]byte("hello\x1b[1;31m"), func(t token.Token, err error) {
//	    if err != nil {
//	        log.Printf("tokenizer error: %v", err)
//	        return
//	    }
//	    fmt.Printf("%+v\n", t)
//	})
//
// # What this package does not do
//
// It does not read from a file descriptor or pty (see package ptyfeed
// for that), does not interpret OSC payloads beyond splitting code from
// data, does not maintain a terminal screen model, and does not emit
// synthetic tokens when a partial sequence stalls waiting for more
// bytes — a partial escape sequence simply remains buffered.
//
// # Concurrency
//
// A Tokenizer is not safe for concurrent use by multiple goroutines;
// callers needing that must serialize their own calls to Enqueue. The
// Dispatch callback runs synchronously on the calling goroutine and
// must not call Enqueue on the same Tokenizer — doing so is a caller
// bug and is not guaranteed to behave safely.
package token
