// Package session wires a Tokenizer to a live terminal file descriptor.
//
// It is the one place in this module that performs the process I/O the
// token package deliberately stays out of: entering raw mode, reading
// chunks from the controlling terminal, and feeding them to a
// token.Tokenizer. Session normalizes that into a channel of Event
// values retrievable via Poll (blocking) or Next (non-blocking).
//
//	sess := session.New()
//	if err := sess.Start(); err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Stop()
//
//	for {
//	    ev, ok := sess.Poll()
//	    if !ok {
//	        break
//	    }
//	    if ev.Err != nil {
//	        log.Printf("tokenizer error: %v", ev.Err)
//	        continue
//	    }
//	    fmt.Println(ev.Token)
//	}
package session
