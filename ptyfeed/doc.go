// Package ptyfeed runs a child process attached to a real pseudo-
// terminal and streams its output through a token.Tokenizer.
//
// Where package session tokenizes the process's own controlling
// terminal, ptyfeed is the harness for driving the tokenizer against
// another program's output — exactly the kind of arbitrarily-chunked,
// real-world byte stream the chunk-independence invariant is meant to
// survive, as opposed to hand-written test fixtures.
package ptyfeed
