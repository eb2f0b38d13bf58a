// Command vtstream-demo runs a child command inside a pseudo-terminal
// and prints every token the vtstream tokenizer recognizes in its
// output, one line per token.
//
//	vtstream-demo -- ls --color=always
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dshills/vtstream/ptyfeed"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [command] [args...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "runs command in a pty and prints every token its output tokenizes to\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = []string{"ls", "--color=always"}
	}

	sess := ptyfeed.NewSession(args[0], args[1:]...)
	if err := sess.Start(); err != nil {
		log.Fatalf("failed to start %v: %v", args, err)
	}

	for ev := range sess.Events() {
		if ev.Err != nil {
			log.Printf("tokenizer error: %v", ev.Err)
			continue
		}
		fmt.Println(ev.Token)
	}

	if err := sess.Wait(); err != nil {
		log.Printf("%v exited with error: %v", args, err)
	}
}
