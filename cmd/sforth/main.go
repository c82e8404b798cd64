// Command sforth is a host-side driver for the SForth engine. It runs
// either a line-editing REPL (the default, via chzyer/readline — see
// launix-de-memcp/scm/prompt.go for the pattern this follows) or, with
// -raw, drives Engine.ShellHook byte-at-a-time against a raw terminal,
// simulating the non-blocking serial input contract a real MCU build
// would satisfy with actual UART bytes (see hagna-eforth/example/nbio.go
// for the raw-termios technique this generalizes to golang.org/x/term).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	sforth "github.com/scm2000/SForth"
	"github.com/scm2000/SForth/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to an sforth.toml config file")
		raw        = flag.Bool("raw", false, "drive ShellHook byte-at-a-time against a raw terminal instead of a line REPL")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *raw {
		if err := runRaw(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runREPL(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runREPL drives the engine with Evaluate, one readline-edited line at
// a time.
func runREPL(cfg config.Config) error {
	engine := sforth.New(cfg, os.Stdout, nil, nil)
	if err := engine.Begin(); err != nil {
		return err
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            "SForth> ",
		HistoryFile:       ".sforth-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		engine.Evaluate(line)
	}
}

// runRaw drives the engine with ShellHook against a raw terminal, one
// byte at a time, exercising the same non-blocking contract a real MCU
// host loop satisfies.
func runRaw(cfg config.Config) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, oldState)

	in := newByteQueue(os.Stdin)
	defer in.Close()

	engine := sforth.New(cfg, os.Stdout, in, nil)
	if err := engine.Begin(); err != nil {
		return err
	}

	for !in.closed() {
		engine.ShellHook()
	}
	return nil
}

// byteQueue adapts a blocking io.Reader into sforth.Input's
// non-blocking Available/ReadByte contract by reading on a background
// goroutine into a small channel.
type byteQueue struct {
	ch      chan byte
	done    chan struct{}
	pending []byte
}

func newByteQueue(r io.Reader) *byteQueue {
	q := &byteQueue{ch: make(chan byte, 256), done: make(chan struct{})}
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				q.ch <- buf[0]
			}
			if err != nil {
				close(q.done)
				return
			}
		}
	}()
	return q
}

func (q *byteQueue) Available() bool {
	select {
	case b := <-q.ch:
		// Peek isn't available on a channel; push the byte back onto
		// a one-slot buffer by re-sending would race with ReadByte,
		// so instead stash it for the next ReadByte call.
		q.pending = append(q.pending, b)
		return true
	default:
		return len(q.pending) > 0
	}
}

func (q *byteQueue) ReadByte() byte {
	b := q.pending[0]
	q.pending = q.pending[1:]
	return b
}

func (q *byteQueue) closed() bool {
	select {
	case <-q.done:
		return len(q.pending) == 0 && len(q.ch) == 0
	default:
		return false
	}
}

func (q *byteQueue) Close() {}
