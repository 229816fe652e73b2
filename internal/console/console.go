// Package console reads player input one line at a time.
//
// On a terminal it uses readline, so Ctrl-C arrives as ErrInterrupted
// instead of killing the process. Anything else (pipes, files, tests)
// goes through a buffered Reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the player presses Ctrl-C at the prompt.
var ErrInterrupted = errors.New("console: interrupted")

// LineReader returns io.EOF when input is exhausted and ctx.Err() when
// ctx is done before a line arrives.
type LineReader interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Close() error
}

// Open picks a readline-backed reader when in is a terminal.
func Open(in *os.File, out io.Writer) (LineReader, error) {
	if term.IsTerminal(int(in.Fd())) {
		return NewReadline(in, out)
	}
	return NewReader(in, out), nil
}

type lineResult struct {
	line string
	err  error
}

// Reader reads newline-terminated lines of any length. The blocking read
// runs in its own goroutine so a caller can give up on ctx.
type Reader struct {
	br  *bufio.Reader
	out io.Writer

	once  sync.Once
	lines chan lineResult
	err   error // sticky once the input is done
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		br:    bufio.NewReader(in),
		out:   out,
		lines: make(chan lineResult),
	}
}

func (r *Reader) pump() {
	for {
		s, err := r.br.ReadString('\n')
		if err == io.EOF && s != "" {
			// last line without a trailing newline
			err = nil
		}
		s = strings.TrimSuffix(s, "\n")
		s = strings.TrimSuffix(s, "\r")
		r.lines <- lineResult{line: s, err: err}
		if err != nil {
			return
		}
	}
}

func (r *Reader) ReadLine(ctx context.Context, prompt string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	r.once.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		// finish the prompt line so whatever follows starts clean
		_, _ = io.WriteString(r.out, "\n")
		return "", ctx.Err()
	case res := <-r.lines:
		switch {
		case res.err == nil:
			return res.line, nil
		case errors.Is(res.err, io.EOF):
			_, _ = io.WriteString(r.out, "\n")
			r.err = io.EOF
		default:
			r.err = fmt.Errorf("console: read: %w", res.err)
		}
		return "", r.err
	}
}

func (r *Reader) Close() error { return nil }

type Readline struct {
	rl *readline.Instance
}

func NewReadline(in io.ReadCloser, out io.Writer) (*Readline, error) {
	rl, err := readline.NewEx(&readline.Config{
		Stdin:           in,
		Stdout:          out,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("console: readline: %w", err)
	}
	return &Readline{rl: rl}, nil
}

func (r *Readline) ReadLine(ctx context.Context, prompt string) (string, error) {
	// closing the instance is the only way to unblock Readline
	stop := context.AfterFunc(ctx, func() { _ = r.rl.Close() })
	defer stop()

	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	switch {
	case ctx.Err() != nil:
		return "", ctx.Err()
	case errors.Is(err, readline.ErrInterrupt):
		return "", ErrInterrupted
	case err != nil:
		return "", err
	}
	return line, nil
}

func (r *Readline) Close() error {
	return r.rl.Close()
}
