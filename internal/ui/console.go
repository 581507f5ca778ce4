// Package ui provides the line-based terminal console the game talks through.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrInterrupted is returned by reads abandoned because the session context
// was cancelled (Ctrl-C).
var ErrInterrupted = errors.New("session interrupted")

// Prompter is the console surface used by the game systems.
type Prompter interface {
	// Choose shows a numbered menu and returns the zero-based selection.
	Choose(ctx context.Context, prompt string, options []string) (int, error)
	// Say prints one formatted line.
	Say(format string, args ...any)
	// Paint colors text for display.
	Paint(text string, color tcell.Color) string
}

// Options controls console presentation.
type Options struct {
	Color     bool          // Emit 24-bit ANSI colors
	Clear     bool          // Allow clearing the screen
	TextDelay time.Duration // Per-character delay for Typewrite
	Pause     time.Duration // Length of dramatic pauses
}

type lineResult struct {
	text string
	err  error
}

// Console reads operator input line by line and writes game text.
type Console struct {
	in   io.Reader
	out  io.Writer
	opts Options

	once  sync.Once
	lines chan lineResult

	closeOnce sync.Once
	done      chan struct{}
}

// NewConsole creates a console over the given reader and writer.
func NewConsole(in io.Reader, out io.Writer, opts Options) *Console {
	return &Console{
		in:    in,
		out:   out,
		opts:  opts,
		lines: make(chan lineResult),
		done:  make(chan struct{}),
	}
}

// Close stops the background reader. A read already blocked inside the
// underlying reader finishes on its own; its line is discarded.
func (c *Console) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

// scan feeds input lines to the channel until the reader is exhausted or
// the console is closed. It runs on its own goroutine so ReadLine can give
// up on cancellation. Lines have no length limit.
func (c *Console) scan() {
	defer close(c.lines)

	r := bufio.NewReader(c.in)
	for {
		line, err := r.ReadString('\n')
		if line != "" || err == nil {
			if !c.send(lineResult{text: line}) {
				return
			}
		}
		if err != nil {
			c.send(lineResult{err: err})
			return
		}
	}
}

func (c *Console) send(res lineResult) bool {
	select {
	case c.lines <- res:
		return true
	case <-c.done:
		return false
	}
}

// ReadLine blocks for the next input line, trimmed of surrounding space.
// It returns ErrInterrupted if ctx is cancelled first and io.EOF once input
// is closed.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}
	c.once.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case <-c.done:
		return "", io.EOF
	case res, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.text), nil
	}
}

// Ask prints prompt without a trailing newline and reads the answer.
func (c *Console) Ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	return c.ReadLine(ctx)
}

// AskNonEmpty repeats Ask until the answer is not blank.
func (c *Console) AskNonEmpty(ctx context.Context, prompt string) (string, error) {
	for {
		answer, err := c.Ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		c.Say("⚠️  Please enter something.")
	}
}

// WaitForEnter prints a prompt and waits for any line.
func (c *Console) WaitForEnter(ctx context.Context, prompt string) error {
	_, err := c.Ask(ctx, prompt)
	return err
}

// Choose shows a numbered menu and returns the zero-based selection.
// Non-numeric and out-of-range answers print a warning and re-prompt.
func (c *Console) Choose(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, errors.New("choose: no options")
	}

	for {
		fmt.Fprintf(c.out, "\n%s\n", prompt)
		for i, option := range options {
			fmt.Fprintf(c.out, "%d. %s\n", i+1, option)
		}

		answer, err := c.Ask(ctx, "\nEnter a number: ")
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			c.Say("⚠️  Please enter a number.")
			continue
		}
		if n < 1 || n > len(options) {
			c.Say("⚠️  Invalid choice. Please try again.")
			continue
		}
		return n - 1, nil
	}
}

// Say prints one formatted line.
func (c *Console) Say(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Typewrite prints text one character at a time. It stops early with
// ErrInterrupted when ctx is cancelled.
func (c *Console) Typewrite(ctx context.Context, text string) error {
	if c.opts.TextDelay <= 0 {
		fmt.Fprintln(c.out, text)
		return nil
	}
	for _, r := range text {
		fmt.Fprint(c.out, string(r))
		if err := sleep(ctx, c.opts.TextDelay); err != nil {
			fmt.Fprintln(c.out)
			return err
		}
	}
	fmt.Fprintln(c.out)
	return nil
}

// Pause waits for the configured pause length or until ctx is cancelled.
func (c *Console) Pause(ctx context.Context) error {
	return sleep(ctx, c.opts.Pause)
}

func sleep(ctx context.Context, d time.Duration) error {
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ErrInterrupted
	case <-t.C:
		return nil
	}
}

// Clear clears the terminal when clearing is enabled.
func (c *Console) Clear() {
	if c.opts.Clear {
		fmt.Fprint(c.out, "\x1b[H\x1b[2J")
	}
}

// Paint wraps text in a 24-bit foreground color escape when colors are
// enabled and the color is valid.
func (c *Console) Paint(text string, color tcell.Color) string {
	if !c.opts.Color {
		return text
	}
	return Colorize(text, color)
}

var _ Prompter = (*Console)(nil)
