// Package console is the line-oriented boundary between trio and a terminal:
// it writes prompts, reads one line at a time and parses integers the way a
// C scanf("%d") would.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"trio/internal/logging"
)

// ErrNotANumber is returned by ReadInt when the line does not start with an integer.
var ErrNotANumber = errors.New("input is not a number")

// Console reads lines from r and writes prompts and results to w.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	maxLen int
}

// New returns a Console. maxLen caps the characters kept from one line; a
// value <= 0 disables the cap.
func New(r io.Reader, w io.Writer, maxLen int) *Console {
	return &Console{
		in:     bufio.NewReader(r),
		out:    w,
		maxLen: maxLen,
	}
}

// Prompt writes text without a trailing newline.
func (c *Console) Prompt(text string) {
	fmt.Fprint(c.out, text)
}

// Println writes one line of output.
func (c *Console) Println(text string) {
	fmt.Fprintln(c.out, text)
}

// ReadLine reads one line and returns it with its terminator. A line longer
// than the cap is cut to maxLen characters and loses its terminator; the
// rest of that line is consumed and dropped without being kept in memory.
// io.EOF is returned only when nothing was read.
func (c *Console) ReadLine() (string, error) {
	var sb strings.Builder
	kept := 0
	dropped := 0
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("failed to read line: %w", err)
			}
			if kept == 0 && dropped == 0 {
				return "", io.EOF
			}
			break
		}
		if r == '\n' {
			if dropped == 0 {
				sb.WriteRune(r)
			}
			break
		}
		if c.maxLen > 0 && kept >= c.maxLen {
			dropped++
			continue
		}
		sb.WriteRune(r)
		kept++
	}

	if dropped > 0 {
		logging.Get(logging.CategoryConsole).Debug("line truncated",
			zap.Int("chars", kept+dropped),
			zap.Int("cap", c.maxLen))
	}
	return sb.String(), nil
}

type readResult struct {
	line string
	err  error
}

// ReadLineContext is ReadLine that gives up when ctx is done. The read
// itself cannot be interrupted, so a Console must not be used again after
// a cancelled read.
func (c *Console) ReadLineContext(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ch := make(chan readResult, 1)
	go func() {
		line, err := c.ReadLine()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		return res.line, res.err
	}
}

// ReadInt reads one line and parses its leading integer. Leading blanks and
// an optional sign are accepted; anything after the digits is ignored.
func (c *Console) ReadInt() (int, error) {
	return c.ReadIntContext(context.Background())
}

// ReadIntContext is ReadInt that gives up when ctx is done.
func (c *Console) ReadIntContext(ctx context.Context) (int, error) {
	line, err := c.ReadLineContext(ctx)
	if err != nil {
		return 0, err
	}
	n, err := ParseLeadingInt(line)
	if err != nil {
		logging.Get(logging.CategoryConsole).Debug("integer parse failed",
			zap.String("line", strings.TrimSpace(line)),
			zap.Error(err))
		return 0, err
	}
	return n, nil
}

// ParseLeadingInt parses the integer at the start of s, after any
// whitespace.
func ParseLeadingInt(s string) (int, error) {
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, ErrNotANumber
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, err)
	}
	return n, nil
}
