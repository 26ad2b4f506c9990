package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	c := New(strings.NewReader("first line\nsecond\n"), io.Discard, 0)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first line\n", line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second\n", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	c := New(strings.NewReader("tail"), io.Discard, 0)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "tail", line)
}

func TestReadLine_Truncates(t *testing.T) {
	c := New(strings.NewReader("abcdefgh\nnext\n"), io.Discard, 5)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "abcde", line)

	// The rest of the long line is gone; the next read starts on a new line.
	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next\n", line)
}

func TestReadLine_TruncatesByCharacters(t *testing.T) {
	c := New(strings.NewReader("ééééé\n"), io.Discard, 3)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "ééé", line)
}

func TestReadLine_ExactlyAtCapKeepsTerminator(t *testing.T) {
	c := New(strings.NewReader("abc\n"), io.Discard, 3)
	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "abc\n", line)
}

func TestReadLine_LongLineDroppedUpToNewline(t *testing.T) {
	long := strings.Repeat("x", 1<<20)
	c := New(strings.NewReader(long+"\nnext\n"), io.Discard, 999)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 999), line)

	line, err = c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next\n", line)
}

func TestReadLine_TruncatedLastLineIsNotEOF(t *testing.T) {
	c := New(strings.NewReader("abcdefgh"), io.Discard, 5)

	line, err := c.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "abcde", line)

	_, err = c.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineContext_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	c := New(pr, io.Discard, 0)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.ReadLineContext(ctx)
		errCh <- err
	}()
	cancel()

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("ReadLineContext did not return after cancellation")
	}
}

func TestReadIntContext(t *testing.T) {
	c := New(strings.NewReader("42\n"), io.Discard, 0)
	n, err := c.ReadIntContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestReadInt(t *testing.T) {
	c := New(strings.NewReader("  1234\n-7 trailing\nabc\n"), io.Discard, 0)

	n, err := c.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 1234, n)

	n, err = c.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	_, err = c.ReadInt()
	assert.ErrorIs(t, err, ErrNotANumber)

	_, err = c.ReadInt()
	assert.ErrorIs(t, err, io.EOF)
}

func TestParseLeadingInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "42", want: 42},
		{in: "+8", want: 8},
		{in: "\t 12ab", want: 12},
		{in: "3.9", want: 3},
		{in: "", wantErr: true},
		{in: "-", wantErr: true},
		{in: "x1", wantErr: true},
		{in: "99999999999999999999999", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLeadingInt(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrNotANumber), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPromptAndPrintln(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, 0)
	c.Prompt("Enter: ")
	c.Println("done")
	assert.Equal(t, "Enter: done\n", out.String())
}
