// Package input reads player commands one line at a time.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned once no more lines can be read.
var ErrInputClosed = errors.New("input closed")

// LineReader prompts for and reads whole lines from an input stream.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader creates a reader over in that writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine writes prompt and returns the next line without its line ending.
// A final line lacking a newline is still returned; the call after it
// reports ErrInputClosed.
func (r *LineReader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if line != "" && errors.Is(err, io.EOF) {
			return trimEOL(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
	}

	return trimEOL(line), nil
}

func trimEOL(line string) string {
	return strings.TrimRight(line, "\r\n")
}
