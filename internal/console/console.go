package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when input ends while a prompt is waiting for
// an answer.
var ErrInputClosed = errors.New("input closed")

// Console is a line-oriented input/output pair.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// ReadLine returns the next input line without its line ending. Lines have
// no length limit; a final line without a newline is still returned.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt writes text without a newline and reads the reply.
func (c *Console) Prompt(text string) (string, error) {
	c.Print(text)
	return c.ReadLine()
}

func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Writer exposes the output stream.
func (c *Console) Writer() io.Writer {
	return c.out
}
