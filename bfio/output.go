package bfio

import (
	"bufio"
	"bytes"
	"io"
	"os"

	"github.com/reusee/bfi/logs"
	"golang.org/x/term"
)

// Output buffers program output. On a terminal it is also flushed after every newline.
type Output struct {
	w          *bufio.Writer
	isTerminal bool
}

var _ io.Writer = new(Output)

func NewOutput(w io.Writer) *Output {
	return &Output{
		w:          bufio.NewWriter(w),
		isTerminal: isTerminal(w),
	}
}

func (o *Output) Write(p []byte) (int, error) {
	n, err := o.w.Write(p)
	if err != nil {
		return n, err
	}
	if o.isTerminal && bytes.IndexByte(p, '\n') >= 0 {
		if err := o.w.Flush(); err != nil {
			return n, err
		}
	}
	return n, nil
}

func (o *Output) Flush() error {
	return o.w.Flush()
}

func (Module) Output(
	stdout Stdout,
) *Output {
	return NewOutput(stdout)
}

// Input is the program input. Interactive terminals are noted in the log.
type Input io.Reader

func (Module) Input(
	stdin Stdin,
	logger logs.Logger,
) Input {
	if isTerminal(stdin) {
		logger.Info("reading program input from terminal")
	}
	return stdin
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
