package bfio

import (
	"io"
	"os"

	"github.com/reusee/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

// Stdin is the program input stream.
type Stdin io.Reader

// Stdout is the program output sink.
type Stdout io.Writer

func (Module) Stdin() Stdin {
	return os.Stdin
}

func (Module) Stdout() Stdout {
	return os.Stdout
}
