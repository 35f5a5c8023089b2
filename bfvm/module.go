package bfvm

import (
	"io"

	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/logs"
	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// NewMachine is New with the scope's logger attached.
type NewMachine func(config Config, code []bfcode.Instruction, input io.Reader, output io.Writer) (*Machine, error)

func (Module) NewMachine(
	logger logs.Logger,
) NewMachine {
	return func(config Config, code []bfcode.Instruction, input io.Reader, output io.Writer) (*Machine, error) {
		m, err := New(config, code, input, output)
		if err != nil {
			return nil, err
		}
		m.SetLogger(logger)
		return m, nil
	}
}
