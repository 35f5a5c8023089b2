package bfvm

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/logs"
)

type Machine struct {
	Config Config
	Code   []bfcode.Instruction
	Tape   []byte
	Cell   int
	IP     int
	EOF    bool
	Steps  uint64

	input  io.ByteReader
	output io.Writer
	outBuf []byte
	logger logs.Logger
}

type flusher interface {
	Flush() error
}

// check for cancellation once per this many backward jumps
const cancelCheckInterval = 1 << 16

func New(
	config Config,
	code []bfcode.Instruction,
	input io.Reader,
	output io.Writer,
) (*Machine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tape := make([]byte, config.TapeLength)
	if initial := config.initialCell(); initial != 0 {
		for i := range tape {
			tape[i] = initial
		}
	}

	m := &Machine{
		Config: config,
		Code:   code,
		Tape:   tape,
		output: output,
		logger: slog.New(slog.DiscardHandler),
	}
	if input != nil {
		if br, ok := input.(io.ByteReader); ok {
			m.input = br
		} else {
			m.input = bufio.NewReader(input)
		}
	}
	return m, nil
}

func (m *Machine) SetLogger(logger logs.Logger) {
	m.logger = logger
}

// Done reports whether the instruction cursor has run past the end of the code.
func (m *Machine) Done() bool {
	return m.IP >= len(m.Code)
}

// Step executes exactly one instruction.
func (m *Machine) Step() (done bool, err error) {
	if m.Done() {
		return true, nil
	}
	next, err := m.exec(m.Code[m.IP])
	if err != nil {
		return false, err
	}
	m.IP = next
	m.Steps++
	return m.Done(), nil
}

// Run executes until the instruction cursor passes the end of the code or an error occurs.
// Buffered output is flushed before returning.
func (m *Machine) Run(ctx context.Context) (err error) {
	m.logger.DebugContext(ctx, "run start",
		"instructions", len(m.Code),
		"cells", len(m.Tape),
	)
	defer func() {
		if e := m.flush(); e != nil && err == nil {
			err = e
		}
		m.logger.DebugContext(ctx, "run end",
			"steps", m.Steps,
			"ip", m.IP,
			"cell", m.Cell,
		)
	}()

	jumps := 0
	for m.IP < len(m.Code) {
		next, err := m.exec(m.Code[m.IP])
		if err != nil {
			return err
		}
		if next <= m.IP {
			jumps++
			if jumps == cancelCheckInterval {
				jumps = 0
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
			}
		}
		m.IP = next
		m.Steps++
	}

	return nil
}

func (m *Machine) exec(inst bfcode.Instruction) (next int, err error) {
	next = m.IP + 1
	config := &m.Config

	switch inst.Kind {

	case bfcode.ValueIncrement, bfcode.ValueDecrement:
		n := inst.Repeat
		if inst.Kind == bfcode.ValueDecrement {
			n = -n
		}
		v, err := shift(
			int(m.Tape[m.Cell]), n,
			config.MinValue, config.MaxValue,
			config.ValueOverflow,
			ErrValueOverflow, ErrValueUnderflow,
		)
		m.Tape[m.Cell] = byte(v)
		if err != nil {
			return 0, m.fault(inst, err)
		}

	case bfcode.PointerIncrement, bfcode.PointerDecrement:
		n := inst.Repeat
		if inst.Kind == bfcode.PointerDecrement {
			n = -n
		}
		c, err := shift(
			m.Cell, n,
			0, len(m.Tape)-1,
			config.PointerOverflow,
			ErrPointerOverflow, ErrPointerUnderflow,
		)
		if err != nil {
			return 0, m.fault(inst, err)
		}
		m.Cell = c

	case bfcode.Input:
		for range inst.Repeat {
			if err := m.read(inst); err != nil {
				return 0, err
			}
		}

	case bfcode.Output:
		if err := m.write(inst); err != nil {
			return 0, err
		}

	case bfcode.LoopStart:
		if m.Tape[m.Cell] == 0 {
			next = inst.Target
		}

	case bfcode.LoopEnd:
		if m.Tape[m.Cell] != 0 {
			next = inst.Target
		}

	default:
		return 0, fmt.Errorf("bad instruction %v at %d", inst.Kind, m.IP)
	}

	return next, nil
}

func (m *Machine) read(inst bfcode.Instruction) error {
	if !m.EOF && m.input != nil {
		if err := m.flush(); err != nil {
			return err
		}
		b, err := m.input.ReadByte()
		if err == nil {
			return m.store(inst, int(b))
		}
		if !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}
	}
	m.EOF = true

	switch m.Config.EOF {
	case EOFZero:
		return m.store(inst, 0)
	case EOFMinimum:
		return m.store(inst, m.Config.MinValue)
	case EOFMaximum:
		return m.store(inst, m.Config.MaxValue)
	case EOFNegativeOne:
		return m.store(inst, int(byte(0xff)))
	}
	return nil
}

func (m *Machine) store(inst bfcode.Instruction, v int) error {
	v, ok, err := fit(v, m.Config.MinValue, m.Config.MaxValue, m.Config.ValueOverflow)
	if err != nil {
		return m.fault(inst, err)
	}
	if ok {
		m.Tape[m.Cell] = byte(v)
	}
	return nil
}

func (m *Machine) write(inst bfcode.Instruction) error {
	if m.output == nil {
		return nil
	}
	v := m.Tape[m.Cell]
	buf := m.outBuf[:0]
	for range inst.Repeat {
		if m.Config.Encoding == EncodingByte {
			buf = append(buf, v)
		} else {
			buf = utf8.AppendRune(buf, rune(v))
		}
	}
	m.outBuf = buf
	if _, err := m.output.Write(buf); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func (m *Machine) flush() error {
	if f, ok := m.output.(flusher); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("flush output: %w", err)
		}
	}
	return nil
}

func (m *Machine) fault(inst bfcode.Instruction, err error) error {
	return &RuntimeError{
		IP:   m.IP,
		Cell: m.Cell,
		Kind: inst.Kind,
		Err:  err,
	}
}
