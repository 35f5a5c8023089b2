package bfvm

import (
	"encoding/gob"
	"io"
)

// Snapshot encodes the machine state. Input and output streams are not part of it.
func (m *Machine) Snapshot(w io.Writer) error {
	enc := gob.NewEncoder(w)
	if err := enc.Encode(m); err != nil {
		return err
	}
	return nil
}

// Restore replaces the machine state with a snapshot, keeping the attached streams.
func (m *Machine) Restore(r io.Reader) error {
	// gob skips zero values, so decode into a fresh state
	var state Machine
	dec := gob.NewDecoder(r)
	if err := dec.Decode(&state); err != nil {
		return err
	}
	m.Config = state.Config
	m.Code = state.Code
	m.Tape = state.Tape
	m.Cell = state.Cell
	m.IP = state.IP
	m.EOF = state.EOF
	m.Steps = state.Steps
	return nil
}
