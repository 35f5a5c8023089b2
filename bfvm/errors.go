package bfvm

import (
	"errors"
	"fmt"

	"github.com/reusee/bfi/bfcode"
)

var (
	ErrValueOverflow    = errors.New("value overflow")
	ErrValueUnderflow   = errors.New("value underflow")
	ErrPointerOverflow  = errors.New("pointer overflow")
	ErrPointerUnderflow = errors.New("pointer underflow")
)

// RuntimeError records the machine position at which a run aborted.
type RuntimeError struct {
	IP   int
	Cell int
	Kind bfcode.Kind
	Err  error
}

func (r *RuntimeError) Error() string {
	return fmt.Sprintf("%v at instruction %d (%s), cell %d", r.Err, r.IP, r.Kind, r.Cell)
}

func (r *RuntimeError) Unwrap() error {
	return r.Err
}
