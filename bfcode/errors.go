package bfcode

import (
	"errors"
	"fmt"
)

var (
	ErrUnmatchedClose = errors.New("unmatched loop end")
	ErrUnmatchedOpen  = errors.New("unmatched loop start")
)

type SyntaxError struct {
	Name   string
	Line   int
	Column int
	Err    error
}

func (s *SyntaxError) Error() string {
	name := s.Name
	if name == "" {
		name = "<source>"
	}
	return fmt.Sprintf("%s:%d:%d: %v", name, s.Line, s.Column, s.Err)
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}
