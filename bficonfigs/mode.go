package bficonfigs

import (
	"errors"
	"fmt"
)

var ErrUsage = errors.New("usage error")

type RunMode uint8

const (
	RunModeRun RunMode = iota + 1
	RunModeDump
	RunModeTap
)

func (r RunMode) String() string {
	switch r {
	case RunModeRun:
		return "run"
	case RunModeDump:
		return "dump"
	case RunModeTap:
		return "tap"
	}
	return fmt.Sprintf("RunMode(%d)", r)
}

func (r *RunMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "run", "r", "":
		*r = RunModeRun
	case "dump", "d":
		*r = RunModeDump
	case "tap", "t":
		*r = RunModeTap
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrUsage, text)
	}
	return nil
}

func (s Settings) RunMode() (mode RunMode, err error) {
	err = mode.UnmarshalText([]byte(s.Mode))
	return
}
