package bficonfigs

import (
	"fmt"

	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/cmds"
	"github.com/reusee/bfi/configs"
	"github.com/reusee/bfi/vars"
)

// Settings are the raw interpreter settings, before parsing.
type Settings struct {
	File            string
	Mode            string
	TapeLength      int
	MinValue        int
	MaxValue        int
	EOF             string
	ValueOverflow   string
	PointerOverflow string
	Encoding        string
	Snapshot        string
	TapScript       string
}

var (
	files               = cmds.Rest[string]("file")
	modeFlag            = cmds.Var[string]("-mode", "-m")
	tapeLengthFlag      = cmds.Var[*int]("-cells", "-c")
	minValueFlag        = cmds.Var[*int]("-min", "-a")
	maxValueFlag        = cmds.Var[*int]("-max", "-b")
	eofFlag             = cmds.Var[string]("-eof", "-e")
	valueOverflowFlag   = cmds.Var[string]("-value", "-l")
	pointerOverflowFlag = cmds.Var[string]("-pointer", "-p")
	encodingFlag        = cmds.Var[string]("-encoding")
	snapshotFlag        = cmds.Var[string]("-snapshot")
	tapScriptFlag       = cmds.Var[string]("-tap-script")
)

type LoadSettings func() (Settings, error)

func (Module) LoadSettings(
	loader configs.Loader,
) LoadSettings {
	return func() (ret Settings, err error) {
		if err := loader.Err(); err != nil {
			return ret, fmt.Errorf("load config: %w", err)
		}

		str := func(flag string, keys ...string) (string, error) {
			value, err := configs.First[string](loader, keys...)
			if err != nil {
				return "", err
			}
			return vars.FirstNonZero(flag, vars.FirstNonNil("", value)), nil
		}
		num := func(flag *int, def int, keys ...string) (int, error) {
			value, err := configs.First[int](loader, keys...)
			if err != nil {
				return 0, err
			}
			return vars.FirstNonNil(def, flag, value), nil
		}

		if len(*files) > 1 {
			return ret, fmt.Errorf("%w: more than one source file", ErrUsage)
		}
		if len(*files) > 0 {
			ret.File = (*files)[0]
		} else if ret.File, err = str("", "file"); err != nil {
			return
		}

		if ret.Mode, err = str(*modeFlag, "mode"); err != nil {
			return
		}
		if ret.TapeLength, err = num(*tapeLengthFlag, bfvm.DefaultTapeLength, "tape_length", "cells"); err != nil {
			return
		}
		if ret.MinValue, err = num(*minValueFlag, bfvm.DefaultMinValue, "min_value"); err != nil {
			return
		}
		if ret.MaxValue, err = num(*maxValueFlag, bfvm.DefaultMaxValue, "max_value"); err != nil {
			return
		}
		if ret.EOF, err = str(*eofFlag, "eof"); err != nil {
			return
		}
		if ret.ValueOverflow, err = str(*valueOverflowFlag, "value_overflow"); err != nil {
			return
		}
		if ret.PointerOverflow, err = str(*pointerOverflowFlag, "pointer_overflow"); err != nil {
			return
		}
		if ret.Encoding, err = str(*encodingFlag, "encoding"); err != nil {
			return
		}
		if ret.Snapshot, err = str(*snapshotFlag, "snapshot"); err != nil {
			return
		}
		if ret.TapScript, err = str(*tapScriptFlag, "tap_script"); err != nil {
			return
		}

		return
	}
}

// MachineConfig parses the policy names and validates the result.
func (s Settings) MachineConfig() (config bfvm.Config, err error) {
	config = bfvm.DefaultConfig()
	config.TapeLength = s.TapeLength
	config.MinValue = s.MinValue
	config.MaxValue = s.MaxValue

	parse := func(what string, text string, target interface{ UnmarshalText([]byte) error }) {
		if err != nil || text == "" {
			return
		}
		if e := target.UnmarshalText([]byte(text)); e != nil {
			err = fmt.Errorf("%s: %w", what, e)
		}
	}
	parse("eof", s.EOF, &config.EOF)
	parse("value overflow", s.ValueOverflow, &config.ValueOverflow)
	parse("pointer overflow", s.PointerOverflow, &config.PointerOverflow)
	parse("encoding", s.Encoding, &config.Encoding)
	if err != nil {
		return
	}

	if err = config.Validate(); err != nil {
		return
	}
	return
}

func init() {
	for name, desc := range map[string]string{
		"-mode":       "run, dump or tap",
		"-cells":      "tape length",
		"-min":        "minimum cell value",
		"-max":        "maximum cell value",
		"-eof":        "end of input: zero, minimum, maximum, negative-one or no-change",
		"-value":      "value overflow: wrap, error or ignore",
		"-pointer":    "pointer overflow: wrap, error or ignore",
		"-encoding":   "output encoding: char or byte",
		"-snapshot":   "write the final machine state to this file",
		"-tap-script": "starlark script to run in tap mode",
		"-config":     "additional CUE config file",
	} {
		cmds.Describe(name, desc)
	}
}
