package debugs

import (
	"context"

	"github.com/reusee/bfi/bfvm"
	"go.starlark.net/starlark"
)

// MachineGlobals exposes m to tap sessions.
// Values that change while stepping are builtins so they read the live state.
func MachineGlobals(ctx context.Context, m *bfvm.Machine) map[string]any {
	getter := func(name string, get func() starlark.Value) *starlark.Builtin {
		return starlark.NewBuiltin(name, func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return get(), nil
		})
	}

	return map[string]any{
		"code":   m.Code,
		"config": m.Config,

		"tape": getter("tape", func() starlark.Value {
			cells := make([]starlark.Value, len(m.Tape))
			for i, v := range m.Tape {
				cells[i] = starlark.MakeInt(int(v))
			}
			return starlark.NewList(cells)
		}),
		"cell": getter("cell", func() starlark.Value {
			return starlark.MakeInt(m.Cell)
		}),
		"value": getter("value", func() starlark.Value {
			return starlark.MakeInt(int(m.Tape[m.Cell]))
		}),
		"ip": getter("ip", func() starlark.Value {
			return starlark.MakeInt(m.IP)
		}),
		"steps": getter("steps", func() starlark.Value {
			return starlark.MakeUint64(m.Steps)
		}),
		"done": getter("done", func() starlark.Value {
			return starlark.Bool(m.Done())
		}),

		"step": starlark.NewBuiltin("step", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			n := 1
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0, &n); err != nil {
				return nil, err
			}
			for range n {
				done, err := m.Step()
				if err != nil {
					return nil, err
				}
				if done {
					break
				}
			}
			return starlark.Bool(m.Done()), nil
		}),

		"run": starlark.NewBuiltin("run", func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			if err := m.Run(ctx); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),
	}
}
