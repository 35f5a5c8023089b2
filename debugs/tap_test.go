package debugs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/bfi/bfcode"
	"github.com/reusee/bfi/bfvm"
	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func newTestMachine(t *testing.T, src string, config bfvm.Config) *bfvm.Machine {
	t.Helper()
	code, err := bfcode.CompileString(src)
	if err != nil {
		t.Fatal(err)
	}
	m, err := bfvm.New(config, code, strings.NewReader(""), new(bytes.Buffer))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestScript(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		script Script,
	) {
		config := bfvm.DefaultConfig()
		config.TapeLength = 4
		m := newTestMachine(t, "+++>++<[->+<]", config)
		out := new(bytes.Buffer)

		err := script(t.Context(), "inspect.star", `
def sum_cells(cells):
    total = 0
    for c in cells:
        total += c
    return total

print(len(code), code[0], config["TapeLength"], config["EOF"])
print(ip(), cell(), value(), done())
step()
print(ip(), value(), steps())
step(2)
print(ip(), cell(), value())
run()
print(done(), tape()[0], tape()[1])
print(type(tape()), type(tape()[1]), len(tape()), sum_cells(tape()))
`, MachineGlobals(t.Context(), m), out)
		if err != nil {
			t.Fatal(err)
		}

		expected := strings.Join([]string{
			"10 ValueIncrement x3 4 zero",
			"0 0 0 False",
			"1 3 1",
			"3 1 2",
			"True 0 5",
			"list int 4 5",
			"",
		}, "\n")
		if out.String() != expected {
			t.Fatalf("got %q", out.String())
		}
	})
}

func TestScriptRuntimeError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		script Script,
	) {
		config := bfvm.DefaultConfig()
		config.ValueOverflow = bfvm.PolicyError
		m := newTestMachine(t, "-", config)
		err := script(t.Context(), "fail.star", "step()", MachineGlobals(t.Context(), m), new(bytes.Buffer))
		if !errors.Is(err, bfvm.ErrValueUnderflow) {
			t.Fatalf("got %v", err)
		}
		if m.Tape[0] != 0 {
			t.Fatalf("got %d", m.Tape[0])
		}
	})
}

func TestScriptSyntaxError(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		script Script,
	) {
		err := script(t.Context(), "bad.star", "def", nil, new(bytes.Buffer))
		if err == nil {
			t.Fatal("should error")
		}
	})
}

func TestScriptCancel(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		script Script,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		err := script(ctx, "loop.star", "while True:\n  pass\n", nil, new(bytes.Buffer))
		if err == nil {
			t.Fatal("should error")
		}
	})
}
