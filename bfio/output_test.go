package bfio

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/reusee/bfi/modes"
	"github.com/reusee/dscope"
)

func TestOutputBuffered(t *testing.T) {
	buf := new(bytes.Buffer)
	out := NewOutput(buf)
	if _, err := out.Write([]byte("foo\nbar")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Fatalf("got %q", buf.String())
	}
	if err := out.Flush(); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "foo\nbar" {
		t.Fatalf("got %q", buf.String())
	}
}

type errWriter struct{}

var errWrite = errors.New("write")

func (errWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestOutputError(t *testing.T) {
	out := NewOutput(errWriter{})
	if _, err := out.Write([]byte("x")); err != nil {
		t.Fatal(err)
	}
	if err := out.Flush(); !errors.Is(err, errWrite) {
		t.Fatalf("got %v", err)
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(new(bytes.Buffer)) {
		t.Fatal()
	}
	f, err := os.CreateTemp(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Fatal()
	}
}

func TestModule(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(Stdin(strings.NewReader("in"))),
		dscope.Provide(Stdout(buf)),
	).Call(func(
		input Input,
		output *Output,
	) {
		b := make([]byte, 2)
		if _, err := input.Read(b); err != nil {
			t.Fatal(err)
		}
		if string(b) != "in" {
			t.Fatalf("got %q", b)
		}
		if _, err := output.Write([]byte("out")); err != nil {
			t.Fatal(err)
		}
		if err := output.Flush(); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "out" {
			t.Fatalf("got %q", buf.String())
		}
	})
}
