package bfcode

import (
	"bytes"
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	code, err := CompileString("+++[>.<-]")
	if err != nil {
		t.Fatal(err)
	}
	buf := new(bytes.Buffer)
	if err := Dump(buf, code); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	expected := []string{
		"0 + ValueIncrement x3",
		"1 [ LoopStart x1 -> 7",
		"2 > PointerIncrement x1",
		"3 . Output x1",
		"4 < PointerDecrement x1",
		"5 - ValueDecrement x1",
		"6 ] LoopEnd x1 -> 2",
	}
	if len(lines) != len(expected) {
		t.Fatalf("got %q", buf.String())
	}
	for i, line := range lines {
		if got := strings.Join(strings.Fields(line), " "); got != expected[i] {
			t.Fatalf("line %d: got %q, want %q", i, got, expected[i])
		}
	}
}

func TestInstructionString(t *testing.T) {
	if str := (Instruction{Kind: Output, Repeat: 4}).String(); str != "Output x4" {
		t.Fatalf("got %s", str)
	}
	if str := (Instruction{Kind: LoopEnd, Repeat: 1, Target: 3}).String(); str != "LoopEnd -> 3" {
		t.Fatalf("got %s", str)
	}
}
