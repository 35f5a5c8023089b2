// Package bfcode compiles tape-language source into run-length-merged,
// loop-resolved instructions.
package bfcode

import "fmt"

type Kind uint8

const (
	ValueIncrement Kind = iota + 1
	ValueDecrement
	PointerIncrement
	PointerDecrement
	Input
	Output
	LoopStart
	LoopEnd
)

var kindNames = [...]string{
	ValueIncrement:   "ValueIncrement",
	ValueDecrement:   "ValueDecrement",
	PointerIncrement: "PointerIncrement",
	PointerDecrement: "PointerDecrement",
	Input:            "Input",
	Output:           "Output",
	LoopStart:        "LoopStart",
	LoopEnd:          "LoopEnd",
}

var kindSymbols = [...]byte{
	ValueIncrement:   '+',
	ValueDecrement:   '-',
	PointerIncrement: '>',
	PointerDecrement: '<',
	Input:            ',',
	Output:           '.',
	LoopStart:        '[',
	LoopEnd:          ']',
}

func (k Kind) String() string {
	if k.valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Symbol returns the source character of the kind.
func (k Kind) Symbol() byte {
	if k.valid() {
		return kindSymbols[k]
	}
	return '?'
}

// Mergeable reports whether adjacent instructions of this kind collapse into one.
// Loop markers are distinct control-flow sites and never do.
func (k Kind) Mergeable() bool {
	return k != LoopStart && k != LoopEnd
}

func (k Kind) valid() bool {
	return k >= ValueIncrement && k <= LoopEnd
}

// KindOf maps a source rune to its kind. ok is false for commentary.
func KindOf(r rune) (kind Kind, ok bool) {
	switch r {
	case '+':
		return ValueIncrement, true
	case '-':
		return ValueDecrement, true
	case '>':
		return PointerIncrement, true
	case '<':
		return PointerDecrement, true
	case ',':
		return Input, true
	case '.':
		return Output, true
	case '[':
		return LoopStart, true
	case ']':
		return LoopEnd, true
	}
	return 0, false
}
