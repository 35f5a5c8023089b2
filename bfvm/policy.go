package bfvm

import "fmt"

// OverflowPolicy decides what happens when a unit step would leave its legal range.
type OverflowPolicy uint8

const (
	PolicyWrap OverflowPolicy = iota
	PolicyError
	PolicyIgnore
)

func (p OverflowPolicy) String() string {
	switch p {
	case PolicyWrap:
		return "wrap"
	case PolicyError:
		return "error"
	case PolicyIgnore:
		return "ignore"
	}
	return fmt.Sprintf("OverflowPolicy(%d)", uint8(p))
}

func (p OverflowPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *OverflowPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "wrap", "w":
		*p = PolicyWrap
	case "error", "e":
		*p = PolicyError
	case "ignore", "i":
		*p = PolicyIgnore
	default:
		return fmt.Errorf("unknown overflow policy: %q", text)
	}
	return nil
}

// EOFPolicy decides the value an input instruction stores once the input is exhausted.
type EOFPolicy uint8

const (
	EOFZero EOFPolicy = iota
	EOFMinimum
	EOFMaximum
	EOFNegativeOne
	EOFNoChange
)

func (e EOFPolicy) String() string {
	switch e {
	case EOFZero:
		return "zero"
	case EOFMinimum:
		return "minimum"
	case EOFMaximum:
		return "maximum"
	case EOFNegativeOne:
		return "negative-one"
	case EOFNoChange:
		return "no-change"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(e))
}

func (e EOFPolicy) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *EOFPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "zero", "0":
		*e = EOFZero
	case "minimum", "min", "a":
		*e = EOFMinimum
	case "maximum", "max", "b":
		*e = EOFMaximum
	case "negative-one", "n":
		*e = EOFNegativeOne
	case "no-change", "x":
		*e = EOFNoChange
	default:
		return fmt.Errorf("unknown eof policy: %q", text)
	}
	return nil
}

// Encoding selects how output cells become bytes.
type Encoding uint8

const (
	// EncodingChar writes the UTF-8 form of the code point equal to the cell value.
	EncodingChar Encoding = iota
	// EncodingByte writes the cell value as a single raw byte.
	EncodingByte
)

func (e Encoding) String() string {
	switch e {
	case EncodingChar:
		return "char"
	case EncodingByte:
		return "byte"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

func (e Encoding) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

func (e *Encoding) UnmarshalText(text []byte) error {
	switch string(text) {
	case "char", "c":
		*e = EncodingChar
	case "byte", "raw":
		*e = EncodingByte
	default:
		return fmt.Errorf("unknown output encoding: %q", text)
	}
	return nil
}
