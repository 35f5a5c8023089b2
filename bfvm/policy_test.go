package bfvm

import "testing"

func TestPolicyText(t *testing.T) {
	overflows := map[string]OverflowPolicy{
		"wrap": PolicyWrap, "w": PolicyWrap,
		"error": PolicyError, "e": PolicyError,
		"ignore": PolicyIgnore, "i": PolicyIgnore,
	}
	for text, expected := range overflows {
		var p OverflowPolicy
		if err := p.UnmarshalText([]byte(text)); err != nil {
			t.Fatal(err)
		}
		if p != expected {
			t.Fatalf("%s: got %v", text, p)
		}
	}

	eofs := map[string]EOFPolicy{
		"zero": EOFZero, "0": EOFZero,
		"minimum": EOFMinimum, "a": EOFMinimum,
		"maximum": EOFMaximum, "b": EOFMaximum,
		"negative-one": EOFNegativeOne, "n": EOFNegativeOne,
		"no-change": EOFNoChange, "x": EOFNoChange,
	}
	for text, expected := range eofs {
		var e EOFPolicy
		if err := e.UnmarshalText([]byte(text)); err != nil {
			t.Fatal(err)
		}
		if e != expected {
			t.Fatalf("%s: got %v", text, e)
		}
		round, err := e.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var again EOFPolicy
		if err := again.UnmarshalText(round); err != nil || again != e {
			t.Fatalf("%s: round trip got %v %v", text, again, err)
		}
	}

	var p OverflowPolicy
	if err := p.UnmarshalText([]byte("explode")); err == nil {
		t.Fatal("should error")
	}
	var e EOFPolicy
	if err := e.UnmarshalText([]byte("-1")); err == nil {
		t.Fatal("should error")
	}
	var enc Encoding
	if err := enc.UnmarshalText([]byte("byte")); err != nil || enc != EncodingByte {
		t.Fatalf("got %v %v", enc, err)
	}
	if err := enc.UnmarshalText([]byte("utf16")); err == nil {
		t.Fatal("should error")
	}
}
