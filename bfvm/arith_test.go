package bfvm

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// sequential applies n unit steps one at a time.
func sequential(v, n, lo, hi int, policy OverflowPolicy) (int, error) {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for range n {
		next := v + step
		if next >= lo && next <= hi {
			v = next
			continue
		}
		switch policy {
		case PolicyWrap:
			if step > 0 {
				v = lo
			} else {
				v = hi
			}
		case PolicyIgnore:
		case PolicyError:
			if step > 0 {
				return v, ErrValueOverflow
			}
			return v, ErrValueUnderflow
		}
	}
	return v, nil
}

func TestShiftMatchesSequentialSteps(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 42))
	policies := []OverflowPolicy{PolicyWrap, PolicyIgnore, PolicyError}
	for range 5000 {
		lo := rng.IntN(50)
		hi := lo + rng.IntN(206)
		v := lo + rng.IntN(hi-lo+1)
		n := rng.IntN(1000) + 1
		if rng.IntN(2) == 0 {
			n = -n
		}
		policy := policies[rng.IntN(len(policies))]

		expected, expectedErr := sequential(v, n, lo, hi, policy)
		got, err := shift(v, n, lo, hi, policy, ErrValueOverflow, ErrValueUnderflow)
		if !errors.Is(err, expectedErr) || (expectedErr == nil && err != nil) {
			t.Fatalf("v=%d n=%d [%d,%d] %v: got err %v, want %v", v, n, lo, hi, policy, err, expectedErr)
		}
		if got != expected {
			t.Fatalf("v=%d n=%d [%d,%d] %v: got %d, want %d", v, n, lo, hi, policy, got, expected)
		}
	}
}

func TestFit(t *testing.T) {
	if v, ok, err := fit(300, 0, 255, PolicyWrap); err != nil || !ok || v != 44 {
		t.Fatalf("got %d %v %v", v, ok, err)
	}
	if v, ok, err := fit(-1, 0, 255, PolicyWrap); err != nil || !ok || v != 255 {
		t.Fatalf("got %d %v %v", v, ok, err)
	}
	if _, ok, err := fit(300, 0, 255, PolicyIgnore); err != nil || ok {
		t.Fatalf("got %v %v", ok, err)
	}
	if _, _, err := fit(0, 10, 20, PolicyError); !errors.Is(err, ErrValueUnderflow) {
		t.Fatalf("got %v", err)
	}
	if v, ok, err := fit(15, 10, 20, PolicyError); err != nil || !ok || v != 15 {
		t.Fatalf("got %d %v %v", v, ok, err)
	}
}
