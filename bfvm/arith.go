package bfvm

// mod is the non-negative remainder of a divided by m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// shift moves v by n unit steps inside [lo, hi], as if each unit step were applied in turn.
// v must already lie in the range.
// Under PolicyError the returned value is the last legal value reached.
func shift(v, n, lo, hi int, policy OverflowPolicy, overflow, underflow error) (int, error) {
	target := v + n
	if target >= lo && target <= hi {
		return target, nil
	}
	switch policy {
	case PolicyWrap:
		return lo + mod(target-lo, hi-lo+1), nil
	case PolicyIgnore:
		if target > hi {
			return hi, nil
		}
		return lo, nil
	default:
		if target > hi {
			return hi, overflow
		}
		return lo, underflow
	}
}

// fit maps an arbitrary stored value into [lo, hi].
// ok is false when PolicyIgnore drops the store.
func fit(v, lo, hi int, policy OverflowPolicy) (ret int, ok bool, err error) {
	if v >= lo && v <= hi {
		return v, true, nil
	}
	switch policy {
	case PolicyWrap:
		return lo + mod(v-lo, hi-lo+1), true, nil
	case PolicyIgnore:
		return 0, false, nil
	default:
		if v > hi {
			return 0, false, ErrValueOverflow
		}
		return 0, false, ErrValueUnderflow
	}
}
