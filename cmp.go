package bignum

// Cmp compares u and v and returns -1, 0 or +1.
//
// A normalised value never carries leading zero limbs, so the limb count
// alone decides the order unless the counts match.
func (u BigUint) Cmp(v BigUint) int {
	return cmpLimbs(u.words(), v.words())
}

func (u BigUint) Equal(v BigUint) bool {
	uw, vw := u.words(), v.words()
	if len(uw) != len(vw) {
		return false
	}
	for i := len(uw) - 1; i >= 0; i-- {
		if uw[i] != vw[i] {
			return false
		}
	}
	return true
}

func (u BigUint) NotEqual(v BigUint) bool { return !u.Equal(v) }

func (u BigUint) GreaterThan(v BigUint) bool { return u.Cmp(v) > 0 }

func (u BigUint) LessThan(v BigUint) bool { return u.Cmp(v) < 0 }

func (u BigUint) GreaterOrEqualTo(v BigUint) bool { return !u.LessThan(v) }

func (u BigUint) LessOrEqualTo(v BigUint) bool { return !u.GreaterThan(v) }

func cmpLimbs(x, y []uint64) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}
