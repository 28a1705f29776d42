package bignum

type RandSource interface {
	Uint64() uint64
}

// RandBigUint generates an unsigned integer of up to limbs*64 random bits
// from an external source.
func RandBigUint(source RandSource, limbs int) BigUint {
	if limbs <= 0 {
		return zeroBigUint
	}
	z := newBigUint(limbs)
	for i := 0; i < limbs; i++ {
		z.limbs[i] = source.Uint64()
	}
	z.n = limbs
	z.norm()
	return z
}

// Larger returns the larger of a and b.
func Larger(a, b BigUint) BigUint {
	if a.LessThan(b) {
		return b
	}
	return a
}

// Smaller returns the smaller of a and b.
func Smaller(a, b BigUint) BigUint {
	if b.LessThan(a) {
		return b
	}
	return a
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b BigUint) BigUint {
	if a.LessThan(b) {
		a, b = b, a
	}
	z := a.clone(0)
	z.sub(b.words())
	return z
}
