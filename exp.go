package bignum

// Exp returns u**e using square-and-multiply over the bits of e. Exp of any
// value to the power of 0, including 0**0, is 1.
func (u BigUint) Exp(e BigUint) BigUint {
	result := From64(1)
	base := u

	ew, nbits := e.words(), e.BitLen()
	for i := 0; i < nbits; i++ {
		if ew[i/64]>>(uint(i)%64)&1 == 1 {
			result = mulLimbs(result.words(), base.words())
		}
		if i+1 < nbits {
			base = mulLimbs(base.words(), base.words())
		}
	}
	return result
}

func (u BigUint) Exp64(e uint64) BigUint { return u.Exp(From64(e)) }

// ModExp returns (u**e) % m using square-and-multiply, reducing modulo m
// after every multiplication so intermediate values stay below m*m. If m is
// zero, ErrDivideByZero is returned.
func (u BigUint) ModExp(e, m BigUint) (BigUint, error) {
	if m.IsZero() {
		return zeroBigUint, ErrDivideByZero
	}

	result := From64(1).rem(m)
	base := u.rem(m)

	ew, nbits := e.words(), e.BitLen()
	for i := 0; i < nbits; i++ {
		if ew[i/64]>>(uint(i)%64)&1 == 1 {
			result = mulLimbs(result.words(), base.words()).rem(m)
		}
		if i+1 < nbits {
			base = mulLimbs(base.words(), base.words()).rem(m)
		}
	}
	return result, nil
}

func (u *BigUint) ExpAssign(e BigUint)  { *u = u.Exp(e) }
func (u *BigUint) ExpAssign64(e uint64) { *u = u.Exp64(e) }

// ModExpAssign replaces u with (u**e) % m. On error u is left untouched.
func (u *BigUint) ModExpAssign(e, m BigUint) error {
	z, err := u.ModExp(e, m)
	if err != nil {
		return err
	}
	*u = z
	return nil
}
