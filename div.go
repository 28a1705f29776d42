package bignum

// Quo returns the quotient u/by, truncated towards zero. If by is zero,
// ErrDivideByZero is returned.
func (u BigUint) Quo(by BigUint) (q BigUint, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

// QuoRem returns the quotient q and remainder r of u/by, such that
//
//	q = u/by      with the result truncated to zero
//	r = u - by*q
//
// If by is zero, ErrDivideByZero is returned.
func (u BigUint) QuoRem(by BigUint) (q, r BigUint, err error) {
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u, nil // it's 100% remainder
	} else if cmp == 0 {
		return From64(1), r, nil // dividend and divisor are the same
	}

	if u.IsUint64() {
		// by is smaller than u, so it fits in a limb too.
		x, y := u.AsUint64(), by.AsUint64()
		return From64(x / y), From64(x % y), nil
	}

	q, r = quoremBin(u, by, true)
	return q, r, nil
}

// Rem returns the remainder of u%by. If by is zero, ErrDivideByZero is
// returned.
func (u BigUint) Rem(by BigUint) (r BigUint, err error) {
	if by.IsZero() {
		return r, ErrDivideByZero
	}
	return u.rem(by), nil
}

func (u BigUint) Quo64(by uint64) (BigUint, error) { return u.Quo(From64(by)) }
func (u BigUint) Rem64(by uint64) (BigUint, error) { return u.Rem(From64(by)) }

// QuoAssign replaces u with u/by. On error u is left untouched.
func (u *BigUint) QuoAssign(by BigUint) error {
	q, err := u.Quo(by)
	if err != nil {
		return err
	}
	*u = q
	return nil
}

// RemAssign replaces u with u%by. On error u is left untouched.
func (u *BigUint) RemAssign(by BigUint) error {
	r, err := u.Rem(by)
	if err != nil {
		return err
	}
	*u = r
	return nil
}

func (u *BigUint) QuoAssign64(by uint64) error { return u.QuoAssign(From64(by)) }
func (u *BigUint) RemAssign64(by uint64) error { return u.RemAssign(From64(by)) }

// rem is Rem without the zero check; by must not be zero.
func (u BigUint) rem(by BigUint) BigUint {
	if cmp := u.Cmp(by); cmp < 0 {
		return u
	} else if cmp == 0 {
		return zeroBigUint
	}

	if u.IsUint64() {
		return From64(u.AsUint64() % by.AsUint64())
	}

	_, r := quoremBin(u, by, false)
	return r
}

// quoremBin is bit-by-bit binary long division. It requires u > by > 0. The
// quotient is only built when wantQuo is set.
func quoremBin(u, by BigUint, wantQuo bool) (q, r BigUint) {
	shift := u.BitLen() - by.BitLen()

	r = u.clone(0)
	d := by.clone(u.Digits() + 1)
	d.lsh(uint(shift))

	if wantQuo {
		q = newBigUint(shift/64 + 1)
		q.n = shift/64 + 1
	}

	for i := shift; i >= 0; i-- {
		// performance tweak: compare the raw limbs rather than going through Cmp.
		if cmpLimbs(r.limbs[:r.n], d.limbs[:d.n]) >= 0 {
			r.sub(d.limbs[:d.n])
			if wantQuo {
				q.limbs[i/64] |= 1 << (uint(i) % 64)
			}
		}
		d.rsh(1)
	}

	if wantQuo {
		q.norm()
	}
	return q, r
}
