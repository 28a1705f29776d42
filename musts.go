package bignum

import "fmt"

// MustFromString is like [FromString] but panics if the string is invalid.
func MustFromString(s string) BigUint {
	u, err := FromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustFromString(%q) failed: %v", s, err))
	}
	return u
}

// MustSub is like [BigUint.Sub] but panics on underflow.
func (u BigUint) MustSub(v BigUint) BigUint {
	z, err := u.Sub(v)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", v, err))
	}
	return z
}

// MustQuo is like [BigUint.Quo] but panics if by is zero.
func (u BigUint) MustQuo(by BigUint) BigUint {
	q, err := u.Quo(by)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", by, err))
	}
	return q
}

// MustRem is like [BigUint.Rem] but panics if by is zero.
func (u BigUint) MustRem(by BigUint) BigUint {
	r, err := u.Rem(by)
	if err != nil {
		panic(fmt.Sprintf("MustRem(%v) failed: %v", by, err))
	}
	return r
}

// MustModExp is like [BigUint.ModExp] but panics if m is zero.
func (u BigUint) MustModExp(e, m BigUint) BigUint {
	z, err := u.ModExp(e, m)
	if err != nil {
		panic(fmt.Sprintf("MustModExp(%v, %v) failed: %v", e, m, err))
	}
	return z
}
