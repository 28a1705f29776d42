package bignum

import (
	"math/bits"
)

func (u BigUint) Add(v BigUint) BigUint {
	uw, vw := u.words(), v.words()
	ln := len(uw)
	if len(vw) > ln {
		ln = len(vw)
	}
	z := u.clone(ln + 1)
	z.add(vw)
	return z
}

func (u BigUint) Add64(v uint64) BigUint {
	z := u.clone(u.Digits() + 1)
	z.add64(v)
	return z
}

// Sub returns u - v. If v is larger than u, an *UnderflowError is returned;
// the result never wraps.
func (u BigUint) Sub(v BigUint) (BigUint, error) {
	if u.LessThan(v) {
		return zeroBigUint, &UnderflowError{X: u, Y: v}
	}
	z := u.clone(0)
	z.sub(v.words())
	return z, nil
}

func (u BigUint) Sub64(v uint64) (BigUint, error) {
	if u.IsUint64() && u.AsUint64() < v {
		return zeroBigUint, &UnderflowError{X: u, Y: From64(v)}
	}
	z := u.clone(0)
	z.sub64(v)
	return z, nil
}

func (u BigUint) Mul(v BigUint) BigUint {
	return mulLimbs(u.words(), v.words())
}

func (u BigUint) Mul64(v uint64) BigUint {
	z := u.clone(u.Digits() + 1)
	z.mul64(v)
	return z
}

func (u *BigUint) AddAssign(v BigUint)  { *u = u.Add(v) }
func (u *BigUint) AddAssign64(v uint64) { *u = u.Add64(v) }
func (u *BigUint) MulAssign(v BigUint)  { *u = u.Mul(v) }
func (u *BigUint) MulAssign64(v uint64) { *u = u.Mul64(v) }

// SubAssign replaces u with u - v. On underflow u is left untouched.
func (u *BigUint) SubAssign(v BigUint) error {
	z, err := u.Sub(v)
	if err != nil {
		return err
	}
	*u = z
	return nil
}

func (u *BigUint) SubAssign64(v uint64) error {
	z, err := u.Sub64(v)
	if err != nil {
		return err
	}
	*u = z
	return nil
}

// add adds v to z in place. The caller must own z, and v must not share its
// buffer.
func (z *BigUint) add(v []uint64) {
	ln := z.n
	if len(v) > ln {
		ln = len(v)
	}
	z.grow(ln + 1)

	var carry uint64
	for i := 0; i < ln; i++ {
		var vi uint64
		if i < len(v) {
			vi = v[i]
		} else if carry == 0 {
			break
		}
		z.limbs[i], carry = bits.Add64(z.limbs[i], vi, carry)
	}

	z.n = ln
	if carry != 0 {
		z.limbs[ln] = carry
		z.n++
	}
}

func (z *BigUint) add64(v uint64) {
	z.grow(z.n + 1)

	carry := v
	for i := 0; i < z.n && carry != 0; i++ {
		z.limbs[i], carry = bits.Add64(z.limbs[i], carry, 0)
	}
	if carry != 0 {
		z.limbs[z.n] = carry
		z.n++
	}
}

// sub subtracts v from z in place. z must be >= v.
func (z *BigUint) sub(v []uint64) {
	var borrow uint64
	for i := 0; i < len(v) || borrow != 0; i++ {
		var vi uint64
		if i < len(v) {
			vi = v[i]
		}
		z.limbs[i], borrow = bits.Sub64(z.limbs[i], vi, borrow)
	}
	z.norm()
}

// sub64 subtracts v from z in place. z must be >= v.
func (z *BigUint) sub64(v uint64) {
	borrow := v
	for i := 0; borrow != 0; i++ {
		z.limbs[i], borrow = bits.Sub64(z.limbs[i], borrow, 0)
	}
	z.norm()
}

func (z *BigUint) mul64(v uint64) {
	z.grow(z.n + 1)

	var carry uint64
	for i := 0; i < z.n; i++ {
		hi, lo := bits.Mul64(z.limbs[i], v)
		var c uint64
		z.limbs[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
	if carry != 0 {
		z.limbs[z.n] = carry
		z.n++
	}
	z.norm()
}

// mulLimbs is schoolbook multiplication of x by y into a fresh value of
// len(x)+len(y) limbs.
func mulLimbs(x, y []uint64) BigUint {
	z := newBigUint(len(x) + len(y))
	ly := len(y)

	for i, xi := range x {
		if xi == 0 {
			continue
		}
		var carry uint64
		for j, yj := range y {
			// xi*yj + carry + z[i+j] never exceeds 128 bits.
			hi, lo := bits.Mul64(xi, yj)
			var c uint64
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			lo, c = bits.Add64(lo, z.limbs[i+j], 0)
			hi += c
			z.limbs[i+j] = lo
			carry = hi
		}
		z.limbs[i+ly] += carry
	}

	z.n = len(x) + ly
	z.norm()
	return z
}
