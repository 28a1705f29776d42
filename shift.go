package bignum

// Lsh returns u << n. No bits are ever lost.
func (u BigUint) Lsh(n uint) BigUint {
	if n == 0 || u.IsZero() {
		return u
	}
	z := u.clone(u.Digits() + int(n/64) + 1)
	z.lsh(n)
	return z
}

// Rsh returns u >> n.
func (u BigUint) Rsh(n uint) BigUint {
	if n == 0 {
		return u
	}
	if n/64 >= uint(u.Digits()) {
		return zeroBigUint
	}
	z := u.clone(0)
	z.rsh(n)
	return z
}

func (u *BigUint) LshAssign(n uint) { *u = u.Lsh(n) }
func (u *BigUint) RshAssign(n uint) { *u = u.Rsh(n) }

func (z *BigUint) lsh(n uint) {
	if n == 0 {
		return
	}
	ws, bs := int(n/64), n%64
	ln := z.n + ws
	if bs != 0 {
		ln++
	}
	z.grow(ln)

	if bs == 0 {
		copy(z.limbs[ws:], z.limbs[:z.n])
	} else {
		// Top down, so each destination limb has already been read. The high
		// part lands in a limb that was either zero or just written by the
		// limb above it.
		for i := z.n - 1; i >= 0; i-- {
			w := z.limbs[i]
			z.limbs[i+ws+1] |= w >> (64 - bs)
			z.limbs[i+ws] = w << bs
		}
	}
	for i := 0; i < ws; i++ {
		z.limbs[i] = 0
	}

	z.n = ln
	z.norm()
}

func (z *BigUint) rsh(n uint) {
	if n == 0 {
		return
	}
	ws, bs := int(n/64), n%64
	if ws >= z.n {
		z.setZero()
		return
	}

	ln := z.n - ws
	if bs == 0 {
		copy(z.limbs[:ln], z.limbs[ws:z.n])
	} else {
		for i := 0; i < ln; i++ {
			w := z.limbs[i+ws] >> bs
			if i+ws+1 < z.n {
				w |= z.limbs[i+ws+1] << (64 - bs)
			}
			z.limbs[i] = w
		}
	}
	for i := ln; i < z.n; i++ {
		z.limbs[i] = 0
	}

	z.n = ln
	z.norm()
}
