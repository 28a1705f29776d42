package bignum

import (
	"math/big"
	"math/bits"
)

// BigUint is an arbitrary-precision unsigned integer.
//
// limbs holds the value little-endian, limb 0 least significant. Only the
// first n limbs are part of the value; limbs[n:] is spare capacity and is
// always zero. limbs[n-1] is non-zero unless the value is 0, in which case
// n == 1. A nil limbs slice (the zero value) also means 0.
type BigUint struct {
	n     int
	limbs []uint64
}

func From64(v uint64) BigUint {
	z := newBigUint(1)
	z.limbs[0] = v
	return z
}

func From32(v uint32) BigUint { return From64(uint64(v)) }

// From128 creates a BigUint from the high and low halves of a 128-bit
// integer.
func From128(hi, lo uint64) BigUint {
	z := newBigUint(2)
	z.limbs[0], z.limbs[1] = lo, hi
	if hi != 0 {
		z.n = 2
	}
	return z
}

func FromU128(v U128) BigUint {
	if v.IsUint64() {
		return From64(v.lo)
	}
	return From128(v.Raw())
}

// FromLimbs creates a BigUint from a little-endian limb slice. The slice is
// copied; leading zero limbs are trimmed.
func FromLimbs(limbs []uint64) BigUint {
	if len(limbs) == 0 {
		return BigUint{}
	}
	z := newBigUint(len(limbs))
	copy(z.limbs, limbs)
	z.n = len(limbs)
	z.norm()
	return z
}

// FromBigInt creates a BigUint from a big.Int. Negative values produce 0
// and set accurate to 'false'.
func FromBigInt(v *big.Int) (out BigUint, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) == 0 {
			return out, true
		}
		z := newBigUint(len(words))
		for i, w := range words {
			z.limbs[i] = uint64(w)
		}
		z.n = len(words)
		z.norm()
		return z, true

	case 32:
		ln := (len(words) + 1) / 2
		if ln == 0 {
			return out, true
		}
		z := newBigUint(ln)
		for i, w := range words {
			z.limbs[i/2] |= uint64(w) << (32 * uint(i%2))
		}
		z.n = ln
		z.norm()
		return z, true

	default:
		panic("bignum: unsupported bit size")
	}
}

// SetUint64 replaces u with v.
func (u *BigUint) SetUint64(v uint64) { *u = From64(v) }

// SetU128 replaces u with the 128-bit value v.
func (u *BigUint) SetU128(v U128) { *u = FromU128(v) }

// SetString replaces u with the decimal value in s. u is left untouched if
// s cannot be parsed.
func (u *BigUint) SetString(s string) error {
	v, err := FromString(s)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// Set replaces u with v. Limb buffers are never mutated once published, so
// no copy is made.
func (u *BigUint) Set(v BigUint) { *u = v }

// Clone returns a copy of u with its own limb buffer.
func (u BigUint) Clone() BigUint { return u.clone(0) }

func (u BigUint) IsZero() bool {
	return u.n <= 1 && (len(u.limbs) == 0 || u.limbs[0] == 0)
}

// IsUint64 reports whether u can be represented as a uint64.
func (u BigUint) IsUint64() bool { return u.n <= 1 }

// AsUint64 truncates u to its least significant limb. See IsUint64() if you
// want to check before you convert.
func (u BigUint) AsUint64() uint64 { return u.words()[0] }

// Digits returns the number of limbs in use.
func (u BigUint) Digits() int { return len(u.words()) }

// Limbs returns a little-endian copy of the limbs in use.
func (u BigUint) Limbs() []uint64 {
	w := u.words()
	out := make([]uint64, len(w))
	copy(out, w)
	return out
}

// BitLen returns the number of bits needed to represent u. BitLen of 0 is 0.
func (u BigUint) BitLen() int {
	w := u.words()
	top := len(w) - 1
	return top*64 + 64 - bits.LeadingZeros64(w[top])
}

// MostSignificantBit returns the 0-based index of the highest set bit. It
// returns 0 for the value 0; use BitLen to tell 0 and 1 apart.
func (u BigUint) MostSignificantBit() int {
	if n := u.BitLen(); n > 0 {
		return n - 1
	}
	return 0
}

func (u BigUint) TrailingZeros() int {
	for i, w := range u.words() {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w)
		}
	}
	return 0
}

// Bit returns the value of the i'th bit of u.
func (u BigUint) Bit(i uint) uint {
	w := u.words()
	word := i / 64
	if word >= uint(len(w)) {
		return 0
	}
	return uint(w[word]>>(i%64)) & 1
}

// SetBit sets or clears the i'th bit of u, growing it if required.
func (u *BigUint) SetBit(i uint, on bool) {
	word := int(i / 64)
	mask := uint64(1) << (i % 64)
	if !on && word >= u.Digits() {
		return
	}

	z := u.clone(word + 1)
	if word >= z.n {
		z.n = word + 1
	}
	if on {
		z.limbs[word] |= mask
	} else {
		z.limbs[word] &^= mask
		z.norm()
	}
	*u = z
}

func (u BigUint) IntoBigInt(b *big.Int) {
	w := u.words()

	switch intSize {
	case 64:
		out := b.Bits()[:0]
		for _, l := range w {
			out = append(out, big.Word(l))
		}
		b.SetBits(out)

	case 32:
		out := b.Bits()[:0]
		for _, l := range w {
			out = append(out, big.Word(l&0xFFFFFFFF), big.Word(l>>32))
		}
		b.SetBits(out)

	default:
		panic("bignum: unsupported bit size")
	}
}

func (u BigUint) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// {{{ Storage

// zeroLimbs backs the zero value of BigUint. It must never be written to.
var zeroLimbs = [1]uint64{}

// words returns the limbs that make up the value. The result is read-only.
func (u BigUint) words() []uint64 {
	if u.n == 0 {
		return zeroLimbs[:]
	}
	return u.limbs[:u.n]
}

// newBigUint returns an owned, zeroed value with room for at least
// capacity limbs.
func newBigUint(capacity int) BigUint {
	if capacity < initialLimbs {
		capacity = initialLimbs
	}
	return BigUint{n: 1, limbs: allocLimbs(capacity)}
}

// clone copies u into a fresh buffer with room for at least capacity limbs.
// Every mutation in this package happens on a clone.
func (u BigUint) clone(capacity int) BigUint {
	w := u.words()
	if capacity < len(w) {
		capacity = len(w)
	}
	z := newBigUint(capacity)
	copy(z.limbs, w)
	z.n = len(w)
	return z
}

// grow ensures z has room for n limbs. Storage only ever grows; the logical
// length is unchanged.
func (z *BigUint) grow(n int) {
	if n <= len(z.limbs) {
		return
	}
	c := 2 * len(z.limbs)
	if c < n {
		c = n
	}
	buf := allocLimbs(c)
	copy(buf, z.limbs[:z.n])
	z.limbs = buf
}

// norm trims zero limbs above the most significant non-zero limb.
func (z *BigUint) norm() {
	for z.n > 1 && z.limbs[z.n-1] == 0 {
		z.n--
	}
}

func (z *BigUint) setZero() {
	for i := 0; i < z.n; i++ {
		z.limbs[i] = 0
	}
	z.n = 1
}

// }}}
