/*
Package bignum provides BigUint, an arbitrary-precision unsigned integer
stored as little-endian 64-bit limbs.

BigUint is a value type; all operations return new values, and the
compound-assignment forms (AddAssign, SubAssign, ...) replace the receiver
with the result. Published limb buffers are never written to again, so
copying a BigUint with '=' is always safe. The zero value is 0.

Simple example:

	u := bignum.From64(math.MaxUint64)
	fmt.Println(u.Mul(u))
	// Output: 340282366920938463426481119284349108225

BigUint can be created from a variety of sources:

	From64(v uint64) BigUint
	From32(v uint32) BigUint
	From128(hi, lo uint64) BigUint
	FromU128(v U128) BigUint
	FromLimbs(limbs []uint64) BigUint
	FromString(s string) (BigUint, error)
	FromBigInt(v *big.Int) (out BigUint, accurate bool)

Subtraction below zero is never wrapped; Sub returns an *UnderflowError.
Division, remainder and modular exponentiation by zero return
ErrDivideByZero.

BigUint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

Limb buffers are requested from an Allocator, which defaults to one that
aligns every buffer to a 64-byte cache line. See SetAllocator.

*/
package bignum
