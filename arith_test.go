package bignum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/shabbyrobe/golib/assert"
)

func TestAdd(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BigUint
	}{
		{u64(1), u64(2), u64(3)},
		{u64(10), u64(3), u64(13)},
		{u64(0), u64(0), u64(0)},
		{u64(maxUint64), u64(1), bus("18446744073709551616")}, // lo carries to hi
		{bus("18446744073709551615"), bus("18446744073709551615"), bus("36893488147419103230")},
		{bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), u64(1), bus("0x 1 0000000000000000 0000000000000000")}, // carry ripples
		{u64(1), bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), bus("0x 1 0000000000000000 0000000000000000 0000000000000000")},
		{From128(1, 0), u64(5), From128(1, 5)},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Add(tc.b)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustAssert(tc.c.Equal(tc.b.Add(tc.a)))
			tt.MustOK(checkNormalised(r))

			if tc.b.IsUint64() {
				tt.MustAssert(tc.c.Equal(tc.a.Add64(tc.b.AsUint64())))
			}
		})
	}
}

func TestAddMaxUint64Repeatedly(t *testing.T) {
	tt := assert.WrapTB(t)

	var num BigUint
	num.AddAssign64(maxUint64)
	num.AddAssign64(maxUint64)
	tt.MustEqual("36893488147419103230", num.String())

	for i := 0; i < 4; i++ {
		num.AddAssign64(maxUint64)
	}
	tt.MustEqual("110680464442257309690", num.String())

	expected := new(big.Int).Mul(maxBigUint64, big.NewInt(6))
	tt.MustEqual(expected.String(), num.String())
}

func TestAddDoesNotModifyOperand(t *testing.T) {
	tt := assert.WrapTB(t)

	num := u64(64)
	num2 := num.Add64(1)
	tt.MustEqual("64", num.String())
	tt.MustEqual("65", num2.String())
}

func TestSub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BigUint
	}{
		{u64(3), u64(2), u64(1)},
		{u64(3), u64(3), u64(0)},
		{u64(3), u64(0), u64(3)},
		{bus("18446744073709551616"), u64(1), u64(maxUint64)}, // hi borrows from lo
		{bus("0x 1 0000000000000000 0000000000000000"), u64(1), bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF")},
		{bus("0x 1 0000000000000000 0000000000000000"), bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), u64(1)},
		{From128(5, 5), From128(5, 4), u64(1)},
		{From128(5, 5), From128(4, 6), u64(maxUint64)},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, err := tc.a.Sub(tc.b)
			tt.MustOK(err)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustOK(checkNormalised(r))

			if tc.b.IsUint64() {
				r64, err := tc.a.Sub64(tc.b.AsUint64())
				tt.MustOK(err)
				tt.MustAssert(tc.c.Equal(r64), "found %s", r64)
				tt.MustOK(checkNormalised(r64))
			}
		})
	}
}

func TestSubUnderflow(t *testing.T) {
	for _, tc := range []struct {
		a, b BigUint
		msg  string
	}{
		{u64(2), u64(3), "bignum: cannot subtract 3 from 2"},
		{u64(0), u64(1), "bignum: cannot subtract 1 from 0"},
		{u64(maxUint64), From128(1, 0), "bignum: cannot subtract 18446744073709551616 from 18446744073709551615"},
		{From128(1, 0), From128(1, 1), "bignum: cannot subtract 18446744073709551617 from 18446744073709551616"},
	} {
		t.Run(fmt.Sprintf("%s-%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)

			_, err := tc.a.Sub(tc.b)
			tt.MustAssert(err != nil)
			tt.MustEqual(tc.msg, err.Error())
			tt.MustAssert(errors.Is(err, ErrUnderflow))

			var uerr *UnderflowError
			tt.MustAssert(errors.As(err, &uerr))
			tt.MustAssert(uerr.X.Equal(tc.a))
			tt.MustAssert(uerr.Y.Equal(tc.b))

			v := tc.a
			tt.MustAssert(v.SubAssign(tc.b) != nil)
			tt.MustAssert(v.Equal(tc.a), "failed SubAssign must not modify")

			if tc.b.IsUint64() {
				_, err := tc.a.Sub64(tc.b.AsUint64())
				tt.MustEqual(tc.msg, err.Error())
				tt.MustAssert(v.SubAssign64(tc.b.AsUint64()) != nil)
				tt.MustAssert(v.Equal(tc.a))
			}
		})
	}
}

func TestMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, c BigUint
	}{
		{u64(1), u64(2), u64(2)},
		{u64(12), u64(12), u64(144)},
		{u64(0), u64(12), u64(0)},
		{u64(12), u64(0), u64(0)},
		{From128(1, 0), u64(0), u64(0)},
		{u64(maxUint64), u64(maxUint64), bus("340282366920938463426481119284349108225")},
		{From128(1, 0), From128(1, 0), bus("0x 1 0000000000000000 0000000000000000")},
		{bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"), bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFF"),
			bus("0x FFFFFFFFFFFFFFFF FFFFFFFFFFFFFFFE 0000000000000000 0000000000000001")},
	} {
		t.Run(fmt.Sprintf("%s*%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r := tc.a.Mul(tc.b)
			tt.MustAssert(tc.c.Equal(r), "found %s", r)
			tt.MustAssert(tc.c.Equal(tc.b.Mul(tc.a)))
			tt.MustOK(checkNormalised(r))

			if tc.b.IsUint64() {
				r64 := tc.a.Mul64(tc.b.AsUint64())
				tt.MustAssert(tc.c.Equal(r64), "found %s", r64)
				tt.MustOK(checkNormalised(r64))
			}
		})
	}
}

func TestMulWithInt(t *testing.T) {
	tt := assert.WrapTB(t)

	var num BigUint
	tt.MustEqual("0", num.String())

	num.AddAssign64(12)
	num.MulAssign64(12)
	tt.MustEqual("144", num.String())

	num2 := num.Mul64(10)
	tt.MustEqual("144", num.String())
	tt.MustEqual("1440", num2.String())

	num.MulAssign64(0)
	tt.MustEqual("0", num.String())
	tt.MustEqual(1, num.Digits())
}

func TestMulMaxUint64BySelf(t *testing.T) {
	tt := assert.WrapTB(t)

	var num BigUint
	num.AddAssign64(maxUint64)
	num.MulAssign64(maxUint64)
	tt.MustEqual("340282366920938463426481119284349108225", num.String())

	var num2 BigUint
	num2.AddAssign64(maxUint64)
	num2.MulAssign(num2)
	tt.MustEqual("340282366920938463426481119284349108225", num2.String())

	tt.MustEqual(new(big.Int).Mul(wrapBigU64, wrapBigU64).String(), From128(1, 0).Mul(From128(1, 0)).String())
}

func TestArithProperties(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < 500; i++ {
		a := RandBigUint(globalRNG, 1+globalRNG.Intn(8))
		b := RandBigUint(globalRNG, 1+globalRNG.Intn(8))

		// (a + b) - b == a
		sum := a.Add(b)
		back, err := sum.Sub(b)
		tt.MustOK(err)
		tt.MustAssert(back.Equal(a), "(%s + %s) - %s != %s", a, b, b, a)

		// (a - b) + b == a whenever a >= b
		hi, lo := Larger(a, b), Smaller(a, b)
		diff, err := hi.Sub(lo)
		tt.MustOK(err)
		tt.MustAssert(diff.Add(lo).Equal(hi))

		// commutativity
		tt.MustAssert(a.Add(b).Equal(b.Add(a)))
		tt.MustAssert(a.Mul(b).Equal(b.Mul(a)))

		// identities
		tt.MustAssert(a.Mul(u64(0)).IsZero())
		tt.MustAssert(a.Mul64(0).IsZero())
		tt.MustAssert(a.Mul(u64(1)).Equal(a))
		tt.MustAssert(a.Add(u64(0)).Equal(a))
		tt.MustAssert(a.Add64(0).Equal(a))

		// smaller - larger always underflows
		if lo.NotEqual(hi) {
			_, err := lo.Sub(hi)
			tt.MustAssert(errors.Is(err, ErrUnderflow))
		}
	}
}

func TestAddGrowsIntoPreallocatedLimb(t *testing.T) {
	tt := assert.WrapTB(t)

	// A value built from a full buffer has no spare capacity; the carry must
	// still land in a fresh limb.
	limbs := make([]uint64, initialLimbs)
	for i := range limbs {
		limbs[i] = maxUint64
	}
	v := FromLimbs(limbs)
	tt.MustEqual(initialLimbs, len(v.limbs))

	r := v.Add64(1)
	tt.MustEqual(initialLimbs+1, r.Digits())
	tt.MustEqual(uint64(1), r.Limbs()[initialLimbs])
	tt.MustOK(checkNormalised(r))

	r = v.Mul64(2)
	tt.MustEqual(initialLimbs+1, r.Digits())
	tt.MustOK(checkNormalised(r))
}
