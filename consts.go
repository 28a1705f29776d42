package bignum

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	// initialLimbs is the smallest buffer handed out for a new value.
	initialLimbs = 8

	// decChunkDigits is the largest number of decimal digits that always
	// fits in a single limb.
	decChunkDigits = 18
	decChunkBase   = 1000000000000000000 // 10^decChunkDigits

	intSize = 32 << (^uint(0) >> 63)
)

// pow10 holds 10^i for every chunk length.
var pow10 = [decChunkDigits + 1]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
}

var (
	zeroBigUint BigUint

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)

	// wrapBigU64 is 1 << 64:
	wrapBigU64, _ = new(big.Int).SetString("18446744073709551616", 10)
)
