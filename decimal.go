package bignum

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FromString parses a decimal string made of the digits 0-9 only. Signs,
// prefixes, separators and the empty string are rejected with a
// *FormatError. Leading zeros are accepted.
func FromString(s string) (out BigUint, err error) {
	if len(s) == 0 {
		return out, &FormatError{Input: s}
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return out, &FormatError{Input: s, Pos: i}
		}
	}

	// A limb holds a little over 19 decimal digits.
	z := newBigUint(len(s)/19 + 2)

	// Work through the string from the most significant end in chunks that
	// fit a limb; the final chunk may be shorter.
	for len(s) > 0 {
		ln := decChunkDigits
		if len(s) < ln {
			ln = len(s)
		}
		var chunk uint64
		for i := 0; i < ln; i++ {
			chunk = chunk*10 + uint64(s[i]-'0')
		}
		z.mul64(pow10[ln])
		z.add64(chunk)
		s = s[ln:]
	}

	return z, nil
}

// String renders u as canonical decimal text with no leading zeros.
func (u BigUint) String() string {
	w := u.words()
	if len(w) == 1 {
		return strconv.FormatUint(w[0], 10)
	}

	// Re-express the limbs in base 10^18, feeding in the most significant
	// limb first. Each pass computes super*2^64 + carry for every existing
	// super-digit; super < 10^18 keeps the quotient inside a limb.
	super := make([]uint64, 0, len(w)*2)
	for i := len(w) - 1; i >= 0; i-- {
		carry := w[i]
		for j := range super {
			carry, super[j] = bits.Div64(super[j], carry, decChunkBase)
		}
		for carry > 0 {
			super = append(super, carry%decChunkBase)
			carry /= decChunkBase
		}
	}

	top := len(super) - 1
	out := make([]byte, 0, (top+1)*decChunkDigits)
	out = strconv.AppendUint(out, super[top], 10)

	var chunk [decChunkDigits]byte
	for j := top - 1; j >= 0; j-- {
		v := super[j]
		for k := decChunkDigits - 1; k >= 0; k-- {
			chunk[k] = byte('0' + v%10)
			v /= 10
		}
		out = append(out, chunk[:]...)
	}
	return string(out)
}

// BitString renders every limb as 64 binary digits, most significant limb
// first, with limbs separated by a single space. It is intended for
// debugging.
func (u BigUint) BitString() string {
	w := u.words()
	var sb strings.Builder
	sb.Grow(len(w) * 65)

	for i := len(w) - 1; i >= 0; i-- {
		s := strconv.FormatUint(w[i], 2)
		sb.WriteString(strings.Repeat("0", 64-len(s)))
		sb.WriteString(s)
		if i > 0 {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

func (u BigUint) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
		_, hasWidth := s.Width()
		_, hasPrec := s.Precision()
		if !hasWidth && !hasPrec && !s.Flag('+') && !s.Flag('-') && !s.Flag('0') && !s.Flag(' ') {
			_, _ = io.WriteString(s, u.String())
			return
		}
	}
	// Padding, signs and the other bases are rendered by big.Int.
	u.AsBigInt().Format(s, c)
}

func (u BigUint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *BigUint) UnmarshalText(bts []byte) (err error) {
	v, err := FromString(string(bts))
	if err != nil {
		return errors.Wrap(err, "bignum: unmarshal text")
	}
	*u = v
	return nil
}

func (u BigUint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *BigUint) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return errors.Errorf("bignum: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := FromString(string(bts))
	if err != nil {
		return errors.Wrapf(err, "bignum: unmarshal JSON %q", string(bts))
	}
	*u = v
	return nil
}
