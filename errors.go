package bignum

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrDivideByZero = errors.New("bignum: division by zero")
	ErrUnderflow    = errors.New("bignum: subtraction underflow")
	ErrSyntax       = errors.New("bignum: invalid decimal string")
)

// UnderflowError is returned when subtracting Y from X would go below zero.
type UnderflowError struct {
	X, Y BigUint
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("bignum: cannot subtract %s from %s", e.Y, e.X)
}

func (e *UnderflowError) Unwrap() error { return ErrUnderflow }

// FormatError is returned when a decimal string cannot be parsed. Pos is
// the byte offset of the first offending character.
type FormatError struct {
	Input string
	Pos   int
}

func (e *FormatError) Error() string {
	if e.Input == "" {
		return "bignum: empty decimal string"
	}
	return fmt.Sprintf("bignum: invalid character %q at offset %d in %q", e.Input[e.Pos], e.Pos, e.Input)
}

func (e *FormatError) Unwrap() error { return ErrSyntax }
