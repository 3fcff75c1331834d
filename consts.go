package num

import (
	"errors"
)

const (
	maxUint32 = 1<<32 - 1
	maxUint16 = 1<<16 - 1

	signBit = 0x80000000

	wrapUint32Float = float64(1 << 32) // 2^32

	maxI64Float = float64(1<<63 - 1) // rounds to 2^63
	minI64Float = float64(-1 << 63)  // -(2^63)

	// hi word of -(1<<53); the one negative value with the top 11 bits set
	// that is still excluded from the safe range.
	minSafeHiExcluded = -0x200000
)

var (
	MinI64    = I64{hi: -0x80000000, lo: 0}
	MaxI64    = I64{hi: 0x7FFFFFFF, lo: maxUint32}
	ZeroI64   = I64{}
	OneI64    = I64{lo: 1}
	NegOneI64 = I64{hi: -1, lo: maxUint32}

	zeroI64 I64
	tenI64  = I64{lo: 10}
)

var (
	// ErrDivisionByZero is returned by DivMod and DivModFloat64, and is the
	// value Quo, Rem and QuoRem panic with.
	ErrDivisionByZero = errors.New("num: division by zero")

	// ErrNonIntegral is returned when a float64 with a fractional part is
	// converted to an I64.
	ErrNonIntegral = errors.New("num: float64 is not integral")

	// ErrOutOfRange is returned when a value does not fit in 64 bits. The
	// accompanying result is clamped to MinI64 or MaxI64.
	ErrOutOfRange = errors.New("num: value out of range")

	ErrInvalidRadix = errors.New("num: radix must be in the range 2..36")
	ErrSyntax       = errors.New("num: invalid syntax")
	ErrShortBuffer  = errors.New("num: buffer too small")
)
