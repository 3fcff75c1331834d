package num

import (
	"math"
	"strconv"
)

// AsFloat64 converts i to the nearest float64. Magnitudes above 1<<53 are
// rounded; see IsSafeInteger().
func (i I64) AsFloat64() float64 {
	neg := i.hi < 0
	if neg {
		// MinI64 negates to itself, but its high word read unsigned is
		// exactly 1<<31, which is the magnitude we want.
		i = i.Neg()
	}

	f := float64(uint32(i.hi))*wrapUint32Float + float64(i.lo)
	if neg {
		return -f
	}
	return f
}

// I64FromFloat64 creates an I64 from an integral float64.
//
// NaN becomes 0, -Inf becomes MinI64 and +Inf becomes MaxI64; none of these
// are errors. A finite float with a fractional part returns ErrNonIntegral.
// A finite float outside the I64 range is clamped to MinI64 or MaxI64 and
// returns ErrOutOfRange.
//
// The result is built by feeding the decimal digits of |f| through Mul and
// Add, one digit at a time.
func I64FromFloat64(f float64) (out I64, err error) {
	if f != f { // f != f == isnan
		return zeroI64, nil
	} else if math.IsInf(f, 1) {
		return MaxI64, nil
	} else if math.IsInf(f, -1) {
		return MinI64, nil
	} else if f != math.Trunc(f) {
		return zeroI64, ErrNonIntegral
	} else if f >= maxI64Float { // maxI64Float is really 1<<63
		return MaxI64, ErrOutOfRange
	} else if f < minI64Float {
		return MinI64, ErrOutOfRange
	}

	var scratch [24]byte
	dec := strconv.AppendFloat(scratch[:0], math.Abs(f), 'f', 0, 64)

	for _, c := range dec {
		out = out.Mul(tenI64).Add(I64{lo: uint32(c - '0')})
	}

	// -(1<<63) accumulates to 1<<63, which has already wrapped to MinI64;
	// negating it again leaves it there.
	if f < 0 {
		out = out.Neg()
	}
	return out, nil
}

// IsSafeInteger reports whether i can be converted to a float64 and back
// without losing precision, which is the case when |i| < 1<<53.
func (i I64) IsSafeInteger() bool {
	top11 := i.hi >> 21
	if top11 == 0 {
		return true
	}
	return top11 == -1 && !(i.hi == minSafeHiExcluded && i.lo == 0)
}

// DivModFloat64 is an approximate version of DivMod that goes through
// float64 division. The result matches DivMod only while both operands are
// safe integers (see IsSafeInteger); outside that range precision is lost
// without warning, and results that round past the I64 range are clamped
// and reported with ErrOutOfRange.
//
// Prefer DivMod; this exists for callers that need to reproduce the
// float-based results.
func (i I64) DivModFloat64(by I64) (q, r I64, err error) {
	if by == zeroI64 {
		return q, r, ErrDivisionByZero
	}

	x, y := i.AsFloat64(), by.AsFloat64()

	// math.Mod's result takes the sign of x, which is the T-division rule.
	if r, err = I64FromFloat64(math.Mod(x, y)); err != nil {
		return q, r, err
	}
	q, err = I64FromFloat64(math.Trunc(x / y))
	return q, r, err
}
