package num

// I64 is a signed 64-bit two's complement integer held as two 32-bit words.
// The value is hi * 2^32 + lo.
//
// All arithmetic is done on the 32-bit words; no operation relies on a
// native 64-bit integer.
type I64 struct {
	hi int32
	lo uint32
}

// I64FromRaw is the complement to I64.Raw(); it creates an I64 from the
// high and low words.
func I64FromRaw(hi int32, lo uint32) I64 {
	return I64{hi: hi, lo: lo}
}

// I64FromBits creates an I64 from two 32-bit bit patterns, low word first.
func I64FromBits(lo, hi int32) I64 {
	return I64{hi: hi, lo: uint32(lo)}
}

// I64FromInt32 sign-extends v into the high word.
func I64FromInt32(v int32) I64 {
	var hi int32
	if v < 0 {
		hi = -1
	}
	return I64{hi: hi, lo: uint32(v)}
}

func I64From16(v int16) I64   { return I64FromInt32(int32(v)) }
func I64From8(v int8) I64     { return I64FromInt32(int32(v)) }
func I64FromU32(v uint32) I64 { return I64{lo: v} }

// I64FromInt64 splits a native int64 into words, for interop with code that
// has one.
func I64FromInt64(v int64) I64 {
	return I64{hi: int32(v >> 32), lo: uint32(v)}
}

// RandI64 generates a signed 64-bit random integer from an external source.
func RandI64(source RandSource) (out I64) {
	v := source.Uint64()
	return I64{hi: int32(v >> 32), lo: uint32(v)}
}

// Raw returns access to the I64 as a pair of words. See I64FromRaw() for
// the counterpart.
func (i I64) Raw() (hi int32, lo uint32) { return i.hi, i.lo }

func (i I64) HighBits() int32         { return i.hi }
func (i I64) LowBits() int32          { return int32(i.lo) }
func (i I64) LowBitsUnsigned() uint32 { return i.lo }

func (i I64) IsZero() bool     { return i == zeroI64 }
func (i I64) IsNegative() bool { return i.hi < 0 }
func (i I64) IsOdd() bool      { return i.lo&1 == 1 }

// AsInt32 truncates the I64 to its low word. Values outside the range will
// over/underflow. See IsInt32() if you want to check before you convert.
func (i I64) AsInt32() int32 {
	return int32(i.lo)
}

// IsInt32 reports whether i can be represented as an int32.
func (i I64) IsInt32() bool {
	if i.hi < 0 {
		return i.hi == -1 && i.lo >= signBit
	}
	return i.hi == 0 && i.lo < signBit
}

// AsInt64 joins the words into a native int64.
func (i I64) AsInt64() int64 {
	return int64(i.hi)<<32 | int64(i.lo)
}

func (i I64) Sign() int {
	if i == zeroI64 {
		return 0
	} else if i.hi < 0 {
		return -1
	}
	return 1
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
//
// The high words decide the order as signed integers; once they are equal
// the low words are compared as magnitudes.
func (i I64) Cmp(n I64) int {
	if i.hi == n.hi {
		if i.lo == n.lo {
			return 0
		} else if i.lo > n.lo {
			return 1
		}
		return -1
	} else if i.hi > n.hi {
		return 1
	}
	return -1
}

func (i I64) Equal(n I64) bool {
	return i.hi == n.hi && i.lo == n.lo
}

func (i I64) NotEqual(n I64) bool {
	return i.hi != n.hi || i.lo != n.lo
}

func (i I64) GreaterThan(n I64) bool      { return i.Cmp(n) > 0 }
func (i I64) GreaterOrEqualTo(n I64) bool { return i.Cmp(n) >= 0 }
func (i I64) LessThan(n I64) bool         { return i.Cmp(n) < 0 }
func (i I64) LessOrEqualTo(n I64) bool    { return i.Cmp(n) <= 0 }

// Neg returns the two's complement negation of i. There is no positive
// counterpart to MinI64, so -MinI64 == MinI64.
func (i I64) Neg() (v I64) {
	v.lo = ^i.lo + 1
	var carry int32
	if v.lo == 0 { // ^lo overflowed
		carry = 1
	}
	v.hi = ^i.hi + carry
	return v
}

// Abs returns |i|. Like Neg, Abs(MinI64) == MinI64.
func (i I64) Abs() I64 {
	if i.hi < 0 {
		return i.Neg()
	}
	return i
}

// Add returns i + n. Overflow wraps around, as per the Go spec.
func (i I64) Add(n I64) I64 {
	hi, lo := add64(uint32(i.hi), i.lo, uint32(n.hi), n.lo)
	return I64{hi: int32(hi), lo: lo}
}

// Sub returns i - n, computed as i + (-n).
func (i I64) Sub(n I64) I64 {
	return i.Add(n.Neg())
}

func (i I64) Inc() I64 { return i.Add(OneI64) }
func (i I64) Dec() I64 { return i.Add(NegOneI64) }

// Mul returns the product of two I64s.
//
// Overflow wraps around, as per the Go spec. If either operand is zero, that
// operand is returned as-is.
//
func (i I64) Mul(n I64) I64 {
	if i == zeroI64 {
		return i
	}
	if n == zeroI64 {
		return n
	}
	hi, lo := mul64(uint32(i.hi), i.lo, uint32(n.hi), n.lo)
	return I64{hi: int32(hi), lo: lo}
}

// DivMod returns the quotient q and remainder r of i / by, or
// ErrDivisionByZero if by is zero.
//
// DivMod implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// MinI64 / -1 overflows to MinI64 with a remainder of 0.
//
func (i I64) DivMod(by I64) (q, r I64, err error) {
	if by == zeroI64 {
		return q, r, ErrDivisionByZero
	}
	q, r = i.quoRem(by)
	return q, r, nil
}

// QuoRem is DivMod without the error; if by == 0, it panics with
// ErrDivisionByZero.
func (i I64) QuoRem(by I64) (q, r I64) {
	if by == zeroI64 {
		panic(ErrDivisionByZero)
	}
	return i.quoRem(by)
}

// Quo returns the quotient x/y for y != 0. If y == 0, it panics with
// ErrDivisionByZero. Quo implements truncated division (like Go); see
// DivMod for more details.
func (i I64) Quo(by I64) (q I64) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the remainder of x%y for y != 0. If y == 0, it panics with
// ErrDivisionByZero. Rem implements truncated modulus (like Go); see
// DivMod for more details.
func (i I64) Rem(by I64) (r I64) {
	_, r = i.QuoRem(by)
	return r
}

func (i I64) quoRem(by I64) (q, r I64) {
	qNeg, rNeg := false, false
	if i.hi < 0 {
		qNeg, rNeg = true, true
		i = i.Neg() // MinI64 stays put, which is 1<<63 when read unsigned.
	}
	if by.hi < 0 {
		qNeg = !qNeg
		by = by.Neg()
	}

	qhi, qlo, rhi, rlo := quorem64(uint32(i.hi), i.lo, uint32(by.hi), by.lo)
	q, r = I64{hi: int32(qhi), lo: qlo}, I64{hi: int32(rhi), lo: rlo}
	if qNeg {
		q = q.Neg()
	}
	if rNeg {
		r = r.Neg()
	}
	return q, r
}

func (i I64) Not() I64 {
	return I64{hi: ^i.hi, lo: ^i.lo}
}

func (i I64) And(n I64) I64 {
	return I64{hi: i.hi & n.hi, lo: i.lo & n.lo}
}

func (i I64) AndNot(n I64) I64 {
	return I64{hi: i.hi &^ n.hi, lo: i.lo &^ n.lo}
}

func (i I64) Or(n I64) I64 {
	return I64{hi: i.hi | n.hi, lo: i.lo | n.lo}
}

func (i I64) Xor(n I64) I64 {
	return I64{hi: i.hi ^ n.hi, lo: i.lo ^ n.lo}
}

// Lsh returns i << n. The count is taken modulo 64, so Lsh(64) is a no-op.
// A negative count shifts right (with sign extension) by -n instead.
func (i I64) Lsh(n int32) I64 {
	if n < 0 {
		return i.Rsh(-n & 63)
	}

	n &= 63
	if n == 0 {
		return i
	} else if n < 32 {
		return I64{
			hi: (i.hi << n) | int32(i.lo>>(32-n)),
			lo: i.lo << n,
		}
	}
	return I64{hi: int32(i.lo << (n - 32)), lo: 0}
}

// Rsh returns i >> n, filling the vacated bits with copies of the sign bit.
// The count is taken modulo 64. A negative count shifts left by -n instead.
func (i I64) Rsh(n int32) I64 {
	if n < 0 {
		return i.Lsh(-n & 63)
	}

	n &= 63
	if n == 0 {
		return i
	} else if n < 32 {
		return I64{
			hi: i.hi >> n,
			lo: (i.lo >> n) | (uint32(i.hi) << (32 - n)),
		}
	}

	var fill int32
	if i.hi < 0 {
		fill = -1
	}
	return I64{hi: fill, lo: uint32(i.hi >> (n - 32))}
}

// URsh returns i >> n as if i were unsigned, filling the vacated bits with
// zeros. The count is taken modulo 64. A negative count shifts left by -n
// instead.
func (i I64) URsh(n int32) I64 {
	if n < 0 {
		return i.Lsh(-n & 63)
	}

	n &= 63
	if n == 0 {
		return i
	} else if n < 32 {
		return I64{
			hi: int32(uint32(i.hi) >> n),
			lo: (i.lo >> n) | (uint32(i.hi) << (32 - n)),
		}
	} else if n == 32 {
		return I64{lo: uint32(i.hi)}
	}
	return I64{lo: uint32(i.hi) >> (n - 32)}
}
