// Package vectors holds fixed 64-bit bit patterns and a native int64
// reference for every operation the num package emulates. Tests and the
// i64vec tool use it as an oracle that shares no code with num.
package vectors

import (
	"fmt"
	"math"
)

// Pattern is a 64-bit value split into its high and low words.
type Pattern struct {
	Hi int32
	Lo uint32
}

func (p Pattern) Int64() int64 { return Native(p.Hi, p.Lo) }

func (p Pattern) String() string {
	return fmt.Sprintf("0x%08x, 0x%08x", uint32(p.Hi), p.Lo)
}

func Native(hi int32, lo uint32) int64 {
	return int64(hi)<<32 | int64(lo)
}

func Split(v int64) Pattern {
	return Pattern{Hi: int32(v >> 32), Lo: uint32(v)}
}

// Bits is ordered from smallest to largest when read as int64, so the index
// order of two patterns is also their numeric order.
var Bits = []Pattern{
	{-0x80000000, 0x00000000}, // MinInt64
	{-0x80000000, 0x00000001},
	{-0x7FFFFFFF, 0xFFFFFFFF},
	{-0x40000000, 0x00000000},
	{-0x00200001, 0xFFFFFFFF}, // -(1<<53) - 1
	{-0x00200000, 0x00000000}, // -(1<<53)
	{-0x00200000, 0x00000001}, // -(1<<53) + 1
	{-0x00001235, 0x12345678},
	{-0x00000002, 0x00000000},
	{-0x00000002, 0xFFFFFFFF},
	{-0x00000001, 0x00000000}, // -(1<<32)
	{-0x00000001, 0x7FFFFFFF},
	{-0x00000001, 0x80000000}, // MinInt32
	{-0x00000001, 0xFFFF0000},
	{-0x00000001, 0xFFFFFFF6}, // -10
	{-0x00000001, 0xFFFFFFFE},
	{-0x00000001, 0xFFFFFFFF}, // -1
	{0x00000000, 0x00000000},
	{0x00000000, 0x00000001},
	{0x00000000, 0x00000002},
	{0x00000000, 0x0000000A},
	{0x00000000, 0x0000FFFF},
	{0x00000000, 0x00010000},
	{0x00000000, 0x7FFFFFFF}, // MaxInt32
	{0x00000000, 0x80000000},
	{0x00000000, 0xFFFFFFFF},
	{0x00000001, 0x00000000},
	{0x00000001, 0x00000001},
	{0x00001234, 0x9ABCDEF0},
	{0x001FFFFF, 0xFFFFFFFF}, // (1<<53) - 1
	{0x00200000, 0x00000000}, // 1<<53
	{0x3FFFFFFF, 0xFFFFFFFF},
	{0x7FFFFFFF, 0x00000000},
	{0x7FFFFFFF, 0xFFFFFFFE},
	{0x7FFFFFFF, 0xFFFFFFFF}, // MaxInt64
}

// Op names a reference operation.
type Op string

const (
	OpAdd        Op = "add"
	OpSub        Op = "sub"
	OpMul        Op = "mul"
	OpQuo        Op = "quo"
	OpRem        Op = "rem"
	OpLsh        Op = "lsh"
	OpRsh        Op = "rsh"
	OpURsh       Op = "ursh"
	OpFromDouble Op = "fromdouble"
)

var AllOps = []Op{OpAdd, OpSub, OpMul, OpQuo, OpRem, OpLsh, OpRsh, OpURsh, OpFromDouble}

func (op Op) Binary() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpQuo, OpRem:
		return true
	}
	return false
}

func (op Op) Shift() bool {
	return op == OpLsh || op == OpRsh || op == OpURsh
}

func ParseOp(s string) (Op, error) {
	for _, op := range AllOps {
		if string(op) == s {
			return op, nil
		}
	}
	return "", fmt.Errorf("vectors: unknown op %q", s)
}

func Add(a, b int64) int64 { return a + b }
func Sub(a, b int64) int64 { return a - b }
func Mul(a, b int64) int64 { return a * b }

// QuoRem is Go's truncated division. ok is false if b is zero.
func QuoRem(a, b int64) (q, r int64, ok bool) {
	if b == 0 {
		return 0, 0, false
	}
	return a / b, a % b, true
}

// Shift counts follow the emulated rules: negative counts reverse the
// direction, then the count is taken modulo 64.
func Lsh(a int64, n int32) int64 {
	if n < 0 {
		return Rsh(a, -n&63)
	}
	return a << uint(n&63)
}

func Rsh(a int64, n int32) int64 {
	if n < 0 {
		return Lsh(a, -n&63)
	}
	return a >> uint(n&63)
}

func URsh(a int64, n int32) int64 {
	if n < 0 {
		return Lsh(a, -n&63)
	}
	return int64(uint64(a) >> uint(n&63))
}

// FromFloat64 is the clamping rule for converting an integral float64: NaN
// is 0, anything at or past either end of the range saturates.
func FromFloat64(f float64) int64 {
	switch {
	case f != f:
		return 0
	case f >= 1<<63:
		return math.MaxInt64
	case f < -1<<63:
		return math.MinInt64
	}
	return int64(f)
}

// Row is one line of a reference table. For shifts, N holds the count; for
// fromdouble, F holds the input.
type Row struct {
	A, B Pattern
	N    int32
	F    float64
	Want Pattern
	Skip bool
}

// Table computes the reference result of op for every pair of Bits (or,
// for shifts, every pattern against every count in 0..64; for fromdouble,
// every pattern's high word scaled by 1<<32, as a positive and a negative
// float).
func Table(op Op) []Row {
	var rows []Row

	switch {
	case op.Binary():
		for _, a := range Bits {
			for _, b := range Bits {
				rows = append(rows, BinaryRow(op, a, b))
			}
		}

	case op.Shift():
		for _, a := range Bits {
			for n := int32(0); n <= 64; n++ {
				rows = append(rows, ShiftRow(op, a, n))
			}
		}

	case op == OpFromDouble:
		for _, a := range Bits {
			for _, sign := range []float64{1, -1} {
				rows = append(rows, FloatRow(a, sign*float64(a.Hi)*(1<<32)))
			}
		}
	}

	return rows
}

func BinaryRow(op Op, a, b Pattern) Row {
	x, y := a.Int64(), b.Int64()
	row := Row{A: a, B: b}

	switch op {
	case OpAdd:
		row.Want = Split(Add(x, y))
	case OpSub:
		row.Want = Split(Sub(x, y))
	case OpMul:
		row.Want = Split(Mul(x, y))
	case OpQuo, OpRem:
		q, r, ok := QuoRem(x, y)
		row.Skip = !ok
		if op == OpQuo {
			row.Want = Split(q)
		} else {
			row.Want = Split(r)
		}
	}
	return row
}

func ShiftRow(op Op, a Pattern, n int32) Row {
	var v int64
	switch op {
	case OpLsh:
		v = Lsh(a.Int64(), n)
	case OpRsh:
		v = Rsh(a.Int64(), n)
	case OpURsh:
		v = URsh(a.Int64(), n)
	}
	return Row{A: a, N: n, Want: Split(v)}
}

func FloatRow(a Pattern, f float64) Row {
	return Row{A: a, F: f, Want: Split(FromFloat64(f))}
}
