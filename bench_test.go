package num

import (
	"fmt"
	"testing"
)

var (
	BenchBoolResult   bool
	BenchErrResult    error
	BenchFloatResult  float64
	BenchI64Result    I64
	BenchIntResult    int
	BenchInt64Result  int64
	BenchStringResult string

	BenchInt641, BenchInt642 int64 = 12093749018, -18927348
)

func BenchmarkInt64Mul(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 * BenchInt642
	}
}

func BenchmarkInt64Add(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 + BenchInt642
	}
}

func BenchmarkInt64Div(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchInt64Result = BenchInt641 / BenchInt642
	}
}

func BenchmarkI64Add(b *testing.B) {
	x, y := i64(BenchInt641), i64(BenchInt642)
	for i := 0; i < b.N; i++ {
		BenchI64Result = x.Add(y)
	}
}

func BenchmarkI64Sub(b *testing.B) {
	sub := i64(1)
	for _, iv := range []I64{i64(1), raw(1, 0), MaxI64} {
		b.Run(fmt.Sprintf("%s", iv), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI64Result = iv.Sub(sub)
			}
		})
	}
}

func BenchmarkI64Mul(b *testing.B) {
	x, y := i64(BenchInt641), i64(BenchInt642)
	for i := 0; i < b.N; i++ {
		BenchI64Result = x.Mul(y)
	}
}

func BenchmarkI64Quo(b *testing.B) {
	for _, bv := range []struct {
		name  string
		u, by I64
	}{
		{"small", i64(BenchInt641), i64(10)},
		{"32bit", i64(BenchInt641), i64(0x12345678)},
		{"64bit", MaxI64, i64(0x123456789)},
	} {
		b.Run(bv.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI64Result = bv.u.Quo(bv.by)
			}
		})
	}
}

func BenchmarkI64DivModFloat64(b *testing.B) {
	x, y := i64(BenchInt641), i64(0x12345678)
	for i := 0; i < b.N; i++ {
		BenchI64Result, _, BenchErrResult = x.DivModFloat64(y)
	}
}

func BenchmarkI64LessThan(b *testing.B) {
	for _, iv := range []struct {
		a, b I64
	}{
		{i64(1), i64(1)},
		{i64(2), i64(1)},
		{i64(1), i64(2)},
		{i64(-1), i64(-1)},
		{i64(-1), i64(-2)},
		{MinI64, MaxI64},
	} {
		b.Run(fmt.Sprintf("%s<%s", iv.a, iv.b), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchBoolResult = iv.a.LessThan(iv.b)
			}
		})
	}
}

func BenchmarkI64Lsh(b *testing.B) {
	for _, n := range []int32{1, 32, 40} {
		b.Run(fmt.Sprint(n), func(b *testing.B) {
			v := i64(BenchInt641)
			for i := 0; i < b.N; i++ {
				BenchI64Result = v.Lsh(n)
			}
		})
	}
}

func BenchmarkI64AsFloat64(b *testing.B) {
	v := i64(BenchInt642)
	for i := 0; i < b.N; i++ {
		BenchFloatResult = v.AsFloat64()
	}
}

func BenchmarkI64FromFloat64(b *testing.B) {
	for _, f := range []float64{0, 1234, -1 << 40, 1 << 62} {
		b.Run(fmt.Sprint(f), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchI64Result, BenchErrResult = I64FromFloat64(f)
			}
		})
	}
}

func BenchmarkI64String(b *testing.B) {
	for _, iv := range []I64{ZeroI64, i64(-1234), MinI64} {
		b.Run(iv.DebugString(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchStringResult = iv.String()
			}
		})
	}
}

func BenchmarkI64FromString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BenchI64Result, BenchErrResult = I64FromString("-9223372036854775808", 10)
	}
}

func BenchmarkI64Cmp(b *testing.B) {
	x, y := i64(BenchInt641), i64(BenchInt642)
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Cmp(y)
	}
}
