/*
Package num provides I64, a signed 64-bit two's complement integer built
from a pair of 32-bit words, for code that has to reproduce exact int64
behaviour using only 32-bit arithmetic.

I64 is a value type; all operations return new values. Overflow wraps
around exactly as it does for int64.

Simple example:

	a := I64FromInt32(math.MaxInt32)
	b := I64FromInt32(4)
	fmt.Println(a.Mul(b))
	// Output: 8589934588

I64 can be created from a variety of sources:

	I64FromRaw(hi int32, lo uint32) I64
	I64FromBits(lo, hi int32) I64
	I64FromInt32(v int32) I64
	I64FromInt64(v int64) I64
	I64FromString(s string, radix int) (out I64, err error)
	I64FromFloat64(f float64) (out I64, err error)

Division comes in two flavours: DivMod (and QuoRem, Quo and Rem) is exact
binary long division; DivModFloat64 goes through float64 and is only exact
for operands with a magnitude below 1<<53.

I64 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- fmt.GoStringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package num
