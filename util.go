package num

type RandSource interface {
	Uint64() uint64
}

// DifferenceI64 subtracts the smaller of a and b from the larger. The
// result wraps if the distance does not fit, e.g. between MinI64 and MaxI64.
func DifferenceI64(a, b I64) I64 {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerI64(a, b I64) I64 {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func SmallerI64(a, b I64) I64 {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
