package num

import (
	"math/bits"
)

// The helpers in this file work on 64-bit quantities held as a pair of
// uint32 words. Nothing here uses a native 64-bit integer; carries are
// caught by splitting each word into 16-bit limbs and accumulating them in
// a uint32, where the carry is simply whatever lands above bit 16.

// add64 adds two 64-bit words in four 16-bit limbs. The carry out of the top
// limb is discarded.
func add64(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	var (
		a48, a32 = ahi >> 16, ahi & maxUint16
		a16, a00 = alo >> 16, alo & maxUint16
		b48, b32 = bhi >> 16, bhi & maxUint16
		b16, b00 = blo >> 16, blo & maxUint16
	)

	c00 := a00 + b00
	c16 := (c00 >> 16) + a16 + b16
	c00 &= maxUint16
	c32 := (c16 >> 16) + a32 + b32
	c16 &= maxUint16
	c48 := (c32 >> 16) + a48 + b48
	c32 &= maxUint16
	c48 &= maxUint16

	return (c48 << 16) | c32, (c16 << 16) | c00
}

// mul64 is schoolbook long multiplication over four 16-bit limbs per
// operand. Cross terms a_i*b_j land in limb i+j; anything that would land in
// limb 4 or above is dropped, which is the 64-bit wraparound.
//
// Every partial product is at most (2^16-1)^2 == 2^32 - 2^17 + 1, so adding
// a limb (< 2^16) and a carry (< 2^16) to it still fits in a uint32.
func mul64(ahi, alo, bhi, blo uint32) (hi, lo uint32) {
	var (
		a48, a32 = ahi >> 16, ahi & maxUint16
		a16, a00 = alo >> 16, alo & maxUint16
		b48, b32 = bhi >> 16, bhi & maxUint16
		b16, b00 = blo >> 16, blo & maxUint16

		c48, c32, c16, c00 uint32
	)

	c00 += a00 * b00
	c16 += c00 >> 16
	c00 &= maxUint16

	c16 += a16 * b00
	c32 += c16 >> 16
	c16 &= maxUint16
	c16 += a00 * b16
	c32 += c16 >> 16
	c16 &= maxUint16

	c32 += a32 * b00
	c48 += c32 >> 16
	c32 &= maxUint16
	c32 += a16 * b16
	c48 += c32 >> 16
	c32 &= maxUint16
	c32 += a00 * b32
	c48 += c32 >> 16
	c32 &= maxUint16

	// Only the low 16 bits of the top limb survive, so uint32 wraparound in
	// this sum is harmless.
	c48 += a48*b00 + a32*b16 + a16*b32 + a00*b48
	c48 &= maxUint16

	return (c48 << 16) | c32, (c16 << 16) | c00
}

// mulAddSmall computes (hi:lo * m) + a for m and a below 2^16, reporting
// whether anything spilled past bit 63.
func mulAddSmall(hi, lo, m, a uint32) (ohi, olo uint32, overflow bool) {
	c := (lo&maxUint16)*m + a
	l0 := c & maxUint16
	c = (lo>>16)*m + (c >> 16)
	l1 := c & maxUint16
	c = (hi&maxUint16)*m + (c >> 16)
	h0 := c & maxUint16
	c = (hi>>16)*m + (c >> 16)
	h1 := c & maxUint16
	return (h1 << 16) | h0, (l1 << 16) | l0, c>>16 != 0
}

// quoRemSmall divides hi:lo by d, which must be in the range 1..0xFFFF. The
// dividend is consumed 16 bits at a time so the running remainder, shifted
// up by 16, always fits in a uint32.
func quoRemSmall(hi, lo, d uint32) (qhi, qlo, r uint32) {
	if hi == 0 {
		return 0, lo / d, lo % d
	}

	cur := hi >> 16
	q3 := cur / d
	cur = ((cur % d) << 16) | (hi & maxUint16)
	q2 := cur / d
	cur = ((cur % d) << 16) | (lo >> 16)
	q1 := cur / d
	cur = ((cur % d) << 16) | (lo & maxUint16)
	q0 := cur / d

	return (q3 << 16) | q2, (q1 << 16) | q0, cur % d
}

func leadingZeros64(hi, lo uint32) uint {
	if hi == 0 {
		return uint(bits.LeadingZeros32(lo)) + 32
	}
	return uint(bits.LeadingZeros32(hi))
}

func lsh64(hi, lo uint32, n uint) (ohi, olo uint32) {
	if n == 0 {
		return hi, lo
	} else if n >= 32 {
		return lo << (n - 32), 0
	}
	return (hi << n) | (lo >> (32 - n)), lo << n
}

func cmp64(ahi, alo, bhi, blo uint32) int {
	if ahi > bhi {
		return 1
	} else if ahi < bhi {
		return -1
	} else if alo > blo {
		return 1
	} else if alo < blo {
		return -1
	}
	return 0
}

// quorem64 is unsigned 64-bit division for by != 0.
func quorem64(uhi, ulo, byhi, bylo uint32) (qhi, qlo, rhi, rlo uint32) {
	if uhi|byhi == 0 {
		// protected from div/0 because bylo is guaranteed to be set if byhi is 0:
		return 0, ulo / bylo, 0, ulo % bylo
	}

	if cmp := cmp64(uhi, ulo, byhi, bylo); cmp < 0 {
		return 0, 0, uhi, ulo // it's 100% remainder
	} else if cmp == 0 {
		return 0, 1, 0, 0 // dividend and divisor are the same
	}

	if byhi == 0 && bylo <= maxUint16 {
		qhi, qlo, rlo = quoRemSmall(uhi, ulo, bylo)
		return qhi, qlo, 0, rlo
	}

	return quorem64bin(uhi, ulo, byhi, bylo, leadingZeros64(uhi, ulo), leadingZeros64(byhi, bylo))
}

// quorem64bin is restoring binary long division. It requires u > by > 0.
func quorem64bin(uhi, ulo, byhi, bylo uint32, uLeading0, byLeading0 uint) (qhi, qlo, rhi, rlo uint32) {
	shift := int(byLeading0 - uLeading0)
	byhi, bylo = lsh64(byhi, bylo, uint(shift))

	for {
		// {{{ Lsh(1)
		qhi = (qhi << 1) | (qlo >> 31)
		qlo = qlo << 1
		// }}}

		// simulate greater than or equal by hand-inlining "not less than".
		if !(uhi < byhi || (uhi == byhi && ulo < bylo)) {
			if ulo < bylo {
				uhi--
			}
			ulo -= bylo
			uhi -= byhi
			qlo |= 1
		}

		// {{{ Rsh(1)
		bylo = (bylo >> 1) | (byhi << 31)
		byhi = byhi >> 1
		// }}}

		if shift <= 0 {
			break
		}
		shift--
	}

	return qhi, qlo, uhi, ulo
}
