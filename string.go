package num

import (
	"fmt"
	"io"
	"strings"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// Long enough for MinI64 in base 2, with its sign.
const maxTextLen = 65

// I64FromString creates an I64 from a string in the given radix, which must
// be 0 or in the range 2..36. An optional leading '+' or '-' is accepted.
// If radix is 0, the radix is inferred from a "0x", "0o" or "0b" prefix and
// defaults to 10.
//
// Values that do not fit are clamped to MinI64/MaxI64 and the error wraps
// ErrOutOfRange. Malformed input wraps ErrSyntax.
func I64FromString(s string, radix int) (out I64, err error) {
	in := s
	if radix != 0 && (radix < 2 || radix > 36) {
		return out, ErrInvalidRadix
	}

	neg := false
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg, s = true, s[1:]
		case '+':
			s = s[1:]
		}
	}

	if radix == 0 {
		radix = 10
		if len(s) > 2 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				radix, s = 16, s[2:]
			case 'o', 'O':
				radix, s = 8, s[2:]
			case 'b', 'B':
				radix, s = 2, s[2:]
			}
		}
	}

	if s == "" {
		return out, fmt.Errorf("num: i64 string %q: %w", in, ErrSyntax)
	}

	var hi, lo uint32
	var over bool
	for i := 0; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= uint32(radix) {
			return zeroI64, fmt.Errorf("num: i64 string %q: %w", in, ErrSyntax)
		}
		if !over {
			hi, lo, over = mulAddSmall(hi, lo, uint32(radix), d)
		}
	}

	// Anything at or above 1<<63 only fits if it is exactly -(1<<63).
	if !over && hi&signBit != 0 {
		over = !(neg && hi == signBit && lo == 0)
	}
	if over {
		if neg {
			return MinI64, fmt.Errorf("num: i64 string %q: %w", in, ErrOutOfRange)
		}
		return MaxI64, fmt.Errorf("num: i64 string %q: %w", in, ErrOutOfRange)
	}

	out = I64{hi: int32(hi), lo: lo}
	if neg {
		out = out.Neg()
	}
	return out, nil
}

func digitValue(c byte) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'z':
		return uint32(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint32(c-'A') + 10
	}
	return 36
}

// appendText appends the digits of i in the given radix to dst, which must
// already be validated.
func (i I64) appendText(dst []byte, radix int) []byte {
	if i == zeroI64 {
		return append(dst, '0')
	}

	var buf [maxTextLen]byte
	pos := len(buf)

	neg := i.hi < 0
	if neg {
		i = i.Neg() // MinI64 reads as 1<<63 once hi is treated as unsigned.
	}

	hi, lo, d := uint32(i.hi), i.lo, uint32(radix)
	for hi != 0 || lo != 0 {
		var r uint32
		hi, lo, r = quoRemSmall(hi, lo, d)
		pos--
		buf[pos] = digits[r]
	}

	if neg {
		pos--
		buf[pos] = '-'
	}
	return append(dst, buf[pos:]...)
}

// Text returns the string representation of i in the given radix, which
// must be in the range 2..36. Digits above 9 are lower-case letters. Text
// panics if the radix is out of range; see PutString for a checked variant.
func (i I64) Text(radix int) string {
	if radix < 2 || radix > 36 {
		panic(ErrInvalidRadix)
	}
	var buf [maxTextLen]byte
	return string(i.appendText(buf[:0], radix))
}

// PutString writes the representation of i in the given radix into dst and
// returns the number of bytes written. If the radix is outside 2..36, it
// returns ErrInvalidRadix; if dst is too small, ErrShortBuffer. Nothing is
// written to dst on error.
func (i I64) PutString(dst []byte, radix int) (n int, err error) {
	if radix < 2 || radix > 36 {
		return 0, ErrInvalidRadix
	}
	var buf [maxTextLen]byte
	out := i.appendText(buf[:0], radix)
	if len(out) > len(dst) {
		return 0, ErrShortBuffer
	}
	return copy(dst, out), nil
}

func (i I64) String() string {
	return i.Text(10)
}

// DebugString shows the raw words, high word first.
func (i I64) DebugString() string {
	return fmt.Sprintf("0x%08x :: 0x%08x", uint32(i.hi), i.lo)
}

func (i I64) GoString() string {
	return fmt.Sprintf("num.I64FromRaw(%#x, %#x)", i.hi, i.lo)
}

// Format implements fmt.Formatter. It supports the verbs 'd', 's', 'v',
// 'b', 'o', 'O', 'x' and 'X', the '+', ' ', '#', '-' and '0' flags, and a
// width. '%#v' prints the GoString.
func (i I64) Format(s fmt.State, c rune) {
	var radix int
	var prefix string

	switch c {
	case 'd', 's':
		radix = 10
	case 'v':
		if s.Flag('#') {
			_, _ = io.WriteString(s, i.GoString())
			return
		}
		radix = 10
	case 'b':
		radix, prefix = 2, "0b"
	case 'o':
		radix, prefix = 8, "0"
	case 'O':
		radix, prefix = 8, "0o"
	case 'x':
		radix, prefix = 16, "0x"
	case 'X':
		radix, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(num.I64=%s)", c, i.String())
		return
	}

	if !s.Flag('#') && c != 'O' {
		prefix = ""
	}

	var buf [maxTextLen]byte
	text := i.appendText(buf[:0], radix)

	sign := ""
	if text[0] == '-' {
		sign, text = "-", text[1:]
	} else if s.Flag('+') {
		sign = "+"
	} else if s.Flag(' ') {
		sign = " "
	}

	body := string(text)
	if c == 'X' {
		body = strings.ToUpper(body)
	}

	pad := 0
	if width, ok := s.Width(); ok {
		pad = width - len(sign) - len(prefix) - len(body)
	}

	switch {
	case pad <= 0:
		_, _ = io.WriteString(s, sign+prefix+body)
	case s.Flag('-'):
		_, _ = io.WriteString(s, sign+prefix+body+strings.Repeat(" ", pad))
	case s.Flag('0'):
		_, _ = io.WriteString(s, sign+prefix+strings.Repeat("0", pad)+body)
	default:
		_, _ = io.WriteString(s, strings.Repeat(" ", pad)+sign+prefix+body)
	}
}

func (i I64) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I64) UnmarshalText(bts []byte) (err error) {
	v, err := I64FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I64) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I64) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: i64 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := I64FromString(string(bts), 10)
	if err != nil {
		return err
	}
	*i = v
	return nil
}
