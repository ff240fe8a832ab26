package tablefmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Unset marks an absent Width or Precision. A width of 0 is a valid,
// distinct value.
const Unset = -1

// Spec is the structured form of a content format specification:
//
//	[[fill]align][sign]["z"]["#"]["0"][width][grouping_option]["." precision][type]
//
// A fill character is only recognized when immediately followed by an
// alignment character. The zero value is not a valid Spec; build one with
// [ParseSpec] (which marks Width and Precision as [Unset] when absent).
type Spec struct {
	Fill          rune // fill character, 0 when unset
	Align         byte // one of '<', '>', '=', '^', 0 when unset
	Sign          byte // one of '+', '-', ' ', 0 when unset
	CoerceNegZero bool // "z": coerce a negative-zero float result to positive
	Alt           bool // "#": alternate form
	ZeroPad       bool // "0": sign-aware zero padding
	Width         int  // minimum field width, Unset when absent
	Grouping      byte // thousands separator, ',' or '_', 0 when unset
	Precision     int  // precision, Unset when absent
	Type          byte // presentation type, 0 when unset
}

func isAlign(r rune) bool {
	return r == '<' || r == '>' || r == '=' || r == '^'
}

func isType(r rune) bool {
	return strings.ContainsRune("bcdeEfFgGnosxX%", r)
}

// ParseSpec parses a content format specification. The whole input must be
// consumed by a single left-to-right greedy match; any leftover character
// fails with an error wrapping [ErrSpecSyntax].
func ParseSpec(s string) (Spec, error) {
	spec := Spec{Width: Unset, Precision: Unset}
	r := []rune(s)
	i := 0

	// [[fill]align]: two-rune form wins over a bare align.
	if i+1 < len(r) && isAlign(r[i+1]) {
		spec.Fill = r[i]
		spec.Align = byte(r[i+1])
		i += 2
	} else if i < len(r) && isAlign(r[i]) {
		spec.Align = byte(r[i])
		i++
	}

	if i < len(r) && (r[i] == '+' || r[i] == '-' || r[i] == ' ') {
		spec.Sign = byte(r[i])
		i++
	}
	if i < len(r) && r[i] == 'z' {
		spec.CoerceNegZero = true
		i++
	}
	if i < len(r) && r[i] == '#' {
		spec.Alt = true
		i++
	}
	if i < len(r) && r[i] == '0' {
		spec.ZeroPad = true
		i++
	}

	if n, width := scanDigits(r[i:]); n > 0 {
		spec.Width = width
		i += n
	}

	if i < len(r) && (r[i] == ',' || r[i] == '_') {
		spec.Grouping = byte(r[i])
		i++
	}

	if i < len(r) && r[i] == '.' {
		n, prec := scanDigits(r[i+1:])
		if n == 0 {
			return Spec{}, fmt.Errorf("%w: %q: '.' must be followed by a precision", ErrSpecSyntax, s)
		}
		spec.Precision = prec
		i += 1 + n
	}

	if i < len(r) && isType(r[i]) {
		spec.Type = byte(r[i])
		i++
	}

	if i != len(r) {
		return Spec{}, fmt.Errorf("%w: %q: unexpected %q at offset %d", ErrSpecSyntax, s, r[i], i)
	}
	return spec, nil
}

// scanDigits consumes a maximal run of decimal digits and returns the number
// of runes consumed and their value.
func scanDigits(r []rune) (int, int) {
	n := 0
	v := 0
	for n < len(r) && r[n] >= '0' && r[n] <= '9' {
		v = v*10 + int(r[n]-'0')
		n++
	}
	return n, v
}

// String re-emits the specification in grammar order, omitting absent
// components. The result is a valid [ParseSpec] input that parses back to
// an equal Spec.
func (s Spec) String() string {
	var b strings.Builder
	if s.Fill != 0 {
		b.WriteRune(s.Fill)
	}
	if s.Align != 0 {
		b.WriteByte(s.Align)
	}
	if s.Sign != 0 {
		b.WriteByte(s.Sign)
	}
	if s.CoerceNegZero {
		b.WriteByte('z')
	}
	if s.Alt {
		b.WriteByte('#')
	}
	if s.ZeroPad {
		b.WriteByte('0')
	}
	if s.Width >= 0 {
		b.WriteString(strconv.Itoa(s.Width))
	}
	if s.Grouping != 0 {
		b.WriteByte(s.Grouping)
	}
	if s.Precision >= 0 {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Precision))
	}
	if s.Type != 0 {
		b.WriteByte(s.Type)
	}
	return b.String()
}
