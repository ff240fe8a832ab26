package tablefmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render formats a single value under the specification. Integers, floats
// and strings each get their own presentation rules; any other value is
// rendered through its default string form ([fmt.Stringer] or [fmt.Sprint],
// nil renders empty). Width and precision count code points.
//
// Precision is ignored for integer presentations so that column sizing,
// which couples precision to width, composes with numeric cells. "n" applies
// no locale grouping, and zeros padded under "=" alignment are not
// re-grouped.
func (s Spec) Render(v any) (string, error) {
	switch s.Type {
	case 0:
		if neg, mag, ok := intValue(v); ok {
			return s.renderInt(neg, mag, 10, false)
		}
		if f, ok := floatValue(v); ok {
			return s.renderFloat(f, 0)
		}
		return s.renderString(stringValue(v))
	case 's':
		return s.renderString(stringValue(v))
	case 'b':
		return s.renderIntValue(v, 2, false)
	case 'o':
		return s.renderIntValue(v, 8, false)
	case 'd':
		return s.renderIntValue(v, 10, false)
	case 'x':
		return s.renderIntValue(v, 16, false)
	case 'X':
		return s.renderIntValue(v, 16, true)
	case 'c':
		return s.renderChar(v)
	case 'n':
		if neg, mag, ok := intValue(v); ok {
			return s.renderInt(neg, mag, 10, false)
		}
		if f, ok := floatValue(v); ok {
			return s.renderFloat(f, 'g')
		}
		return "", fmt.Errorf("%w: format type 'n' requires a number, got %T", ErrIncompatibleValue, v)
	case 'e', 'E', 'f', 'F', 'g', 'G', '%':
		f, ok := floatValue(v)
		if !ok {
			var neg bool
			var mag uint64
			if neg, mag, ok = intValue(v); ok {
				f = float64(mag)
				if neg {
					f = -f
				}
			}
		}
		if !ok {
			return "", fmt.Errorf("%w: format type %q requires a number, got %T", ErrIncompatibleValue, s.Type, v)
		}
		return s.renderFloat(f, s.Type)
	}
	return "", fmt.Errorf("%w: unknown format type %q", ErrIncompatibleValue, s.Type)
}

// --- Value classification ---

func intValue(v any) (neg bool, mag uint64, ok bool) {
	switch n := v.(type) {
	case int:
		return splitInt(int64(n))
	case int8:
		return splitInt(int64(n))
	case int16:
		return splitInt(int64(n))
	case int32:
		return splitInt(int64(n))
	case int64:
		return splitInt(n)
	case uint:
		return false, uint64(n), true
	case uint8:
		return false, uint64(n), true
	case uint16:
		return false, uint64(n), true
	case uint32:
		return false, uint64(n), true
	case uint64:
		return false, n, true
	case uintptr:
		return false, uint64(n), true
	}
	return false, 0, false
}

func splitInt(n int64) (bool, uint64, bool) {
	if n < 0 {
		// Two's complement conversion yields the magnitude even for MinInt64.
		return true, uint64(-n), true
	}
	return false, uint64(n), true
}

func floatValue(v any) (float64, bool) {
	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	}
	return 0, false
}

func stringValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// --- Integer presentation ---

func (s Spec) renderIntValue(v any, base int, upper bool) (string, error) {
	neg, mag, ok := intValue(v)
	if !ok {
		return "", fmt.Errorf("%w: format type %q requires an integer, got %T", ErrIncompatibleValue, s.Type, v)
	}
	return s.renderInt(neg, mag, base, upper)
}

func (s Spec) renderInt(neg bool, mag uint64, base int, upper bool) (string, error) {
	if s.Grouping == ',' && base != 10 {
		return "", fmt.Errorf("%w: ',' grouping not allowed with format type %q", ErrIncompatibleValue, s.Type)
	}
	digits := strconv.FormatUint(mag, base)
	if upper {
		digits = strings.ToUpper(digits)
	}
	if s.Grouping != 0 {
		size := 3
		if base != 10 {
			size = 4
		}
		digits = groupDigits(digits, s.Grouping, size)
	}
	prefix := ""
	if s.Alt {
		switch base {
		case 2:
			prefix = "0b"
		case 8:
			prefix = "0o"
		case 16:
			prefix = "0x"
			if upper {
				prefix = "0X"
			}
		}
	}
	return s.padNumber(signString(neg, s.Sign), prefix, digits), nil
}

func (s Spec) renderChar(v any) (string, error) {
	neg, mag, ok := intValue(v)
	if !ok {
		return "", fmt.Errorf("%w: format type 'c' requires an integer, got %T", ErrIncompatibleValue, v)
	}
	if neg || mag > utf8.MaxRune {
		return "", fmt.Errorf("%w: format type 'c': code point out of range", ErrIncompatibleValue)
	}
	if s.Sign != 0 || s.Alt || s.Grouping != 0 || s.ZeroPad {
		return "", fmt.Errorf("%w: sign, '#', grouping and '0' not allowed with format type 'c'", ErrIncompatibleValue)
	}
	return s.padNumber("", "", string(rune(mag))), nil
}

// --- Float presentation ---

// renderFloat renders under verb 'e', 'E', 'f', 'F', 'g', 'G' or '%'.
// Verb 0 is the untyped presentation: shortest form with at least one digit
// after the decimal point.
func (s Spec) renderFloat(f float64, verb byte) (string, error) {
	neg := math.Signbit(f)
	a := math.Abs(f)
	prec := s.Precision
	upper := verb == 'E' || verb == 'F' || verb == 'G'

	var body string
	switch {
	case math.IsNaN(a):
		body = "nan"
	case math.IsInf(a, 1):
		body = "inf"
	default:
		switch verb {
		case 0:
			body = strconv.FormatFloat(a, 'g', prec, 64)
			if !strings.ContainsAny(body, ".eE") {
				body += ".0"
			}
		case 'e', 'E':
			if prec < 0 {
				prec = 6
			}
			body = strconv.FormatFloat(a, 'e', prec, 64)
		case 'f', 'F':
			if prec < 0 {
				prec = 6
			}
			body = strconv.FormatFloat(a, 'f', prec, 64)
		case 'g', 'G':
			if prec < 0 {
				prec = 6
			}
			if prec == 0 {
				prec = 1
			}
			body = strconv.FormatFloat(a, 'g', prec, 64)
		case '%':
			if prec < 0 {
				prec = 6
			}
			body = strconv.FormatFloat(a*100, 'f', prec, 64)
		}
		if s.CoerceNegZero && neg && zeroDigits(body) {
			neg = false
		}
		if s.Alt && !strings.Contains(body, ".") {
			if i := strings.IndexAny(body, "eE"); i >= 0 {
				body = body[:i] + "." + body[i:]
			} else {
				body += "."
			}
		}
		if s.Grouping != 0 {
			body = groupFloat(body, s.Grouping)
		}
	}
	if verb == '%' {
		body += "%"
	}
	if upper {
		body = strings.ToUpper(body)
	}
	return s.padNumber(signString(neg, s.Sign), "", body), nil
}

// zeroDigits reports whether the mantissa of a formatted float is all zeros.
func zeroDigits(body string) bool {
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '0', '.':
		case 'e', 'E':
			return true
		default:
			return false
		}
	}
	return true
}

// --- String presentation ---

func (s Spec) renderString(str string) (string, error) {
	switch {
	case s.Sign != 0:
		return "", fmt.Errorf("%w: sign not allowed in string format", ErrIncompatibleValue)
	case s.Alt:
		return "", fmt.Errorf("%w: alternate form (#) not allowed in string format", ErrIncompatibleValue)
	case s.Grouping != 0:
		return "", fmt.Errorf("%w: grouping not allowed in string format", ErrIncompatibleValue)
	case s.CoerceNegZero:
		return "", fmt.Errorf("%w: 'z' not allowed in string format", ErrIncompatibleValue)
	case s.Align == '=':
		return "", fmt.Errorf("%w: '=' alignment not allowed in string format", ErrIncompatibleValue)
	}
	if s.Precision >= 0 {
		if r := []rune(str); len(r) > s.Precision {
			str = string(r[:s.Precision])
		}
	}
	fill, align := s.fillAlign(false)
	width := s.Width
	if width < 0 {
		width = 0
	}
	return alignPad(str, width, fill, align), nil
}

// --- Padding ---

// fillAlign resolves the effective fill and alignment. The "0" flag implies
// fill '0', and for numbers '=' alignment; defaults are '>' for numbers and
// '<' for strings.
func (s Spec) fillAlign(numeric bool) (rune, byte) {
	fill := s.Fill
	align := s.Align
	if s.ZeroPad {
		if fill == 0 {
			fill = '0'
		}
		if align == 0 && numeric {
			align = '='
		}
	}
	if fill == 0 {
		fill = ' '
	}
	if align == 0 {
		if numeric {
			align = '>'
		} else {
			align = '<'
		}
	}
	return fill, align
}

func (s Spec) padNumber(sign, prefix, body string) string {
	fill, align := s.fillAlign(true)
	width := s.Width
	if width < 0 {
		width = 0
	}
	text := sign + prefix + body
	if align == '=' {
		n := width - utf8.RuneCountInString(text)
		if n <= 0 {
			return text
		}
		return sign + prefix + strings.Repeat(string(fill), n) + body
	}
	return alignPad(text, width, fill, align)
}

// alignPad pads text to width with fill under '<', '>' or '^'. Centering
// puts the extra character on the right.
func alignPad(text string, width int, fill rune, align byte) string {
	n := width - utf8.RuneCountInString(text)
	if n <= 0 {
		return text
	}
	switch align {
	case '<':
		return text + strings.Repeat(string(fill), n)
	case '^':
		left := n / 2
		return strings.Repeat(string(fill), left) + text + strings.Repeat(string(fill), n-left)
	default:
		return strings.Repeat(string(fill), n) + text
	}
}

func signString(neg bool, sign byte) string {
	if neg {
		return "-"
	}
	switch sign {
	case '+':
		return "+"
	case ' ':
		return " "
	}
	return ""
}

// groupDigits inserts sep into digits every size characters from the right.
func groupDigits(digits string, sep byte, size int) string {
	if len(digits) <= size {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % size
	if lead == 0 {
		lead = size
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += size {
		b.WriteByte(sep)
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

// groupFloat groups the leading integer-digit run of a formatted float.
func groupFloat(body string, sep byte) string {
	i := 0
	for i < len(body) && body[i] >= '0' && body[i] <= '9' {
		i++
	}
	return groupDigits(body[:i], sep, 3) + body[i:]
}
