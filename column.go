package tablefmt

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Column renders one sequence of values as fixed-width text lines. It is
// built from a column format string:
//
//	[left_border][left_padding]{[:content_spec]}[right_padding][right_border]
//
// Borders are single non-space characters, paddings are runs of spaces, and
// the braces are literal and mandatory. The content spec follows the [Spec]
// grammar; its precision is forced equal to its width so that sizing and
// truncation never diverge for string cells. When the spec carries no
// explicit width, the column auto-sizes to its widest rendered value on
// every Format call.
//
// Fields are exported so callers can adjust a column after construction,
// e.g. change the junction characters of the outermost table columns.
// Format mutates Spec.Width and Spec.Precision, so a Column must not be
// used from multiple goroutines without external synchronization.
type Column struct {
	LeftBorder   string
	LeftPadding  string
	Spec         Spec
	RightPadding string
	RightBorder  string

	HRule      HRule
	HRuleLeft  string
	HRuleFill  string
	HRuleRight string

	// fixedWidth is the explicit width from the format string, or Unset
	// when the column auto-sizes.
	fixedWidth int
}

// NewColumn parses a column format string. hruleChars holds exactly three
// characters: left junction, fill and right junction of a rule line.
func NewColumn(format string, hrule HRule, hruleChars string) (*Column, error) {
	if hrule < HRuleNone || hrule > HRuleAll {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHRule, int(hrule))
	}
	chars := []rune(hruleChars)
	if len(chars) != 3 {
		return nil, fmt.Errorf("%w: hrule characters must be exactly 3, got %q", ErrColumnSyntax, hruleChars)
	}
	c := &Column{
		HRule:      hrule,
		HRuleLeft:  string(chars[0]),
		HRuleFill:  string(chars[1]),
		HRuleRight: string(chars[2]),
	}
	if err := c.parseFormat(format); err != nil {
		return nil, err
	}
	c.fixedWidth = c.Spec.Width
	c.Spec.Precision = c.Spec.Width
	return c, nil
}

func (c *Column) parseFormat(format string) error {
	r := []rune(format)
	i := 0

	// A leading non-space character is a border only when spaces and the
	// opening brace follow; a lone leading '{' opens the placeholder.
	if i < len(r) && r[i] != ' ' {
		j := i + 1
		for j < len(r) && r[j] == ' ' {
			j++
		}
		switch {
		case j < len(r) && r[j] == '{':
			c.LeftBorder = string(r[i])
			i++
		case r[i] == '{':
		default:
			return fmt.Errorf("%w: %q: missing '{'", ErrColumnSyntax, format)
		}
	}

	start := i
	for i < len(r) && r[i] == ' ' {
		i++
	}
	c.LeftPadding = string(r[start:i])

	if i >= len(r) || r[i] != '{' {
		return fmt.Errorf("%w: %q: missing '{'", ErrColumnSyntax, format)
	}
	i++

	var closeIdx int
	var content string
	switch {
	case i < len(r) && r[i] == '}':
		closeIdx = i
	case i < len(r) && r[i] == ':':
		// The content spec extends to the last '}' in the string.
		closeIdx = lastIndexRune(r, '}')
		if closeIdx < i {
			return fmt.Errorf("%w: %q: missing '}'", ErrColumnSyntax, format)
		}
		content = string(r[i+1 : closeIdx])
	default:
		return fmt.Errorf("%w: %q: missing '}'", ErrColumnSyntax, format)
	}

	spec, err := ParseSpec(content)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrColumnSyntax, format, err)
	}
	c.Spec = spec

	i = closeIdx + 1
	start = i
	for i < len(r) && r[i] == ' ' {
		i++
	}
	c.RightPadding = string(r[start:i])

	if i < len(r) {
		c.RightBorder = string(r[i])
		i++
	}
	if i != len(r) {
		return fmt.Errorf("%w: %q: unexpected %q after right border", ErrColumnSyntax, format, r[i])
	}
	return nil
}

func lastIndexRune(r []rune, want rune) int {
	for i := len(r) - 1; i >= 0; i-- {
		if r[i] == want {
			return i
		}
	}
	return -1
}

// String reassembles the column format string.
func (c *Column) String() string {
	spec := c.Spec.String()
	field := "{}"
	if spec != "" {
		field = "{:" + spec + "}"
	}
	return c.LeftBorder + c.LeftPadding + field + c.RightPadding + c.RightBorder
}

// Format renders one line per value, plus rule lines according to the
// column's policy. When used through [Table] with headers, the first value
// is the header label; Column itself treats it like any other row.
//
// Without an explicit width the content width is recomputed from the values
// on every call, so a reused Column adapts to new data.
func (c *Column) Format(values []any) ([]string, error) {
	width := c.fixedWidth
	if width < 0 {
		measure := c.Spec
		measure.Width = Unset
		measure.Precision = Unset
		width = 0
		for _, v := range values {
			cell, err := measure.Render(v)
			if err != nil {
				return nil, err
			}
			if n := utf8.RuneCountInString(cell); n > width {
				width = n
			}
		}
	}
	c.Spec.Width = width
	c.Spec.Precision = width

	hrule := c.hruleLine()
	out := make([]string, 0, 2*len(values)+2)
	if c.HRule >= HRuleFrame {
		out = append(out, hrule)
	}
	for _, v := range values {
		cell, err := c.Spec.Render(v)
		if err != nil {
			return nil, err
		}
		out = append(out, c.LeftBorder+c.LeftPadding+cell+c.RightPadding+c.RightBorder)
		if c.HRule == HRuleAll {
			out = append(out, hrule)
		}
	}
	switch {
	case c.HRule == HRuleHeader:
		out = insertLine(out, 1, hrule)
	case c.HRule == HRuleFrameHeader && len(values) > 1:
		out = insertLine(out, 2, hrule)
	}
	if c.HRule == HRuleFrame || c.HRule == HRuleFrameHeader {
		out = append(out, hrule)
	}
	return out, nil
}

// hruleLine builds one rule line spanning the interior of the column:
// paddings plus the resolved content width, with junctions only where the
// matching border exists.
func (c *Column) hruleLine() string {
	width := c.Spec.Width
	if width < 0 {
		width = 0
	}
	total := len(c.LeftPadding) + width + len(c.RightPadding)
	var b strings.Builder
	if c.LeftBorder != "" {
		b.WriteString(c.HRuleLeft)
	}
	b.WriteString(strings.Repeat(c.HRuleFill, total))
	if c.RightBorder != "" {
		b.WriteString(c.HRuleRight)
	}
	return b.String()
}

func insertLine(lines []string, i int, line string) []string {
	if i >= len(lines) {
		return append(lines, line)
	}
	lines = append(lines, "")
	copy(lines[i+1:], lines[i:])
	lines[i] = line
	return lines
}
