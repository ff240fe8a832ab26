package tablefmt_test

import (
	"testing"

	"github.com/carlo-nonato/tablefmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnRuleEveryRow(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("|   {:-<7} #", tablefmt.HRuleAll, "+-+")
	require.NoError(t, err)

	lines, err := col.Format([]any{"title", "value", "value", "value"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+-----------+",
		"|   title-- #",
		"+-----------+",
		"|   value-- #",
		"+-----------+",
		"|   value-- #",
		"+-----------+",
		"|   value-- #",
		"+-----------+",
	}, lines)
}

func TestColumnParsing(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format      string
		leftBorder  string
		leftPad     string
		rightPad    string
		rightBorder string
	}{
		"bare placeholder":   {format: "{}", leftBorder: "", leftPad: "", rightPad: "", rightBorder: ""},
		"borders only":       {format: "|{}|", leftBorder: "|", rightBorder: "|"},
		"paddings only":      {format: "  {} ", leftPad: "  ", rightPad: " "},
		"full":               {format: "#   {:^5}  @", leftBorder: "#", leftPad: "   ", rightPad: "  ", rightBorder: "@"},
		"no left border":     {format: " {:^} |", leftPad: " ", rightPad: " ", rightBorder: "|"},
		"empty content spec": {format: "|{:} |", leftBorder: "|", rightPad: " "},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			col, err := tablefmt.NewColumn(tt.format, tablefmt.HRuleNone, "+-+")
			require.NoError(t, err)
			assert.Equal(t, tt.leftBorder, col.LeftBorder)
			assert.Equal(t, tt.leftPad, col.LeftPadding)
			assert.Equal(t, tt.rightPad, col.RightPadding)
			assert.Equal(t, tt.rightBorder, col.RightBorder)
		})
	}
}

func TestColumnSyntaxErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"no braces":            "plain",
		"missing close":        "|{:d",
		"missing open":         "|d}",
		"two left tokens":      "x y{}",
		"junk after border":    "{} x ",
		"two right borders":    "{} xy",
		"bad content spec":     "{:q}",
		"colonless content":    "{d}",
	}
	for name, format := range tests {
		format := format
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := tablefmt.NewColumn(format, tablefmt.HRuleNone, "+-+")
			require.Error(t, err)
			assert.ErrorIs(t, err, tablefmt.ErrColumnSyntax)
		})
	}
}

func TestColumnSpecSyntaxErrorIsWrapped(t *testing.T) {
	t.Parallel()
	_, err := tablefmt.NewColumn("{:q}", tablefmt.HRuleNone, "+-+")
	require.Error(t, err)
	assert.ErrorIs(t, err, tablefmt.ErrColumnSyntax)
	assert.ErrorIs(t, err, tablefmt.ErrSpecSyntax)
}

func TestColumnHRuleCharsValidation(t *testing.T) {
	t.Parallel()
	_, err := tablefmt.NewColumn("{}", tablefmt.HRuleNone, "+-")
	assert.ErrorIs(t, err, tablefmt.ErrColumnSyntax)

	_, err = tablefmt.NewColumn("{}", tablefmt.HRuleNone, "+-+-")
	assert.ErrorIs(t, err, tablefmt.ErrColumnSyntax)

	// Multi-byte rule characters count as single characters.
	_, err = tablefmt.NewColumn("{}", tablefmt.HRuleNone, tablefmt.HRuleCharsLight)
	assert.NoError(t, err)
}

func TestColumnInvalidPolicy(t *testing.T) {
	t.Parallel()
	_, err := tablefmt.NewColumn("{}", tablefmt.HRule(9), "+-+")
	assert.ErrorIs(t, err, tablefmt.ErrUnknownHRule)
}

func TestColumnLineCounts(t *testing.T) {
	t.Parallel()
	values := []any{"a", "b", "c"}
	tests := map[string]struct {
		hrule tablefmt.HRule
		want  int
	}{
		"none":         {tablefmt.HRuleNone, 3},
		"header":       {tablefmt.HRuleHeader, 4},
		"frame":        {tablefmt.HRuleFrame, 5},
		"frame header": {tablefmt.HRuleFrameHeader, 6},
		"all":          {tablefmt.HRuleAll, 7},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			col, err := tablefmt.NewColumn("|{}|", tt.hrule, "+-+")
			require.NoError(t, err)
			lines, err := col.Format(values)
			require.NoError(t, err)
			assert.Len(t, lines, tt.want)
		})
	}
}

func TestColumnHeaderRulePlacement(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("|{}|", tablefmt.HRuleHeader, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"hd", "v1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"|hd|", "+--+", "|v1|"}, lines)
}

func TestColumnHeaderRuleSingleValue(t *testing.T) {
	t.Parallel()
	// The header rule is inserted even when the header is the only value.
	col, err := tablefmt.NewColumn("|{}|", tablefmt.HRuleHeader, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"hd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"|hd|", "+--+"}, lines)
}

func TestColumnFrameHeaderSingleValue(t *testing.T) {
	t.Parallel()
	// A single value under frame-header gets frame rules but no header rule.
	col, err := tablefmt.NewColumn("|{}|", tablefmt.HRuleFrameHeader, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"hd"})
	require.NoError(t, err)
	assert.Equal(t, []string{"+--+", "|hd|", "+--+"}, lines)
}

func TestColumnFrameHeaderPlacement(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("|{}|", tablefmt.HRuleFrameHeader, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"hd", "v1", "v2"})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"+--+",
		"|hd|",
		"+--+",
		"|v1|",
		"|v2|",
		"+--+",
	}, lines)
}

func TestColumnRulesRespectBorders(t *testing.T) {
	t.Parallel()
	// No junction characters where a border is absent.
	col, err := tablefmt.NewColumn(" {:^} |", tablefmt.HRuleFrame, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"ab"})
	require.NoError(t, err)
	assert.Equal(t, []string{"----+", " ab |", "----+"}, lines)
}

func TestColumnAutoWidthAdapts(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("{}", tablefmt.HRuleNone, "+-+")
	require.NoError(t, err)

	lines, err := col.Format([]any{"abc", "x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", "x  "}, lines)
	assert.Equal(t, 3, col.Spec.Width)

	// Reuse with narrower data shrinks the column again.
	lines, err = col.Format([]any{"x"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, lines)
	assert.Equal(t, 1, col.Spec.Width)
}

func TestColumnExplicitWidthFixed(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("{:4}", tablefmt.HRuleNone, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"toolong", "x"})
	require.NoError(t, err)
	// The explicit width is never recomputed; string cells truncate to it.
	assert.Equal(t, []string{"tool", "x   "}, lines)
	assert.Equal(t, 4, col.Spec.Width)
	assert.Equal(t, 4, col.Spec.Precision)
}

func TestColumnWidthFromMixedValues(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("{:>}", tablefmt.HRuleNone, "+-+")
	require.NoError(t, err)
	lines, err := col.Format([]any{"Total", 1234, 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"Total", " 1234", "    7"}, lines)
}

func TestColumnEmptyValues(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("|{}|", tablefmt.HRuleFrame, "+-+")
	require.NoError(t, err)
	lines, err := col.Format(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"++", "++"}, lines)
}

func TestColumnRenderErrorPropagates(t *testing.T) {
	t.Parallel()
	col, err := tablefmt.NewColumn("{:d}", tablefmt.HRuleNone, "+-+")
	require.NoError(t, err)
	_, err = col.Format([]any{"not a number"})
	assert.ErrorIs(t, err, tablefmt.ErrIncompatibleValue)
}

func TestColumnString(t *testing.T) {
	t.Parallel()
	// The forced precision shows up next to an explicit width; widthless
	// formats reassemble verbatim.
	tests := map[string]string{
		"{}":           "{}",
		" {:^} |":      " {:^} |",
		"|   {:-<7} #": "|   {:-<7.7} #",
		"|{:^10}|":     "|{:^10.10}|",
	}
	for format, want := range tests {
		format, want := format, want
		t.Run(format, func(t *testing.T) {
			t.Parallel()
			col, err := tablefmt.NewColumn(format, tablefmt.HRuleNone, "+-+")
			require.NoError(t, err)
			assert.Equal(t, want, col.String())
		})
	}
}
