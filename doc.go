// Package tablefmt renders columns of heterogeneous values into fixed-width,
// optionally bordered and ruled plain-text tables, driven entirely by
// compact format strings rather than per-cell API calls.
//
// # Format specs
//
// A content format spec controls how a single value becomes text:
//
//	[[fill]align][sign]["z"]["#"]["0"][width][grouping]["." precision][type]
//
// where align is one of '<', '>', '=' or '^', sign is '+', '-' or ' ',
// grouping is ',' or '_', and type is one of b c d e E f F g G n o s x X %.
// [ParseSpec] decodes a spec string into a [Spec]; [Spec.String] re-emits
// it; [Spec.Render] formats one value under it:
//
//	spec, _ := tablefmt.ParseSpec("+08,.2f")
//	cell, _ := spec.Render(1234.5) // "+1,234.50"
//
// # Columns
//
// A [Column] wraps a spec in borders and padding:
//
//	[left_border][left_padding]{[:spec]}[right_padding][right_border]
//
// Borders are single non-space characters and paddings are runs of spaces;
// the braces are literal. When the spec gives no width, the column sizes
// itself to the widest rendered value on every [Column.Format] call:
//
//	col, _ := tablefmt.NewColumn("|   {:-<7} #", tablefmt.HRuleAll, "+-+")
//	lines, _ := col.Format([]any{"title", "value"})
//
// # Rules
//
// [HRule] places horizontal rule lines. The policies form a total order by
// rule density: [HRuleNone], [HRuleHeader] (one rule after the first line),
// [HRuleFrame] (top and bottom), [HRuleFrameHeader], [HRuleAll] (a rule
// after every line). Rule lines use three characters — left junction, fill,
// right junction — with presets matching common border styles
// ([HRuleCharsASCII], [HRuleCharsLight], [HRuleCharsHeavy],
// [HRuleCharsDouble]).
//
// # Tables
//
// A [Table] lines up columns and an optional header row. [Table.Format]
// takes column-major input, [Table.FormatRows] row-major; both produce the
// same block for transpose-equivalent input:
//
//	t, _ := tablefmt.NewTable(
//		[]string{"|{:^10}|", "  {:^7} |", " {:^} |"},
//		[]string{"Header1", "Header2", "Header3"},
//		tablefmt.HRuleFrameHeader, tablefmt.DefaultHRuleChars,
//	)
//	block, _ := t.FormatRows([][]any{
//		{"row1", "test", 1},
//		{"row2", "testA", 22},
//	})
//
// Table layouts can also be declared in YAML via [Definition] and
// [ParseDefinition].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling with
// [errors.Is]:
//
//   - [ErrSpecSyntax] — malformed format spec
//   - [ErrColumnSyntax] — malformed column format string
//   - [ErrHeaderMismatch] — header count differs from column count
//   - [ErrRowCountMismatch] — ragged rows or columns
//   - [ErrIncompatibleValue] — value cannot be rendered under the spec
//   - [ErrUnknownHRule] — unrecognized rule policy name
//
// No partial output is ever returned alongside an error.
//
// # Concurrency
//
// Formatting mutates the column's stored width and precision between calls,
// which is how auto-sizing adapts to new data. A Column or Table therefore
// must not be formatted concurrently without external synchronization.
package tablefmt
