package tablefmt

import (
	"fmt"
	"io"
	"strings"
)

// Table composes an ordered sequence of [Column] values, plus optional
// header labels, into a single multi-line text block. Columns are created
// at construction and owned by the table; their exported fields remain
// adjustable, which is how the outermost junction characters of the example
// tables are customized.
type Table struct {
	Headers []string
	Columns []*Column
}

// NewTable builds one column per format string, all sharing hrule and
// hruleChars. headers may be nil or empty for a headerless table; otherwise
// its length must match the number of columns.
func NewTable(columnFormats []string, headers []string, hrule HRule, hruleChars string) (*Table, error) {
	if len(headers) > 0 && len(headers) != len(columnFormats) {
		return nil, fmt.Errorf("%w: %d columns, %d headers", ErrHeaderMismatch, len(columnFormats), len(headers))
	}
	t := &Table{
		Headers: headers,
		Columns: make([]*Column, len(columnFormats)),
	}
	for i, format := range columnFormats {
		col, err := NewColumn(format, hrule, hruleChars)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		t.Columns[i] = col
	}
	return t, nil
}

// Format renders column-major input: one value sequence per table column.
// Headers, when set, are prepended to their columns and rendered as the
// first row. All columns must produce the same number of lines; ragged
// input fails with an error wrapping [ErrRowCountMismatch] and no partial
// output.
func (t *Table) Format(columns [][]any) (string, error) {
	if len(columns) != len(t.Columns) {
		return "", fmt.Errorf("%w: got %d value columns, table has %d", ErrRowCountMismatch, len(columns), len(t.Columns))
	}
	formatted := make([][]string, len(t.Columns))
	for i, col := range t.Columns {
		values := columns[i]
		if len(t.Headers) > 0 {
			withHeader := make([]any, 0, len(values)+1)
			withHeader = append(withHeader, t.Headers[i])
			values = append(withHeader, values...)
		}
		lines, err := col.Format(values)
		if err != nil {
			return "", fmt.Errorf("column %d: %w", i, err)
		}
		formatted[i] = lines
	}
	if len(formatted) == 0 {
		return "", nil
	}
	height := len(formatted[0])
	for i, lines := range formatted {
		if len(lines) != height {
			return "", fmt.Errorf("%w: column %d produced %d lines, column 0 produced %d", ErrRowCountMismatch, i, len(lines), height)
		}
	}
	var b strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for _, lines := range formatted {
			b.WriteString(lines[row])
		}
	}
	return b.String(), nil
}

// FormatRows renders row-major input: each inner sequence is one row with
// one value per column. Rows of inconsistent length fail with an error
// wrapping [ErrRowCountMismatch]. An empty input renders the header block
// only.
func (t *Table) FormatRows(rows [][]any) (string, error) {
	columns := make([][]any, len(t.Columns))
	for i, row := range rows {
		if len(row) != len(t.Columns) {
			return "", fmt.Errorf("%w: row %d has %d values, table has %d columns", ErrRowCountMismatch, i, len(row), len(t.Columns))
		}
		for j, v := range row {
			columns[j] = append(columns[j], v)
		}
	}
	return t.Format(columns)
}

// Write renders column-major input and writes the block to w, followed by
// a newline.
func (t *Table) Write(w io.Writer, columns [][]any) error {
	block, err := t.Format(columns)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, block+"\n")
	return err
}
