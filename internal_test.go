package tablefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupDigits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1", groupDigits("1", ',', 3))
	assert.Equal(t, "123", groupDigits("123", ',', 3))
	assert.Equal(t, "1,234", groupDigits("1234", ',', 3))
	assert.Equal(t, "123,456", groupDigits("123456", ',', 3))
	assert.Equal(t, "1_234_567", groupDigits("1234567", '_', 3))
	assert.Equal(t, "ffff_ffff", groupDigits("ffffffff", '_', 4))
}

func TestGroupFloat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1,234.56", groupFloat("1234.56", ','))
	assert.Equal(t, "1,234", groupFloat("1234", ','))
	// Only the leading integer run is grouped.
	assert.Equal(t, "1.234567e+10", groupFloat("1.234567e+10", ','))
}

func TestZeroDigits(t *testing.T) {
	t.Parallel()
	assert.True(t, zeroDigits("0.00"))
	assert.True(t, zeroDigits("0"))
	assert.True(t, zeroDigits("0.000000e+00"))
	assert.False(t, zeroDigits("0.01"))
	assert.False(t, zeroDigits("10"))
}

func TestInsertLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"a", "x", "b"}, insertLine([]string{"a", "b"}, 1, "x"))
	assert.Equal(t, []string{"x", "a"}, insertLine([]string{"a"}, 0, "x"))
	// An out-of-range index appends.
	assert.Equal(t, []string{"a", "x"}, insertLine([]string{"a"}, 5, "x"))
	assert.Equal(t, []string{"x"}, insertLine(nil, 1, "x"))
}

func TestAlignPad(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab   ", alignPad("ab", 5, ' ', '<'))
	assert.Equal(t, "   ab", alignPad("ab", 5, ' ', '>'))
	assert.Equal(t, " ab  ", alignPad("ab", 5, ' ', '^'))
	assert.Equal(t, "ab", alignPad("ab", 2, ' ', '^'))
	assert.Equal(t, "abc", alignPad("abc", 1, ' ', '>'))
}

func TestScanDigits(t *testing.T) {
	t.Parallel()
	n, v := scanDigits([]rune("123abc"))
	assert.Equal(t, 3, n)
	assert.Equal(t, 123, v)
	n, _ = scanDigits([]rune("abc"))
	assert.Equal(t, 0, n)
}

func TestSignString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "-", signString(true, '+'))
	assert.Equal(t, "+", signString(false, '+'))
	assert.Equal(t, " ", signString(false, ' '))
	assert.Equal(t, "", signString(false, 0))
	assert.Equal(t, "", signString(false, '-'))
}
