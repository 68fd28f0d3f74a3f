package flat

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Forms(t *testing.T) {
	for _, input := range []string{"3,4", "3, 4", "(3, 4)", "  ( 3 ,4 )  ", "(3,4)"} {
		p, err := Parse[int](input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, New(3, 4), p, "input %q", input)
	}

	p, err := Parse[float64]("(-1.5, 2e3)")
	require.NoError(t, err)
	assert.Equal(t, New(-1.5, 2000.0), p)
}

func TestParse_RoundTrip(t *testing.T) {
	ints := []Point[int]{New(0, 0), New(-7, 12), New(math.MaxInt32, math.MinInt32)}
	for _, p := range ints {
		got, err := Parse[int](p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	floats := []Point[float64]{New(0.5, -0.25), New(3.0, 4.5)}
	for _, p := range floats {
		got, err := Parse[float64](p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	for _, input := range []string{"", "3", "3 4", "(3, 4", "3, 4)", "x, 4", "3, y", "3,4,5"} {
		_, err := Parse[int](input)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", input)
	}
}

func TestParse_RangeErrors(t *testing.T) {
	_, err := Parse[int]("3.5, 4")
	assert.ErrorIs(t, err, ErrRange, "fractional value for an integer point")

	_, err = Parse[uint]("-1, 4")
	assert.ErrorIs(t, err, ErrRange, "negative value for an unsigned point")

	_, err = Parse[int8]("1, 128")
	assert.ErrorIs(t, err, ErrRange, "overflow")

	_, err = Parse[float32]("1e39, 0")
	assert.ErrorIs(t, err, ErrRange)

	_, err = Parse[float64]("1e400, 0")
	assert.ErrorIs(t, err, ErrRange)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, New[int16](-2, 9), MustParse[int16]("(-2, 9)"))
	assert.Panics(t, func() { MustParse[int]("nope") })
}

func TestParseScalar(t *testing.T) {
	v, err := ParseScalar[int](" -12 ")
	require.NoError(t, err)
	assert.Equal(t, -12, v)

	f, err := ParseScalar[float32]("0.5")
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), f)

	_, err = ParseScalar[uint16]("65536")
	assert.ErrorIs(t, err, ErrRange)
}

func TestParse_IntegerRoundTripExact(t *testing.T) {
	signed := New[int64](math.MaxInt64, 1<<53+1)
	got, err := Parse[int64](signed.String())
	require.NoError(t, err)
	assert.Equal(t, signed, got)

	got, err = Parse[int64]("1, 9007199254740993")
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), got.Y(), "no rounding through float64")

	lowest, err := Parse[int64](New[int64](math.MinInt64, 0).String())
	require.NoError(t, err)
	assert.Equal(t, int64(math.MinInt64), lowest.X())

	unsigned := New[uint64](math.MaxUint64, 0)
	ugot, err := Parse[uint64](unsigned.String())
	require.NoError(t, err)
	assert.Equal(t, unsigned, ugot)
}

func TestParse_IntegerOverflow(t *testing.T) {
	_, err := Parse[int64]("9223372036854775808, 0")
	assert.ErrorIs(t, err, ErrRange)

	_, err = Parse[uint64]("18446744073709551616, 0")
	assert.ErrorIs(t, err, ErrRange)

	_, err = Parse[int32]("2147483648, 0")
	assert.ErrorIs(t, err, ErrRange)

	_, err = Parse[uint8]("0, -0.5")
	assert.ErrorIs(t, err, ErrRange)
}
