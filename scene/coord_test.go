package scene

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in   any
		want Coord
	}{
		{int64(42), Abs(42)},
		{int64(-3), Abs(-3)},
		{7, Abs(7)},
		{12.6, Abs(13)},
		{"15", Abs(15)},
		{"-15", Abs(-15)},
		{"w", W(0)},
		{"h", H(0)},
		{"W", W(0)},
		{"w-10", W(-10)},
		{"h+3", H(3)},
		{"h - 7", H(-7)},
	}
	for _, tt := range tests {
		got, err := ParseCoord(tt.in)
		require.NoError(t, err, "ParseCoord(%v)", tt.in)
		assert.Equal(t, tt.want, got, "ParseCoord(%v)", tt.in)
	}
}

func TestParseCoordErrors(t *testing.T) {
	for _, in := range []any{"", "x", "w10", "w+", "h-abc", "wh", true, []any{1}, math.NaN(), math.Inf(1)} {
		_, err := ParseCoord(in)
		assert.Error(t, err, "ParseCoord(%v)", in)
	}
}

func TestCoordResolve(t *testing.T) {
	f := Frame{Width: 640, Height: 480}
	assert.Equal(t, 5, Abs(5).Resolve(f))
	assert.Equal(t, 640, W(0).Resolve(f))
	assert.Equal(t, 620, W(-20).Resolve(f))
	assert.Equal(t, 483, H(3).Resolve(f))

	x, y := Pos{X: W(-1), Y: H(-1)}.Resolve(f)
	assert.Equal(t, 639, x)
	assert.Equal(t, 479, y)
}

func TestCoordString(t *testing.T) {
	for _, c := range []Coord{Abs(0), Abs(-9), W(0), W(-200), H(12)} {
		back, err := ParseCoord(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back, "round trip of %q", c.String())
	}
	assert.Equal(t, "w-200", W(-200).String())
	assert.Equal(t, "h+12", H(12).String())
}
