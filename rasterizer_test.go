package cpuraster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/cpuraster/surface"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func newSurface(t *testing.T, w, h int, f surface.Format) *surface.Surface {
	t.Helper()
	s, err := surface.New(w, h, f)
	require.NoError(t, err)
	return s
}

// pixelsOf returns the coordinates of every pixel of s holding c.
func pixelsOf(s *surface.Surface, c color.NRGBA) map[Point]bool {
	out := make(map[Point]bool)
	for y := range s.Height() {
		for x := range s.Width() {
			if s.RGBAAt(x, y) == c {
				out[Pt(x, y)] = true
			}
		}
	}
	return out
}

// lockCheckTarget fails the test when a pixel is written outside
// Lock/Unlock or out of bounds.
type lockCheckTarget struct {
	t      *testing.T
	w, h   int
	locked bool
	locks  int
	writes map[Point]uint32
}

func newLockCheckTarget(t *testing.T, w, h int) *lockCheckTarget {
	return &lockCheckTarget{t: t, w: w, h: h, writes: make(map[Point]uint32)}
}

func (l *lockCheckTarget) Width() int  { return l.w }
func (l *lockCheckTarget) Height() int { return l.h }
func (l *lockCheckTarget) Lock()       { l.locked = true; l.locks++ }
func (l *lockCheckTarget) Unlock()     { l.locked = false }

func (l *lockCheckTarget) SetPixel(x, y int, pixel uint32) error {
	if !l.locked {
		l.t.Errorf("SetPixel(%d, %d) called without holding the lock", x, y)
	}
	if x < 0 || y < 0 || x >= l.w || y >= l.h {
		l.t.Errorf("SetPixel(%d, %d) out of bounds", x, y)
		return errors.New("out of bounds")
	}
	l.writes[Pt(x, y)] = pixel
	return nil
}

func (l *lockCheckTarget) MapRGBA(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func TestDrawLineHorizontal(t *testing.T) {
	dst := newSurface(t, 20, 5, surface.FormatARGB8888)
	New().DrawLineRGBA(dst, 0, 0, 10, 0, red)

	got := pixelsOf(dst, red)
	require.Len(t, got, 11)
	for x := 0; x <= 10; x++ {
		assert.True(t, got[Pt(x, 0)], "missing pixel (%d, 0)", x)
	}
}

func TestDrawLineVertical(t *testing.T) {
	dst := newSurface(t, 5, 20, surface.FormatRGB565)
	New().DrawLineRGBA(dst, 2, 15, 2, 3, green)

	got := pixelsOf(dst, green)
	require.Len(t, got, 13)
	for y := 3; y <= 15; y++ {
		assert.True(t, got[Pt(2, y)], "missing pixel (2, %d)", y)
	}
}

func TestDrawLineEncodedPixel(t *testing.T) {
	dst := newSurface(t, 4, 4, surface.FormatARGB8888)
	New().DrawLine(dst, 0, 3, 3, 0, 0xFF00FF00)

	for i := range 4 {
		v, err := dst.Pixel(i, 3-i)
		require.NoError(t, err)
		assert.Equal(t, uint32(0xFF00FF00), v)
	}
}

func TestDrawLineSymmetry(t *testing.T) {
	r := New()
	segments := [][4]int{
		{0, 0, 600, 400},
		{0, 0, 500, 400},
		{0, 0, 5, 480},
		{125, 380, 425, 360},
		{125, 360, 425, 380},
		{3, 9, -4, -2},
		{0, 0, 7, 7},
		{0, 7, 7, 0},
	}
	for _, s := range segments {
		fwd := r.LinePixels(s[0], s[1], s[2], s[3])
		rev := r.LinePixels(s[2], s[3], s[0], s[1])
		assert.ElementsMatch(t, fwd, rev, "segment %v", s)
	}
}

func TestDrawLineCoverage(t *testing.T) {
	r := New()
	segments := [][4]int{
		{0, 0, 600, 400},
		{0, 0, 5, 480},
		{10, 10, -20, 3},
		{4, 4, 4, 4},
	}
	for _, s := range segments {
		pts := r.LinePixels(s[0], s[1], s[2], s[3])
		dx, dy := abs(s[2]-s[0]), abs(s[3]-s[1])
		require.Len(t, pts, max(dx, dy)+1, "segment %v", s)

		seen := make(map[Point]bool)
		for i, p := range pts {
			assert.False(t, seen[p], "segment %v: pixel %v plotted twice", s, p)
			seen[p] = true
			if i > 0 {
				q := pts[i-1]
				assert.LessOrEqual(t, abs(p.X-q.X), 1, "segment %v: gap at %v", s, p)
				assert.LessOrEqual(t, abs(p.Y-q.Y), 1, "segment %v: gap at %v", s, p)
			}
		}
		assert.True(t, seen[Pt(s[0], s[1])], "segment %v: start missing", s)
		assert.True(t, seen[Pt(s[2], s[3])], "segment %v: end missing", s)
	}
}

func TestDrawLineZeroLength(t *testing.T) {
	dst := newSurface(t, 4, 4, surface.FormatARGB8888)
	New().DrawLineRGBA(dst, 2, 1, 2, 1, red)
	assert.Equal(t, map[Point]bool{Pt(2, 1): true}, pixelsOf(dst, red))

	assert.Empty(t, New(WithOmitLastPixel()).LinePixels(2, 1, 2, 1))
}

func TestLinePixelsLong(t *testing.T) {
	short := New().LinePixels(0, 0, 9, 3)
	assert.Len(t, short, 10)
	assert.Equal(t, len(short), cap(short))

	// Longer than the up-front reservation: the slice grows as it plots.
	n := 3 * maxLinePrealloc
	pts := New().LinePixels(0, 0, n, 1)
	require.Len(t, pts, n+1)
	assert.Equal(t, Pt(0, 0), pts[0])
	assert.Equal(t, Pt(n, 1), pts[n])
	for i, p := range pts {
		if p.X != i {
			t.Fatalf("pts[%d] = %v, want x = %d", i, p, i)
		}
	}
}

func TestDrawLineOmitLastPixel(t *testing.T) {
	r := New(WithOmitLastPixel())
	pts := r.LinePixels(0, 0, 10, 0)
	require.Len(t, pts, 10)
	assert.NotContains(t, pts, Pt(10, 0))

	// The omitted end is the one with the larger major-axis coordinate,
	// whichever way round the endpoints are given.
	assert.ElementsMatch(t, pts, r.LinePixels(10, 0, 0, 0))

	// Adjacent spans along a line do not overlap.
	seen := make(map[Point]int)
	for _, s := range [][4]int{{0, 0, 8, 4}, {8, 4, 16, 8}, {24, 12, 16, 8}} {
		for _, p := range r.LinePixels(s[0], s[1], s[2], s[3]) {
			seen[p]++
		}
	}
	for p, n := range seen {
		assert.Equal(t, 1, n, "pixel %v", p)
	}
	assert.Len(t, seen, 24)
}

func TestDrawLineClipped(t *testing.T) {
	target := newLockCheckTarget(t, 10, 10)
	New().DrawLineRGBA(target, -5, -5, 30, 30, red)

	assert.Len(t, target.writes, 10)
	for i := range 10 {
		assert.Contains(t, target.writes, Pt(i, i))
	}
	assert.Equal(t, 1, target.locks)
	assert.False(t, target.locked, "lock not released")
}

func TestDrawLineOutside(t *testing.T) {
	dst := newSurface(t, 8, 8, surface.FormatARGB8888)
	New().DrawLineRGBA(dst, -10, -3, -1, 20, red)
	assert.Empty(t, pixelsOf(dst, red))
}

func TestDrawLineIndexed(t *testing.T) {
	dst := newSurface(t, 8, 2, surface.FormatIndex8)
	require.NoError(t, dst.SetPalette(color.Palette{
		color.NRGBA{A: 255}, red, green,
	}))

	New().DrawLineRGBA(dst, 0, 1, 7, 1, color.NRGBA{G: 240, B: 10, A: 255})
	for x := range 8 {
		v, err := dst.Pixel(x, 1)
		require.NoError(t, err)
		assert.Equal(t, uint32(2), v, "pixel (%d, 1)", x)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
