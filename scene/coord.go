package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Axis names the frame dimension a coordinate is relative to.
type Axis uint8

const (
	// Absolute coordinates do not depend on the frame.
	Absolute Axis = iota
	// FrameWidth coordinates are offsets from the frame width.
	FrameWidth
	// FrameHeight coordinates are offsets from the frame height.
	FrameHeight
)

// Coord is one pixel coordinate, either absolute or an offset from the
// width or height of the frame being rendered.
type Coord struct {
	Axis   Axis
	Offset int
}

// Abs returns the absolute coordinate n.
func Abs(n int) Coord { return Coord{Offset: n} }

// W returns the coordinate width+off.
func W(off int) Coord { return Coord{Axis: FrameWidth, Offset: off} }

// H returns the coordinate height+off.
func H(off int) Coord { return Coord{Axis: FrameHeight, Offset: off} }

// Resolve returns the pixel coordinate for frame f.
func (c Coord) Resolve(f Frame) int {
	switch c.Axis {
	case FrameWidth:
		return f.Width + c.Offset
	case FrameHeight:
		return f.Height + c.Offset
	default:
		return c.Offset
	}
}

// String returns the scene file notation: "42", "w", "h-5", "w+3".
func (c Coord) String() string {
	var base string
	switch c.Axis {
	case FrameWidth:
		base = "w"
	case FrameHeight:
		base = "h"
	default:
		return strconv.Itoa(c.Offset)
	}
	switch {
	case c.Offset > 0:
		return base + "+" + strconv.Itoa(c.Offset)
	case c.Offset < 0:
		return base + strconv.Itoa(c.Offset)
	}
	return base
}

// value returns c as a TOML value: an integer, or a string for frame
// relative coordinates.
func (c Coord) value() any {
	if c.Axis == Absolute {
		return int64(c.Offset)
	}
	return c.String()
}

// ParseCoord converts a decoded scene value into a coordinate. Integers
// and floats (rounded) are absolute; strings use the "w", "h", "w-N",
// "h+N" notation.
func ParseCoord(v any) (Coord, error) {
	switch v := v.(type) {
	case int64:
		return Abs(int(v)), nil
	case int:
		return Abs(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Coord{}, fmt.Errorf("coordinate %v is not finite", v)
		}
		return Abs(int(math.Round(v))), nil
	case string:
		return parseRelative(v)
	default:
		return Coord{}, fmt.Errorf("coordinate %v has unsupported type %T", v, v)
	}
}

func parseRelative(s string) (Coord, error) {
	t := strings.ReplaceAll(strings.ToLower(s), " ", "")
	if t == "" {
		return Coord{}, fmt.Errorf("empty coordinate")
	}

	var c Coord
	switch t[0] {
	case 'w':
		c.Axis = FrameWidth
	case 'h':
		c.Axis = FrameHeight
	default:
		n, err := strconv.Atoi(t)
		if err != nil {
			return Coord{}, fmt.Errorf("coordinate %q: want an integer, w or h", s)
		}
		return Abs(n), nil
	}

	rest := t[1:]
	if rest == "" {
		return c, nil
	}
	if rest[0] != '+' && rest[0] != '-' {
		return Coord{}, fmt.Errorf("coordinate %q: want %c+N or %c-N", s, t[0], t[0])
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return Coord{}, fmt.Errorf("coordinate %q: bad offset: %w", s, err)
	}
	c.Offset = n
	return c, nil
}

// Pos is a point in scene coordinates.
type Pos struct {
	X, Y Coord
}

// XY returns the absolute position (x, y).
func XY(x, y int) Pos {
	return Pos{X: Abs(x), Y: Abs(y)}
}

// Resolve returns the pixel position for frame f.
func (p Pos) Resolve(f Frame) (x, y int) {
	return p.X.Resolve(f), p.Y.Resolve(f)
}

func parsePos(v []any) (Pos, error) {
	if len(v) != 2 && len(v) != 3 {
		return Pos{}, fmt.Errorf("position needs 2 or 3 components, got %d", len(v))
	}
	x, err := ParseCoord(v[0])
	if err != nil {
		return Pos{}, err
	}
	y, err := ParseCoord(v[1])
	if err != nil {
		return Pos{}, err
	}
	return Pos{X: x, Y: y}, nil
}

func (p Pos) value() []any {
	return []any{p.X.value(), p.Y.value()}
}
