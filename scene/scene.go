// Package scene describes a frame of primitives for the rasterizer and
// replays it onto a target.
//
// A Scene is built in code with a Builder or loaded from a TOML file:
//
//	background = "#1e90ff"
//
//	[[line]]
//	from = [0, 0]
//	to = ["w", "h"]
//	color = "#ff0000"
//
//	[[triangle]]
//	vertices = [[100, 100], [400, 100], [250, 400]]
//	colors = ["#f00", "#0f0", "#00f"]
//
//	[[textured]]
//	vertices = [[420, 40], [620, 40], [520, 240]]
//	uv = [[0, 0], [1, 0], [0.5, 1]]
//
// Coordinates are integers or strings relative to the frame size: "w" and
// "h" are the frame width and height, "w-10" and "h+3" offsets from them.
// They are resolved against the Frame passed to each Render call, so one
// scene can be drawn at any size.
package scene

import (
	"errors"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidScene is returned when a scene description is malformed.
	ErrInvalidScene = errors.New("scene: invalid scene")

	// ErrInvalidColor is returned when a color string cannot be parsed.
	ErrInvalidColor = errors.New("scene: invalid color")
)

// Frame is the size, in pixels, a scene is rendered at.
type Frame struct {
	Width, Height int
}

// Line is a one-pixel line segment.
type Line struct {
	From, To Pos
	Color    color.NRGBA
}

// Triangle is a filled triangle. With Flat set it is filled with
// Colors[0]; otherwise the three vertex colors are interpolated.
type Triangle struct {
	Vertices [3]Pos
	Colors   [3]color.NRGBA
	Flat     bool
}

// TexturedTriangle is a triangle filled with the render texture. A nil UV
// selects the rasterizer's fixed mapping.
type TexturedTriangle struct {
	Vertices [3]Pos
	UV       *[3]mgl32.Vec2
}

// Scene is a background color and the primitives drawn over it.
// Render draws all lines first, then triangles, then textured triangles,
// each group in order.
type Scene struct {
	Background color.NRGBA
	Lines      []Line
	Triangles  []Triangle
	Textured   []TexturedTriangle
}

// Len returns the number of primitives in the scene.
func (s *Scene) Len() int {
	return len(s.Lines) + len(s.Triangles) + len(s.Textured)
}

// IsEmpty reports whether the scene has no primitives.
func (s *Scene) IsEmpty() bool {
	return s.Len() == 0
}
