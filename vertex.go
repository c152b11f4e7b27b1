package cpuraster

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/cpuraster/internal/raster"
)

// Point is an integer pixel coordinate. It may lie outside the target.
type Point = raster.Point

// Weights are the barycentric coordinates of a pixel: Alpha for V1, Beta
// for V2 and Gamma for V3.
type Weights = raster.Weights

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vertex is a triangle corner.
//
// Pos holds screen coordinates in pixels; Z is carried but not used.
// Color is used by DrawTriangle and UV by DrawTexturedTriangleUV.
type Vertex struct {
	Pos   mgl32.Vec3
	Color color.NRGBA
	UV    mgl32.Vec2
}

// V returns a vertex at (x, y) with color c.
func V(x, y float32, c color.NRGBA) Vertex {
	return Vertex{Pos: mgl32.Vec3{x, y, 0}, Color: c}
}

// Pixel returns Pos rounded to the nearest pixel.
func (v Vertex) Pixel() Point {
	return Point{
		X: int(math32.Round(v.Pos.X())),
		Y: int(math32.Round(v.Pos.Y())),
	}
}

// Triangle is three vertices. Their order matters only for the
// barycentric weights: Alpha weights V1, Beta V2 and Gamma V3.
type Triangle struct {
	V1, V2, V3 Vertex
}

// Tri builds a triangle from three vertices.
func Tri(v1, v2, v3 Vertex) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// WithUV returns a copy of t whose vertices carry the given texture
// coordinates.
func (t Triangle) WithUV(uv [3]mgl32.Vec2) Triangle {
	t.V1.UV, t.V2.UV, t.V3.UV = uv[0], uv[1], uv[2]
	return t
}

// FixedUV is the texture mapping DrawTexturedTriangle applies: the top-left
// texel at V1, the top-right at V2 and the middle of the bottom row at V3.
var FixedUV = [3]mgl32.Vec2{{0, 0}, {1, 0}, {0.5, 1}}
