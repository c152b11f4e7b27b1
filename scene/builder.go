package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Builder provides a fluent API for constructing scenes.
//
// Example:
//
//	s := scene.NewBuilder().
//	    Background(color.NRGBA{R: 30, G: 144, B: 255, A: 255}).
//	    Line(scene.XY(0, 0), scene.Pos{X: scene.W(0), Y: scene.H(0)}, red).
//	    Triangle([3]scene.Pos{scene.XY(100, 100), scene.XY(400, 100), scene.XY(250, 400)},
//	        [3]color.NRGBA{red, green, blue}).
//	    Build()
type Builder struct {
	scene *Scene
}

// NewBuilder creates a builder with an empty scene on a black background.
func NewBuilder() *Builder {
	return &Builder{scene: &Scene{Background: color.NRGBA{A: 255}}}
}

// NewBuilderFrom creates a builder appending to an existing scene.
func NewBuilderFrom(s *Scene) *Builder {
	if s == nil {
		return NewBuilder()
	}
	return &Builder{scene: s}
}

// Background sets the color the frame is cleared to.
func (b *Builder) Background(c color.NRGBA) *Builder {
	b.scene.Background = c
	return b
}

// Line adds a line from one position to another.
func (b *Builder) Line(from, to Pos, c color.NRGBA) *Builder {
	b.scene.Lines = append(b.scene.Lines, Line{From: from, To: to, Color: c})
	return b
}

// Triangle adds a Gouraud-shaded triangle.
func (b *Builder) Triangle(v [3]Pos, c [3]color.NRGBA) *Builder {
	b.scene.Triangles = append(b.scene.Triangles, Triangle{Vertices: v, Colors: c})
	return b
}

// FlatTriangle adds a triangle filled with one color.
func (b *Builder) FlatTriangle(v [3]Pos, c color.NRGBA) *Builder {
	b.scene.Triangles = append(b.scene.Triangles, Triangle{
		Vertices: v,
		Colors:   [3]color.NRGBA{c, c, c},
		Flat:     true,
	})
	return b
}

// Textured adds a textured triangle using the fixed texture mapping.
func (b *Builder) Textured(v [3]Pos) *Builder {
	b.scene.Textured = append(b.scene.Textured, TexturedTriangle{Vertices: v})
	return b
}

// TexturedUV adds a textured triangle with explicit texture coordinates.
func (b *Builder) TexturedUV(v [3]Pos, uv [3]mgl32.Vec2) *Builder {
	b.scene.Textured = append(b.scene.Textured, TexturedTriangle{Vertices: v, UV: &uv})
	return b
}

// Scene returns the scene being built.
func (b *Builder) Scene() *Scene {
	return b.scene
}

// Build returns the scene. The builder must not be used afterwards.
func (b *Builder) Build() *Scene {
	s := b.scene
	b.scene = nil
	return s
}

var (
	red        = color.NRGBA{R: 255, A: 255}
	green      = color.NRGBA{G: 255, A: 255}
	blue       = color.NRGBA{B: 255, A: 255}
	dodgerBlue = color.NRGBA{R: 30, G: 144, B: 255, A: 255}
)

// Default returns the demo scene: a fan of red lines from the top-left
// corner, two nearly horizontal lines crossing below a Gouraud-shaded
// triangle, on a dodger-blue background. Three of the lines end at the
// frame edges.
func Default() *Scene {
	return NewBuilder().
		Background(dodgerBlue).
		Line(XY(0, 0), XY(600, 400), red).
		Line(XY(0, 0), XY(500, 400), red).
		Line(XY(0, 0), Pos{X: W(0), Y: H(0)}, red).
		Line(XY(0, 0), Pos{X: Abs(5), Y: H(0)}, red).
		Line(XY(0, 0), Pos{X: W(0), Y: Abs(5)}, red).
		Line(XY(125, 380), XY(425, 360), red).
		Line(XY(125, 360), XY(425, 380), green).
		Triangle(
			[3]Pos{XY(100, 100), XY(400, 100), XY(250, 400)},
			[3]color.NRGBA{red, green, blue},
		).
		Build()
}
