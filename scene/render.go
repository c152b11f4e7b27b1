package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/cpuraster"
)

// Canvas is a render target that can be cleared to a color.
// *surface.Surface implements it.
type Canvas interface {
	cpuraster.Target
	Fill(c color.NRGBA)
}

// Render clears dst to the background color and draws every primitive
// with r, resolving frame-relative coordinates against frame. Textured
// triangles sample tex; they are skipped when tex is nil.
func (s *Scene) Render(dst Canvas, r *cpuraster.Rasterizer, frame Frame, tex cpuraster.Texture) {
	log := cpuraster.Logger()

	dst.Fill(s.Background)

	for _, l := range s.Lines {
		x0, y0 := l.From.Resolve(frame)
		x1, y1 := l.To.Resolve(frame)
		r.DrawLineRGBA(dst, x0, y0, x1, y1, l.Color)
	}

	for _, t := range s.Triangles {
		tri := vertices(t.Vertices, t.Colors, frame)
		if t.Flat {
			r.DrawFlatTriangle(dst, tri, t.Colors[0])
		} else {
			r.DrawTriangle(dst, tri)
		}
	}

	if len(s.Textured) > 0 && tex == nil {
		log.Warn("scene: no texture, skipping textured triangles", "count", len(s.Textured))
	} else {
		for _, t := range s.Textured {
			tri := vertices(t.Vertices, [3]color.NRGBA{}, frame)
			if t.UV == nil {
				r.DrawTexturedTriangle(dst, tex, tri)
			} else {
				r.DrawTexturedTriangleUV(dst, tex, tri.WithUV(*t.UV))
			}
		}
	}

	log.Debug("scene: rendered",
		"width", frame.Width, "height", frame.Height,
		"lines", len(s.Lines), "triangles", len(s.Triangles), "textured", len(s.Textured))
}

func vertices(v [3]Pos, c [3]color.NRGBA, frame Frame) cpuraster.Triangle {
	vertex := func(p Pos, c color.NRGBA) cpuraster.Vertex {
		x, y := p.Resolve(frame)
		return cpuraster.Vertex{Pos: mgl32.Vec3{float32(x), float32(y), 0}, Color: c}
	}
	return cpuraster.Tri(vertex(v[0], c[0]), vertex(v[1], c[1]), vertex(v[2], c[2]))
}
