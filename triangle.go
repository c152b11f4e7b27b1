package cpuraster

import (
	"image"
	"image/color"

	"github.com/gogpu/cpuraster/internal/raster"
)

// prepare rounds the vertices of t to pixels and sets up the coverage
// test. It reports false, after logging, for a triangle without area.
func (r *Rasterizer) prepare(t Triangle) (raster.Triangle, bool) {
	p1, p2, p3 := t.V1.Pixel(), t.V2.Pixel(), t.V3.Pixel()
	rt, ok := raster.NewTriangle(p1, p2, p3, r.opts.reference)
	if !ok {
		Logger().Debug("cpuraster: skipping degenerate triangle",
			"v1", p1, "v2", p2, "v3", p3)
	}
	return rt, ok
}

// Coverage calls fn for every pixel of a width x height target that t
// covers, with the pixel's barycentric weights. It is the walk shared by
// all triangle draw calls and can drive custom shading.
//
// A pixel is covered when all three weights are non-negative. A pixel on
// an edge shared by two triangles is covered by exactly one of them, so
// triangles that tile a region draw every pixel of it exactly once.
// Only pixels inside the vertices' half-open bounding box are visited:
// the column of the rightmost and the row of the bottommost vertex are
// never drawn.
func (r *Rasterizer) Coverage(t Triangle, width, height int, fn func(x, y int, w Weights)) {
	rt, ok := r.prepare(t)
	if !ok {
		return
	}
	rt.Walk(image.Rect(0, 0, width, height), fn)
}

// DrawTriangle fills t, interpolating the vertex colors across it
// (Gouraud shading). Every pixel drawn is opaque.
func (r *Rasterizer) DrawTriangle(dst Target, t Triangle) {
	dst.Lock()
	defer dst.Unlock()

	r.Coverage(t, dst.Width(), dst.Height(), func(x, y int, w Weights) {
		c := Interpolate(w, t.V1.Color, t.V2.Color, t.V3.Color)
		_ = dst.SetPixel(x, y, dst.MapRGBA(c))
	})
}

// DrawFlatTriangle fills t with a single color, ignoring vertex colors.
// It covers exactly the pixels DrawTriangle does.
func (r *Rasterizer) DrawFlatTriangle(dst Target, t Triangle, c color.NRGBA) {
	dst.Lock()
	defer dst.Unlock()

	pixel := dst.MapRGBA(c)
	r.Coverage(t, dst.Width(), dst.Height(), func(x, y int, _ Weights) {
		_ = dst.SetPixel(x, y, pixel)
	})
}
