package cpuraster

import (
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// DrawTexturedTriangle fills t with tex mapped through FixedUV, ignoring
// the vertices' own UV fields.
func (r *Rasterizer) DrawTexturedTriangle(dst Target, tex Texture, t Triangle) {
	r.DrawTexturedTriangleUV(dst, tex, t.WithUV(FixedUV))
}

// DrawTexturedTriangleUV fills t with tex, interpolating the vertices' UV
// coordinates affinely. Coordinates are clamped to [0, 1] and sampled
// nearest-neighbour; (0, 0) is the top-left texel and (1, 1) the
// bottom-right one.
//
// Texels are decoded with the texture's format and color table and
// re-encoded for dst, so the two may use different formats. The texels the
// UVs can reach are copied under tex's read lock, which is released before
// dst is locked; tex may therefore be dst itself or another call's
// destination.
func (r *Rasterizer) DrawTexturedTriangleUV(dst Target, tex Texture, t Triangle) {
	tw, th := tex.Width(), tex.Height()
	if tw <= 0 || th <= 0 {
		Logger().Warn("cpuraster: skipping triangle with empty texture",
			"width", tw, "height", th)
		return
	}

	uv1, uv2, uv3 := t.V1.UV, t.V2.UV, t.V3.UV
	texels := copyTexels(tex, uv1, uv2, uv3)

	dst.Lock()
	defer dst.Unlock()

	r.Coverage(t, dst.Width(), dst.Height(), func(x, y int, w Weights) {
		uv := uv1.Mul(w.Alpha).Add(uv2.Mul(w.Beta)).Add(uv3.Mul(w.Gamma))
		_ = dst.SetPixel(x, y, dst.MapRGBA(texels.at(uv)))
	})
}

// texelRect holds decoded texels of a sub-rectangle of a texture.
type texelRect struct {
	x0, y0, w, h int
	tw, th       int
	pix          []color.NRGBA
}

// copyTexels decodes the texels that UVs inside the triangle uv1 uv2 uv3
// map to. Interpolated UVs stay inside the triangle and TexelCoord is
// monotonic, so the texel rectangle of the three corners covers them all.
func copyTexels(tex Texture, uv1, uv2, uv3 mgl32.Vec2) texelRect {
	tex.RLock()
	defer tex.RUnlock()

	tw, th := tex.Width(), tex.Height()
	xs := [3]int{TexelCoord(uv1.X(), tw), TexelCoord(uv2.X(), tw), TexelCoord(uv3.X(), tw)}
	ys := [3]int{TexelCoord(uv1.Y(), th), TexelCoord(uv2.Y(), th), TexelCoord(uv3.Y(), th)}
	x0, x1 := min(xs[0], xs[1], xs[2]), max(xs[0], xs[1], xs[2])
	y0, y1 := min(ys[0], ys[1], ys[2]), max(ys[0], ys[1], ys[2])

	r := texelRect{x0: x0, y0: y0, w: x1 - x0 + 1, h: y1 - y0 + 1, tw: tw, th: th}
	r.pix = make([]color.NRGBA, r.w*r.h)
	for y := range r.h {
		for x := range r.w {
			if v, err := tex.Pixel(x0+x, y0+y); err == nil {
				r.pix[y*r.w+x] = tex.UnmapRGBA(v)
			}
		}
	}
	return r
}

// at returns the copied texel nearest to uv. Float error at the triangle's
// border is absorbed by clamping to the rectangle.
func (r texelRect) at(uv mgl32.Vec2) color.NRGBA {
	x := min(max(TexelCoord(uv.X(), r.tw)-r.x0, 0), r.w-1)
	y := min(max(TexelCoord(uv.Y(), r.th)-r.y0, 0), r.h-1)
	return r.pix[y*r.w+x]
}

// Sample returns the texel of tex nearest to uv. The caller must hold the
// texture's read lock.
func Sample(tex Texture, uv mgl32.Vec2) color.NRGBA {
	tx := TexelCoord(uv.X(), tex.Width())
	ty := TexelCoord(uv.Y(), tex.Height())
	v, err := tex.Pixel(tx, ty)
	if err != nil {
		return color.NRGBA{}
	}
	return tex.UnmapRGBA(v)
}

// TexelCoord maps a texture coordinate to the index of the nearest texel
// on an axis of size texels: round(clamp(u, 0, 1) * (size-1)). The result
// is always in [0, size) for a positive size.
func TexelCoord(u float32, size int) int {
	if size <= 1 {
		return 0
	}
	return int(math32.Round(clamp01(u) * float32(size-1)))
}
