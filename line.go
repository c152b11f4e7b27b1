package cpuraster

import (
	"image/color"

	"github.com/gogpu/cpuraster/internal/raster"
)

// DrawLine draws the segment from (x0, y0) to (x1, y1) with an encoded
// pixel value.
//
// The line is one pixel wide and 8-connected. It covers
// max(|x1-x0|, |y1-y0|)+1 pixels, both endpoints included, unless the
// rasterizer was created with WithOmitLastPixel. Swapping the endpoints
// draws the same pixels. Pixels outside dst are skipped.
func (r *Rasterizer) DrawLine(dst Target, x0, y0, x1, y1 int, pixel uint32) {
	dst.Lock()
	defer dst.Unlock()

	clip := bounds(dst)
	drawn := 0
	raster.Line(x0, y0, x1, y1, r.opts.omitLastPixel, func(x, y int) {
		if !Pt(x, y).In(clip) {
			return
		}
		if dst.SetPixel(x, y, pixel) == nil {
			drawn++
		}
	})

	if drawn == 0 {
		Logger().Debug("cpuraster: line drew no pixels",
			"from", Pt(x0, y0), "to", Pt(x1, y1), "bounds", clip)
	}
}

// DrawLineRGBA is DrawLine with a color. The color is mapped once through
// the target's pixel format and color table.
func (r *Rasterizer) DrawLineRGBA(dst Target, x0, y0, x1, y1 int, c color.NRGBA) {
	r.DrawLine(dst, x0, y0, x1, y1, dst.MapRGBA(c))
}

// maxLinePrealloc bounds the capacity LinePixels reserves up front.
const maxLinePrealloc = 1 << 16

// LinePixels returns the pixels DrawLine would draw for the segment on an
// unbounded target, in drawing order.
func (r *Rasterizer) LinePixels(x0, y0, x1, y1 int) []Point {
	n := raster.LineLen(x0, y0, x1, y1, r.opts.omitLastPixel)
	pts := make([]Point, 0, min(n, maxLinePrealloc))
	raster.Line(x0, y0, x1, y1, r.opts.omitLastPixel, func(x, y int) {
		pts = append(pts, Pt(x, y))
	})
	return pts
}
