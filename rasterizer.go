package cpuraster

import (
	"image"
	"image/color"
)

// Target is a pixel buffer the rasterizer can draw into.
// *surface.Surface implements it.
type Target interface {
	Width() int
	Height() int

	// Lock and Unlock bracket every draw call.
	Lock()
	Unlock()

	// SetPixel stores an encoded pixel value. It fails, without writing,
	// when (x, y) lies outside the buffer.
	SetPixel(x, y int, pixel uint32) error

	// MapRGBA encodes a color in the buffer's pixel format.
	MapRGBA(c color.NRGBA) uint32
}

// Texture is a pixel buffer the rasterizer can sample from.
// *surface.Surface implements it.
type Texture interface {
	Width() int
	Height() int

	// RLock and RUnlock bracket the texel reads of a textured draw call.
	// They are never held together with a destination lock.
	RLock()
	RUnlock()

	// Pixel returns the encoded pixel value at (x, y).
	Pixel(x, y int) (uint32, error)

	// UnmapRGBA decodes a pixel value of the texture's format.
	UnmapRGBA(pixel uint32) color.NRGBA
}

// Rasterizer draws lines and triangles into a Target.
//
// A Rasterizer holds only its options. It is safe for concurrent use;
// calls drawing into the same target serialize on the target's lock.
type Rasterizer struct {
	opts options
}

// New creates a rasterizer.
func New(opts ...Option) *Rasterizer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Rasterizer{opts: o}
}

// Reference returns the point used to assign shared triangle edges.
func (r *Rasterizer) Reference() Point {
	return r.opts.reference
}

// OmitsLastPixel reports whether lines skip their far endpoint.
func (r *Rasterizer) OmitsLastPixel() bool {
	return r.opts.omitLastPixel
}

func bounds(dst Target) image.Rectangle {
	return image.Rect(0, 0, dst.Width(), dst.Height())
}
