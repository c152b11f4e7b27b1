// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"image"
	"image/color"
	"image/color/palette"
	"sync"
)

// Common errors for surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("surface: invalid format")

	// ErrInvalidPitch is returned when the pitch is less than a row of pixels.
	ErrInvalidPitch = errors.New("surface: pitch too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("surface: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside the surface.
	ErrOutOfBounds = errors.New("surface: coordinates out of bounds")

	// ErrNotIndexed is returned when a color table is set on a direct-color surface.
	ErrNotIndexed = errors.New("surface: format has no color table")

	// ErrPaletteSize is returned when a color table is empty or has more
	// than 256 entries.
	ErrPaletteSize = errors.New("surface: color table must have 1 to 256 entries")
)

// Surface is a 2D buffer of encoded pixels.
//
// Pixel data is stored row-major in a byte slice; row y starts at byte
// y*Pitch(). Pixels wider than one byte are stored little-endian.
type Surface struct {
	mu sync.RWMutex

	data    []byte
	width   int
	height  int
	pitch   int
	format  Format
	details FormatDetails
	palette color.Palette
}

// New creates a zeroed surface with the given dimensions and format.
// Indexed surfaces start with a copy of the Plan 9 palette.
func New(width, height int, format Format) (*Surface, error) {
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return NewWithPitch(width, height, format, format.RowBytes(width))
}

// NewWithPitch creates a zeroed surface whose rows are pitch bytes apart.
// Pitch must be at least format.RowBytes(width).
func NewWithPitch(width, height int, format Format, pitch int) (*Surface, error) {
	if err := validate(width, height, format, pitch); err != nil {
		return nil, err
	}
	return newSurface(make([]byte, pitch*height), width, height, format, pitch), nil
}

// FromRaw wraps existing pixel data without copying.
// The caller must not use data through other aliases while the surface is in use.
func FromRaw(data []byte, width, height int, format Format, pitch int) (*Surface, error) {
	if err := validate(width, height, format, pitch); err != nil {
		return nil, err
	}
	requiredSize := pitch * height
	if len(data) < requiredSize {
		return nil, ErrDataTooSmall
	}
	return newSurface(data[:requiredSize], width, height, format, pitch), nil
}

func validate(width, height int, format Format, pitch int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if !format.IsValid() {
		return ErrInvalidFormat
	}
	if pitch < format.RowBytes(width) {
		return ErrInvalidPitch
	}
	return nil
}

func newSurface(data []byte, width, height int, format Format, pitch int) *Surface {
	s := &Surface{
		data:    data,
		width:   width,
		height:  height,
		pitch:   pitch,
		format:  format,
		details: format.Details(),
	}
	if format.IsIndexed() {
		s.palette = append(color.Palette(nil), palette.Plan9...)
	}
	return s
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Pitch returns the number of bytes between the starts of two rows.
func (s *Surface) Pitch() int {
	return s.pitch
}

// Format returns the pixel format.
func (s *Surface) Format() Format {
	return s.format
}

// Details returns the channel packing of the surface format.
func (s *Surface) Details() FormatDetails {
	return s.details
}

// Data returns the raw pixel storage, including row padding.
func (s *Surface) Data() []byte {
	return s.data
}

// Row returns the visible bytes of row y, or nil if y is out of bounds.
func (s *Surface) Row(y int) []byte {
	if y < 0 || y >= s.height {
		return nil
	}
	start := y * s.pitch
	return s.data[start : start+s.format.RowBytes(s.width)]
}

// Palette returns the color table of an indexed surface, or nil.
// The returned slice must not be modified.
func (s *Surface) Palette() color.Palette {
	return s.palette
}

// SetPalette replaces the color table of an indexed surface.
func (s *Surface) SetPalette(p color.Palette) error {
	if !s.format.IsIndexed() {
		return ErrNotIndexed
	}
	if len(p) == 0 || len(p) > 256 {
		return ErrPaletteSize
	}
	s.palette = append(color.Palette(nil), p...)
	return nil
}

// Lock acquires exclusive access to the pixel storage for writing.
func (s *Surface) Lock() {
	s.mu.Lock()
}

// Unlock releases a Lock.
func (s *Surface) Unlock() {
	s.mu.Unlock()
}

// RLock acquires shared access to the pixel storage for reading.
func (s *Surface) RLock() {
	s.mu.RLock()
}

// RUnlock releases an RLock.
func (s *Surface) RUnlock() {
	s.mu.RUnlock()
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (s *Surface) PixelOffset(x, y int) int {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return -1
	}
	return y*s.pitch + x*s.details.BytesPerPixel
}

// SetPixel stores an encoded pixel value at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the surface.
func (s *Surface) SetPixel(x, y int, pixel uint32) error {
	offset := s.PixelOffset(x, y)
	if offset < 0 {
		return ErrOutOfBounds
	}
	p := s.data[offset : offset+s.details.BytesPerPixel]
	for i := range p {
		p[i] = byte(pixel >> (8 * i))
	}
	return nil
}

// Pixel returns the encoded pixel value at (x, y).
// Returns ErrOutOfBounds if coordinates are outside the surface.
func (s *Surface) Pixel(x, y int) (uint32, error) {
	offset := s.PixelOffset(x, y)
	if offset < 0 {
		return 0, ErrOutOfBounds
	}
	var v uint32
	for i, b := range s.data[offset : offset+s.details.BytesPerPixel] {
		v |= uint32(b) << (8 * i)
	}
	return v, nil
}

// MapRGBA converts a color into the surface's pixel encoding. On indexed
// surfaces it returns the index of the nearest color table entry.
func (s *Surface) MapRGBA(c color.NRGBA) uint32 {
	if s.details.Indexed {
		if len(s.palette) == 0 {
			return 0
		}
		return uint32(s.palette.Index(c))
	}
	return s.details.encode(c.R, c.G, c.B, c.A)
}

// UnmapRGBA converts an encoded pixel value back into a color. Indices
// past the end of the color table decode as opaque black.
func (s *Surface) UnmapRGBA(pixel uint32) color.NRGBA {
	if s.details.Indexed {
		if int(pixel) >= len(s.palette) {
			return color.NRGBA{A: 255}
		}
		return color.NRGBAModel.Convert(s.palette[pixel]).(color.NRGBA)
	}
	r, g, b, a := s.details.decode(pixel)
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// SetRGBA maps c and stores it at (x, y).
func (s *Surface) SetRGBA(x, y int, c color.NRGBA) error {
	return s.SetPixel(x, y, s.MapRGBA(c))
}

// RGBAAt returns the decoded color at (x, y), or the zero color if the
// coordinates are out of bounds.
func (s *Surface) RGBAAt(x, y int) color.NRGBA {
	v, err := s.Pixel(x, y)
	if err != nil {
		return color.NRGBA{}
	}
	return s.UnmapRGBA(v)
}

// Fill sets every pixel to c. Row padding is left untouched.
func (s *Surface) Fill(c color.NRGBA) {
	s.Lock()
	defer s.Unlock()

	v := s.MapRGBA(c)
	for y := range s.height {
		for x := range s.width {
			_ = s.SetPixel(x, y, v)
		}
	}
}

// Clear sets all bytes, padding included, to zero.
func (s *Surface) Clear() {
	s.Lock()
	defer s.Unlock()
	clear(s.data)
}

// Clone creates a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	s.RLock()
	defer s.RUnlock()

	c := newSurface(append([]byte(nil), s.data...), s.width, s.height, s.format, s.pitch)
	if s.palette != nil {
		c.palette = append(color.Palette(nil), s.palette...)
	}
	return c
}

// At implements the image.Image interface.
func (s *Surface) At(x, y int) color.Color {
	return s.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Surface) ColorModel() color.Model {
	return color.NRGBAModel
}
