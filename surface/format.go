// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Format represents a packed pixel storage format.
type Format uint8

const (
	// FormatIndex8 stores an 8-bit index into the surface color table.
	FormatIndex8 Format = iota

	// FormatRGB565 is 16-bit RGB, 5 bits red, 6 bits green, 5 bits blue.
	FormatRGB565

	// FormatRGB888 is 24-bit RGB packed as 0xRRGGBB (3 bytes per pixel).
	FormatRGB888

	// FormatXRGB8888 is 32-bit RGB packed as 0xXXRRGGBB; the top byte is unused.
	FormatXRGB8888

	// FormatARGB8888 is 32-bit ARGB packed as 0xAARRGGBB.
	// This is the usual window surface format.
	FormatARGB8888

	// FormatRGBA8888 is 32-bit RGBA packed as 0xRRGGBBAA.
	FormatRGBA8888

	// FormatABGR8888 is 32-bit ABGR packed as 0xAABBGGRR.
	// Its byte layout matches image.NRGBA.
	FormatABGR8888

	// FormatBGRA8888 is 32-bit BGRA packed as 0xBBGGRRAA.
	FormatBGRA8888

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatDetails describes how the channels of a format are packed into an
// encoded pixel value. A channel with zero bits is absent.
type FormatDetails struct {
	// BitsPerPixel is the number of significant bits per pixel.
	BitsPerPixel int

	// BytesPerPixel is the storage size of one pixel.
	BytesPerPixel int

	// Indexed reports that pixel values are color table indices.
	Indexed bool

	RMask, GMask, BMask, AMask     uint32
	RShift, GShift, BShift, AShift uint
	RBits, GBits, BBits, ABits     uint
}

// formatDetailsTable contains the packing of each format.
var formatDetailsTable = [formatCount]FormatDetails{
	FormatIndex8: {
		BitsPerPixel:  8,
		BytesPerPixel: 1,
		Indexed:       true,
	},
	FormatRGB565:   packed(16, 2, 11, 5, 5, 6, 0, 5, 0, 0),
	FormatRGB888:   packed(24, 3, 16, 8, 8, 8, 0, 8, 0, 0),
	FormatXRGB8888: packed(24, 4, 16, 8, 8, 8, 0, 8, 0, 0),
	FormatARGB8888: packed(32, 4, 16, 8, 8, 8, 0, 8, 24, 8),
	FormatRGBA8888: packed(32, 4, 24, 8, 16, 8, 8, 8, 0, 8),
	FormatABGR8888: packed(32, 4, 0, 8, 8, 8, 16, 8, 24, 8),
	FormatBGRA8888: packed(32, 4, 8, 8, 16, 8, 24, 8, 0, 8),
}

// packed builds the details of a direct-color format from channel shifts
// and widths.
func packed(bits, bytes int, rs, rb, gs, gb, bs, bb, as, ab uint) FormatDetails {
	return FormatDetails{
		BitsPerPixel:  bits,
		BytesPerPixel: bytes,
		RMask:         channelMask(rs, rb),
		GMask:         channelMask(gs, gb),
		BMask:         channelMask(bs, bb),
		AMask:         channelMask(as, ab),
		RShift:        rs,
		GShift:        gs,
		BShift:        bs,
		AShift:        as,
		RBits:         rb,
		GBits:         gb,
		BBits:         bb,
		ABits:         ab,
	}
}

func channelMask(shift, bits uint) uint32 {
	if bits == 0 {
		return 0
	}
	return (1<<bits - 1) << shift
}

// Details returns the FormatDetails for this format.
func (f Format) Details() FormatDetails {
	if f >= formatCount {
		return FormatDetails{}
	}
	return formatDetailsTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Details().BytesPerPixel
}

// IsIndexed reports whether pixels of this format are color table indices.
func (f Format) IsIndexed() bool {
	return f.Details().Indexed
}

// HasAlpha reports whether this format stores an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Details().ABits > 0
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatIndex8:
		return "Index8"
	case FormatRGB565:
		return "RGB565"
	case FormatRGB888:
		return "RGB888"
	case FormatXRGB8888:
		return "XRGB8888"
	case FormatARGB8888:
		return "ARGB8888"
	case FormatRGBA8888:
		return "RGBA8888"
	case FormatABGR8888:
		return "ABGR8888"
	case FormatBGRA8888:
		return "BGRA8888"
	default:
		return "Unknown"
	}
}

// ParseFormat returns the format with the given name, as printed by
// Format.String. The second result is false for unknown names.
func ParseFormat(name string) (Format, bool) {
	for f := range formatCount {
		if f.String() == name {
			return f, true
		}
	}
	return 0, false
}

// encode packs 8-bit channels into a pixel value. Channels are rescaled
// to the width of their field with rounding.
func (d FormatDetails) encode(r, g, b, a uint8) uint32 {
	return scaleDown(r, d.RBits)<<d.RShift |
		scaleDown(g, d.GBits)<<d.GShift |
		scaleDown(b, d.BBits)<<d.BShift |
		scaleDown(a, d.ABits)<<d.AShift
}

// decode unpacks a pixel value into 8-bit channels. A format without an
// alpha field decodes as opaque.
func (d FormatDetails) decode(v uint32) (r, g, b, a uint8) {
	r = scaleUp((v&d.RMask)>>d.RShift, d.RBits)
	g = scaleUp((v&d.GMask)>>d.GShift, d.GBits)
	b = scaleUp((v&d.BMask)>>d.BShift, d.BBits)
	a = 255
	if d.ABits > 0 {
		a = scaleUp((v&d.AMask)>>d.AShift, d.ABits)
	}
	return r, g, b, a
}

func scaleDown(c uint8, bits uint) uint32 {
	switch bits {
	case 0:
		return 0
	case 8:
		return uint32(c)
	}
	maxVal := uint32(1)<<bits - 1
	return (uint32(c)*maxVal + 127) / 255
}

func scaleUp(v uint32, bits uint) uint8 {
	switch bits {
	case 0:
		return 0
	case 8:
		return uint8(v)
	}
	maxVal := uint32(1)<<bits - 1
	return uint8((v*255 + maxVal/2) / maxVal)
}
