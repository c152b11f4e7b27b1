// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"

	_ "golang.org/x/image/bmp" // register BMP decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("surface: empty data")

	// ErrInvalidScale is returned when a scale factor is not positive.
	ErrInvalidScale = errors.New("surface: scale factor must be positive")
)

// Load reads a PNG, JPEG or BMP file into a new surface of the given format.
func Load(path string, format Format) (*Surface, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("surface: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f, format)
}

// LoadFromBytes decodes an image held in memory, auto-detecting the format.
func LoadFromBytes(data []byte, format Format) (*Surface, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data), format)
}

// Decode decodes an image from the given reader, auto-detecting the file
// format, and converts it into a surface of the given pixel format.
func Decode(r io.Reader, format Format) (*Surface, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("surface: decode: %w", err)
	}
	return FromImage(img, format)
}

// FromImage copies img into a new surface of the given format.
// Paletted images keep their color table when converted to FormatIndex8.
func FromImage(img image.Image, format Format) (*Surface, error) {
	bounds := img.Bounds()
	s, err := New(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	if p, ok := img.(*image.Paletted); ok && format.IsIndexed() && len(p.Palette) > 0 {
		if err := s.SetPalette(p.Palette); err != nil {
			return nil, err
		}
		for y := range s.height {
			row := p.Pix[y*p.Stride : y*p.Stride+s.width]
			copy(s.Row(y), row)
		}
		return s, nil
	}

	for y := range s.height {
		for x := range s.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = s.SetPixel(x, y, s.MapRGBA(c))
		}
	}
	return s, nil
}

// Image returns a copy of the surface contents as an image.NRGBA.
func (s *Surface) Image() *image.NRGBA {
	s.RLock()
	defer s.RUnlock()

	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	if s.format == FormatABGR8888 {
		for y := range s.height {
			copy(img.Pix[y*img.Stride:], s.Row(y))
		}
		return img
	}
	for y := range s.height {
		for x := range s.width {
			img.SetNRGBA(x, y, s.RGBAAt(x, y))
		}
	}
	return img
}

// Scaled returns a copy of the surface contents enlarged by an integer
// factor with nearest-neighbour sampling, so every pixel stays a sharp
// square.
func (s *Surface) Scaled(factor int) (*image.NRGBA, error) {
	if factor <= 0 {
		return nil, ErrInvalidScale
	}
	src := s.Image()
	if factor == 1 {
		return src, nil
	}
	dst := image.NewNRGBA(image.Rect(0, 0, s.width*factor, s.height*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// EncodePNG encodes the surface as PNG to the given writer.
func (s *Surface) EncodePNG(w io.Writer) error {
	return EncodePNG(w, s.Image())
}

// EncodePNG encodes img as PNG to the given writer.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("surface: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the surface as a PNG file.
func (s *Surface) SavePNG(path string) error {
	return SavePNG(path, s.Image())
}

// SavePNG writes img to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("surface: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
