// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel surfaces cpuraster draws into and
// samples textures from.
//
// A Surface is an owned, row-major byte buffer with an explicit pitch
// (bytes per row, which may exceed the visible width), a packed pixel
// format and, for indexed formats, a color table. Every pixel access goes
// through a bounds-checked accessor; there is no raw address arithmetic
// exposed to callers.
//
// # Encoded pixels
//
// Pixels are exchanged as encoded uint32 values in the surface's native
// format. MapRGBA converts a color into that encoding and UnmapRGBA converts
// it back:
//
//	s, _ := surface.New(320, 240, surface.FormatARGB8888)
//	red := s.MapRGBA(color.NRGBA{R: 255, A: 255}) // 0xFFFF0000
//	_ = s.SetPixel(10, 10, red)
//
// Multi-byte pixels are stored little-endian, so FormatABGR8888 has the same
// byte layout as image.NRGBA and FormatARGB8888 the byte order B, G, R, A.
//
// # Indexed surfaces
//
// FormatIndex8 stores one palette index per pixel. New installs a copy of
// the Plan 9 palette; SetPalette replaces it. MapRGBA picks the nearest
// palette entry.
//
// # Locking
//
// Surfaces are not safe for concurrent mutation. Lock and Unlock bracket a
// batch of writes, RLock and RUnlock a batch of reads; the rasterizer holds
// one of them at a time within a draw call. SetPixel and Pixel do not lock.
//
// # Loading and saving
//
// Decode and Load read PNG, JPEG and BMP files into a surface of any
// format; Image, EncodePNG and SavePNG write the contents back out.
package surface
