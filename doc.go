// Package cpuraster draws lines and triangles into in-memory pixel
// buffers on the CPU.
//
// # Overview
//
// cpuraster is a small software rasterizer. It draws one-pixel lines with
// Bresenham's algorithm and fills triangles by testing each pixel of their
// bounding box against three integer edge functions. Triangles can be
// filled with a flat color, with vertex colors interpolated across the
// surface (Gouraud shading), or with a texture mapped affinely.
// There is no anti-aliasing, blending, depth testing or projection.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/cpuraster"
//		"github.com/gogpu/cpuraster/surface"
//	)
//
//	dst, _ := surface.New(640, 480, surface.FormatARGB8888)
//	dst.Fill(color.NRGBA{R: 30, G: 144, B: 255, A: 255})
//
//	r := cpuraster.New()
//	r.DrawLineRGBA(dst, 0, 0, 600, 400, color.NRGBA{R: 255, A: 255})
//	r.DrawTriangle(dst, cpuraster.Tri(
//		cpuraster.V(100, 100, color.NRGBA{R: 255, A: 255}),
//		cpuraster.V(400, 100, color.NRGBA{G: 255, A: 255}),
//		cpuraster.V(250, 400, color.NRGBA{B: 255, A: 255}),
//	))
//
//	dst.SavePNG("output.png")
//
// # Targets and Textures
//
// The rasterizer writes encoded pixel values through the [Target]
// interface and reads them through [Texture]. Both are implemented by
// surface.Surface, which supports indexed and packed RGB formats; colors
// are converted with the buffer's own format and color table, so a
// texture and a target need not share a format.
//
// # Coverage Rules
//
// Vertex positions are rounded to the nearest pixel. A pixel is inside a
// triangle when its three barycentric weights are non-negative. A pixel
// lying exactly on an edge belongs to the triangle on the far side of the
// edge from a fixed reference point (see [WithReference]), so triangles
// sharing an edge never both draw it and never both miss it.
// Lines include both endpoints unless [WithOmitLastPixel] is given.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left pixel
//   - X increases right
//   - Y increases down
//   - Texture coordinate (0,0) is the top-left texel, (1,1) the bottom-right
//
// # Logging
//
// Nothing is logged by default. See [SetLogger].
package cpuraster
