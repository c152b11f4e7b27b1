// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster computes which pixels a primitive covers.
//
// It knows nothing about pixel formats or surfaces: Line reports pixel
// coordinates and Triangle.Walk reports pixel coordinates together with
// their barycentric weights. Coloring and storage are left to the caller.
//
// All coverage decisions are made in exact integer arithmetic, so adjacent
// triangles that share an edge agree on every pixel of that edge.
package raster

import "image"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// In reports whether p lies inside the half-open rectangle r.
func (p Point) In(r image.Rectangle) bool {
	return r.Min.X <= p.X && p.X < r.Max.X && r.Min.Y <= p.Y && p.Y < r.Max.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
