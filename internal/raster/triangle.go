// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import "image"

// Weights are the barycentric coordinates of a pixel with respect to a
// triangle. Alpha weights the first vertex, Beta the second and Gamma the
// third; inside the triangle all three are non-negative and sum to one.
type Weights struct {
	Alpha, Beta, Gamma float32
}

// Sum returns Alpha+Beta+Gamma.
func (w Weights) Sum() float32 {
	return w.Alpha + w.Beta + w.Gamma
}

// DefaultReference is the point used to decide the owner of a shared edge.
var DefaultReference = Point{X: -1, Y: -1}

// Triangle is a triangle with integer vertices, prepared for coverage
// tests. The zero value is degenerate and covers nothing.
type Triangle struct {
	v [3]Point

	// edges[i] is the edge opposite v[i]; denom[i] is its value at v[i].
	edges [3]Edge
	denom [3]int64

	// owns[i] reports whether pixels lying exactly on edges[i] belong to
	// this triangle.
	owns [3]bool
}

// NewTriangle prepares the triangle v0, v1, v2. The result is false when
// the vertices are colinear; such a triangle has no area and covers no
// pixel.
//
// A pixel lying exactly on an edge is covered only if the edge faces ref:
// ref and the opposite vertex lie on different sides of the edge's line.
// Two triangles sharing an edge lie on opposite sides of it, so exactly
// one of them owns it. When the line passes through ref, ref+(0,-1) is
// tried, then ref+(-1,0); the three points are not colinear, so one of
// them is always off the line.
func NewTriangle(v0, v1, v2, ref Point) (Triangle, bool) {
	t := Triangle{v: [3]Point{v0, v1, v2}}
	t.edges = [3]Edge{
		NewEdge(v1, v2),
		NewEdge(v2, v0),
		NewEdge(v0, v1),
	}
	for i, e := range t.edges {
		t.denom[i] = e.EvalPoint(t.v[i])
		if t.denom[i] == 0 {
			return Triangle{}, false
		}
	}

	refs := [3]Point{ref, ref.Add(Pt(0, -1)), ref.Add(Pt(-1, 0))}
	for i, e := range t.edges {
		for _, r := range refs {
			if f := e.EvalPoint(r); f != 0 {
				t.owns[i] = !sameSign(f, t.denom[i])
				break
			}
		}
	}
	return t, true
}

// Vertices returns the three vertices in their original order.
func (t *Triangle) Vertices() [3]Point {
	return t.v
}

// Area2 returns twice the signed area of the triangle. It is positive
// when the vertices wind clockwise on a y-down screen.
func (t *Triangle) Area2() int64 {
	return t.denom[2]
}

// Owns reports whether pixels on the edge opposite vertex i belong to the
// triangle.
func (t *Triangle) Owns(i int) bool {
	return t.owns[i]
}

// Bounds returns the half-open integer bounding box of the vertices:
// columns [minX, maxX) and rows [minY, maxY). Pixels on the maximum row
// and column are never visited.
func (t *Triangle) Bounds() image.Rectangle {
	minX := min(t.v[0].X, t.v[1].X, t.v[2].X)
	maxX := max(t.v[0].X, t.v[1].X, t.v[2].X)
	minY := min(t.v[0].Y, t.v[1].Y, t.v[2].Y)
	maxY := max(t.v[0].Y, t.v[1].Y, t.v[2].Y)
	return image.Rectangle{Min: image.Pt(minX, minY), Max: image.Pt(maxX, maxY)}
}

// Contains reports whether the pixel (x, y) is covered, applying the
// shared-edge rule.
func (t *Triangle) Contains(x, y int) bool {
	for i, e := range t.edges {
		f := e.Eval(x, y)
		if f == 0 {
			if !t.owns[i] {
				return false
			}
			continue
		}
		if !sameSign(f, t.denom[i]) {
			return false
		}
	}
	return true
}

// WeightsAt returns the barycentric weights of (x, y), whether or not
// the pixel is covered.
func (t *Triangle) WeightsAt(x, y int) Weights {
	return Weights{
		Alpha: float32(float64(t.edges[0].Eval(x, y)) / float64(t.denom[0])),
		Beta:  float32(float64(t.edges[1].Eval(x, y)) / float64(t.denom[1])),
		Gamma: float32(float64(t.edges[2].Eval(x, y)) / float64(t.denom[2])),
	}
}

// Walk calls fn for every covered pixel inside both the triangle's
// bounding box and clip, row by row.
func (t *Triangle) Walk(clip image.Rectangle, fn func(x, y int, w Weights)) {
	if t.denom[0] == 0 {
		return
	}
	r := t.Bounds().Intersect(clip)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if t.Contains(x, y) {
				fn(x, y, t.WeightsAt(x, y))
			}
		}
	}
}

// Count returns the number of pixels Walk would visit.
func (t *Triangle) Count(clip image.Rectangle) int {
	n := 0
	t.Walk(clip, func(int, int, Weights) { n++ })
	return n
}
