// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Edge is the implicit equation of the line through two points:
//
//	F(x, y) = (A.Y - B.Y)*x + (B.X - A.X)*y + (A.X*B.Y - B.X*A.Y)
//
// F is zero on the line; its sign tells which side of the line (x, y)
// lies on. Evaluating F at a third point gives twice the signed area of
// the triangle the three points span.
type Edge struct {
	a, b, c int64
}

// NewEdge returns the edge function of the line from p0 to p1.
func NewEdge(p0, p1 Point) Edge {
	return Edge{
		a: int64(p0.Y) - int64(p1.Y),
		b: int64(p1.X) - int64(p0.X),
		c: int64(p0.X)*int64(p1.Y) - int64(p1.X)*int64(p0.Y),
	}
}

// Eval returns F(x, y).
func (e Edge) Eval(x, y int) int64 {
	return e.a*int64(x) + e.b*int64(y) + e.c
}

// EvalPoint returns F(p.X, p.Y).
func (e Edge) EvalPoint(p Point) int64 {
	return e.Eval(p.X, p.Y)
}

// StepX returns how much F changes when x increases by one.
func (e Edge) StepX() int64 {
	return e.a
}

// StepY returns how much F changes when y increases by one.
func (e Edge) StepY() int64 {
	return e.b
}

func sameSign(a, b int64) bool {
	return (a < 0) == (b < 0)
}
