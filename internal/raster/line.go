// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

// Line calls plot once for each pixel of the 8-connected approximation of
// the segment from (x0, y0) to (x1, y1), using the midpoint form of
// Bresenham's algorithm.
//
// The walk advances one pixel at a time along the axis of greater extent,
// starting from the end with the smaller coordinate on that axis, so
// Line(a, b) and Line(b, a) plot the same pixels. Both endpoints are
// plotted unless exclusive is set, in which case the endpoint with the
// larger major-axis coordinate is omitted and a zero-length segment plots
// nothing.
func Line(x0, y0, x1, y1 int, exclusive bool, plot func(x, y int)) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	// Coefficients of x and y in the line's implicit equation.
	a := y0 - y1
	b := x1 - x0

	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	// d = 2*ystep*F(x+1, y+ystep/2). It goes negative once the line has
	// passed the midpoint between the two candidate rows.
	d := 2*ystep*a + b

	end := x1
	if exclusive {
		end--
	}

	y := y0
	for x := x0; x <= end; x++ {
		if steep {
			plot(y, x)
		} else {
			plot(x, y)
		}
		if d < 0 {
			y += ystep
			d += 2 * (ystep*a + b)
		} else {
			d += 2 * ystep * a
		}
	}
}

// LineLen returns the number of pixels Line plots for the segment.
func LineLen(x0, y0, x1, y1 int, exclusive bool) int {
	n := max(abs(x1-x0), abs(y1-y0)) + 1
	if exclusive {
		n--
	}
	return n
}
