package cpuraster

// Option configures a Rasterizer during creation.
//
// Example:
//
//	// Default rasterizer: inclusive lines, edge reference (-1, -1)
//	r := cpuraster.New()
//
//	// Half-open lines
//	r := cpuraster.New(cpuraster.WithOmitLastPixel())
type Option func(*options)

// options holds optional configuration for a Rasterizer.
type options struct {
	omitLastPixel bool
	reference     Point
}

// defaultOptions returns the default rasterizer options.
func defaultOptions() options {
	return options{
		reference: Point{X: -1, Y: -1},
	}
}

// WithOmitLastPixel makes DrawLine treat its span as half-open: the
// endpoint with the larger coordinate along the line's major axis is not
// drawn, so a line covers max(|dx|, |dy|) pixels and consecutive spans
// along one line do not overlap. A zero-length line draws nothing.
func WithOmitLastPixel() Option {
	return func(o *options) {
		o.omitLastPixel = true
	}
}

// WithReference sets the point that decides which of two triangles
// sharing an edge draws the pixels lying exactly on it. The triangle on
// the far side of the edge from the reference point owns the edge.
//
// Any point works as long as every triangle drawn into one image uses the
// same one. The default is (-1, -1), just outside the top-left corner.
func WithReference(p Point) Option {
	return func(o *options) {
		o.reference = p
	}
}
