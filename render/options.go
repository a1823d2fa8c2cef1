package render

// Option configures a Renderer during creation.
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	gridStep  float64
	labels    bool
	labelSize float64
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		gridStep:  50,
		labels:    true,
		labelSize: 13,
	}
}

// WithGridStep sets the spacing of the background grid in surface units.
// Zero or a negative value disables the grid.
func WithGridStep(step float64) Option {
	return func(o *options) {
		o.gridStep = step
	}
}

// WithoutLabels disables the slot-number labels next to start-pose
// markers and skips parsing the label font.
func WithoutLabels() Option {
	return func(o *options) {
		o.labels = false
	}
}

// WithLabelSize sets the label font size in points.
func WithLabelSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.labelSize = size
		}
	}
}
