package svgexport

// Option customizes Write.
type Option func(*config)

type config struct {
	background  string
	stroke      string
	strokeWidth float64
	opacity     float64
	samples     int
	labels      bool
}

const (
	// DefaultArcSamples is the number of points sampled per edge.
	DefaultArcSamples = 8

	defaultBackground = "#ffffff"
	defaultStroke     = "#333333"
)

func newConfig(opts ...Option) config {
	cfg := config{
		background:  defaultBackground,
		stroke:      defaultStroke,
		strokeWidth: 0.5,
		opacity:     0.85,
		samples:     DefaultArcSamples,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithBackground sets the background fill. An empty colour disables it.
func WithBackground(color string) Option {
	return func(c *config) { c.background = color }
}

// WithStroke sets the edge colour and width. Panics on a negative width.
func WithStroke(color string, width float64) Option {
	if width < 0 {
		panic("svgexport: WithStroke(negative width)")
	}
	return func(c *config) {
		c.stroke = color
		c.strokeWidth = width
	}
}

// WithFillOpacity sets the face fill opacity. Panics outside [0,1].
func WithFillOpacity(o float64) Option {
	if !(o >= 0 && o <= 1) {
		panic("svgexport: WithFillOpacity(out of [0,1])")
	}
	return func(c *config) { c.opacity = o }
}

// WithArcSamples sets the points sampled per edge. Panics if n < 2.
func WithArcSamples(n int) Option {
	if n < 2 {
		panic("svgexport: WithArcSamples(n < 2)")
	}
	return func(c *config) { c.samples = n }
}

// WithLabels draws each face id at its centroid.
func WithLabels() Option {
	return func(c *config) { c.labels = true }
}
