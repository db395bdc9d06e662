package chart

// Margins is the space between the plot area and the image edges, in pixels.
type Margins struct {
	Top, Right, Bottom, Left float64
}

const (
	defaultWidth    = 1000
	defaultHeight   = 600
	defaultFontSize = 10

	// Number of y ticks requested; the x axis asks for one tick per 80 pixels.
	yTickCount = 10
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := chart.NewRenderer(chart.FormatSVG,
//	    chart.WithSize(1200, 700),
//	    chart.WithTitle("Perks by level"))
type Option func(*config)

// config holds renderer settings.
type config struct {
	width    int
	height   int
	margins  Margins
	title    string
	fontSize float64
}

// defaultConfig returns the 1000x600 layout with room for axis labels.
func defaultConfig() config {
	return config{
		width:    defaultWidth,
		height:   defaultHeight,
		margins:  Margins{Top: 20, Right: 20, Bottom: 30, Left: 40},
		fontSize: defaultFontSize,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 {
			c.width = width
		}
		if height > 0 {
			c.height = height
		}
	}
}

// WithMargins sets the space around the plot area.
func WithMargins(m Margins) Option {
	return func(c *config) {
		c.margins = m
	}
}

// WithTitle sets a title drawn above the plot. Empty means no title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithFontSize sets the label size in points. Non-positive values are ignored.
func WithFontSize(size float64) Option {
	return func(c *config) {
		if size > 0 {
			c.fontSize = size
		}
	}
}

// xTickCount asks for one level tick per 80 pixels of width.
func (c config) xTickCount() int {
	return max(c.width/80, 2)
}
