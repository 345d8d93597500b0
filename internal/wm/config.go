package wm

// Default geometry limits. These are the pixel-scale contract values; the
// terminal front end overrides them with cell-scale equivalents through
// the same Config knobs.
const (
	// DefaultMinWidth is the smallest width a resize may commit.
	DefaultMinWidth = 300

	// DefaultMinHeight is the smallest height a resize may commit.
	DefaultMinHeight = 200

	// DefaultDragSlack is how far a dragged window may overhang the left
	// or right viewport edge. The top and bottom edges have no slack.
	DefaultDragSlack = 100

	// DefaultWindowWidth and DefaultWindowHeight size records opened
	// without an explicit size.
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 360

	// DefaultCascadeStride is the positional stagger between
	// successively opened windows.
	DefaultCascadeStride = 32

	// DefaultCascadeWrap bounds the stagger so deep cascades fold back
	// toward the origin instead of marching off screen.
	DefaultCascadeWrap = 10

	// DefaultViewportWidth and DefaultViewportHeight are used until the
	// owner reports a real viewport.
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
)

// CascadePolicy selects which opens receive the cascade offset.
type CascadePolicy int

const (
	// CascadeUnpositioned staggers only windows opened without an
	// explicit position.
	CascadeUnpositioned CascadePolicy = iota
	// CascadeAll staggers every newly opened window, explicit position
	// included.
	CascadeAll
	// CascadeOff disables the stagger entirely.
	CascadeOff
)

// String returns the policy name as used in configuration files.
func (p CascadePolicy) String() string {
	switch p {
	case CascadeUnpositioned:
		return "unpositioned"
	case CascadeAll:
		return "all"
	case CascadeOff:
		return "off"
	default:
		return "unknown"
	}
}

// ParseCascadePolicy maps a configuration string to a policy. Unknown
// values fall back to CascadeUnpositioned.
func ParseCascadePolicy(s string) CascadePolicy {
	switch s {
	case "all":
		return CascadeAll
	case "off":
		return CascadeOff
	default:
		return CascadeUnpositioned
	}
}

// Config holds the geometry policy for a Registry.
type Config struct {
	// MinWidth and MinHeight are enforced on every resize commit and on
	// sanitization of malformed geometry.
	MinWidth  int
	MinHeight int

	// DragSlack is the horizontal overhang allowed while dragging.
	DragSlack int

	// DefaultWidth and DefaultHeight apply to opens without an explicit
	// size.
	DefaultWidth  int
	DefaultHeight int

	// CascadeStride and CascadeWrap control the open-position stagger.
	CascadeStride int
	CascadeWrap   int

	CascadePolicy CascadePolicy

	// ViewportWidth and ViewportHeight seed the viewport until
	// SetViewport is called.
	ViewportWidth  int
	ViewportHeight int
}

// DefaultConfig returns the pixel-scale defaults.
func DefaultConfig() Config {
	return Config{
		MinWidth:       DefaultMinWidth,
		MinHeight:      DefaultMinHeight,
		DragSlack:      DefaultDragSlack,
		DefaultWidth:   DefaultWindowWidth,
		DefaultHeight:  DefaultWindowHeight,
		CascadeStride:  DefaultCascadeStride,
		CascadeWrap:    DefaultCascadeWrap,
		CascadePolicy:  CascadeUnpositioned,
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
	}
}

// normalize fills invalid fields with defaults. A zero DragSlack is kept:
// it means no overhang, not "use the default".
func (c Config) normalize() Config {
	if c.MinWidth <= 0 {
		c.MinWidth = DefaultMinWidth
	}
	if c.MinHeight <= 0 {
		c.MinHeight = DefaultMinHeight
	}
	if c.DragSlack < 0 {
		c.DragSlack = 0
	}
	if c.DefaultWidth <= 0 {
		c.DefaultWidth = DefaultWindowWidth
	}
	if c.DefaultHeight <= 0 {
		c.DefaultHeight = DefaultWindowHeight
	}
	if c.CascadeStride <= 0 {
		c.CascadeStride = DefaultCascadeStride
	}
	if c.CascadeWrap <= 0 {
		c.CascadeWrap = DefaultCascadeWrap
	}
	if c.ViewportWidth <= 0 {
		c.ViewportWidth = DefaultViewportWidth
	}
	if c.ViewportHeight <= 0 {
		c.ViewportHeight = DefaultViewportHeight
	}
	return c
}
