package wm

import (
	"charm.land/lipgloss/v2"
)

// Kind tags the category of a window's hosted content. The window core
// treats it as an opaque routing label; the set of meaningful values is
// owned by the caller.
type Kind string

// Point is a position in viewport units, top-left anchored.
type Point struct {
	X int
	Y int
}

// Bounds is a full window rectangle.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the x coordinate one past the right edge.
func (b Bounds) Right() int { return b.X + b.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (b Bounds) Bottom() int { return b.Y + b.Height }

// Contains reports whether the point lies inside the rectangle.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// State is the coarse lifecycle state of a window.
type State int

const (
	// StateNormal is a visible window with no session attached.
	StateNormal State = iota
	// StateDragging is a window whose position is being manipulated.
	StateDragging
	// StateResizing is a window whose bounds are being manipulated.
	StateResizing
	// StateMinimized is a window excluded from the visible list.
	StateMinimized
	// StateMaximized is a window filling the container.
	StateMaximized
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateDragging:
		return "dragging"
	case StateResizing:
		return "resizing"
	case StateMinimized:
		return "minimized"
	case StateMaximized:
		return "maximized"
	default:
		return "unknown"
	}
}

// WindowRecord is one window's persisted state. Records are created and
// mutated through the Registry; the render layer reads them and may use
// the cache fields, everything else should treat them as read-only.
type WindowRecord struct {
	ID      string
	Kind    Kind
	Title   string
	Content any // opaque, owned and rendered by the caller
	Data    any // optional caller payload from Open

	// Committed geometry in viewport units.
	X      int
	Y      int
	Width  int
	Height int

	// Z is unique among tracked records and strictly increasing over
	// the registry's lifetime. It is never renumbered or reused.
	Z int

	Active    bool
	Minimized bool
	Maximized bool

	// Geometry snapshot restored when un-maximizing. Never both
	// Minimized and Maximized are true.
	PrevX      int
	PrevY      int
	PrevWidth  int
	PrevHeight int

	// Dragging and Resizing are transient session markers maintained by
	// the controllers.
	Dragging bool
	Resizing bool

	// MinimizeOrder gives minimized windows a stable dock slot. Zero
	// while visible.
	MinimizeOrder int

	// Render cache. The composited layer can be reused as long as
	// neither content nor position changed.
	CachedContent string
	CachedLayer   *lipgloss.Layer
	Dirty         bool
	ContentDirty  bool
	PositionDirty bool
}

// Bounds returns the committed rectangle.
func (w *WindowRecord) Bounds() Bounds {
	return Bounds{X: w.X, Y: w.Y, Width: w.Width, Height: w.Height}
}

// Contains reports whether the viewport point lies inside the committed
// rectangle.
func (w *WindowRecord) Contains(x, y int) bool {
	return w.Bounds().Contains(x, y)
}

// State derives the lifecycle state. Minimized wins over maximized by
// construction (the registry never leaves both set) and both win over
// session markers.
func (w *WindowRecord) State() State {
	switch {
	case w.Minimized:
		return StateMinimized
	case w.Maximized:
		return StateMaximized
	case w.Dragging:
		return StateDragging
	case w.Resizing:
		return StateResizing
	default:
		return StateNormal
	}
}

// MarkPositionDirty flags the cached layer for repositioning.
func (w *WindowRecord) MarkPositionDirty() {
	w.Dirty = true
	w.PositionDirty = true
}

// MarkContentDirty flags the cached content for re-render.
func (w *WindowRecord) MarkContentDirty() {
	w.Dirty = true
	w.ContentDirty = true
}

// ClearDirtyFlags resets the dirty markers after a render pass.
func (w *WindowRecord) ClearDirtyFlags() {
	w.Dirty = false
	w.ContentDirty = false
	w.PositionDirty = false
}

// InvalidateCache drops the cached render state entirely.
func (w *WindowRecord) InvalidateCache() {
	w.CachedContent = ""
	w.CachedLayer = nil
	w.MarkContentDirty()
	w.MarkPositionDirty()
}
