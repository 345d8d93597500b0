package wm

import "sync"

// Direction names the border or corner a resize grabs, by compass point.
type Direction string

const (
	DirN  Direction = "n"
	DirS  Direction = "s"
	DirE  Direction = "e"
	DirW  Direction = "w"
	DirNE Direction = "ne"
	DirNW Direction = "nw"
	DirSE Direction = "se"
	DirSW Direction = "sw"
)

// Valid reports whether d is one of the eight compass directions.
func (d Direction) Valid() bool {
	switch d {
	case DirN, DirS, DirE, DirW, DirNE, DirNW, DirSE, DirSW:
		return true
	}
	return false
}

// North reports whether the grab includes the top edge.
func (d Direction) North() bool { return d == DirN || d == DirNE || d == DirNW }

// South reports whether the grab includes the bottom edge.
func (d Direction) South() bool { return d == DirS || d == DirSE || d == DirSW }

// East reports whether the grab includes the right edge.
func (d Direction) East() bool { return d == DirE || d == DirNE || d == DirSE }

// West reports whether the grab includes the left edge.
func (d Direction) West() bool { return d == DirW || d == DirNW || d == DirSW }

// ResizeController runs border and corner resizes. Like drags, a resize
// is a session: the geometry at Start is snapshotted once and every Move
// recomputes the in-flight rectangle from that snapshot and the total
// pointer travel, so resizes do not accumulate rounding drift and the
// registry only sees the final rectangle.
type ResizeController struct {
	reg *Registry

	mu      sync.Mutex
	session *resizeSession
}

type resizeSession struct {
	id     string
	dir    Direction
	startX int
	startY int
	origin Bounds
	bounds Bounds
}

// NewResizeController binds a controller to the registry. Closing the
// resized window aborts the session before Close returns.
func NewResizeController(reg *Registry) *ResizeController {
	c := &ResizeController{reg: reg}
	reg.OnClose(c.dropFor)
	return c
}

func (c *ResizeController) dropFor(id string) {
	c.mu.Lock()
	if c.session == nil || c.session.id != id {
		c.mu.Unlock()
		return
	}
	c.session = nil
	c.mu.Unlock()
	c.reg.releaseSession(id)
}

// Start opens a resize session on the given edge or corner. The window
// is focused first. Start reports false when the direction is invalid,
// another session is running, the id is unknown, or the window is
// minimized or maximized.
func (c *ResizeController) Start(id string, dir Direction, pointerX, pointerY int) bool {
	if !dir.Valid() {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session != nil {
		return false
	}
	rec, ok := c.reg.Get(id)
	if !ok || rec.Minimized || rec.Maximized {
		return false
	}
	if !c.reg.acquireSession(id) {
		return false
	}
	c.reg.Focus(id)
	c.session = &resizeSession{
		id:     id,
		dir:    dir,
		startX: pointerX,
		startY: pointerY,
		origin: rec.Bounds(),
		bounds: rec.Bounds(),
	}
	c.reg.markResizing(id, true)
	return true
}

// Move advances the session to the pointer position. East and south
// grabs move the right and bottom edges with the pointer. West and north
// grabs move the left and top edges while the opposite edge stays fixed,
// so when the width or height bottoms out at the minimum the moving edge
// stops and the anchored edge does not creep. The rectangle may extend
// past the viewport; only committed drags are clamped, resizes are not.
func (c *ResizeController) Move(pointerX, pointerY int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return
	}
	s := c.session
	dx := pointerX - s.startX
	dy := pointerY - s.startY
	cfg := c.reg.Config()

	b := s.origin
	switch {
	case s.dir.East():
		b.Width = s.origin.Width + dx
		if b.Width < cfg.MinWidth {
			b.Width = cfg.MinWidth
		}
	case s.dir.West():
		b.Width = s.origin.Width - dx
		if b.Width < cfg.MinWidth {
			b.Width = cfg.MinWidth
		}
		b.X = s.origin.X + s.origin.Width - b.Width
	}
	switch {
	case s.dir.South():
		b.Height = s.origin.Height + dy
		if b.Height < cfg.MinHeight {
			b.Height = cfg.MinHeight
		}
	case s.dir.North():
		b.Height = s.origin.Height - dy
		if b.Height < cfg.MinHeight {
			b.Height = cfg.MinHeight
		}
		b.Y = s.origin.Y + s.origin.Height - b.Height
	}
	s.bounds = b
}

// End moves to the release position and commits the session.
func (c *ResizeController) End(pointerX, pointerY int) {
	c.Move(pointerX, pointerY)
	c.Commit()
}

// Commit writes the in-flight rectangle to the registry and closes the
// session.
func (c *ResizeController) Commit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return
	}
	s := c.session
	c.session = nil
	c.reg.SetBounds(s.id, s.bounds.X, s.bounds.Y, s.bounds.Width, s.bounds.Height)
	c.reg.markResizing(s.id, false)
	c.reg.releaseSession(s.id)
}

// Abort discards the session without committing.
func (c *ResizeController) Abort() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return
	}
	s := c.session
	c.session = nil
	c.reg.markResizing(s.id, false)
	c.reg.releaseSession(s.id)
}

// Active reports whether a resize session is open.
func (c *ResizeController) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil
}

// ActiveID returns the resized window's id, or empty.
func (c *ResizeController) ActiveID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return ""
	}
	return c.session.id
}

// Bounds returns the in-flight rectangle of the resized window. The
// render layer draws this instead of the committed rectangle while the
// session runs.
func (c *ResizeController) Bounds() (Bounds, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return Bounds{}, false
	}
	return c.session.bounds, true
}

// Cursor returns the border direction for a point on the window frame,
// given the window rectangle. It reports false for points in the
// interior or outside the frame entirely.
func Cursor(b Bounds, x, y int) (Direction, bool) {
	if !b.Contains(x, y) {
		return "", false
	}
	north := y == b.Y
	south := y == b.Bottom()-1
	east := x == b.Right()-1
	west := x == b.X
	switch {
	case north && west:
		return DirNW, true
	case north && east:
		return DirNE, true
	case south && west:
		return DirSW, true
	case south && east:
		return DirSE, true
	case north:
		return DirN, true
	case south:
		return DirS, true
	case east:
		return DirE, true
	case west:
		return DirW, true
	}
	return "", false
}
