package wm

import "sync"

// DragController runs header drags. A session is opened by Start,
// advanced by Move, and committed by End; the registry record is only
// written when the session ends, so every Move stays cheap and a session
// torn down early leaves the committed geometry untouched.
type DragController struct {
	reg *Registry

	mu      sync.Mutex
	session *dragSession
}

type dragSession struct {
	id      string
	offsetX int
	offsetY int
	x       int
	y       int
}

// NewDragController binds a controller to the registry. Closing the
// dragged window aborts the session before Close returns.
func NewDragController(reg *Registry) *DragController {
	d := &DragController{reg: reg}
	reg.OnClose(d.dropFor)
	return d
}

func (d *DragController) dropFor(id string) {
	d.mu.Lock()
	if d.session == nil || d.session.id != id {
		d.mu.Unlock()
		return
	}
	d.session = nil
	d.mu.Unlock()
	d.reg.releaseSession(id)
}

// Start opens a drag session for the window under the pointer. The
// window is focused first, then the pointer's offset inside the window
// is captured so the grab point stays under the pointer for the whole
// session. Start reports false when another session is running, the id
// is unknown, or the window is minimized or maximized.
func (d *DragController) Start(id string, pointerX, pointerY int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session != nil {
		return false
	}
	rec, ok := d.reg.Get(id)
	if !ok || rec.Minimized || rec.Maximized {
		return false
	}
	if !d.reg.acquireSession(id) {
		return false
	}
	d.reg.Focus(id)
	d.session = &dragSession{
		id:      id,
		offsetX: pointerX - rec.X,
		offsetY: pointerY - rec.Y,
		x:       rec.X,
		y:       rec.Y,
	}
	d.reg.markDragging(id, true)
	return true
}

// Move advances the session to the pointer position. The candidate
// origin is the pointer minus the grab offset, clamped so the window can
// overhang the left and right viewport edges by the configured slack
// while the header row stays reachable, with y never above the top edge
// and never past the bottom edge. Without a session Move does nothing;
// stray pointer events after a close are normal.
func (d *DragController) Move(pointerX, pointerY int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return
	}
	rec, ok := d.reg.Get(d.session.id)
	if !ok {
		return
	}
	vw, vh := d.reg.Viewport()
	slack := d.reg.Config().DragSlack

	x := pointerX - d.session.offsetX
	if hi := vw - rec.Width + slack; x > hi {
		x = hi
	}
	if lo := -slack; x < lo {
		x = lo
	}

	y := pointerY - d.session.offsetY
	if hi := vh - rec.Height; y > hi {
		y = hi
	}
	if y < 0 {
		y = 0
	}

	d.session.x, d.session.y = x, y
}

// End moves to the release position and commits the session.
func (d *DragController) End(pointerX, pointerY int) {
	d.Move(pointerX, pointerY)
	d.Commit()
}

// Commit writes the in-flight position to the registry and closes the
// session. Pointer-capture loss ends a drag this way: the last known
// position wins.
func (d *DragController) Commit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return
	}
	s := d.session
	d.session = nil
	d.reg.SetPosition(s.id, s.x, s.y)
	d.reg.markDragging(s.id, false)
	d.reg.releaseSession(s.id)
}

// Abort discards the session without committing.
func (d *DragController) Abort() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return
	}
	s := d.session
	d.session = nil
	d.reg.markDragging(s.id, false)
	d.reg.releaseSession(s.id)
}

// Active reports whether a drag session is open.
func (d *DragController) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session != nil
}

// ActiveID returns the dragged window's id, or empty.
func (d *DragController) ActiveID() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return ""
	}
	return d.session.id
}

// Position returns the in-flight origin of the dragged window. The
// render layer draws this instead of the committed origin while the
// session runs.
func (d *DragController) Position() (x, y int, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session == nil {
		return 0, 0, false
	}
	return d.session.x, d.session.y, true
}
