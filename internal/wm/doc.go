/*
Package wm implements the floating window core: a registry of window
records with a single global stacking order, plus pointer-driven drag and
resize sessions that mutate those records.

The package is renderer-independent. Geometry is expressed in abstract
integer viewport units; the TUI layer drives it with terminal cells while
tests drive it with pixel-scale values. All state is in-memory and lives
for the registry's lifetime.

Example usage:

	reg := wm.New(wm.DefaultConfig())
	rec, _ := reg.Open("composer-1", "composer", body)
	drag := wm.NewDragController(reg)
	drag.Start(rec.ID, wm.Point{X: rec.X + 4, Y: rec.Y})
	drag.Move(wm.Point{X: 260, Y: 80})
	drag.End(wm.Point{X: 300, Y: 90})

At most one drag-or-resize session is active at a time. During a session
the moving geometry is held by the controller and committed to the
registry only when the session ends, so the registry always holds the
last committed state.
*/
package wm
