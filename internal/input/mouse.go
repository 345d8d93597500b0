package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// findClickedWindow returns the topmost visible window containing the
// desk cell, or nil. Minimized windows live in the dock and are never
// hit.
func findClickedWindow(m *app.Manager, x, y int) *wm.WindowRecord {
	visible := m.Registry.List()
	for i := len(visible) - 1; i >= 0; i-- {
		if visible[i].Contains(x, y) {
			return visible[i]
		}
	}
	return nil
}

// findDockItemClicked maps a screen cell to the dock item under it.
func findDockItemClicked(m *app.Manager, x, y int) (string, bool) {
	layout := m.CalculateDockLayout()
	if y != layout.Y {
		return "", false
	}
	for _, item := range layout.Items {
		if x >= item.StartX && x < item.EndX {
			return item.ID, true
		}
	}
	return "", false
}

// cornerFor picks the resize corner nearest to the pointer.
func cornerFor(rec *wm.WindowRecord, x, y int) wm.Direction {
	midX := rec.X + rec.Width/2
	midY := rec.Y + rec.Height/2
	switch {
	case x < midX && y < midY:
		return wm.DirNW
	case x >= midX && y < midY:
		return wm.DirNE
	case x < midX:
		return wm.DirSW
	default:
		return wm.DirSE
	}
}

// handleMouseClick handles mouse click events
func handleMouseClick(msg tea.MouseClickMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	mouse := msg.Mouse()
	X := mouse.X
	Y := mouse.Y

	// The dock strip eats clicks before any window hit testing.
	if m.InDockArea(Y) {
		if mouse.Button == tea.MouseLeft {
			if id, ok := findDockItemClicked(m, X, Y); ok {
				m.Registry.Restore(id)
			}
		}
		return m, nil
	}

	deskX, deskY := m.ScreenToDesk(X, Y)
	rec := findClickedWindow(m, deskX, deskY)
	if rec == nil {
		// Consume the event even if no window is hit to prevent leaking
		return m, nil
	}

	// Check button clicks FIRST before mode switching or focus changes.
	// The hitboxes track the glyph cells drawn by the renderer.
	if !config.HideWindowButtons && mouse.Button == tea.MouseLeft && deskY == rec.Y {
		leftMost := rec.X + rec.Width
		switch {
		case deskX >= leftMost+config.CloseButtonLeft && deskX <= leftMost+config.CloseButtonRight:
			m.CloseWindow(rec.ID)
			return m, nil
		case deskX >= leftMost+config.MaximizeButtonLeft && deskX <= leftMost+config.MaximizeButtonRight:
			m.Registry.ToggleMaximize(rec.ID)
			return m, nil
		case deskX >= leftMost+config.MinimizeButtonLeft && deskX <= leftMost+config.MinimizeButtonRight:
			m.Registry.Minimize(rec.ID)
			return m, nil
		}
	}

	// Right-drag resizes from the corner nearest the pointer.
	if mouse.Button == tea.MouseRight {
		if m.Mode == app.DeskMode && !rec.Maximized {
			m.Resize.Start(rec.ID, cornerFor(rec, deskX, deskY), deskX, deskY)
		}
		return m, nil
	}
	if mouse.Button != tea.MouseLeft {
		return m, nil
	}

	// In interact mode a click only moves focus; the panel keeps the
	// keyboard.
	if m.Mode == app.InteractMode {
		m.Registry.Focus(rec.ID)
		return m, nil
	}

	// Border press resizes. The top edge doubles as the title bar, so a
	// plain north hit falls through to dragging while the corners still
	// resize.
	if dir, ok := wm.Cursor(rec.Bounds(), deskX, deskY); ok && dir != wm.DirN {
		if m.Resize.Start(rec.ID, dir, deskX, deskY) {
			return m, nil
		}
	}
	if deskY == rec.Y {
		if m.Drag.Start(rec.ID, deskX, deskY) {
			return m, nil
		}
	}

	m.Registry.Focus(rec.ID)
	return m, nil
}

// handleMouseMotion tracks the pointer and feeds active drag or resize
// sessions.
func handleMouseMotion(msg tea.MouseMotionMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	mouse := msg.Mouse()
	m.LastMouseX = mouse.X
	m.LastMouseY = mouse.Y

	deskX, deskY := m.ScreenToDesk(mouse.X, mouse.Y)
	if m.Drag.Active() {
		m.Drag.Move(deskX, deskY)
		return m, nil
	}
	if m.Resize.Active() {
		m.Resize.Move(deskX, deskY)
		return m, nil
	}
	return m, nil
}

// handleMouseRelease commits the running drag or resize session.
func handleMouseRelease(msg tea.MouseReleaseMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	mouse := msg.Mouse()
	deskX, deskY := m.ScreenToDesk(mouse.X, mouse.Y)

	if m.Drag.Active() {
		m.Drag.End(deskX, deskY)
		return m, nil
	}
	if m.Resize.Active() {
		m.Resize.End(deskX, deskY)
		return m, nil
	}
	return m, nil
}

// handleMouseWheel handles mouse wheel events
func handleMouseWheel(msg tea.MouseWheelMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	// Handle scrolling in help and log viewers
	if m.ShowHelp {
		switch msg.Button {
		case tea.MouseWheelUp:
			m.HelpScrollOffset = max(m.HelpScrollOffset-2, 0)
		case tea.MouseWheelDown:
			m.HelpScrollOffset += 2
		}
		return m, nil
	}

	if m.ShowLogs {
		_, maxScroll := m.LogScrollBounds()

		switch msg.Button {
		case tea.MouseWheelUp:
			if m.LogScrollOffset > 0 {
				m.LogScrollOffset--
			}
		case tea.MouseWheelDown:
			if m.LogScrollOffset < maxScroll {
				m.LogScrollOffset++
			}
		}
		return m, nil
	}

	// The wheel scrolls the panel under the pointer, focused or not.
	mouse := msg.Mouse()
	if m.InDockArea(mouse.Y) {
		return m, nil
	}
	deskX, deskY := m.ScreenToDesk(mouse.X, mouse.Y)
	rec := findClickedWindow(m, deskX, deskY)
	if rec == nil {
		return m, nil
	}
	scroller, ok := rec.Content.(content.Scroller)
	if !ok {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseWheelUp:
		scroller.Scroll(-3)
	case tea.MouseWheelDown:
		scroller.Scroll(3)
	default:
		return m, nil
	}
	rec.MarkContentDirty()
	return m, nil
}
