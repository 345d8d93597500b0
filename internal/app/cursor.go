package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/content"
)

// getRealCursor returns a real terminal cursor for the focused panel,
// or nil to hide it. Panels report their caret in content coordinates;
// only interact mode shows it, and only while no overlay covers the
// desk.
func (m *Manager) getRealCursor() *tea.Cursor {
	if m.Mode != InteractMode {
		return nil
	}
	if m.ShowHelp || m.ShowLogs || m.ShowDiagnostics {
		return nil
	}

	rec := m.ActiveWindow()
	if rec == nil || rec.Minimized {
		return nil
	}

	provider, ok := rec.Content.(content.CursorProvider)
	if !ok {
		return nil
	}
	x, y, ok := provider.Cursor()
	if !ok {
		return nil
	}

	contentWidth := rec.Width - 2
	contentHeight := rec.Height - 2
	if x < 0 || x >= contentWidth || y < 0 || y >= contentHeight {
		return nil
	}

	// Transform to screen coordinates: +1 for the border, plus the
	// desk offset.
	cursor := tea.NewCursor(rec.X+1+x, rec.Y+m.GetTopMargin()+1+y)
	cursor.Shape = tea.CursorBar
	cursor.Blink = true
	return cursor
}
