package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/content"
)

// HandleKeyPress handles all keyboard input and routes to mode-specific
// handlers. Overlays capture the keyboard in both modes.
func HandleKeyPress(msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	if m.ShowHelp {
		return handleHelpOverlayKey(msg, m)
	}
	if m.ShowLogs {
		return handleLogViewerKey(msg, m)
	}
	if m.ShowDiagnostics {
		return handleDiagnosticsKey(msg, m)
	}

	if m.Mode == app.InteractMode {
		return HandleInteractModeKey(msg, m)
	}
	return HandleDeskModeKey(msg, m)
}

// HandleDeskModeKey handles keys in desk mode by resolving them to
// configured actions.
func HandleDeskModeKey(msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	key := msg.String()

	if action, ok := lookupAction(m, key); ok {
		dispatcher := GetDispatcher()
		if dispatcher.HasAction(action) {
			return dispatcher.Dispatch(action, msg, m)
		}
	}

	// Always allow quitting even if the binding was removed.
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	return m, nil
}

// HandleInteractModeKey forwards keys to the focused window's panel.
// Only the desk-mode-return binding and ctrl+c are intercepted; every
// other key belongs to the panel.
func HandleInteractModeKey(msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	key := msg.String()

	if action, ok := lookupAction(m, key); ok && action == "enter_desk_mode" {
		m.EnterDeskMode()
		return m, nil
	}
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	rec := m.ActiveWindow()
	if rec == nil || rec.Minimized {
		m.EnterDeskMode()
		return m, nil
	}
	receiver, ok := rec.Content.(content.KeyReceiver)
	if !ok {
		return m, nil
	}

	// Printable keys arrive as literal text so panels see "A" rather
	// than "shift+a".
	if msg.Text != "" {
		key = msg.Text
	}
	if receiver.HandleKey(key) {
		rec.MarkContentDirty()
	}
	return m, nil
}

// handleHelpOverlayKey handles keyboard input while the help overlay is
// open. The overlay clamps the scroll offset at render time, so only
// the lower bound is guarded here.
func handleHelpOverlayKey(msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "?":
		m.ShowHelp = false
		m.HelpScrollOffset = 0
	case "up", "k":
		if m.HelpScrollOffset > 0 {
			m.HelpScrollOffset--
		}
	case "down", "j":
		m.HelpScrollOffset++
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleLogViewerKey handles keyboard input while the log viewer
// overlay is open.
func handleLogViewerKey(msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	key := msg.String()

	if key == "q" || key == "esc" || key == "ctrl+l" {
		m.ShowLogs = false
		m.LogScrollOffset = 0
		return m, nil
	}

	logsPerPage, maxScroll := m.LogScrollBounds()

	switch key {
	case "up", "k":
		if m.LogScrollOffset > 0 {
			m.LogScrollOffset--
		}
	case "down", "j":
		if m.LogScrollOffset < maxScroll {
			m.LogScrollOffset++
		}
	case "pgup", "ctrl+u":
		m.LogScrollOffset = max(m.LogScrollOffset-max(logsPerPage/2, 1), 0)
	case "pgdown", "ctrl+d":
		m.LogScrollOffset = min(m.LogScrollOffset+max(logsPerPage/2, 1), maxScroll)
	case "g", "home":
		m.LogScrollOffset = 0
	case "G", "end":
		m.LogScrollOffset = maxScroll
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleDiagnosticsKey handles keyboard input while the diagnostics
// overlay is open.
func handleDiagnosticsKey(msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+d":
		m.ShowDiagnostics = false
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}
