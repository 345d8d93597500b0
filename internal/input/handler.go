// Package input routes keyboard and mouse events to the desk.
//
// Keys are resolved through the keybind registry and dispatched by
// action name in desk mode; in interact mode they are forwarded to the
// focused window's panel.
package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
)

// HandleInput is the main input coordinator that routes messages to
// the keyboard and mouse handlers.
func HandleInput(msg tea.Msg, m *app.Manager) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return HandleKeyPress(msg, m)
	case tea.PasteStartMsg:
		return m, nil
	case tea.PasteEndMsg:
		return m, nil
	case tea.MouseClickMsg:
		return handleMouseClick(msg, m)
	case tea.MouseMotionMsg:
		return handleMouseMotion(msg, m)
	case tea.MouseReleaseMsg:
		return handleMouseRelease(msg, m)
	case tea.MouseWheelMsg:
		return handleMouseWheel(msg, m)
	case tea.PasteMsg:
		// Bracketed paste lands in the focused panel, one key per rune.
		if m.Mode == app.InteractMode {
			pasteIntoPanel(msg.Content, m)
		}
		return m, nil
	default:
		return m, nil
	}
}

// pasteIntoPanel replays pasted text into the active panel. Newlines
// become enter presses so multi-line pastes keep their shape.
func pasteIntoPanel(text string, m *app.Manager) {
	rec := m.ActiveWindow()
	if rec == nil {
		return
	}
	receiver, ok := rec.Content.(content.KeyReceiver)
	if !ok {
		return
	}
	changed := false
	for _, r := range text {
		switch r {
		case '\n':
			changed = receiver.HandleKey("enter") || changed
		case '\r', '\t':
			// Skip carriage returns and tabs; tabs would move field
			// focus mid-paste.
		default:
			changed = receiver.HandleKey(string(r)) || changed
		}
	}
	if changed {
		rec.MarkContentDirty()
	}
}

// lookupAction resolves a key through the manager's keybind registry,
// falling back to the default bindings when none was wired.
func lookupAction(m *app.Manager, key string) (string, bool) {
	if m.KeybindRegistry != nil {
		return m.KeybindRegistry.ActionForKey(key)
	}
	return fallbackKeybinds.ActionForKey(key)
}

var fallbackKeybinds = config.NewKeybindRegistry(config.DefaultConfig())
