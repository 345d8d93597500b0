package input

import (
	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// ActionHandler is a function that handles a specific action
type ActionHandler func(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd)

// ActionDispatcher maps action names to handler functions
type ActionDispatcher struct {
	handlers map[string]ActionHandler
}

// NewActionDispatcher creates a new action dispatcher with all handlers registered
func NewActionDispatcher() *ActionDispatcher {
	d := &ActionDispatcher{
		handlers: make(map[string]ActionHandler),
	}
	d.registerHandlers()
	return d
}

// registerHandlers registers all action handlers
func (d *ActionDispatcher) registerHandlers() {
	// Window actions
	d.Register("open_composer", makeOpenWindowHandler(content.KindComposer))
	d.Register("open_dialer", makeOpenWindowHandler(content.KindDialer))
	d.Register("open_sms", makeOpenWindowHandler(content.KindSMS))
	d.Register("open_notes", makeOpenWindowHandler(content.KindNotes))
	d.Register("close_window", handleCloseWindow)
	d.Register("minimize_window", handleMinimizeWindow)
	d.Register("restore_all", handleRestoreAll)
	d.Register("toggle_maximize", handleToggleMaximize)
	d.Register("next_window", handleNextWindow)
	d.Register("prev_window", handlePrevWindow)

	// Mode control actions
	d.Register("enter_interact_mode", handleEnterInteractMode)
	d.Register("enter_desk_mode", handleEnterDeskMode)
	d.Register("toggle_help", handleToggleHelp)
	d.Register("quit", handleQuit)

	// System actions
	d.Register("toggle_logs", handleToggleLogs)
	d.Register("toggle_diagnostics", handleToggleDiagnostics)

	// Restore minimized by index (1-9)
	for i := range 9 {
		d.Register("restore_minimized_"+string(rune('1'+i)), makeRestoreMinimizedHandler(i))
	}
}

// Register adds an action handler
func (d *ActionDispatcher) Register(action string, handler ActionHandler) {
	d.handlers[action] = handler
}

// Dispatch executes the handler for a given action
func (d *ActionDispatcher) Dispatch(action string, msg tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	if handler, ok := d.handlers[action]; ok {
		return handler(msg, m)
	}
	return m, nil
}

// HasAction checks if an action is registered
func (d *ActionDispatcher) HasAction(action string) bool {
	_, ok := d.handlers[action]
	return ok
}

// Global action dispatcher instance
var globalDispatcher = NewActionDispatcher()

// GetDispatcher returns the global action dispatcher
func GetDispatcher() *ActionDispatcher {
	return globalDispatcher
}

// ============================================================================
// Window Action Handlers
// ============================================================================

// makeOpenWindowHandler creates a handler that opens a window of the
// given panel kind.
func makeOpenWindowHandler(kind wm.Kind) ActionHandler {
	return func(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
		m.OpenWindow(kind)
		return m, nil
	}
}

func handleCloseWindow(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.CloseActiveWindow()
	return m, nil
}

func handleMinimizeWindow(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	if rec := m.ActiveWindow(); rec != nil && !rec.Minimized {
		m.Registry.Minimize(rec.ID)
	}
	return m, nil
}

func handleRestoreAll(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.Registry.RestoreAll()
	return m, nil
}

func handleToggleMaximize(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	if id := m.Registry.ActiveID(); id != "" {
		m.Registry.ToggleMaximize(id)
	}
	return m, nil
}

func handleNextWindow(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.CycleNext()
	return m, nil
}

func handlePrevWindow(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.CyclePrev()
	return m, nil
}

// ============================================================================
// Mode Control Action Handlers
// ============================================================================

func handleEnterInteractMode(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	if !m.EnterInteractMode() {
		m.LogWarn("Cannot enter interact mode: no focused window")
		return m, nil
	}
	m.ShowNotification("Interact Mode", "info", config.NotificationDuration)
	return m, nil
}

func handleEnterDeskMode(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.EnterDeskMode()
	return m, nil
}

func handleToggleHelp(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.ShowHelp = !m.ShowHelp
	if m.ShowHelp {
		m.HelpScrollOffset = 0 // Reset scroll when opening
	}
	return m, nil
}

func handleQuit(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	return m, tea.Quit
}

// ============================================================================
// System Action Handlers
// ============================================================================

func handleToggleLogs(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	wasShowing := m.ShowLogs
	m.ShowLogs = !m.ShowLogs
	if m.ShowLogs && !wasShowing {
		m.LogInfo("Log viewer opened")

		// Scroll to bottom to show most recent entries
		_, maxScroll := m.LogScrollBounds()
		m.LogScrollOffset = maxScroll
	}
	return m, nil
}

func handleToggleDiagnostics(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
	m.ShowDiagnostics = !m.ShowDiagnostics
	if m.ShowDiagnostics {
		m.LogInfo("Diagnostics viewer opened")
	}
	return m, nil
}

// ============================================================================
// Restore Minimized Window Handlers
// ============================================================================

func makeRestoreMinimizedHandler(index int) ActionHandler {
	return func(_ tea.KeyPressMsg, m *app.Manager) (*app.Manager, tea.Cmd) {
		m.RestoreMinimizedByIndex(index)
		return m, nil
	}
}
