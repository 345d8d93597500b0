// Package app hosts the flotilla desk: a Bubble Tea model that owns the
// window registry, the drag and resize controllers, and the overlay
// state painted on top of the window layers.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/sysinfo"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// Mode selects how input is routed.
type Mode int

const (
	// DeskMode routes keys and the mouse to window management.
	DeskMode Mode = iota
	// InteractMode forwards keys to the focused window's panel.
	InteractMode
)

func (m Mode) String() string {
	if m == InteractMode {
		return "INTERACT"
	}
	return "DESK"
}

// Manager is the desk model. Window geometry lives in the registry in
// desk coordinates: (0,0) is the first row below the status bar (and
// below the dock when the dock sits at the top). Rendering and mouse
// handling translate through GetTopMargin.
type Manager struct {
	Registry *wm.Registry
	Drag     *wm.DragController
	Resize   *wm.ResizeController

	Width  int
	Height int

	Mode Mode

	// Pointer bookkeeping shared with the input package, in screen
	// coordinates.
	LastMouseX int
	LastMouseY int

	ShowHelp         bool
	HelpScrollOffset int
	ShowLogs         bool
	LogScrollOffset  int
	ShowDiagnostics  bool

	LogMessages   []LogMessage
	Notifications []Notification

	Sysinfo *sysinfo.Sampler
	Clock   string

	KeybindRegistry *config.KeybindRegistry

	idleFrames        int // consecutive ticks with no changes, for adaptive tick
	renderSkipped     bool
	cachedViewContent string
	lastGeneration    uint64
}

// Notification is a transient toast in the top-right corner.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage is one entry in the in-memory log ring.
type LogMessage struct {
	Time    time.Time
	Level   string // DEBUG, INFO, WARN, ERROR
	Message string
}

func createID() string {
	return uuid.New().String()
}

// NewManager builds the desk model. The keybind registry comes from the
// loaded user config so the help overlay and the dispatcher agree on
// keys; nil falls back to defaults at the call sites that consult it.
func NewManager(width, height int, keybinds *config.KeybindRegistry) *Manager {
	reg := wm.New(wm.Config{
		MinWidth:       config.MinWindowWidth,
		MinHeight:      config.MinWindowHeight,
		DragSlack:      config.DragSlackCells,
		DefaultWidth:   config.DefaultWindowWidth,
		DefaultHeight:  config.DefaultWindowHeight,
		CascadeStride:  config.CascadeStrideCells,
		CascadeWrap:    config.CascadeWrapCount,
		CascadePolicy:  wm.ParseCascadePolicy(config.CascadePolicyName),
		ViewportWidth:  config.DefaultTerminalWidth,
		ViewportHeight: config.DefaultTerminalHeight - config.StatusBarHeight - config.DockHeight,
	})

	m := &Manager{
		Registry:        reg,
		Drag:            wm.NewDragController(reg),
		Resize:          wm.NewResizeController(reg),
		Width:           width,
		Height:          height,
		Mode:            DeskMode,
		Sysinfo:         sysinfo.NewSampler(config.SysinfoUpdateInterval, config.CPUHistorySize),
		Clock:           time.Now().Format("15:04"),
		KeybindRegistry: keybinds,
	}

	if width > 0 && height > 0 {
		reg.SetViewport(width, m.GetUsableHeight())
	}
	reg.SetLogf(m.LogDebug)
	return m
}

// Interacting reports whether a drag or resize session is running.
func (m *Manager) Interacting() bool {
	return m.Drag.Active() || m.Resize.Active()
}

// Log appends to the log ring, keeping the viewer pinned to the bottom
// when it already was there.
func (m *Manager) Log(level, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	entry := LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: message,
	}

	wasAtBottom := false
	if m.ShowLogs {
		_, maxScroll := m.LogScrollBounds()
		wasAtBottom = m.LogScrollOffset >= maxScroll-2
	}

	m.LogMessages = append(m.LogMessages, entry)
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	if wasAtBottom && m.ShowLogs {
		_, maxScroll := m.LogScrollBounds()
		m.LogScrollOffset = maxScroll
	}

	if path := os.Getenv("FLOTILLA_DEBUG"); path != "" {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); err == nil {
			_, _ = fmt.Fprintf(f, "%s [%s] %s\n", entry.Time.Format("15:04:05.000"), level, message)
			_ = f.Close()
		}
	}
}

// LogDebug logs a debug message. The registry's silent no-op
// diagnostics arrive through here.
func (m *Manager) LogDebug(format string, args ...any) {
	m.Log("DEBUG", format, args...)
}

// LogInfo logs an informational message.
func (m *Manager) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *Manager) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *Manager) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

// LogScrollBounds returns the viewer page size and the largest valid
// scroll offset for the current terminal height. The render path, the
// keyboard handler, and the sticky-scroll logic all share this so they
// agree on what "bottom" means.
func (m *Manager) LogScrollBounds() (logsPerPage, maxScroll int) {
	maxDisplayHeight := max(m.Height-8, 8)
	totalLogs := len(m.LogMessages)

	// Fixed overhead: title, blank after title, blank before hint, hint.
	fixedLines := 4
	if totalLogs > maxDisplayHeight-fixedLines {
		fixedLines = 6 // plus blank and scroll indicator
	}
	logsPerPage = max(maxDisplayHeight-fixedLines, 1)
	maxScroll = max(totalLogs-logsPerPage, 0)
	return logsPerPage, maxScroll
}

// ShowNotification displays a temporary toast and mirrors it into the
// log ring at the matching level.
func (m *Manager) ShowNotification(message, notifType string, duration time.Duration) {
	m.Notifications = append(m.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes toasts whose duration has elapsed.
func (m *Manager) CleanupNotifications(now time.Time) {
	var active []Notification
	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	m.Notifications = active
}

// OpenWindow spawns a window hosting a fresh panel of the given kind
// and returns its record. Unknown kinds raise an error toast.
func (m *Manager) OpenWindow(kind wm.Kind) *wm.WindowRecord {
	provider, ok := content.New(kind)
	if !ok {
		m.ShowNotification(fmt.Sprintf("No panel registered for %q", kind), "error", config.NotificationDuration)
		return nil
	}

	rec, ok := m.Registry.Open(createID(), kind, provider, wm.WithTitle(provider.Title()))
	if !ok {
		return nil
	}
	m.LogInfo("Opened %s window %s", kind, rec.ID[:8])
	return rec
}

// CloseWindow closes the window and drops back to desk mode when the
// last one goes away. Closing a window with a live drag or resize
// session aborts that session inside the registry.
func (m *Manager) CloseWindow(id string) {
	if id == "" {
		return
	}
	if m.Registry.Close(id) {
		m.LogInfo("Closed window %s", id[:min(8, len(id))])
	}
	if m.Registry.Len() == 0 {
		m.Mode = DeskMode
	}
	m.cachedViewContent = ""
}

// CloseActiveWindow closes the active window, if any.
func (m *Manager) CloseActiveWindow() {
	m.CloseWindow(m.Registry.ActiveID())
}

// ActiveWindow returns the active record, or nil.
func (m *Manager) ActiveWindow() *wm.WindowRecord {
	rec, ok := m.Registry.Get(m.Registry.ActiveID())
	if !ok {
		return nil
	}
	return rec
}

// ActiveProvider returns the active window's panel, or nil. Panels are
// stored as opaque content on the record, so windows opened through the
// registry directly may have none.
func (m *Manager) ActiveProvider() content.Provider {
	rec := m.ActiveWindow()
	if rec == nil {
		return nil
	}
	provider, _ := rec.Content.(content.Provider)
	return provider
}

// CycleNext moves focus to the next visible window in paint order.
func (m *Manager) CycleNext() {
	m.cycleFocus(1)
}

// CyclePrev moves focus to the previous visible window in paint order.
func (m *Manager) CyclePrev() {
	m.cycleFocus(-1)
}

func (m *Manager) cycleFocus(step int) {
	visible := m.Registry.List()
	if len(visible) == 0 {
		return
	}
	current := -1
	activeID := m.Registry.ActiveID()
	for i, rec := range visible {
		if rec.ID == activeID {
			current = i
			break
		}
	}
	next := (current + step + len(visible)) % len(visible)
	m.Registry.Focus(visible[next].ID)
}

// RestoreMinimizedByIndex restores the index-th docked window, counting
// from zero in dock order. Out-of-range indexes do nothing.
func (m *Manager) RestoreMinimizedByIndex(index int) {
	minimized := m.Registry.Minimized()
	if index < 0 || index >= len(minimized) {
		return
	}
	m.Registry.Restore(minimized[index].ID)
}

// EnterInteractMode switches to interact mode. It needs a window to
// interact with; a minimized active window is restored first.
func (m *Manager) EnterInteractMode() bool {
	rec := m.ActiveWindow()
	if rec == nil {
		return false
	}
	if rec.Minimized {
		m.Registry.Restore(rec.ID)
	}
	m.Mode = InteractMode
	rec.MarkContentDirty()
	m.cachedViewContent = ""
	return true
}

// EnterDeskMode switches back to window management.
func (m *Manager) EnterDeskMode() {
	m.Mode = DeskMode
	if rec := m.ActiveWindow(); rec != nil {
		rec.MarkContentDirty()
	}
	m.cachedViewContent = ""
}

// GetTopMargin returns the first desk row in screen coordinates. The
// status bar always holds row zero; a top dock pushes the desk further
// down.
func (m *Manager) GetTopMargin() int {
	if config.DockPosition == "top" {
		return config.StatusBarHeight + config.DockHeight
	}
	return config.StatusBarHeight
}

// GetUsableHeight returns the desk height: the rows windows may occupy.
func (m *Manager) GetUsableHeight() int {
	h := m.Height - config.StatusBarHeight
	if config.DockPosition != "hidden" {
		h -= config.DockHeight
	}
	return max(h, 1)
}

// GetDockContentY returns the screen row of the dock bar.
func (m *Manager) GetDockContentY() int {
	if config.DockPosition == "top" {
		return config.StatusBarHeight
	}
	return m.Height - 1
}

// InDockArea reports whether the screen row lands on a dock row.
func (m *Manager) InDockArea(y int) bool {
	if config.DockPosition == "hidden" {
		return false
	}
	if config.DockPosition == "top" {
		return y >= config.StatusBarHeight && y < config.StatusBarHeight+config.DockHeight
	}
	return y >= m.Height-config.DockHeight
}

// ScreenToDesk translates a screen position into desk coordinates.
func (m *Manager) ScreenToDesk(x, y int) (int, int) {
	return x, y - m.GetTopMargin()
}

// HandleResize applies a new terminal size: the registry viewport
// follows the desk area, maximized windows refill it, and floating
// windows are pulled back inside.
func (m *Manager) HandleResize(width, height int) {
	m.Width = width
	m.Height = height
	m.Registry.SetViewport(width, m.GetUsableHeight())
	m.Registry.FillViewport()
	m.ClampWindowsToView()
	m.MarkAllDirty()
}

// ClampWindowsToView pulls floating windows back inside the desk after
// the viewport shrank. Sizes are capped to the desk first so the
// position clamp has room to work with; the same slack the drag clamp
// allows is honored here.
func (m *Manager) ClampWindowsToView() {
	vw, vh := m.Registry.Viewport()
	if vw <= 0 || vh <= 0 {
		return
	}
	slack := m.Registry.Config().DragSlack

	for _, rec := range m.Registry.Records() {
		if rec.Minimized || rec.Maximized {
			continue
		}

		w := min(rec.Width, vw)
		h := min(rec.Height, vh)

		x := rec.X
		if hi := vw - w + slack; x > hi {
			x = hi
		}
		if x < -slack {
			x = -slack
		}

		y := rec.Y
		if hi := vh - h; y > hi {
			y = hi
		}
		if y < 0 {
			y = 0
		}

		if x != rec.X || y != rec.Y || w != rec.Width || h != rec.Height {
			m.Registry.SetBounds(rec.ID, x, y, w, h)
		}
	}
}

// MarkAllDirty invalidates every window cache and the view cache.
func (m *Manager) MarkAllDirty() {
	for _, rec := range m.Registry.Records() {
		rec.InvalidateCache()
	}
	m.cachedViewContent = ""
}
