package app

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/config"
)

// TickerMsg is the periodic tick driving the update loop. Exported so
// the input package can synthesize ticks in tests.
type TickerMsg time.Time

// InputHandler handles keyboard and mouse messages. The input package
// registers one at startup; routing through a function value keeps the
// app and input packages free of an import cycle.
type InputHandler func(msg tea.Msg, m *Manager) (tea.Model, tea.Cmd)

var inputHandler InputHandler

// SetInputHandler registers the input handler. Must be called before
// the program starts.
func SetInputHandler(handler InputHandler) {
	inputHandler = handler
}

// Init starts the tick timer.
func (m *Manager) Init() tea.Cmd {
	return TickCmd()
}

// TickCmd ticks at the normal frame rate.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.NormalFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// SlowTickCmd ticks at the interaction frame rate. Mouse drags saturate
// the event loop on their own; a slower tick keeps motion handling
// responsive.
func SlowTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.InteractionFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// IdleTickCmd ticks at the idle frame rate to keep the clock and gauges
// moving while nothing else changes.
func IdleTickCmd() tea.Cmd {
	return tea.Tick(time.Second/config.IdleFPS, func(t time.Time) tea.Msg {
		return TickerMsg(t)
	})
}

// Update handles all incoming messages.
func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Any non-tick message invalidates the frame-skip fast path.
	if _, isTick := msg.(TickerMsg); !isTick {
		m.renderSkipped = false
	}

	switch msg := msg.(type) {
	case TickerMsg:
		return m.handleTick(time.Time(msg))

	case tea.KeyPressMsg, tea.MouseClickMsg, tea.MouseMotionMsg,
		tea.MouseReleaseMsg, tea.MouseWheelMsg, tea.PasteMsg:
		// Any user input restores the full tick rate.
		m.idleFrames = 0
		if inputHandler != nil {
			return inputHandler(msg, m)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.HandleResize(msg.Width, msg.Height)
		return m, nil

	case tea.MouseMsg:
		// Catch-all so unhandled mouse events don't leak elsewhere.
		return m, nil

	case tea.FocusMsg, tea.BlurMsg:
		return m, nil
	}

	return m, nil
}

func (m *Manager) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	hadNotifications := len(m.Notifications) > 0
	m.CleanupNotifications(now)

	// The status bar gauges always show, so sampling never pauses.
	sampled := m.Sysinfo.Tick(now)

	clock := now.Format("15:04")
	clockChanged := clock != m.Clock
	m.Clock = clock

	gen := m.Registry.Generation()
	hasChanges := gen != m.lastGeneration || sampled || clockChanged ||
		hadNotifications || len(m.Notifications) > 0

	nextTick := TickCmd()
	switch {
	case m.Interacting():
		m.idleFrames = 0
		nextTick = SlowTickCmd()
	case hasChanges:
		m.idleFrames = 0
	default:
		m.idleFrames++
		if m.idleFrames >= config.IdleThresholdFrames {
			nextTick = IdleTickCmd()
		}
	}

	// Frame skip: reuse the cached view when this tick changed nothing.
	if !hasChanges && !m.Interacting() && m.Registry.Len() > 0 {
		m.renderSkipped = true
		return m, nextTick
	}
	m.renderSkipped = false
	return m, nextTick
}
