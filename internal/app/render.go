package app

import (
	"fmt"
	"image/color"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// GetCanvas composes the frame: windows in ascending z order, then the
// chrome (status bar, dock, overlays) when render is set. A window with
// a live drag or resize session is drawn at the controller's in-flight
// geometry; the registry keeps the committed geometry until the session
// ends, so that window bypasses the layer cache while manipulated.
func (m *Manager) GetCanvas(render bool) *lipgloss.Canvas {
	canvas := lipgloss.NewCanvas(m.Width, m.Height)

	layers := pool.GetLayerSlice()

	topMargin := m.GetTopMargin()
	viewportWidth := m.Width
	viewportHeight := m.GetUsableHeight()

	box := lipgloss.NewStyle().
		Align(lipgloss.Left).
		AlignVertical(lipgloss.Top).
		Border(getBorder()).
		BorderTop(false)

	visible := m.Registry.List()
	for _, rec := range visible {
		x, y, w, h := rec.X, rec.Y, rec.Width, rec.Height

		manipulated := false
		if m.Drag.ActiveID() == rec.ID {
			if px, py, ok := m.Drag.Position(); ok {
				x, y = px, py
				manipulated = true
			}
		}
		if m.Resize.ActiveID() == rec.ID {
			if b, ok := m.Resize.Bounds(); ok {
				x, y, w, h = b.X, b.Y, b.Width, b.Height
				manipulated = true
			}
		}

		margin := 5
		isVisible := x+w >= -margin &&
			x <= viewportWidth+margin &&
			y+h >= -margin &&
			y <= viewportHeight+margin
		if !isVisible {
			continue
		}

		var borderColor color.Color
		if rec.Active {
			if m.Mode == InteractMode {
				borderColor = theme.BorderFocusedInteract()
			} else {
				borderColor = theme.BorderFocusedDesk()
			}
		} else {
			borderColor = theme.BorderUnfocused()
		}

		if rec.CachedLayer != nil && !manipulated &&
			!rec.Dirty && !rec.ContentDirty && !rec.PositionDirty {
			layers = append(layers, rec.CachedLayer)
			continue
		}

		body := m.renderPanel(rec, w, h)

		boxContent := addToBorder(
			box.Width(w).
				Height(h-1).
				BorderForeground(borderColor).
				Render(body),
			borderColor,
			rec,
		)

		clipped, finalX, finalY := clipWindowContent(
			boxContent,
			x, y+topMargin,
			viewportWidth, topMargin+viewportHeight,
		)

		layer := lipgloss.NewLayer(clipped).X(finalX).Y(finalY).Z(rec.Z).ID(rec.ID)
		layers = append(layers, layer)

		if !manipulated {
			rec.CachedLayer = layer
			rec.ClearDirtyFlags()
		}
	}

	if render {
		if len(visible) == 0 {
			layers = append(layers, m.renderWelcome())
		}

		layers = append(layers, m.renderStatusBar())
		if config.DockPosition != "hidden" {
			layers = append(layers, m.renderDock())
		}
		layers = append(layers, m.renderOverlays()...)
	}

	for _, layer := range layers {
		canvas.Compose(layer)
	}
	pool.PutLayerSlice(layers)

	m.lastGeneration = m.Registry.Generation()
	return canvas
}

// renderPanel renders a window's panel into its content box. A panicking
// panel is replaced with an error placeholder instead of taking down the
// whole program.
func (m *Manager) renderPanel(rec *wm.WindowRecord, w, h int) (body string) {
	contentWidth := max(w-2, 1)
	contentHeight := max(h-2, 1)

	provider, ok := rec.Content.(content.Provider)
	if !ok {
		return ""
	}

	defer func() {
		if r := recover(); r != nil {
			m.LogError("Panel %s crashed: %v", rec.Kind, r)
			body = lipgloss.NewStyle().
				Foreground(theme.NotificationError()).
				Render(fmt.Sprintf("panel error: %v", r))
		}
	}()

	return provider.Render(contentWidth, contentHeight)
}

// View renders the frame, reusing the cached content when the tick loop
// decided nothing changed.
func (m *Manager) View() tea.View {
	var view tea.View

	if m.renderSkipped && m.cachedViewContent != "" {
		view.SetContent(m.cachedViewContent)
	} else {
		frame := lipgloss.Sprint(m.GetCanvas(true).Render())
		m.cachedViewContent = frame
		view.SetContent(frame)
	}

	view.AltScreen = true

	// Desk mode wants hover events for the dock and resize edges;
	// interact mode only needs press-and-drag motion.
	if m.Mode == InteractMode {
		view.MouseMode = tea.MouseModeCellMotion
	} else {
		view.MouseMode = tea.MouseModeAllMotion
	}

	view.ReportFocus = true
	view.Cursor = m.getRealCursor()

	return view
}
