package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// DockItem is one docked window pill with its clickable span.
type DockItem struct {
	ID     string
	StartX int
	EndX   int // exclusive
}

// DockLayout is the computed dock geometry. The renderer and the mouse
// hit test both build their view of the dock from this, so a click on a
// pill always matches the pill the user sees.
type DockLayout struct {
	Y     int
	Items []DockItem
}

// CalculateDockLayout positions the docked window pills, centered on
// the dock row in minimize order, capped at MaxDockItems.
func (m *Manager) CalculateDockLayout() DockLayout {
	layout := DockLayout{Y: m.GetDockContentY()}

	docked := m.Registry.Minimized()
	if len(docked) > config.MaxDockItems {
		docked = docked[:config.MaxDockItems]
	}
	if len(docked) == 0 {
		return layout
	}

	widths := make([]int, len(docked))
	total := 0
	sepWidth := ansi.StringWidth(config.GetDockSeparator())
	for i, rec := range docked {
		widths[i] = ansi.StringWidth(dockLabel(i, rec)) + 2 // plus pill chars
		total += widths[i]
		if i > 0 {
			total += sepWidth
		}
	}

	x := max((m.Width-total)/2, 0)
	for i, rec := range docked {
		if i > 0 {
			x += sepWidth
		}
		layout.Items = append(layout.Items, DockItem{
			ID:     rec.ID,
			StartX: x,
			EndX:   x + widths[i],
		})
		x += widths[i]
	}
	return layout
}

// dockLabel is the pill text for the i-th docked window: restore digit,
// kind glyph, truncated title.
func dockLabel(i int, rec *wm.WindowRecord) string {
	title := rec.Title
	if provider, ok := rec.Content.(content.Provider); ok {
		title = provider.Title()
	}
	tail := "…"
	if config.UseASCIIOnly {
		tail = ".."
	}
	title = ansi.Truncate(title, config.MaxNameLengthDock, tail)
	return fmt.Sprintf(" %d %s %s ", i+1, content.KindGlyph(rec.Kind), title)
}

// renderDock paints the dock bar: mode icon on the left, docked window
// pills in the middle, window counts on the right.
func (m *Manager) renderDock() *lipgloss.Layer {
	layout := m.CalculateDockLayout()

	bg := theme.DockBg()
	base := lipgloss.NewStyle().Background(bg).Foreground(theme.DockFg())

	modeIcon := config.GetDockModeIconDesk()
	modeColor := theme.DockColorDesk()
	if m.Mode == InteractMode {
		modeIcon = config.GetDockModeIconInteract()
		modeColor = theme.DockColorInteract()
	}
	left := lipgloss.NewStyle().
		Background(modeColor).
		Foreground(theme.ButtonFg()).
		Render(modeIcon)

	right := base.Render(fmt.Sprintf(" %s %d  %s %d ",
		config.GetDockIconWindowCount(), m.Registry.Len(),
		config.GetDockIconMinimizedCount(), len(m.Registry.Minimized()),
	))

	builder := pool.GetBuilder()
	defer pool.PutBuilder(builder)
	builder.WriteString(left)
	cursor := lipgloss.Width(left)

	docked := m.Registry.Minimized()
	sepStyle := lipgloss.NewStyle().Background(bg).Foreground(theme.DockSeparator())
	for i, item := range layout.Items {
		pad := item.StartX - cursor
		if pad > 0 {
			if i == 0 {
				builder.WriteString(base.Render(strings.Repeat(" ", pad)))
			} else {
				builder.WriteString(sepStyle.Render(config.GetDockSeparator()))
				if extra := pad - lipgloss.Width(config.GetDockSeparator()); extra > 0 {
					builder.WriteString(base.Render(strings.Repeat(" ", extra)))
				}
			}
			cursor = item.StartX
		}

		rec := docked[i]
		accent := theme.KindAccent(string(rec.Kind))
		hovered := m.LastMouseY == layout.Y && m.LastMouseX >= item.StartX && m.LastMouseX < item.EndX
		pillBg := accent
		if hovered {
			pillBg = theme.DockHighlight()
		}

		pillEdge := lipgloss.NewStyle().Background(bg).Foreground(pillBg)
		pillBody := lipgloss.NewStyle().Background(pillBg).Foreground(theme.ButtonFg())

		builder.WriteString(pillEdge.Render(config.GetDockPillLeftChar()))
		builder.WriteString(pillBody.Render(dockLabel(i, rec)))
		builder.WriteString(pillEdge.Render(config.GetDockPillRightChar()))
		cursor = item.EndX
	}

	if pad := m.Width - cursor - lipgloss.Width(right); pad > 0 {
		builder.WriteString(base.Render(strings.Repeat(" ", pad)))
	}
	builder.WriteString(right)

	return lipgloss.NewLayer(builder.String()).
		X(0).Y(layout.Y).
		Z(config.ZIndexDock).
		ID("dock")
}
