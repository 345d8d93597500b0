package app

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
)

// renderStatusBar paints the top row: mode badge and clock on the left,
// CPU and memory gauges and the window count on the right.
func (m *Manager) renderStatusBar() *lipgloss.Layer {
	base := lipgloss.NewStyle().
		Background(theme.StatusBarBg()).
		Foreground(theme.StatusBarFg())

	modeColor := theme.DockColorDesk()
	if m.Mode == InteractMode {
		modeColor = theme.DockColorInteract()
	}
	modeBadge := lipgloss.NewStyle().
		Background(modeColor).
		Foreground(theme.ButtonFg()).
		Bold(true).
		Padding(0, 1).
		Render(m.Mode.String())

	left := modeBadge
	if !config.HideClock {
		left += base.Padding(0, 1).Render(m.Clock)
	}
	if rec := m.ActiveWindow(); rec != nil {
		label := windowTitle(rec, m.Width/3)
		if label != "" {
			accent := lipgloss.NewStyle().
				Background(theme.StatusBarBg()).
				Foreground(theme.KindAccent(string(rec.Kind)))
			left += accent.Render(content.KindGlyph(rec.Kind)+" ") + base.Render(label)
		}
	}

	right := fmt.Sprintf("CPU %s %s  MEM %s  %s %d ",
		m.Sysinfo.Sparkline(),
		m.Sysinfo.CPUGauge(),
		m.Sysinfo.MemoryGauge(),
		config.GetDockIconWindowCount(),
		m.Registry.Len(),
	)

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		right = ""
		gap = max(m.Width-lipgloss.Width(left), 0)
	}

	bar := left + base.Render(strings.Repeat(" ", gap)) + base.Render(right)

	return lipgloss.NewLayer(bar).
		X(0).Y(0).
		Z(config.ZIndexDock).
		ID("status")
}

// renderWelcome fills the empty desk with a splash panel.
func (m *Manager) renderWelcome() *lipgloss.Layer {
	title := "F L O T I L L A"
	if !config.UseASCIIOnly {
		title = `███████╗██╗      ██████╗ ████████╗██╗██╗     ██╗      █████╗
██╔════╝██║     ██╔═══██╗╚══██╔══╝██║██║     ██║     ██╔══██╗
█████╗  ██║     ██║   ██║   ██║   ██║██║     ██║     ███████║
██╔══╝  ██║     ██║   ██║   ██║   ██║██║     ██║     ██╔══██║
██║     ███████╗╚██████╔╝   ██║   ██║███████╗███████╗██║  ██║
╚═╝     ╚══════╝ ╚═════╝    ╚═╝   ╚═╝╚══════╝╚══════╝╚═╝  ╚═╝`
	}

	openKey, helpKey := "c", "?"
	if m.KeybindRegistry != nil {
		if keys := m.KeybindRegistry.GetKeysForDisplay("open_composer"); keys != "" {
			openKey = keys
		}
		if keys := m.KeybindRegistry.GetKeysForDisplay("toggle_help"); keys != "" {
			helpKey = keys
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.WelcomeTitle()).Bold(true).Render(title),
		"",
		lipgloss.NewStyle().Foreground(theme.WelcomeSubtitle()).Render("a floating desk for your terminal"),
		"",
		lipgloss.NewStyle().Foreground(theme.WelcomeText()).Render(
			fmt.Sprintf("Press '%s' to open a window, '%s' for help", openKey, helpKey)),
	)

	boxStyle := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.WelcomeHighlight()).
		Padding(1, 2)

	centered := lipgloss.Place(
		m.Width, m.GetUsableHeight(),
		lipgloss.Center, lipgloss.Center,
		boxStyle.Render(body),
	)

	return lipgloss.NewLayer(centered).
		X(0).Y(m.GetTopMargin()).
		Z(1).
		ID("welcome")
}

// renderOverlays builds the layers stacked above the windows: help,
// logs, diagnostics, and toasts.
func (m *Manager) renderOverlays() []*lipgloss.Layer {
	var layers []*lipgloss.Layer

	if m.ShowHelp {
		layers = append(layers, lipgloss.NewLayer(m.renderHelpMenu()).
			X(0).Y(0).Z(config.ZIndexHelp).ID("help"))
	}

	if m.ShowLogs {
		layers = append(layers, lipgloss.NewLayer(m.renderLogViewer()).
			X(0).Y(0).Z(config.ZIndexLogs).ID("logs"))
	}

	if m.ShowDiagnostics {
		layers = append(layers, lipgloss.NewLayer(m.renderDiagnostics()).
			X(0).Y(0).Z(config.ZIndexDiagnostics).ID("diagnostics"))
	}

	for i, notif := range m.Notifications {
		if i >= config.MaxVisibleNotifications {
			break
		}

		var bg, icon = theme.NotificationInfo(), config.NotificationIconInfo
		switch notif.Type {
		case "error":
			bg, icon = theme.NotificationError(), config.NotificationIconError
		case "warning":
			bg, icon = theme.NotificationWarning(), config.NotificationIconWarning
		case "success":
			bg, icon = theme.NotificationSuccess(), config.NotificationIconSuccess
		}

		maxWidth := min(max(m.Width-config.NotificationMargin, config.MinNotificationWidth), config.MaxNotificationWidth)
		message := notif.Message
		if maxLen := maxWidth - 10; len(message) > maxLen && maxLen > 3 {
			message = message[:maxLen-3] + "..."
		}

		box := lipgloss.NewStyle().
			Background(bg).
			Foreground(theme.NotificationFg()).
			Padding(1, 2).
			Bold(true).
			MaxWidth(maxWidth).
			Render(fmt.Sprintf(" %s  %s ", icon, message))

		x := max(m.Width-lipgloss.Width(box)-2, 0)
		y := config.StatusBarHeight + i*config.NotificationSpacing

		layers = append(layers, lipgloss.NewLayer(box).
			X(x).Y(y).
			Z(config.ZIndexNotifications).
			ID("notif-"+notif.ID))
	}

	return layers
}

// renderHelpMenu lays the keybinding sections out as a scrollable
// centered panel.
func (m *Manager) renderHelpMenu() string {
	keyStyle := lipgloss.NewStyle().
		Foreground(theme.HelpKeyBadge()).
		Background(theme.HelpKeyBadgeBg()).
		Padding(0, 1)
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.DiagnosticsTitle()).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(theme.HelpGray())

	var lines []string
	for _, section := range config.GetKeybindings(m.KeybindRegistry) {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, titleStyle.Render(section.Title))
		for _, binding := range section.Bindings {
			badge := keyStyle.Render(binding.Key)
			pad := max(14-lipgloss.Width(badge), 1)
			lines = append(lines, "  "+badge+strings.Repeat(" ", pad)+descStyle.Render(binding.Description))
		}
	}

	maxVisible := max(m.Height-8, 4)
	maxScroll := max(len(lines)-maxVisible, 0)
	m.HelpScrollOffset = max(0, min(m.HelpScrollOffset, maxScroll))

	visible := lines[m.HelpScrollOffset:]
	if len(visible) > maxVisible {
		visible = visible[:maxVisible]
	}

	var footer string
	if maxScroll > 0 {
		footer = fmt.Sprintf("\n%s", descStyle.Render(
			fmt.Sprintf("(%d-%d of %d, j/k to scroll, esc to close)",
				m.HelpScrollOffset+1, m.HelpScrollOffset+len(visible), len(lines))))
	} else {
		footer = "\n" + descStyle.Render("(esc to close)")
	}

	panel := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.HelpBorder()).
		Padding(1, 2).
		Render(titleStyle.Render("Keybindings") + "\n\n" + strings.Join(visible, "\n") + footer)

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, panel)
}

// renderLogViewer shows the log ring with sticky scrolling.
func (m *Manager) renderLogViewer() string {
	title := lipgloss.NewStyle().
		Foreground(theme.LogViewerTitle()).
		Bold(true).
		Render("System Logs")

	logsPerPage, maxScroll := m.LogScrollBounds()
	m.LogScrollOffset = max(0, min(m.LogScrollOffset, maxScroll))

	hintStyle := lipgloss.NewStyle().Foreground(theme.HelpGray())

	builder := pool.GetBuilder()
	defer pool.PutBuilder(builder)

	builder.WriteString(title)
	builder.WriteString("\n\n")

	startIdx := m.LogScrollOffset
	displayCount := 0
	for i := startIdx; i < len(m.LogMessages) && displayCount < logsPerPage; i++ {
		entry := m.LogMessages[i]

		levelColor := theme.LogViewerInfo()
		switch entry.Level {
		case "ERROR":
			levelColor = theme.LogViewerError()
		case "WARN":
			levelColor = theme.LogViewerWarn()
		case "DEBUG":
			levelColor = theme.LogViewerDebug()
		}

		level := lipgloss.NewStyle().
			Foreground(levelColor).
			Render(fmt.Sprintf("[%s]", entry.Level))

		fmt.Fprintf(builder, "%s %s %s\n", entry.Time.Format("15:04:05"), level, entry.Message)
		displayCount++
	}

	if maxScroll > 0 {
		fmt.Fprintf(builder, "\n%s\n", hintStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d logs", startIdx+1, startIdx+displayCount, len(m.LogMessages))))
	}

	builder.WriteString("\n")
	builder.WriteString(hintStyle.Render("Press 'q'/'esc' to exit, j/k to scroll"))

	panel := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.LogViewerTitle()).
		Padding(1, 2).
		Width(config.LogViewerWidth).
		Background(theme.LogViewerBg()).
		Render(builder.String())

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, panel)
}

// renderDiagnostics shows the registry state: one row per window plus
// the session and viewport summary. Handy when a window has wandered
// off behind the drag slack.
func (m *Manager) renderDiagnostics() string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.DiagnosticsTitle()).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(theme.DiagnosticsLabel())
	valueStyle := lipgloss.NewStyle().Foreground(theme.DiagnosticsValue())
	accentStyle := lipgloss.NewStyle().Foreground(theme.DiagnosticsAccent())

	builder := pool.GetBuilder()
	defer pool.PutBuilder(builder)

	builder.WriteString(titleStyle.Render("Diagnostics"))
	builder.WriteString("\n\n")

	vw, vh := m.Registry.Viewport()
	fmt.Fprintf(builder, "%s %s   %s %s   %s %s\n",
		labelStyle.Render("mode:"), valueStyle.Render(m.Mode.String()),
		labelStyle.Render("viewport:"), valueStyle.Render(fmt.Sprintf("%dx%d", vw, vh)),
		labelStyle.Render("generation:"), valueStyle.Render(fmt.Sprintf("%d", m.Registry.Generation())),
	)

	session := "none"
	if id := m.Drag.ActiveID(); id != "" {
		session = "drag " + id[:min(8, len(id))]
	} else if id := m.Resize.ActiveID(); id != "" {
		session = "resize " + id[:min(8, len(id))]
	}
	fmt.Fprintf(builder, "%s %s\n\n", labelStyle.Render("session:"), valueStyle.Render(session))

	fmt.Fprintf(builder, "%s\n", labelStyle.Render(
		fmt.Sprintf("%-10s %-10s %4s  %-8s %s", "ID", "KIND", "Z", "STATE", "GEOMETRY")))

	for _, rec := range m.Registry.Records() {
		state := "normal"
		switch {
		case rec.Minimized:
			state = "min"
		case rec.Maximized:
			state = "max"
		}
		if rec.Active {
			state += "*"
		}

		row := fmt.Sprintf("%-10s %-10s %4d  %-8s %dx%d+%d+%d",
			rec.ID[:min(8, len(rec.ID))], rec.Kind, rec.Z, state,
			rec.Width, rec.Height, rec.X, rec.Y)
		if rec.Active {
			builder.WriteString(accentStyle.Render(row))
		} else {
			builder.WriteString(valueStyle.Render(row))
		}
		builder.WriteString("\n")
	}
	if m.Registry.Len() == 0 {
		builder.WriteString(valueStyle.Render("(no windows)"))
		builder.WriteString("\n")
	}

	panel := lipgloss.NewStyle().
		Border(getBorder()).
		BorderForeground(theme.DiagnosticsTitle()).
		Padding(1, 2).
		Render(builder.String())

	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, panel)
}
