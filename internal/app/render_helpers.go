package app

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

func getBorder() lipgloss.Border {
	return config.GetBorderForStyle()
}

// RightString returns a border line with str flushed to its right end.
func RightString(str string, width int, c color.Color) string {
	spaces := width - lipgloss.Width(str)
	if spaces < 0 {
		return ""
	}

	style := pool.GetStyle()
	defer pool.PutStyle(style)
	fg := style.Foreground(c)
	b := getBorder()

	return fg.Render(b.TopLeft+strings.Repeat(b.Top, spaces)) +
		str +
		fg.Render(b.TopRight)
}

func makeRounded(s string, c color.Color) string {
	style := pool.GetStyle()
	defer pool.PutStyle(style)
	render := style.Foreground(c).Render
	return render(config.GetWindowPillLeft()) + s + render(config.GetWindowPillRight())
}

// windowTitle returns the display title truncated to fit maxWidth, or
// empty when it cannot fit. Panels retitle themselves as their state
// changes, so the live panel title wins over the one captured at open.
func windowTitle(rec *wm.WindowRecord, maxWidth int) string {
	title := rec.Title
	if provider, ok := rec.Content.(content.Provider); ok {
		title = provider.Title()
	}
	if title == "" {
		return ""
	}

	maxNameLen := max(maxWidth-6, 0)
	if ansi.StringWidth(title) > maxNameLen {
		if maxNameLen <= 3 {
			return ""
		}
		runes := []rune(title)
		truncated := string(runes)
		for ansi.StringWidth(truncated) > maxNameLen-3 && len(runes) > 0 {
			runes = runes[:len(runes)-1]
			truncated = string(runes)
		}
		title = truncated + "..."
	}
	return title
}

// renderTitleWithButtons lays a title badge on the left and the window
// buttons on the right of a border line.
func renderTitleWithButtons(name, buttons string, width int, c color.Color, isTop bool) string {
	style := pool.GetStyle()
	defer pool.PutStyle(style)
	borderStyle := style.Foreground(c)
	nameStyle := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(c)

	b := getBorder()
	borderLeft, borderChar, borderRight := b.TopLeft, b.Top, b.TopRight
	if !isTop {
		borderLeft, borderChar, borderRight = b.BottomLeft, b.Bottom, b.BottomRight
	}

	nameBadge := borderStyle.Render(config.GetWindowPillLeft()) +
		nameStyle.Render(" "+name+" ") +
		borderStyle.Render(config.GetWindowPillRight())

	middlePadding := width - lipgloss.Width(nameBadge) - lipgloss.Width(buttons)
	if middlePadding < 0 {
		return RightString(buttons, width, c)
	}

	return borderStyle.Render(borderLeft) +
		nameBadge +
		borderStyle.Render(strings.Repeat(borderChar, middlePadding)) +
		buttons +
		borderStyle.Render(borderRight)
}

// renderTitleBadge centers a title badge on a border line.
func renderTitleBadge(name string, width int, c color.Color, isTop bool) string {
	style := pool.GetStyle()
	defer pool.PutStyle(style)
	borderStyle := style.Foreground(c)
	nameStyle := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(c)

	b := getBorder()
	borderLeft, borderChar, borderRight := b.TopLeft, b.Top, b.TopRight
	if !isTop {
		borderLeft, borderChar, borderRight = b.BottomLeft, b.Bottom, b.BottomRight
	}

	if name == "" {
		return borderStyle.Render(borderLeft + strings.Repeat(borderChar, width) + borderRight)
	}

	nameBadge := borderStyle.Render(config.GetWindowPillLeft()) +
		nameStyle.Render(" "+name+" ") +
		borderStyle.Render(config.GetWindowPillRight())

	totalPadding := width - lipgloss.Width(nameBadge)
	if totalPadding < 0 {
		return borderStyle.Render(borderLeft + strings.Repeat(borderChar, width) + borderRight)
	}

	leftPadding := totalPadding / 2
	rightPadding := totalPadding - leftPadding

	return borderStyle.Render(borderLeft+strings.Repeat(borderChar, leftPadding)) +
		nameBadge +
		borderStyle.Render(strings.Repeat(borderChar, rightPadding)+borderRight)
}

// addToBorder replaces the top border of a box with the title and
// button row and rebuilds the bottom border. Button glyph positions
// stay in lockstep with the hitbox offsets in the config package.
func addToBorder(boxContent string, c color.Color, rec *wm.WindowRecord) string {
	width := max(lipgloss.Width(boxContent)-2, 0)
	titlePos := config.WindowTitlePosition

	style := pool.GetStyle()
	defer pool.PutStyle(style)

	var buttons string
	var buttonsWidth int
	if !config.HideWindowButtons {
		buttonStyle := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(c)
		row := buttonStyle.Render(config.GetWindowButtonMinimize()) +
			buttonStyle.Render(config.GetWindowButtonMaximize()) +
			buttonStyle.Render(config.GetWindowButtonClose())
		buttons = makeRounded(row, c)
		buttonsWidth = lipgloss.Width(buttons)
	}

	titleMaxWidth := width
	if titlePos == "top" {
		titleMaxWidth = width - buttonsWidth - 2
	}

	name := ""
	if titlePos != "hidden" {
		name = windowTitle(rec, titleMaxWidth)
	}

	borderStyle := style.Foreground(c)
	b := getBorder()

	var topBorder string
	if titlePos == "top" && name != "" {
		topBorder = renderTitleWithButtons(name, buttons, width, c, true)
	} else {
		topBorder = RightString(buttons, width, c)
	}

	var bottomBorder string
	if titlePos == "bottom" && name != "" {
		bottomBorder = renderTitleBadge(name, width, c, false)
	} else {
		bottomBorder = borderStyle.Render(b.BottomLeft + strings.Repeat(b.Bottom, width) + b.BottomRight)
	}

	lines := strings.Split(boxContent, "\n")
	if len(lines) > 0 {
		lines[len(lines)-1] = bottomBorder
	}
	return topBorder + "\n" + strings.Join(lines, "\n")
}

// clipWindowContent cuts a rendered window to the viewport. Windows may
// overhang the left and right edges by the drag slack, so lines are
// clipped cell-wise with ANSI sequences preserved. Returns the clipped
// content and the on-screen origin.
func clipWindowContent(s string, x, y, viewportWidth, viewportHeight int) (string, int, int) {
	lines := strings.Split(s, "\n")
	windowHeight := len(lines)

	windowWidth := 0
	if len(lines) > 0 {
		windowWidth = ansi.StringWidth(lines[0])
	}

	if x+windowWidth <= 0 || x >= viewportWidth || y+windowHeight <= 0 || y >= viewportHeight {
		return "", max(x, 0), max(y, 0)
	}

	clipTop := 0
	clipLeft := 0
	finalX := x
	finalY := y

	if y < 0 {
		clipTop = -y
		finalY = 0
	}
	if x < 0 {
		clipLeft = -x
		finalX = 0
	}

	if clipTop >= len(lines) {
		return "", finalX, finalY
	}
	visible := lines[clipTop:]

	if maxLines := viewportHeight - finalY; maxLines < len(visible) {
		visible = visible[:maxLines]
	}

	if clipLeft > 0 || finalX+windowWidth > viewportWidth {
		maxWidth := viewportWidth - finalX
		clipped := make([]string, len(visible))
		for i, line := range visible {
			lineWidth := ansi.StringWidth(line)
			if clipLeft >= lineWidth {
				clipped[i] = ""
				continue
			}
			cut := line
			if lineWidth > clipLeft+maxWidth {
				cut = ansi.Truncate(cut, clipLeft+maxWidth, "")
			}
			if clipLeft > 0 {
				cut = ansi.TruncateLeft(cut, clipLeft, "")
			}
			clipped[i] = cut + "\x1b[0m"
		}
		return strings.Join(clipped, "\n"), finalX, finalY
	}

	return strings.Join(visible, "\n"), finalX, finalY
}
