// Package theme provides color themes and styling for the flotilla desk.
package theme

import (
	"fmt"
	"image/color"
	"log"

	"charm.land/lipgloss/v2"
	tint "github.com/lrstanley/bubbletint/v2"
)

var enabled bool

// Initialize sets up the theme registry with the specified theme name.
// Call this once at application startup.
// If themeName is empty, theming will be disabled and standard terminal colors will be used.
func Initialize(themeName string) error {
	// If no theme specified, disable theming
	if themeName == "" {
		enabled = false
		return nil
	}

	enabled = true
	tint.NewDefaultRegistry()

	// Load custom themes from user's themes directory
	if themesDir, err := GetThemesDir(); err == nil {
		if _, err := LoadCustomThemes(themesDir); err != nil {
			log.Printf("Warning: error loading custom themes: %v", err)
		}
	}

	// Try to set the theme by ID
	ok := tint.SetTintID(themeName)
	if !ok {
		// Theme not found, set to default
		tint.SetTintID("default")
	}

	return nil
}

// IsEnabled returns true if theming is enabled
func IsEnabled() bool {
	return enabled
}

// Current returns the currently active theme.
// Returns nil if theming is disabled.
func Current() *tint.Tint {
	if !enabled {
		return nil
	}
	return tint.Current()
}

// ContentFg returns the foreground color for window content text.
func ContentFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// ContentBg returns the background color for window content.
func ContentBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// ContentCursorColors returns foreground and background colors for the text cursor
// inside window content.
func ContentCursorColors() (fg color.Color, bg color.Color) {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00"), lipgloss.Color("#000000")
	}
	return t.Cursor, t.Black
}

// BorderUnfocused returns the color for unfocused window borders.
func BorderUnfocused() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#FAAAAA")
	}
	// Using regular Red gives a softer, more muted tone for unfocused windows
	return t.Red
}

// BorderFocusedDesk returns the color for focused window borders in desk mode.
func BorderFocusedDesk() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AFFFFF")
	}
	// Light cyan for desk mode - use bright cyan
	return t.BrightCyan
}

// BorderFocusedInteract returns the color for focused window borders in interact mode.
func BorderFocusedInteract() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#AAFFAA")
	}
	// Light green for interact mode - use bright green
	return t.BrightGreen
}

// DockColorDesk returns the dock indicator color for desk mode.
func DockColorDesk() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#5c5cff")
	}
	return t.BrightBlue
}

// DockColorInteract returns the dock indicator color for interact mode.
func DockColorInteract() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// ButtonFg returns the foreground color for window buttons.
func ButtonFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Black
}

// KindAccent returns the accent color for a window kind badge. Unknown
// kinds share the notes accent.
func KindAccent(kind string) color.Color {
	t := Current()
	switch kind {
	case "composer":
		if t == nil {
			return lipgloss.Color("#5c5cff")
		}
		return t.BrightBlue
	case "dialer":
		if t == nil {
			return lipgloss.Color("#00cd00")
		}
		return t.Green
	case "sms":
		if t == nil {
			return lipgloss.Color("#cdcd00")
		}
		return t.Yellow
	default:
		if t == nil {
			return lipgloss.Color("#cd00cd")
		}
		return t.Purple
	}
}

// StatusBarBg returns the background color for the status bar.
func StatusBarBg() color.Color {
	return lipgloss.Color("#1a1a2e")
}

// StatusBarFg returns the foreground color for the status bar.
func StatusBarFg() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// WelcomeTitle returns the color for welcome screen titles.
func WelcomeTitle() color.Color {
	return lipgloss.Color("14") // Bright cyan
}

// WelcomeSubtitle returns the color for welcome screen subtitles.
func WelcomeSubtitle() color.Color {
	return lipgloss.Color("11") // Bright yellow
}

// WelcomeText returns the color for welcome screen text.
func WelcomeText() color.Color {
	return lipgloss.Color("7") // White
}

// WelcomeHighlight returns the color for highlighted elements on the welcome screen.
func WelcomeHighlight() color.Color {
	return lipgloss.Color("6") // Cyan
}

// DiagnosticsTitle returns the color for diagnostics overlay titles.
func DiagnosticsTitle() color.Color {
	return lipgloss.Color("14")
}

// DiagnosticsLabel returns the color for diagnostics overlay labels.
func DiagnosticsLabel() color.Color {
	return lipgloss.Color("11")
}

// DiagnosticsValue returns the color for diagnostics overlay values.
func DiagnosticsValue() color.Color {
	return lipgloss.Color("10")
}

// DiagnosticsAccent returns the accent color for diagnostics overlay.
func DiagnosticsAccent() color.Color {
	return lipgloss.Color("13")
}

// LogViewerTitle returns the color for log viewer titles.
func LogViewerTitle() color.Color {
	return lipgloss.Color("14")
}

// LogViewerError returns the color for error messages in the log viewer.
func LogViewerError() color.Color {
	return lipgloss.Color("9")
}

// LogViewerWarn returns the color for warning messages in the log viewer.
func LogViewerWarn() color.Color {
	return lipgloss.Color("11")
}

// LogViewerInfo returns the color for info messages in the log viewer.
func LogViewerInfo() color.Color {
	return lipgloss.Color("10")
}

// LogViewerDebug returns the color for debug messages in the log viewer.
func LogViewerDebug() color.Color {
	return lipgloss.Color("12")
}

// LogViewerBg returns the background color for the log viewer.
func LogViewerBg() color.Color {
	return lipgloss.Color("#1a1a2a")
}

// NotificationError returns the color for error notifications.
func NotificationError() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cd0000")
	}
	return t.Red
}

// NotificationWarning returns the color for warning notifications.
func NotificationWarning() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#cdcd00")
	}
	return t.Yellow
}

// NotificationSuccess returns the color for success notifications.
func NotificationSuccess() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00cd00")
	}
	return t.Green
}

// NotificationInfo returns the color for info notifications.
func NotificationInfo() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#0000ee")
	}
	return t.Blue
}

// NotificationBg returns the background color for notifications.
func NotificationBg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#000000")
	}
	return t.Bg
}

// NotificationFg returns the foreground color for notifications.
func NotificationFg() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#e5e5e5")
	}
	return t.Fg
}

// DockBg returns the background color for the dock.
func DockBg() color.Color {
	return lipgloss.Color("#2a2a3e")
}

// DockFg returns the foreground color for the dock.
func DockFg() color.Color {
	return lipgloss.Color("#a0a0a8")
}

// DockHighlight returns the highlight color for the dock.
func DockHighlight() color.Color {
	t := Current()
	if t == nil {
		return lipgloss.Color("#00ff00")
	}
	return t.BrightGreen
}

// DockDimmed returns the dimmed color for the dock.
func DockDimmed() color.Color {
	return lipgloss.Color("#808090")
}

// DockAccent returns the accent color for the dock.
func DockAccent() color.Color {
	return lipgloss.Color("#a0a0b0")
}

// DockSeparator returns the separator color for the dock.
func DockSeparator() color.Color {
	return lipgloss.Color("#303040")
}

// HelpKeyBadge returns the color for key badges in help menu.
func HelpKeyBadge() color.Color {
	return lipgloss.Color("5") // Purple/magenta
}

// HelpKeyBadgeBg returns the background color for key badges in help menu.
func HelpKeyBadgeBg() color.Color {
	return lipgloss.Color("0") // Black
}

// HelpGray returns the gray color for help menu elements.
func HelpGray() color.Color {
	return lipgloss.Color("8")
}

// HelpBorder returns the border color for help menu.
func HelpBorder() color.Color {
	return lipgloss.Color("14")
}

// CLITableHeader returns the color for CLI table headers.
func CLITableHeader() color.Color {
	return lipgloss.Color("12")
}

// CLITableBorder returns the color for CLI table borders.
func CLITableBorder() color.Color {
	return lipgloss.Color("14")
}

// CLITableKey returns the color for CLI table keys.
func CLITableKey() color.Color {
	return lipgloss.Color("11")
}

// CLITableDim returns the dimmed color for CLI table elements.
func CLITableDim() color.Color {
	return lipgloss.Color("8")
}

// ColorToString converts a color.Color to a hex string
func ColorToString(c color.Color) string {
	if c == nil {
		return "#000000"
	}
	r, g, b, _ := c.RGBA()
	// RGBA returns values in range 0-65535, convert to 0-255
	r8, g8, b8 := uint8(r>>8), uint8(g>>8), uint8(b>>8)
	// Format as hex string
	return fmt.Sprintf("#%02x%02x%02x", r8, g8, b8)
}
