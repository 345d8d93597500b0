// Package config provides configuration constants, keybinding management, and user settings.
package config

import (
	"time"

	"charm.land/lipgloss/v2"
)

// =============================================================================
// Window Defaults (terminal cells)
// =============================================================================

// DefaultWindowWidth is the default width for new windows
// Set via windows.default_width config
var DefaultWindowWidth = 56

// DefaultWindowHeight is the default height for new windows
// Set via windows.default_height config
var DefaultWindowHeight = 18

// MinWindowWidth is the minimum width a window can be resized to
// Set via windows.min_width config
var MinWindowWidth = 24

// MinWindowHeight is the minimum height a window can be resized to
// Set via windows.min_height config
var MinWindowHeight = 8

// DragSlackCells is how many columns a dragged window may overhang the
// left or right edge of the desk
// Set via windows.drag_slack config
var DragSlackCells = 8

// CascadeStrideCells is the diagonal step between cascaded windows
// Set via windows.cascade_stride config
var CascadeStrideCells = 2

// CascadeWrapCount is the number of cascade steps before wrapping back
const CascadeWrapCount = 8

// =============================================================================
// Timeouts and Intervals
// =============================================================================

const (
	// SysinfoUpdateInterval is the interval between CPU and memory samples
	SysinfoUpdateInterval = 500 * time.Millisecond

	// NotificationDuration is the default duration notifications remain visible
	NotificationDuration = 1500 * time.Millisecond

	// NotificationFadeOutDuration is the fade out duration for notifications
	NotificationFadeOutDuration = 500 * time.Millisecond

	// ClockUpdateInterval is the interval between clock refreshes
	ClockUpdateInterval = time.Second
)

// =============================================================================
// FPS and Refresh Rates
// =============================================================================

const (
	// NormalFPS is the normal refresh rate during regular operation
	NormalFPS = 60

	// InteractionFPS is the refresh rate during drags and resizes.
	// Lower FPS during interactions improves mouse responsiveness.
	InteractionFPS = 30

	// IdleFPS is the refresh rate when nothing changed for a while.
	// Reduces CPU usage to near-zero on an idle desk.
	IdleFPS = 10

	// IdleThresholdFrames is the number of consecutive idle frames at
	// NormalFPS before switching to IdleFPS (~500ms at 60 FPS).
	IdleThresholdFrames = 30
)

// =============================================================================
// UI Layout Dimensions
// =============================================================================

const (
	// DockHeight is the height of the dock area at the bottom
	DockHeight = 2

	// StatusBarHeight is the height of the status bar
	StatusBarHeight = 1

	// LogViewerWidth is the width of the log viewer overlay
	LogViewerWidth = 80

	// CPUGraphWidth is the width of the CPU graph including label
	CPUGraphWidth = 19

	// CPUGraphBars is the number of bars in the CPU graph
	CPUGraphBars = 10

	// CPUGraphScale is the scale factor for CPU graph bars (100/8 blocks)
	CPUGraphScale = 12.5

	// DockItemWidth is the base width of a dock item
	DockItemWidth = 6

	// MaxNotificationWidth is the maximum width of notification messages
	MaxNotificationWidth = 60

	// MinNotificationWidth is the minimum width of notification messages
	MinNotificationWidth = 20

	// NotificationMargin is the margin from screen edge for notifications
	NotificationMargin = 8

	// NotificationSpacing is the vertical spacing between notifications
	NotificationSpacing = 4

	// MaxVisibleNotifications is the maximum number of notifications shown at once
	MaxVisibleNotifications = 3

	// MaxNameLengthDock is the maximum length of window name in dock
	MaxNameLengthDock = 12
)

// =============================================================================
// Dock Visual Characters - Nerd Font Icons (Default)
// =============================================================================

const (
	// DockPillLeftChar is the left character for pill-style indicators
	// Set to "" to disable, or use custom characters
	DockPillLeftChar = string(rune(0xe0b6)) // Powerline left semicircle

	// DockPillRightChar is the right character for pill-style indicators
	// Set to "" to disable, or use custom characters
	DockPillRightChar = string(rune(0xe0b4)) // Powerline right semicircle

	// DockModeIconDesk is the icon for desk mode (Nerd Font: nf-fa-window_restore)
	DockModeIconDesk = " " + string(rune(0xf2d2)) + " " //

	// DockModeIconInteract is the icon for interact mode (Nerd Font: nf-fa-keyboard_o)
	DockModeIconInteract = " " + string(rune(0xf11c)) + " " //

	// DockIconWindowCount is the icon for the open window count (Nerd Font: nf-fa-window_maximize)
	DockIconWindowCount = string(rune(0xf2d0)) //

	// DockIconMinimizedCount is the icon for the minimized window count (Nerd Font: nf-fa-window_minimize)
	DockIconMinimizedCount = string(rune(0xf2d1)) //

	// DockSeparator is the separator between dock sections
	DockSeparator = "  " // Two spaces for breathing room
)

// =============================================================================
// Dock Visual Characters - ASCII Fallback
// =============================================================================

const (
	// ASCII fallback characters (used when --ascii flag is set)

	// DockPillLeftCharASCII is the ASCII fallback for pill left
	DockPillLeftCharASCII = "["

	// DockPillRightCharASCII is the ASCII fallback for pill right
	DockPillRightCharASCII = "]"

	// DockModeIconDeskASCII is the ASCII fallback for desk mode
	DockModeIconDeskASCII = " D "

	// DockModeIconInteractASCII is the ASCII fallback for interact mode
	DockModeIconInteractASCII = " I "

	// DockIconWindowCountASCII is the ASCII fallback for the window count
	DockIconWindowCountASCII = "win"

	// DockIconMinimizedCountASCII is the ASCII fallback for the minimized count
	DockIconMinimizedCountASCII = "min"

	// DockSeparatorASCII is the ASCII fallback separator
	DockSeparatorASCII = " | "
)

// =============================================================================
// Notification Icons (ASCII-safe)
// =============================================================================

const (
	// NotificationIconError is the error notification icon
	NotificationIconError = "[X]"

	// NotificationIconWarning is the warning notification icon
	NotificationIconWarning = "[!]"

	// NotificationIconSuccess is the success notification icon
	NotificationIconSuccess = "[OK]"

	// NotificationIconInfo is the info notification icon
	NotificationIconInfo = "[i]"
)

// Dock Mode Colors
const (
	// DockColorDesk is the color for desk mode indicator
	DockColorDesk = "#4865f2" // Blue

	// DockColorInteract is the color for interact mode indicator
	DockColorInteract = "#4ade80" // Green
)

// =============================================================================
// Runtime Configuration
// =============================================================================

// UseASCIIOnly controls whether to use ASCII fallback characters instead of Nerd Fonts
// Set via --ascii command-line flag
var UseASCIIOnly = false

// BorderStyle controls which border style to use for windows
// Set via --border-style flag or appearance.border_style config
var BorderStyle = "rounded"

// DockPosition controls the position of the dock
// Options: bottom, top
// Set via --dock-position flag or appearance.dock_position config
var DockPosition = "bottom"

// HideWindowButtons controls whether to hide window control buttons
// Set via --hide-window-buttons flag or appearance.hide_window_buttons config
var HideWindowButtons = false

// WindowTitlePosition controls where window titles are displayed
// Options: top, bottom, hidden
// Set via --title-position flag or appearance.window_title_position config
var WindowTitlePosition = "top"

// HideClock controls whether the clock in the status bar is hidden
// Set via --hide-clock flag or appearance.hide_clock config
var HideClock = false

// CascadePolicyName controls which freshly opened windows get a cascade offset
// Options: unpositioned, all, off
// Set via windows.cascade_policy config
var CascadePolicyName = "unpositioned"

// GetDockPillLeftChar returns the appropriate pill left character based on UseASCIIOnly
func GetDockPillLeftChar() string {
	if UseASCIIOnly {
		return DockPillLeftCharASCII
	}
	return DockPillLeftChar
}

// GetDockPillRightChar returns the appropriate pill right character based on UseASCIIOnly
func GetDockPillRightChar() string {
	if UseASCIIOnly {
		return DockPillRightCharASCII
	}
	return DockPillRightChar
}

// GetDockModeIconDesk returns the appropriate desk mode icon based on UseASCIIOnly
func GetDockModeIconDesk() string {
	if UseASCIIOnly {
		return DockModeIconDeskASCII
	}
	return DockModeIconDesk
}

// GetDockModeIconInteract returns the appropriate interact mode icon based on UseASCIIOnly
func GetDockModeIconInteract() string {
	if UseASCIIOnly {
		return DockModeIconInteractASCII
	}
	return DockModeIconInteract
}

// GetDockIconWindowCount returns the appropriate window count icon based on UseASCIIOnly
func GetDockIconWindowCount() string {
	if UseASCIIOnly {
		return DockIconWindowCountASCII
	}
	return DockIconWindowCount
}

// GetDockIconMinimizedCount returns the appropriate minimized count icon based on UseASCIIOnly
func GetDockIconMinimizedCount() string {
	if UseASCIIOnly {
		return DockIconMinimizedCountASCII
	}
	return DockIconMinimizedCount
}

// GetDockSeparator returns the appropriate separator based on UseASCIIOnly
func GetDockSeparator() string {
	if UseASCIIOnly {
		return DockSeparatorASCII
	}
	return DockSeparator
}

// =============================================================================
// Window Decoration Characters
// =============================================================================

const (
	// WindowButtonMinimize is the minimize window button.
	WindowButtonMinimize = " ─ "
	// WindowButtonMaximize is the maximize/restore window button.
	WindowButtonMaximize = " □ "
	// WindowButtonClose is the close window button.
	WindowButtonClose = " ⤫ "
	// WindowPillLeft is the left pill-style character for window decorations.
	WindowPillLeft = string(rune(0xe0b6))
	// WindowPillRight is the right pill-style character for window decorations.
	WindowPillRight = string(rune(0xe0b4))
)

const (
	// WindowButtonMinimizeASCII is the minimize button (ASCII fallback).
	WindowButtonMinimizeASCII = " - "
	// WindowButtonMaximizeASCII is the maximize/restore button (ASCII fallback).
	WindowButtonMaximizeASCII = " # "
	// WindowButtonCloseASCII is the close button (ASCII fallback).
	WindowButtonCloseASCII = " X "
	// WindowPillLeftASCII is the left pill-style character (ASCII fallback).
	WindowPillLeftASCII = "["
	// WindowPillRightASCII is the right pill-style character (ASCII fallback).
	WindowPillRightASCII = "]"
)

// GetBorderForStyle returns the lipgloss Border for the current style
func GetBorderForStyle() lipgloss.Border {
	if UseASCIIOnly || BorderStyle == "ascii" {
		return lipgloss.ASCIIBorder()
	}
	switch BorderStyle {
	case "normal":
		return lipgloss.NormalBorder()
	case "thick":
		return lipgloss.ThickBorder()
	case "double":
		return lipgloss.DoubleBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	case "block":
		return lipgloss.BlockBorder()
	case "outer-half-block":
		return lipgloss.OuterHalfBlockBorder()
	case "inner-half-block":
		return lipgloss.InnerHalfBlockBorder()
	case "rounded":
		fallthrough
	default:
		return lipgloss.RoundedBorder()
	}
}

// Window decoration getter functions

// GetWindowButtonMinimize returns the appropriate minimize button
func GetWindowButtonMinimize() string {
	if UseASCIIOnly {
		return WindowButtonMinimizeASCII
	}
	return WindowButtonMinimize
}

// GetWindowButtonMaximize returns the appropriate maximize button
func GetWindowButtonMaximize() string {
	if UseASCIIOnly {
		return WindowButtonMaximizeASCII
	}
	return WindowButtonMaximize
}

// GetWindowButtonClose returns the appropriate close button
func GetWindowButtonClose() string {
	if UseASCIIOnly {
		return WindowButtonCloseASCII
	}
	return WindowButtonClose
}

// GetWindowPillLeft returns the appropriate pill left character
func GetWindowPillLeft() string {
	if UseASCIIOnly {
		return WindowPillLeftASCII
	}
	return WindowPillLeft
}

// GetWindowPillRight returns the appropriate pill right character
func GetWindowPillRight() string {
	if UseASCIIOnly {
		return WindowPillRightASCII
	}
	return WindowPillRight
}

// =============================================================================
// Button Positions (relative offsets from the right window edge)
// =============================================================================

const (
	// MinimizeButtonLeft is the left position offset for the minimize button.
	MinimizeButtonLeft = -11
	// MinimizeButtonRight is the right position offset for the minimize button.
	MinimizeButtonRight = -9
	// MaximizeButtonLeft is the left position offset for the maximize button.
	MaximizeButtonLeft = -8
	// MaximizeButtonRight is the right position offset for the maximize button.
	MaximizeButtonRight = -6
	// CloseButtonLeft is the left position offset for the close button.
	CloseButtonLeft = -5
	// CloseButtonRight is the right position offset for the close button.
	CloseButtonRight = -3
)

// =============================================================================
// Buffer and Pool Sizes
// =============================================================================

const (
	// LayerPoolInitialCapacity is the initial capacity for layer pool slices
	LayerPoolInitialCapacity = 16

	// StringBuilderInitialCapacity is the estimated size for window content
	StringBuilderInitialCapacity = 1000 // Will be adjusted based on window size
)

// =============================================================================
// Limits
// =============================================================================

const (
	// MaxLogMessages is the maximum number of log messages to keep in memory
	MaxLogMessages = 100

	// CPUHistorySize is the number of CPU usage samples to keep
	CPUHistorySize = 10

	// MaxDockItems is the maximum number of minimized windows shown in dock
	MaxDockItems = 9

	// MaxHelpLines is the estimated maximum number of help lines
	MaxHelpLines = 50
)

// =============================================================================
// Z-Index Layers
// =============================================================================

const (
	// ZIndexBase is the base z-index for regular windows
	ZIndexBase = 0

	// ZIndexHelp is the z-index for help overlay
	ZIndexHelp = 1000

	// ZIndexDock is the z-index for the dock
	ZIndexDock = 1000

	// ZIndexLogs is the z-index for log viewer overlay
	ZIndexLogs = 1001

	// ZIndexDiagnostics is the z-index for the diagnostics overlay
	ZIndexDiagnostics = 1001

	// ZIndexNotifications is the z-index for notifications
	ZIndexNotifications = 2000
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSSHPort is the default SSH server port
	DefaultSSHPort = "2222"

	// DefaultSSHHost is the default SSH server host
	DefaultSSHHost = "localhost"

	// DefaultSSHHostKeyPath is the default SSH host key location, relative
	// to the working directory. Generated on first start when missing.
	DefaultSSHHostKeyPath = ".ssh/flotilla_ed25519"

	// DefaultTerminalWidth is the fallback terminal width when screen size unknown
	DefaultTerminalWidth = 80

	// DefaultTerminalHeight is the fallback terminal height when screen size unknown
	DefaultTerminalHeight = 24
)

// =============================================================================
// Terminal Size Adjustments
// =============================================================================

const (
	// BorderWidth is the width of window borders (2 for left and right)
	BorderWidth = 2

	// BorderHeight is the height of window borders (2 for top and bottom)
	BorderHeight = 2
)

// =============================================================================
// Helper Offsets and Counts
// =============================================================================

const (
	// IDPrefixLength is the length of ID prefix used in display (8 chars from UUID)
	IDPrefixLength = 8

	// MaxNameTruncateLength is the max length before truncating with ellipsis
	MaxNameTruncateLength = 12

	// EllipsisLength is the length of the ellipsis string
	EllipsisLength = 3

	// MaxNameLengthBeforeEllipsis is max length before needing ellipsis
	MaxNameLengthBeforeEllipsis = MaxNameTruncateLength - EllipsisLength
)
