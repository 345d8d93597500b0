package config

import (
	"log"

	"github.com/flotilla-sh/flotilla/internal/theme"
)

// Overrides contains CLI flag values that can override user config.
// Zero values indicate the flag was not set and should use the user config default.
type Overrides struct {
	// ASCIIOnly uses ASCII characters instead of Nerd Font icons
	ASCIIOnly bool

	// BorderStyle overrides the window border style
	BorderStyle string

	// DockPosition overrides the dock position
	DockPosition string

	// HideWindowButtons overrides hiding window control buttons
	HideWindowButtons bool

	// WindowTitlePosition overrides the window title position
	WindowTitlePosition string

	// HideClock overrides hiding the clock
	HideClock bool

	// ThemeName is the theme to load
	ThemeName string
}

// ApplyOverrides applies CLI flag overrides to global config, falling back to user config defaults.
// If userConfig is nil, only CLI flag values (when set) are applied.
func ApplyOverrides(overrides Overrides, userConfig *UserConfig) {
	// ASCII Only - simple flag override
	if overrides.ASCIIOnly {
		UseASCIIOnly = true
	}

	// Border Style - CLI flag takes precedence, otherwise use user config
	if overrides.BorderStyle != "" {
		BorderStyle = overrides.BorderStyle
	} else if userConfig != nil && userConfig.Appearance.BorderStyle != "" {
		BorderStyle = userConfig.Appearance.BorderStyle
	}

	// Dock Position - CLI flag takes precedence, otherwise use user config
	if overrides.DockPosition != "" {
		DockPosition = overrides.DockPosition
	} else if userConfig != nil && userConfig.Appearance.DockPosition != "" {
		DockPosition = userConfig.Appearance.DockPosition
	}

	// Hide Window Buttons - OR of CLI flag and user config
	if userConfig != nil {
		HideWindowButtons = overrides.HideWindowButtons || userConfig.Appearance.HideWindowButtons
	} else {
		HideWindowButtons = overrides.HideWindowButtons
	}

	// Window Title Position - CLI flag takes precedence, otherwise use user config
	if overrides.WindowTitlePosition != "" {
		WindowTitlePosition = overrides.WindowTitlePosition
	} else if userConfig != nil && userConfig.Appearance.WindowTitlePosition != "" {
		WindowTitlePosition = userConfig.Appearance.WindowTitlePosition
	}

	// Hide Clock - OR of CLI flag and user config
	if userConfig != nil {
		HideClock = overrides.HideClock || userConfig.Appearance.HideClock
	} else {
		HideClock = overrides.HideClock
	}

	// Cascade Policy - only from user config
	if userConfig != nil && userConfig.Windows.CascadePolicy != "" {
		CascadePolicyName = userConfig.Windows.CascadePolicy
	}

	// Window geometry - only from user config
	if userConfig != nil {
		if userConfig.Windows.DefaultWidth > 0 {
			DefaultWindowWidth = userConfig.Windows.DefaultWidth
		}
		if userConfig.Windows.DefaultHeight > 0 {
			DefaultWindowHeight = userConfig.Windows.DefaultHeight
		}
		if userConfig.Windows.MinWidth > 0 {
			MinWindowWidth = userConfig.Windows.MinWidth
		}
		if userConfig.Windows.MinHeight > 0 {
			MinWindowHeight = userConfig.Windows.MinHeight
		}
		if userConfig.Windows.DragSlack > 0 {
			DragSlackCells = userConfig.Windows.DragSlack
		}
		if userConfig.Windows.CascadeStride > 0 {
			CascadeStrideCells = userConfig.Windows.CascadeStride
		}
	}

	// Theme - CLI flag takes precedence, otherwise use user config
	themeName := overrides.ThemeName
	if themeName == "" && userConfig != nil && userConfig.Appearance.Theme != "" {
		themeName = userConfig.Appearance.Theme
	}
	if themeName != "" {
		if err := theme.Initialize(themeName); err != nil {
			log.Printf("Warning: Failed to load theme '%s': %v", themeName, err)
		}
	}
}
