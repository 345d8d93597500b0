package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

// UserConfig represents the user's custom configuration
type UserConfig struct {
	Appearance  AppearanceConfig  `toml:"appearance"`
	Windows     WindowsConfig     `toml:"windows"`
	Server      ServerConfig      `toml:"server"`
	Keybindings KeybindingsConfig `toml:"keybindings"`
}

// AppearanceConfig holds appearance-related settings
type AppearanceConfig struct {
	BorderStyle         string `toml:"border_style"`          // Border style: rounded, normal, thick, double, hidden, block, ascii, outer-half-block, inner-half-block
	DockPosition        string `toml:"dock_position"`         // Dock position: bottom, top, hidden
	HideWindowButtons   bool   `toml:"hide_window_buttons"`   // Hide window control buttons (minimize, maximize, close)
	WindowTitlePosition string `toml:"window_title_position"` // Window title position: top, bottom, hidden (default: top)
	HideClock           bool   `toml:"hide_clock"`            // Hide the status bar clock (default: false)
	Theme               string `toml:"theme"`                 // Color theme name (e.g., dracula, nord, my-custom-theme)
}

// WindowsConfig holds window geometry settings, in terminal cells
type WindowsConfig struct {
	DefaultWidth  int    `toml:"default_width"`  // Width for windows opened without an explicit size (default: 56)
	DefaultHeight int    `toml:"default_height"` // Height for windows opened without an explicit size (default: 18)
	MinWidth      int    `toml:"min_width"`      // Minimum window width a resize can reach (default: 24)
	MinHeight     int    `toml:"min_height"`     // Minimum window height a resize can reach (default: 8)
	DragSlack     int    `toml:"drag_slack"`     // Columns a dragged window may overhang the left/right edge (default: 8)
	CascadePolicy string `toml:"cascade_policy"` // Which new windows get a cascade offset: unpositioned, all, off (default: unpositioned)
	CascadeStride int    `toml:"cascade_stride"` // Diagonal step between cascaded windows (default: 2)
}

// ServerConfig holds SSH server settings
type ServerConfig struct {
	Host        string `toml:"host"`          // Listen host (default: localhost)
	Port        string `toml:"port"`          // Listen port (default: 2222)
	HostKeyPath string `toml:"host_key_path"` // SSH host key path (default: .ssh/flotilla_ed25519)
}

// KeybindingsConfig holds all keybinding configurations
type KeybindingsConfig struct {
	Windows          map[string][]string `toml:"windows"`
	ModeControl      map[string][]string `toml:"mode_control"`
	RestoreMinimized map[string][]string `toml:"restore_minimized"`
	System           map[string][]string `toml:"system"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *UserConfig {
	cfg := &UserConfig{
		Appearance: AppearanceConfig{
			BorderStyle:         "rounded",
			DockPosition:        "bottom",
			HideWindowButtons:   false,
			WindowTitlePosition: "top",
		},
		Windows: WindowsConfig{
			DefaultWidth:  56,
			DefaultHeight: 18,
			MinWidth:      24,
			MinHeight:     8,
			DragSlack:     8,
			CascadePolicy: "unpositioned",
			CascadeStride: 2,
		},
		Server: ServerConfig{
			Host: DefaultSSHHost,
			Port: DefaultSSHPort,
		},
		Keybindings: KeybindingsConfig{
			Windows: map[string][]string{
				"open_composer":   {"c"},
				"open_dialer":     {"p"},
				"open_sms":        {"s"},
				"open_notes":      {"o"},
				"close_window":    {"x"},
				"minimize_window": {"m"},
				"restore_all":     {"M"},
				"toggle_maximize": {"f"},
				"next_window":     {"tab"},
				"prev_window":     {"shift+tab"},
			},
			ModeControl: map[string][]string{
				"enter_interact_mode": {"i", "enter"},
				"enter_desk_mode":     {"esc"},
				"toggle_help":         {"?"},
				"quit":                {"q"},
			},
			RestoreMinimized: map[string][]string{
				"restore_minimized_1": {"1"},
				"restore_minimized_2": {"2"},
				"restore_minimized_3": {"3"},
				"restore_minimized_4": {"4"},
				"restore_minimized_5": {"5"},
				"restore_minimized_6": {"6"},
				"restore_minimized_7": {"7"},
				"restore_minimized_8": {"8"},
				"restore_minimized_9": {"9"},
			},
			System: map[string][]string{
				"toggle_logs":        {"ctrl+l"},
				"toggle_diagnostics": {"ctrl+d"},
			},
		},
	}
	return cfg
}

// ConfigIssue describes a suspect value found while validating the config.
type ConfigIssue struct {
	Section string
	Key     string
	Message string
}

// validateConfig checks enum-valued settings and resets unknown values to
// their defaults. Issues are reported, never fatal.
func validateConfig(cfg *UserConfig) []ConfigIssue {
	var issues []ConfigIssue
	defaults := DefaultConfig()

	switch cfg.Appearance.BorderStyle {
	case "rounded", "normal", "thick", "double", "hidden", "block", "ascii", "outer-half-block", "inner-half-block":
	default:
		issues = append(issues, ConfigIssue{
			Section: "appearance", Key: "border_style",
			Message: fmt.Sprintf("unknown style %q, using %q", cfg.Appearance.BorderStyle, defaults.Appearance.BorderStyle),
		})
		cfg.Appearance.BorderStyle = defaults.Appearance.BorderStyle
	}

	switch cfg.Appearance.DockPosition {
	case "bottom", "top", "hidden":
	default:
		issues = append(issues, ConfigIssue{
			Section: "appearance", Key: "dock_position",
			Message: fmt.Sprintf("unknown position %q, using %q", cfg.Appearance.DockPosition, defaults.Appearance.DockPosition),
		})
		cfg.Appearance.DockPosition = defaults.Appearance.DockPosition
	}

	switch cfg.Appearance.WindowTitlePosition {
	case "top", "bottom", "hidden":
	default:
		issues = append(issues, ConfigIssue{
			Section: "appearance", Key: "window_title_position",
			Message: fmt.Sprintf("unknown position %q, using %q", cfg.Appearance.WindowTitlePosition, defaults.Appearance.WindowTitlePosition),
		})
		cfg.Appearance.WindowTitlePosition = defaults.Appearance.WindowTitlePosition
	}

	switch cfg.Windows.CascadePolicy {
	case "unpositioned", "all", "off":
	default:
		issues = append(issues, ConfigIssue{
			Section: "windows", Key: "cascade_policy",
			Message: fmt.Sprintf("unknown policy %q, using %q", cfg.Windows.CascadePolicy, defaults.Windows.CascadePolicy),
		})
		cfg.Windows.CascadePolicy = defaults.Windows.CascadePolicy
	}

	if cfg.Windows.MinWidth > cfg.Windows.DefaultWidth {
		issues = append(issues, ConfigIssue{
			Section: "windows", Key: "min_width",
			Message: fmt.Sprintf("minimum %d exceeds default width %d, windows will open at the minimum", cfg.Windows.MinWidth, cfg.Windows.DefaultWidth),
		})
	}
	if cfg.Windows.MinHeight > cfg.Windows.DefaultHeight {
		issues = append(issues, ConfigIssue{
			Section: "windows", Key: "min_height",
			Message: fmt.Sprintf("minimum %d exceeds default height %d, windows will open at the minimum", cfg.Windows.MinHeight, cfg.Windows.DefaultHeight),
		})
	}

	return issues
}

// LoadUserConfig loads the user configuration from XDG config directory
func LoadUserConfig() (*UserConfig, error) {
	// Try to find existing config file
	configPath, err := xdg.SearchConfigFile("flotilla/config.toml")
	if err != nil {
		// Config doesn't exist, create default
		return createDefaultConfig()
	}

	// Read and parse config file
	// #nosec G304 - configPath is from XDG search, reading user config is intentional
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg UserConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in missing sections with defaults
	defaultCfg := DefaultConfig()
	fillMissingAppearance(&cfg, defaultCfg)
	fillMissingWindows(&cfg, defaultCfg)
	fillMissingServer(&cfg, defaultCfg)
	fillMissingKeybinds(&cfg, defaultCfg)

	for _, issue := range validateConfig(&cfg) {
		fmt.Fprintf(os.Stderr, "Config warning in [%s]: %s - %s\n", issue.Section, issue.Key, issue.Message)
	}

	return &cfg, nil
}

// createDefaultConfig creates a default config file in the user's config directory
func createDefaultConfig() (*UserConfig, error) {
	cfg := DefaultConfig()

	// Get config file path
	configPath, err := xdg.ConfigFile("flotilla/config.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	// Build config file with header comments and marshaled data
	var sb strings.Builder
	sb.WriteString("# Flotilla Configuration File\n")
	sb.WriteString("# This file allows you to customize appearance, window geometry, and keybindings\n")
	sb.WriteString("#\n")
	sb.WriteString("# Configuration location: " + configPath + "\n")
	sb.WriteString("# Documentation: https://github.com/flotilla-sh/flotilla\n")
	sb.WriteString("# For keybindings documentation, run: flotilla keybinds list\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# APPEARANCE SETTINGS\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# border_style: Window border style\n")
	sb.WriteString("#   Options: rounded, normal, thick, double, hidden, block, ascii,\n")
	sb.WriteString("#            outer-half-block, inner-half-block\n")
	sb.WriteString("#   Default: rounded\n")
	sb.WriteString("#\n")
	sb.WriteString("# dock_position: Position of the dock\n")
	sb.WriteString("#   Options: bottom, top, hidden\n")
	sb.WriteString("#   Default: bottom\n")
	sb.WriteString("#\n")
	sb.WriteString("# hide_window_buttons: Hide window control buttons (minimize, maximize, close)\n")
	sb.WriteString("#   Options: true, false\n")
	sb.WriteString("#   Default: false\n")
	sb.WriteString("#\n")
	sb.WriteString("# theme: Color theme name (e.g., dracula, nord, my-custom-theme)\n")
	sb.WriteString("#   Leave empty to use standard terminal colors.\n")
	sb.WriteString("#   CLI flag --theme overrides this. Custom themes: ~/.config/flotilla/themes/*.json\n")
	sb.WriteString("#   Default: (empty - no theme)\n")
	sb.WriteString("# ============================================================================\n\n")

	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# WINDOW GEOMETRY (terminal cells)\n")
	sb.WriteString("# ============================================================================\n")
	sb.WriteString("# min_width / min_height: No resize can shrink a window below these.\n")
	sb.WriteString("# drag_slack: Columns a dragged window may hang off the left/right edge.\n")
	sb.WriteString("# cascade_policy: Which new windows get staggered placement\n")
	sb.WriteString("#   Options: unpositioned (only windows opened without a position),\n")
	sb.WriteString("#            all, off\n")
	sb.WriteString("#   Default: unpositioned\n")
	sb.WriteString("# ============================================================================\n\n")

	if _, err := sb.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write config data: %w", err)
	}

	// Write to file
	if err := os.WriteFile(configPath, []byte(sb.String()), 0600); err != nil {
		return nil, fmt.Errorf("failed to write config file: %w", err)
	}

	return cfg, nil
}

// fillMissingAppearance fills in any missing appearance settings with defaults
func fillMissingAppearance(cfg, defaultCfg *UserConfig) {
	if cfg.Appearance.BorderStyle == "" {
		cfg.Appearance.BorderStyle = defaultCfg.Appearance.BorderStyle
	}
	if cfg.Appearance.DockPosition == "" {
		cfg.Appearance.DockPosition = defaultCfg.Appearance.DockPosition
	}
	if cfg.Appearance.WindowTitlePosition == "" {
		cfg.Appearance.WindowTitlePosition = defaultCfg.Appearance.WindowTitlePosition
	}
	// HideWindowButtons and HideClock default to false (zero value)
}

// fillMissingWindows fills in any missing window geometry settings with defaults
func fillMissingWindows(cfg, defaultCfg *UserConfig) {
	if cfg.Windows.DefaultWidth <= 0 {
		cfg.Windows.DefaultWidth = defaultCfg.Windows.DefaultWidth
	}
	if cfg.Windows.DefaultHeight <= 0 {
		cfg.Windows.DefaultHeight = defaultCfg.Windows.DefaultHeight
	}
	if cfg.Windows.MinWidth <= 0 {
		cfg.Windows.MinWidth = defaultCfg.Windows.MinWidth
	}
	if cfg.Windows.MinHeight <= 0 {
		cfg.Windows.MinHeight = defaultCfg.Windows.MinHeight
	}
	if cfg.Windows.DragSlack <= 0 {
		cfg.Windows.DragSlack = defaultCfg.Windows.DragSlack
	}
	if cfg.Windows.CascadePolicy == "" {
		cfg.Windows.CascadePolicy = defaultCfg.Windows.CascadePolicy
	}
	if cfg.Windows.CascadeStride <= 0 {
		cfg.Windows.CascadeStride = defaultCfg.Windows.CascadeStride
	}
}

// fillMissingServer fills in any missing server settings with defaults
func fillMissingServer(cfg, defaultCfg *UserConfig) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultCfg.Server.Host
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = defaultCfg.Server.Port
	}
	// HostKeyPath defaults to empty (the server picks .ssh/flotilla_ed25519)
}

// fillMissingKeybinds fills in any missing keybindings with defaults
func fillMissingKeybinds(cfg, defaultCfg *UserConfig) {
	// Initialize nil maps
	if cfg.Keybindings.Windows == nil {
		cfg.Keybindings.Windows = make(map[string][]string)
	}
	if cfg.Keybindings.ModeControl == nil {
		cfg.Keybindings.ModeControl = make(map[string][]string)
	}
	if cfg.Keybindings.RestoreMinimized == nil {
		cfg.Keybindings.RestoreMinimized = make(map[string][]string)
	}
	if cfg.Keybindings.System == nil {
		cfg.Keybindings.System = make(map[string][]string)
	}

	// Fill in missing keys with defaults
	fillMapDefaults(cfg.Keybindings.Windows, defaultCfg.Keybindings.Windows)
	fillMapDefaults(cfg.Keybindings.ModeControl, defaultCfg.Keybindings.ModeControl)
	fillMapDefaults(cfg.Keybindings.RestoreMinimized, defaultCfg.Keybindings.RestoreMinimized)
	fillMapDefaults(cfg.Keybindings.System, defaultCfg.Keybindings.System)
}

func fillMapDefaults(target, defaults map[string][]string) {
	for k, v := range defaults {
		if _, exists := target[k]; !exists {
			target[k] = v
		}
	}
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	path, err := xdg.SearchConfigFile("flotilla/config.toml")
	if err != nil {
		// Return where it would be created
		return xdg.ConfigFile("flotilla/config.toml")
	}
	return path, nil
}
