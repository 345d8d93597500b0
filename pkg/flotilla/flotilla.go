// Package flotilla provides an embeddable floating window desk for
// Bubble Tea applications, usable standalone or served over SSH.
//
// Windows float above a desk, carry hosted content panels, and are
// moved, resized, minimized, and maximized with the keyboard or mouse.
//
// # Basic Usage
//
// Create a desk with default options and run it:
//
//	model, err := flotilla.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := tea.NewProgram(model, flotilla.ProgramOptions()...)
//	if _, err := p.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Custom Configuration
//
// Use options to customize the desk:
//
//	model, err := flotilla.New(
//		flotilla.WithTheme("dracula"),
//		flotilla.WithBorderStyle("double"),
//		flotilla.WithKinds(flotilla.KindComposer, flotilla.KindNotes),
//	)
//
// # Serving over SSH
//
// Size the desk from a PTY when embedding in an SSH server:
//
//	handler := func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
//		pty, _, _ := sess.Pty()
//		model, _ := flotilla.NewForPTY(pty)
//		return model, flotilla.ProgramOptions()
//	}
package flotilla

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/flotilla-sh/flotilla/internal/app"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/input"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// Model is the desk model that implements tea.Model. It wraps the
// internal Manager struct and provides a clean public API.
type Model = app.Manager

// Mode represents the current input routing mode.
type Mode = app.Mode

// Mode constants
const (
	// DeskMode routes keys and the mouse to window management.
	DeskMode = app.DeskMode
	// InteractMode forwards keys to the focused window's panel.
	InteractMode = app.InteractMode
)

// Headless window core re-exports. The registry can be driven without
// any terminal attached; geometry is plain integers.
type (
	// Registry owns window records, stacking order, and geometry rules.
	Registry = wm.Registry
	// RegistryConfig carries the geometry limits a registry enforces.
	RegistryConfig = wm.Config
	// WindowRecord is one window's state inside a registry.
	WindowRecord = wm.WindowRecord
	// Bounds is a window rectangle in desk cells.
	Bounds = wm.Bounds
	// Kind tags the category of a window's hosted content.
	Kind = wm.Kind
)

// NewRegistry builds a standalone window registry. Zero config fields
// fall back to the registry's built-in limits.
func NewRegistry(cfg RegistryConfig) *Registry {
	return wm.New(cfg)
}

// Provider renders a window's hosted content panel.
type Provider = content.Provider

// Built-in panel kinds.
const (
	KindComposer = content.KindComposer
	KindDialer   = content.KindDialer
	KindSMS      = content.KindSMS
	KindNotes    = content.KindNotes
)

// RegisterPanel installs a panel factory for a kind, replacing any
// existing one. Panels registered here open through the same paths as
// the built-ins.
func RegisterPanel(kind Kind, factory func() Provider) {
	content.Register(kind, content.Factory(factory))
}

// Options configures a flotilla desk.
type Options struct {
	// Theme is the color theme name (e.g., "dracula", "nord").
	// Leave empty to use standard terminal colors.
	Theme string

	// ASCIIOnly uses ASCII characters instead of Nerd Font icons.
	ASCIIOnly bool

	// BorderStyle sets the window border style.
	// Valid values: "rounded", "normal", "thick", "double", "hidden",
	// "block", "ascii", "outer-half-block", "inner-half-block"
	BorderStyle string

	// DockPosition sets where the dock appears.
	// Valid values: "bottom", "top", "hidden"
	DockPosition string

	// HideWindowButtons hides the minimize/maximize/close buttons.
	HideWindowButtons bool

	// TitlePosition sets where window titles render.
	// Valid values: "top", "bottom", "hidden"
	TitlePosition string

	// HideClock hides the status bar clock.
	HideClock bool

	// CascadePolicy selects which new windows get staggered placement.
	// Valid values: "unpositioned", "all", "off"
	CascadePolicy string

	// Kinds are panels opened on the fresh desk, in order.
	Kinds []Kind

	// Width is the initial width (set from the first resize if 0).
	Width int

	// Height is the initial height (set from the first resize if 0).
	Height int

	// UserConfig is a custom user configuration. If nil, the config
	// file is loaded, falling back to defaults.
	UserConfig *config.UserConfig
}

// Option is a functional option for configuring the desk.
type Option func(*Options)

// WithTheme sets the color theme.
func WithTheme(name string) Option {
	return func(o *Options) {
		o.Theme = name
	}
}

// WithASCIIOnly enables ASCII-only mode (no Nerd Font icons).
func WithASCIIOnly(enabled bool) Option {
	return func(o *Options) {
		o.ASCIIOnly = enabled
	}
}

// WithBorderStyle sets the window border style.
func WithBorderStyle(style string) Option {
	return func(o *Options) {
		o.BorderStyle = style
	}
}

// WithDockPosition sets the dock position.
func WithDockPosition(position string) Option {
	return func(o *Options) {
		o.DockPosition = position
	}
}

// WithHideWindowButtons hides window control buttons.
func WithHideWindowButtons(hide bool) Option {
	return func(o *Options) {
		o.HideWindowButtons = hide
	}
}

// WithTitlePosition sets the window title position.
func WithTitlePosition(position string) Option {
	return func(o *Options) {
		o.TitlePosition = position
	}
}

// WithHideClock hides the status bar clock.
func WithHideClock(hide bool) Option {
	return func(o *Options) {
		o.HideClock = hide
	}
}

// WithCascadePolicy selects which new windows get a cascade offset.
func WithCascadePolicy(policy string) Option {
	return func(o *Options) {
		o.CascadePolicy = policy
	}
}

// WithKinds opens the given panels on the fresh desk.
func WithKinds(kinds ...Kind) Option {
	return func(o *Options) {
		o.Kinds = append(o.Kinds, kinds...)
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(o *Options) {
		o.Width = width
		o.Height = height
	}
}

// WithConfig sets a custom user configuration.
func WithConfig(cfg *config.UserConfig) Option {
	return func(o *Options) {
		o.UserConfig = cfg
	}
}

// New creates a new desk model with the given options.
// This is the main entry point for using flotilla as a library.
func New(opts ...Option) (*Model, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	return newModel(options)
}

// PTY reports a terminal size. Satisfied by the Pty types of SSH and
// web terminal session libraries.
type PTY interface {
	Width() int
	Height() int
}

// NewForPTY creates a desk model sized for a PTY session with the given
// options. Useful when embedding flotilla in SSH servers or web
// terminals.
func NewForPTY(pty PTY, opts ...Option) (*Model, error) {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}
	options.Width = pty.Width()
	options.Height = pty.Height()

	return newModel(options)
}

// newModel creates the internal model with applied options.
func newModel(options Options) (*Model, error) {
	// Set up input handler
	app.SetInputHandler(input.HandleInput)

	// Apply global config options
	if options.ASCIIOnly {
		config.UseASCIIOnly = true
	}
	if options.BorderStyle != "" {
		config.BorderStyle = options.BorderStyle
	}
	if options.DockPosition != "" {
		config.DockPosition = options.DockPosition
	}
	if options.HideWindowButtons {
		config.HideWindowButtons = true
	}
	if options.TitlePosition != "" {
		config.WindowTitlePosition = options.TitlePosition
	}
	if options.HideClock {
		config.HideClock = true
	}
	if options.CascadePolicy != "" {
		config.CascadePolicyName = options.CascadePolicy
	}

	// Initialize theme. Embedders asked for a specific look, so a bad
	// name is an error here rather than a logged fallback.
	if options.Theme != "" {
		if err := theme.Initialize(options.Theme); err != nil {
			return nil, fmt.Errorf("failed to load theme %q: %w", options.Theme, err)
		}
	}

	// Load or create user config
	userConfig := options.UserConfig
	if userConfig == nil {
		var err error
		userConfig, err = config.LoadUserConfig()
		if err != nil {
			userConfig = config.DefaultConfig()
		}
	}

	m := app.NewManager(options.Width, options.Height, config.NewKeybindRegistry(userConfig))
	for _, kind := range options.Kinds {
		m.OpenWindow(kind)
	}
	return m, nil
}

// ProgramOptions returns recommended tea.ProgramOption values for
// running a desk:
//
//	model, _ := flotilla.New()
//	p := tea.NewProgram(model, flotilla.ProgramOptions()...)
func ProgramOptions() []tea.ProgramOption {
	return []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}

// FilterMouseMotion is a tea.WithFilter function that reduces CPU usage
// by dropping mouse motion events outside drag and resize sessions.
//
// Usage:
//
//	p := tea.NewProgram(model, tea.WithFilter(flotilla.FilterMouseMotion))
func FilterMouseMotion(model tea.Model, msg tea.Msg) tea.Msg {
	// Allow all non-motion events through
	if _, ok := msg.(tea.MouseMotionMsg); !ok {
		return msg
	}

	m, ok := model.(*Model)
	if !ok {
		return msg
	}

	// Allow motion events during active interactions
	if m.Interacting() {
		return msg
	}

	return nil
}

// Config re-exports the config package entry points so embedders can
// manage configuration without importing internal packages.
var Config = struct {
	// LoadUserConfig loads the user's configuration file.
	LoadUserConfig func() (*config.UserConfig, error)
	// DefaultConfig returns the default configuration.
	DefaultConfig func() *config.UserConfig
	// GetConfigPath returns the path to the configuration file.
	GetConfigPath func() (string, error)
}{
	LoadUserConfig: config.LoadUserConfig,
	DefaultConfig:  config.DefaultConfig,
	GetConfigPath:  config.GetConfigPath,
}
