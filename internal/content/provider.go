// Package content implements the demo panels hosted inside flotilla
// windows. The window core treats hosted content as an opaque value;
// everything that knows how to draw or react to input lives here.
package content

import (
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// Window kinds served by the built-in providers.
const (
	KindComposer wm.Kind = "composer"
	KindDialer   wm.Kind = "dialer"
	KindSMS      wm.Kind = "sms"
	KindNotes    wm.Kind = "notes"
)

// Provider renders a window's inner content area. Render receives the
// content dimensions (window size minus the border) and returns the pane
// as a styled string; the render layer clips anything that overflows.
type Provider interface {
	Kind() wm.Kind
	Title() string
	Render(width, height int) string
}

// KeyReceiver is implemented by providers that consume keystrokes while
// their window is being interacted with. Printable input arrives as the
// literal text ("a", " "), everything else in Bubble Tea string form
// ("enter", "backspace", "shift+tab"). The return value reports whether
// the key was consumed.
type KeyReceiver interface {
	HandleKey(key string) bool
}

// Scroller is implemented by providers with scrollable content. Positive
// delta scrolls down, negative up.
type Scroller interface {
	Scroll(delta int)
}

// CursorProvider is implemented by providers that place a text caret.
// The position is content-relative; ok reports whether the caret should
// be shown at all.
type CursorProvider interface {
	Cursor() (x, y int, ok bool)
}

// Factory builds a fresh provider instance.
type Factory func() Provider

var factories = map[wm.Kind]Factory{
	KindComposer: func() Provider { return NewComposer() },
	KindDialer:   func() Provider { return NewDialer() },
	KindSMS:      func() Provider { return NewSMS() },
	KindNotes:    func() Provider { return NewNotes() },
}

// New builds a provider for the given kind. The second return is false
// when no factory is registered for the kind.
func New(kind wm.Kind) (Provider, bool) {
	factory, ok := factories[kind]
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Register installs a factory for a kind, replacing any existing one.
// Embedders use this to host their own panels.
func Register(kind wm.Kind, factory Factory) {
	factories[kind] = factory
}

// Kinds returns the kinds with a registered factory, in spawn-key order
// for the built-ins and appended order for custom registrations.
func Kinds() []wm.Kind {
	builtin := []wm.Kind{KindComposer, KindDialer, KindSMS, KindNotes}
	kinds := make([]wm.Kind, 0, len(factories))
	for _, k := range builtin {
		if _, ok := factories[k]; ok {
			kinds = append(kinds, k)
		}
	}
	for k := range factories {
		known := false
		for _, b := range builtin {
			if k == b {
				known = true
				break
			}
		}
		if !known {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// KindGlyph returns the dock glyph for a kind, with ASCII fallbacks when
// Nerd Font icons are disabled.
func KindGlyph(kind wm.Kind) string {
	if config.UseASCIIOnly {
		switch kind {
		case KindComposer:
			return "@"
		case KindDialer:
			return "#"
		case KindSMS:
			return ">"
		case KindNotes:
			return "="
		default:
			return "*"
		}
	}
	switch kind {
	case KindComposer:
		return "\U000f01ee" // 󰇮 envelope
	case KindDialer:
		return "\U000f03f2" // 󰏲 phone
	case KindSMS:
		return "\U000f0b79" // 󰭹 chat bubble
	case KindNotes:
		return "\U000f039a" // 󰎚 note
	default:
		return "\U000f05af" // 󰖯 generic window
	}
}

// ruleChar returns the horizontal separator rune for panes.
func ruleChar() string {
	if config.UseASCIIOnly {
		return "-"
	}
	return "─"
}

// okMark returns the confirmation glyph for panes.
func okMark() string {
	if config.UseASCIIOnly {
		return "*"
	}
	return "✓"
}

// isText reports whether a key string is literal printable input rather
// than a named key ("enter", "ctrl+a", ...).
func isText(key string) bool {
	if key == "" {
		return false
	}
	runes := []rune(key)
	return len(runes) == 1 && runes[0] >= ' '
}

// editLine applies a single text-editing key to a line, returning the
// updated line and whether the key applied.
func editLine(line, key string) (string, bool) {
	switch {
	case key == "backspace":
		if line == "" {
			return line, true
		}
		runes := []rune(line)
		return string(runes[:len(runes)-1]), true
	case isText(key):
		return line + key, true
	default:
		return line, false
	}
}
