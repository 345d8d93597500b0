package config

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// KeybindRegistry resolves configured keys to actions for dispatch and
// back to display strings for the help overlay. Keys are bubbletea key
// names ("m", "shift+tab", "ctrl+l").
type KeybindRegistry struct {
	keysByAction map[string][]string
	actionByKey  map[string]string
	conflicts    []string
}

// NewKeybindRegistry builds a registry from the user's keybinding config.
// A nil config uses the defaults. When two actions claim the same key the
// first one (in section order, then alphabetical) keeps it and the clash
// is recorded.
func NewKeybindRegistry(cfg *UserConfig) *KeybindRegistry {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	r := &KeybindRegistry{
		keysByAction: make(map[string][]string),
		actionByKey:  make(map[string]string),
	}
	r.addSection(cfg.Keybindings.Windows)
	r.addSection(cfg.Keybindings.ModeControl)
	r.addSection(cfg.Keybindings.RestoreMinimized)
	r.addSection(cfg.Keybindings.System)
	return r
}

func (r *KeybindRegistry) addSection(section map[string][]string) {
	actions := make([]string, 0, len(section))
	for action := range section {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	for _, action := range actions {
		for _, key := range section[action] {
			if key == "" {
				continue
			}
			if owner, taken := r.actionByKey[key]; taken {
				if owner != action {
					r.conflicts = append(r.conflicts,
						fmt.Sprintf("key %q bound to both %s and %s, keeping %s", key, owner, action, owner))
				}
				continue
			}
			r.actionByKey[key] = action
			r.keysByAction[action] = append(r.keysByAction[action], key)
		}
	}
}

// ActionForKey returns the action bound to a key.
func (r *KeybindRegistry) ActionForKey(key string) (string, bool) {
	action, ok := r.actionByKey[key]
	return action, ok
}

// KeysFor returns the keys bound to an action, in config order.
func (r *KeybindRegistry) KeysFor(action string) []string {
	return slices.Clone(r.keysByAction[action])
}

// Conflicts returns the clashes found while building the registry.
func (r *KeybindRegistry) Conflicts() []string {
	return slices.Clone(r.conflicts)
}

// Actions returns every bound action name, sorted.
func (r *KeybindRegistry) Actions() []string {
	actions := make([]string, 0, len(r.keysByAction))
	for action := range r.keysByAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	return actions
}

// GetKeysForDisplay returns the keys for an action as a display string
// ("i, Enter"), or empty when the action has no keys.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.keysByAction[action]
	if len(keys) == 0 {
		return ""
	}
	display := make([]string, len(keys))
	for i, key := range keys {
		display[i] = prettifyKey(key)
	}
	return strings.Join(display, ", ")
}

// prettifyKey turns a bubbletea key name into help-menu form: modifiers
// and named keys are capitalized, a bare letter keeps its case (m and
// shift+m are different bindings).
func prettifyKey(key string) string {
	parts := strings.Split(key, "+")
	for i, part := range parts {
		switch strings.ToLower(part) {
		case "ctrl":
			parts[i] = "Ctrl"
		case "shift":
			parts[i] = "Shift"
		case "alt":
			parts[i] = "Alt"
		case "tab":
			parts[i] = "Tab"
		case "esc":
			parts[i] = "Esc"
		case "enter":
			parts[i] = "Enter"
		case "space":
			parts[i] = "Space"
		case "up":
			parts[i] = "Up"
		case "down":
			parts[i] = "Down"
		case "left":
			parts[i] = "Left"
		case "right":
			parts[i] = "Right"
		default:
			if len(parts) > 1 && i == len(parts)-1 {
				parts[i] = strings.ToUpper(part)
			}
		}
	}
	return strings.Join(parts, "+")
}
