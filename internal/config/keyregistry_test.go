package config

import (
	"strings"
	"testing"
)

func TestKeybindRegistryResolvesDefaults(t *testing.T) {
	registry := NewKeybindRegistry(nil)

	tests := []struct {
		key    string
		action string
	}{
		{key: "c", action: "open_composer"},
		{key: "p", action: "open_dialer"},
		{key: "s", action: "open_sms"},
		{key: "o", action: "open_notes"},
		{key: "x", action: "close_window"},
		{key: "m", action: "minimize_window"},
		{key: "M", action: "restore_all"},
		{key: "f", action: "toggle_maximize"},
		{key: "tab", action: "next_window"},
		{key: "shift+tab", action: "prev_window"},
		{key: "i", action: "enter_interact_mode"},
		{key: "enter", action: "enter_interact_mode"},
		{key: "esc", action: "enter_desk_mode"},
		{key: "?", action: "toggle_help"},
		{key: "q", action: "quit"},
		{key: "5", action: "restore_minimized_5"},
		{key: "ctrl+l", action: "toggle_logs"},
		{key: "ctrl+d", action: "toggle_diagnostics"},
	}

	for _, tt := range tests {
		got, ok := registry.ActionForKey(tt.key)
		if !ok || got != tt.action {
			t.Errorf("ActionForKey(%q) = %q, %v, want %q", tt.key, got, ok, tt.action)
		}
	}
}

func TestKeybindRegistryUnknownKey(t *testing.T) {
	registry := NewKeybindRegistry(nil)
	if action, ok := registry.ActionForKey("ctrl+alt+del"); ok {
		t.Errorf("ActionForKey(ctrl+alt+del) = %q, want no binding", action)
	}
}

func TestKeybindRegistryConflictKeepsFirstOwner(t *testing.T) {
	cfg := DefaultConfig()
	// Bind q (already quit in mode_control) to close_window too. Windows
	// is merged before ModeControl, so close_window keeps the key.
	cfg.Keybindings.Windows["close_window"] = []string{"x", "q"}

	registry := NewKeybindRegistry(cfg)
	action, ok := registry.ActionForKey("q")
	if !ok || action != "close_window" {
		t.Errorf("ActionForKey(q) = %q, %v, want close_window", action, ok)
	}
	conflicts := registry.Conflicts()
	if len(conflicts) != 1 || !strings.Contains(conflicts[0], `"q"`) {
		t.Errorf("Conflicts() = %v, want one clash naming q", conflicts)
	}
}

func TestGetKeysForDisplay(t *testing.T) {
	registry := NewKeybindRegistry(nil)

	tests := []struct {
		action string
		want   string
	}{
		{action: "enter_interact_mode", want: "i, Enter"},
		{action: "prev_window", want: "Shift+Tab"},
		{action: "toggle_logs", want: "Ctrl+L"},
		{action: "restore_all", want: "M"},
		{action: "minimize_window", want: "m"},
		{action: "no_such_action", want: ""},
	}

	for _, tt := range tests {
		if got := registry.GetKeysForDisplay(tt.action); got != tt.want {
			t.Errorf("GetKeysForDisplay(%q) = %q, want %q", tt.action, got, tt.want)
		}
	}
}

func TestGetKeybindingsUsesRegistry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings.Windows["close_window"] = []string{"w"}
	registry := NewKeybindRegistry(cfg)

	sections := GetKeybindings(registry)
	var found bool
	for _, section := range sections {
		for _, binding := range section.Bindings {
			if binding.Description == "Close window" {
				found = true
				if binding.Key != "w" {
					t.Errorf("close binding key = %q, want w", binding.Key)
				}
			}
		}
	}
	if !found {
		t.Error("close_window binding missing from help sections")
	}
}

func TestGetKeybindingsFallsBackWithoutRegistry(t *testing.T) {
	sections := GetKeybindings(nil)
	if len(sections) == 0 {
		t.Fatal("GetKeybindings(nil) returned no sections")
	}
	var titles []string
	for _, section := range sections {
		titles = append(titles, section.Title)
	}
	joined := strings.Join(titles, " ")
	if !strings.Contains(joined, "WINDOW MANAGEMENT") || !strings.Contains(joined, "MOUSE") {
		t.Errorf("section titles = %v, want WINDOW MANAGEMENT and MOUSE present", titles)
	}
}
