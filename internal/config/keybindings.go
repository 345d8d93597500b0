package config

import "fmt"

// Keybinding represents a single keybinding entry
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection represents a section of related keybindings
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// GetKeybindings returns all keybinding sections for the help menu
// If registry is provided, it generates bindings dynamically from user config
// If registry is nil, it falls back to hard-coded defaults
func GetKeybindings(registry *KeybindRegistry) []KeybindingSection {
	// If no registry provided, use static defaults
	if registry == nil {
		return getDefaultKeybindings()
	}

	// Generate dynamic help from config
	sections := []KeybindingSection{}

	// Window Management section
	windowMgmt := KeybindingSection{
		Title:    "WINDOW MANAGEMENT",
		Bindings: []Keybinding{},
	}
	addBinding(&windowMgmt, registry, "open_composer", "New mail composer")
	addBinding(&windowMgmt, registry, "open_dialer", "New dialer")
	addBinding(&windowMgmt, registry, "open_sms", "New text thread")
	addBinding(&windowMgmt, registry, "open_notes", "New notes window")
	addBinding(&windowMgmt, registry, "close_window", "Close window")
	addBinding(&windowMgmt, registry, "minimize_window", "Minimize window")
	addBinding(&windowMgmt, registry, "restore_all", "Restore all minimized")
	addBinding(&windowMgmt, registry, "toggle_maximize", "Maximize / restore")
	addBinding(&windowMgmt, registry, "next_window", "Next window")
	addBinding(&windowMgmt, registry, "prev_window", "Previous window")
	if len(windowMgmt.Bindings) > 0 {
		sections = append(sections, windowMgmt)
	}

	// Minimized windows section
	restore := KeybindingSection{
		Title:    "MINIMIZED WINDOWS",
		Bindings: []Keybinding{},
	}
	for i := 1; i <= 9; i++ {
		action := fmt.Sprintf("restore_minimized_%d", i)
		desc := fmt.Sprintf("Restore dock slot %d", i)
		addBinding(&restore, registry, action, desc)
	}
	if len(restore.Bindings) > 0 {
		sections = append(sections, restore)
	}

	// Modes section
	modes := KeybindingSection{
		Title:    "MODES",
		Bindings: []Keybinding{},
	}
	addBinding(&modes, registry, "enter_interact_mode", "Interact with window content")
	addBinding(&modes, registry, "enter_desk_mode", "Back to desk mode")
	addBinding(&modes, registry, "toggle_help", "Toggle help")
	addBinding(&modes, registry, "quit", "Quit")
	if len(modes.Bindings) > 0 {
		sections = append(sections, modes)
	}

	// System section
	system := KeybindingSection{
		Title:    "SYSTEM",
		Bindings: []Keybinding{},
	}
	addBinding(&system, registry, "toggle_logs", "Toggle log viewer")
	addBinding(&system, registry, "toggle_diagnostics", "Toggle diagnostics")
	if len(system.Bindings) > 0 {
		sections = append(sections, system)
	}

	// Mouse actions don't depend on the registry
	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// addBinding adds a keybinding to a section if the action has keys configured
func addBinding(section *KeybindingSection, registry *KeybindRegistry, action, description string) {
	keys := registry.GetKeysForDisplay(action)
	if keys != "" {
		section.Bindings = append(section.Bindings, Keybinding{
			Key:         keys,
			Description: description,
		})
	}
}

// getDefaultKeybindings returns the original hard-coded keybindings (used as fallback)
func getDefaultKeybindings() []KeybindingSection {
	sections := []KeybindingSection{
		{
			Title: "WINDOW MANAGEMENT",
			Bindings: []Keybinding{
				{"c", "New mail composer"},
				{"p", "New dialer"},
				{"s", "New text thread"},
				{"o", "New notes window"},
				{"x", "Close window"},
				{"m", "Minimize window"},
				{"Shift+M", "Restore all minimized"},
				{"f", "Maximize / restore"},
				{"Tab", "Next window"},
				{"Shift+Tab", "Previous window"},
			},
		},
		{
			Title: "MINIMIZED WINDOWS",
			Bindings: []Keybinding{
				{"1-9", "Restore dock slot"},
			},
		},
		{
			Title: "MODES",
			Bindings: []Keybinding{
				{"i, Enter", "Interact with window content"},
				{"Esc", "Back to desk mode"},
				{"?", "Toggle help"},
			},
		},
		{
			Title: "SYSTEM",
			Bindings: []Keybinding{
				{"Ctrl+L", "Toggle log viewer"},
				{"Ctrl+D", "Toggle diagnostics"},
			},
		},
	}
	sections = append(sections, getStaticHelpSections()...)
	return sections
}

// getStaticHelpSections returns help sections that don't need dynamic binding info
// (mouse actions, special modes, etc.)
func getStaticHelpSections() []KeybindingSection {
	return []KeybindingSection{
		{
			Title: "MOUSE",
			Bindings: []Keybinding{
				{"Drag title bar", "Move window"},
				{"Drag border/corner", "Resize window"},
				{"Click", "Focus window"},
				{"Title bar buttons", "Minimize / maximize / close"},
				{"Click dock item", "Restore minimized window"},
				{"Wheel", "Scroll window content"},
			},
		},
		{
			Title: "",
			Bindings: []Keybinding{
				{"q, Ctrl+C", "Quit"},
			},
		},
	}
}
