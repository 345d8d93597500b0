package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/theme"
)

func listKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(userConfig)

	// The writer downgrades colors to whatever the terminal supports.
	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	headerStyle := lipgloss.NewStyle().Foreground(theme.CLITableHeader()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.CLITableKey())
	dimStyle := lipgloss.NewStyle().Foreground(theme.CLITableDim())

	for _, section := range config.GetKeybindings(registry) {
		if section.Title != "" {
			fmt.Fprintln(w, headerStyle.Render(section.Title))
		}
		for _, b := range section.Bindings {
			fmt.Fprintf(w, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-22s", b.Key)), b.Description)
		}
		fmt.Fprintln(w)
	}

	if conflicts := registry.Conflicts(); len(conflicts) > 0 {
		fmt.Fprintln(w, dimStyle.Render("Conflicts (first binding wins):"))
		for _, c := range conflicts {
			fmt.Fprintf(w, "  %s\n", dimStyle.Render(c))
		}
	}

	return nil
}

func listCustomKeybindings() error {
	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Printf("Warning: Failed to load config, using defaults: %v", err)
		userConfig = config.DefaultConfig()
	}
	registry := config.NewKeybindRegistry(userConfig)
	defaults := config.NewKeybindRegistry(config.DefaultConfig())

	seen := make(map[string]bool)
	var actions []string
	for _, action := range append(defaults.Actions(), registry.Actions()...) {
		if !seen[action] {
			seen[action] = true
			actions = append(actions, action)
		}
	}
	sort.Strings(actions)

	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	keyStyle := lipgloss.NewStyle().Foreground(theme.CLITableKey())
	dimStyle := lipgloss.NewStyle().Foreground(theme.CLITableDim())

	customized := 0
	for _, action := range actions {
		defaultKeys := defaults.GetKeysForDisplay(action)
		currentKeys := registry.GetKeysForDisplay(action)
		if defaultKeys == currentKeys {
			continue
		}
		if defaultKeys == "" {
			defaultKeys = "(unbound)"
		}
		if currentKeys == "" {
			currentKeys = "(unbound)"
		}
		fmt.Fprintf(w, "  %-24s %s %s %s\n",
			action,
			dimStyle.Render(defaultKeys),
			dimStyle.Render("->"),
			keyStyle.Render(currentKeys),
		)
		customized++
	}

	if customized == 0 {
		fmt.Fprintln(w, "No custom keybindings; all bindings match the defaults.")
	}

	return nil
}
