package main

import (
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/flotilla-sh/flotilla/internal/theme"
	tint "github.com/lrstanley/bubbletint/v2"
)

func listThemes(plain bool) error {
	// Initializing with any valid theme registers the builtins plus
	// custom themes from the themes directory.
	if err := theme.Initialize("default"); err != nil {
		return fmt.Errorf("failed to initialize themes: %w", err)
	}

	ids := tint.TintIDs()

	if plain {
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	}

	w := colorprofile.NewWriter(os.Stdout, os.Environ())

	for _, id := range ids {
		if !tint.SetTintID(id) {
			continue
		}
		t := tint.Current()
		if t == nil {
			continue
		}
		fmt.Fprintf(w, "%-28s %s\n", id, renderSwatch(t))
	}

	return nil
}

// renderSwatch renders the eight base ANSI colors of a theme as a strip
// of background-colored cells. The colorprofile writer downsamples the
// strip to the terminal's capability.
func renderSwatch(t *tint.Tint) string {
	slots := []*tint.Color{t.Black, t.Red, t.Green, t.Yellow, t.Blue, t.Purple, t.Cyan, t.White}

	var sb strings.Builder
	for _, c := range slots {
		if c == nil {
			continue
		}
		sb.WriteString(lipgloss.NewStyle().Background(c).Render("  "))
	}
	return sb.String()
}
