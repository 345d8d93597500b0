package theme

import (
	"os"
	"path/filepath"
	"testing"

	tint "github.com/lrstanley/bubbletint/v2"
)

func writeTheme(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomThemeFile(t *testing.T) {
	t.Run("complete theme", func(t *testing.T) {
		path := writeTheme(t, t.TempDir(), "harbor.json", `{
			"id": "harbor",
			"display_name": "Harbor",
			"dark": true,
			"fg": "#c6d0f5",
			"bg": "#232634",
			"cursor": "#f2d5cf",
			"black": "#51576d",
			"red": "#e78284",
			"green": "#a6d189",
			"yellow": "#e5c890",
			"blue": "#8caaee",
			"purple": "#ca9ee6",
			"cyan": "#81c8be",
			"white": "#b5bfe2",
			"bright_black": "#626880",
			"bright_red": "#e78284",
			"bright_green": "#a6d189",
			"bright_yellow": "#e5c890",
			"bright_blue": "#8caaee",
			"bright_purple": "#ca9ee6",
			"bright_cyan": "#81c8be",
			"bright_white": "#a5adce"
		}`)

		theme, err := LoadCustomThemeFile(path)
		if err != nil {
			t.Fatalf("LoadCustomThemeFile failed: %v", err)
		}
		if theme.ID != "harbor" {
			t.Errorf("ID = %q, want %q", theme.ID, "harbor")
		}
		if theme.DisplayName != "Harbor" {
			t.Errorf("DisplayName = %q, want %q", theme.DisplayName, "Harbor")
		}
		if !theme.Dark {
			t.Error("Dark should be true")
		}
		colors := []*tint.Color{
			theme.Fg, theme.Bg, theme.Cursor,
			theme.Black, theme.Red, theme.Green, theme.Yellow,
			theme.Blue, theme.Purple, theme.Cyan, theme.White,
			theme.BrightBlack, theme.BrightRed, theme.BrightGreen, theme.BrightYellow,
			theme.BrightBlue, theme.BrightPurple, theme.BrightCyan, theme.BrightWhite,
		}
		for i, c := range colors {
			if c == nil {
				t.Errorf("color at index %d is nil", i)
			}
		}
	})

	t.Run("minimal theme fills defaults", func(t *testing.T) {
		path := writeTheme(t, t.TempDir(), "bare.json", `{
			"id": "bare",
			"fg": "#c0c0c0",
			"bg": "#101018"
		}`)

		theme, err := LoadCustomThemeFile(path)
		if err != nil {
			t.Fatalf("LoadCustomThemeFile failed: %v", err)
		}
		named := map[string]*tint.Color{
			"Cursor":       theme.Cursor,
			"Black":        theme.Black,
			"Red":          theme.Red,
			"Green":        theme.Green,
			"Yellow":       theme.Yellow,
			"Blue":         theme.Blue,
			"Purple":       theme.Purple,
			"Cyan":         theme.Cyan,
			"White":        theme.White,
			"BrightBlack":  theme.BrightBlack,
			"BrightYellow": theme.BrightYellow,
			"BrightWhite":  theme.BrightWhite,
		}
		for name, c := range named {
			if c == nil {
				t.Errorf("%s should have been filled with a default, got nil", name)
			}
		}

		// Cursor falls back to Fg, bright variants to their normal counterpart
		if theme.Cursor.R != theme.Fg.R || theme.Cursor.G != theme.Fg.G || theme.Cursor.B != theme.Fg.B {
			t.Error("Cursor should default to Fg color")
		}
		if theme.BrightYellow.R != theme.Yellow.R {
			t.Error("BrightYellow should default to Yellow")
		}
	})

	t.Run("id derived from filename", func(t *testing.T) {
		path := writeTheme(t, t.TempDir(), "Night-Watch.json", `{
			"fg": "#ffffff",
			"bg": "#000000"
		}`)

		theme, err := LoadCustomThemeFile(path)
		if err != nil {
			t.Fatalf("LoadCustomThemeFile failed: %v", err)
		}
		if theme.ID != "night-watch" {
			t.Errorf("ID = %q, want %q", theme.ID, "night-watch")
		}
		if theme.DisplayName != "night-watch" {
			t.Errorf("DisplayName = %q, want %q", theme.DisplayName, "night-watch")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTheme(t, t.TempDir(), "broken.json", "not valid json{{{")
		if _, err := LoadCustomThemeFile(path); err == nil {
			t.Error("expected error for invalid JSON, got nil")
		}
	})
}

func TestLoadCustomThemes(t *testing.T) {
	t.Run("empty dir", func(t *testing.T) {
		loaded, err := LoadCustomThemes(t.TempDir())
		if err != nil {
			t.Fatalf("LoadCustomThemes on empty dir should not error: %v", err)
		}
		if len(loaded) != 0 {
			t.Errorf("loaded %d themes from empty dir, want 0", len(loaded))
		}
	})

	t.Run("skips non-json files", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{"readme.txt", "notes.md", ".hidden"} {
			writeTheme(t, dir, name, "not a theme")
		}

		loaded, err := LoadCustomThemes(dir)
		if err != nil {
			t.Fatalf("LoadCustomThemes should not error: %v", err)
		}
		if len(loaded) != 0 {
			t.Errorf("loaded %d themes, want 0", len(loaded))
		}
	})

	t.Run("registers with tint", func(t *testing.T) {
		dir := t.TempDir()
		writeTheme(t, dir, "pier-glow.json", `{
			"id": "pier-glow",
			"fg": "#ffffff",
			"bg": "#000000"
		}`)

		tint.NewDefaultRegistry()
		loaded, err := LoadCustomThemes(dir)
		if err != nil {
			t.Fatalf("LoadCustomThemes failed: %v", err)
		}
		if len(loaded) != 1 {
			t.Fatalf("loaded %d themes, want 1", len(loaded))
		}

		found := false
		for _, id := range tint.TintIDs() {
			if id == "pier-glow" {
				found = true
				break
			}
		}
		if !found {
			t.Error("custom theme 'pier-glow' not found in TintIDs()")
		}
	})
}

func TestFillDefaults(t *testing.T) {
	theme := &tint.Tint{}
	fillDefaults(theme)

	for name, c := range map[string]*tint.Color{
		"Fg":          theme.Fg,
		"Bg":          theme.Bg,
		"Cursor":      theme.Cursor,
		"Black":       theme.Black,
		"BrightWhite": theme.BrightWhite,
	} {
		if c == nil {
			t.Errorf("%s should be set by fillDefaults", name)
		}
	}
}

func TestCopyColor(t *testing.T) {
	original := &tint.Color{R: 255, G: 128, B: 0, A: 255}
	copied := copyColor(original)

	if copied == original {
		t.Error("copyColor should return a different pointer")
	}
	if copied.R != original.R || copied.G != original.G || copied.B != original.B {
		t.Error("copyColor should copy values")
	}

	copied.R = 0
	if original.R == 0 {
		t.Error("modifying copy should not affect original")
	}

	if copyColor(nil) != nil {
		t.Error("copyColor(nil) should return nil")
	}
}
