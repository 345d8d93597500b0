package app

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/flotilla-sh/flotilla/internal/config"
	"github.com/flotilla-sh/flotilla/internal/content"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

func TestCalculateDockLayoutEmpty(t *testing.T) {
	m := newTestManager(t)

	layout := m.CalculateDockLayout()
	if layout.Y != 29 {
		t.Errorf("dock y = %d, want bottom row 29", layout.Y)
	}
	if len(layout.Items) != 0 {
		t.Errorf("items = %d, want none", len(layout.Items))
	}
}

func TestCalculateDockLayoutSpans(t *testing.T) {
	m := newTestManager(t)

	a := m.OpenWindow(content.KindComposer)
	b := m.OpenWindow(content.KindNotes)
	c := m.OpenWindow(content.KindDialer)
	m.Registry.Minimize(b.ID)
	m.Registry.Minimize(c.ID)
	_ = a

	layout := m.CalculateDockLayout()
	if len(layout.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(layout.Items))
	}

	// Pills follow minimize order, not z order.
	if layout.Items[0].ID != b.ID || layout.Items[1].ID != c.ID {
		t.Errorf("item order = %s,%s want %s,%s",
			layout.Items[0].ID, layout.Items[1].ID, b.ID, c.ID)
	}

	docked := m.Registry.Minimized()
	for i, item := range layout.Items {
		want := ansi.StringWidth(dockLabel(i, docked[i])) + 2
		if got := item.EndX - item.StartX; got != want {
			t.Errorf("item %d span = %d, want label width %d", i, got, want)
		}
	}

	sep := ansi.StringWidth(config.GetDockSeparator())
	if gap := layout.Items[1].StartX - layout.Items[0].EndX; gap != sep {
		t.Errorf("gap between pills = %d, want separator width %d", gap, sep)
	}

	strip := layout.Items[1].EndX - layout.Items[0].StartX
	if want := max((m.Width-strip)/2, 0); layout.Items[0].StartX != want {
		t.Errorf("strip starts at %d, want centered at %d", layout.Items[0].StartX, want)
	}
}

func TestCalculateDockLayoutCap(t *testing.T) {
	m := newTestManager(t)

	for i := 0; i < config.MaxDockItems+2; i++ {
		id := fmt.Sprintf("w%d", i)
		m.Registry.Open(id, "scratch", nil, wm.WithTitle(id))
		m.Registry.Minimize(id)
	}

	layout := m.CalculateDockLayout()
	if len(layout.Items) != config.MaxDockItems {
		t.Errorf("items = %d, want capped at %d", len(layout.Items), config.MaxDockItems)
	}
}

func TestDockLabel(t *testing.T) {
	old := config.UseASCIIOnly
	config.UseASCIIOnly = true
	defer func() { config.UseASCIIOnly = old }()

	m := newTestManager(t)
	long, _ := m.Registry.Open("w1", "scratch", nil, wm.WithTitle("abcdefghijklmnop"))
	short, _ := m.Registry.Open("w2", "scratch", nil, wm.WithTitle("Notes"))

	if got, want := dockLabel(0, long), " 1 * abcdefghij.. "; got != want {
		t.Errorf("long label = %q, want %q", got, want)
	}
	if got, want := dockLabel(1, short), " 2 * Notes "; got != want {
		t.Errorf("short label = %q, want %q", got, want)
	}
}

func TestDockLabelUsesLiveTitle(t *testing.T) {
	m := newTestManager(t)

	rec := m.OpenWindow(content.KindNotes)
	provider := rec.Content.(content.Provider)

	label := dockLabel(0, rec)
	if !strings.Contains(label, provider.Title()) {
		t.Errorf("label %q should carry the live panel title %q", label, provider.Title())
	}
}

func TestRenderDockLayer(t *testing.T) {
	m := newTestManager(t)

	rec := m.OpenWindow(content.KindComposer)
	m.Registry.Minimize(rec.ID)

	layer := m.renderDock()
	if layer.GetY() != 29 {
		t.Errorf("dock layer y = %d, want 29", layer.GetY())
	}
	if layer.GetZ() != config.ZIndexDock {
		t.Errorf("dock layer z = %d, want %d", layer.GetZ(), config.ZIndexDock)
	}
}
