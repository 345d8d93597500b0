package content

import (
	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// Notes is a free-text scratch pad. Editing is append-only at the tail,
// which keeps the caret math trivial.
type Notes struct {
	lines      []string
	scroll     int // rows scrolled up from the tail
	lastHeight int
}

// NewNotes returns an empty pad.
func NewNotes() *Notes {
	return &Notes{lines: []string{""}}
}

// Kind implements Provider.
func (n *Notes) Kind() wm.Kind { return KindNotes }

// Title implements Provider: the first non-empty line names the pad.
func (n *Notes) Title() string {
	for _, line := range n.lines {
		if line != "" {
			return line
		}
	}
	return "Notes"
}

// HandleKey implements KeyReceiver.
func (n *Notes) HandleKey(key string) bool {
	n.scroll = 0
	last := len(n.lines) - 1
	switch {
	case key == "enter":
		n.lines = append(n.lines, "")
		return true
	case key == "backspace" && n.lines[last] == "" && last > 0:
		n.lines = n.lines[:last]
		return true
	default:
		line, ok := editLine(n.lines[last], key)
		n.lines[last] = line
		return ok
	}
}

// Scroll implements Scroller.
func (n *Notes) Scroll(delta int) {
	n.scroll -= delta
	if n.scroll < 0 {
		n.scroll = 0
	}
	if limit := len(n.lines) - 1; n.scroll > limit {
		n.scroll = limit
	}
}

// Cursor implements CursorProvider: caret at the end of the last line,
// hidden while scrolled away from the tail.
func (n *Notes) Cursor() (x, y int, ok bool) {
	if n.scroll != 0 {
		return 0, 0, false
	}
	last := len(n.lines) - 1
	y = last
	if n.lastHeight > 0 && y > n.lastHeight-1 {
		y = n.lastHeight - 1
	}
	return lipgloss.Width(n.lines[last]), y, true
}

// Render implements Provider.
func (n *Notes) Render(width, height int) string {
	n.lastHeight = height
	end := len(n.lines) - n.scroll
	if end < 1 {
		end = 1
	}
	start := max(end-height, 0)
	visible := n.lines[start:end]

	b := pool.GetBuilder()
	defer pool.PutBuilder(b)
	for i, line := range visible {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}
