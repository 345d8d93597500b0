package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

type smsMessage struct {
	inbound bool
	text    string
}

// SMS is a mock text-message thread: a scrollable conversation with an
// input line pinned to the bottom.
type SMS struct {
	contact    string
	thread     []smsMessage
	input      string
	scroll     int // rows scrolled up from the newest message
	lastHeight int // content height from the most recent Render
}

// NewSMS returns a thread seeded with a short mock conversation.
func NewSMS() *SMS {
	return &SMS{
		contact: "Sam",
		thread: []smsMessage{
			{inbound: true, text: "hey, you around?"},
			{inbound: false, text: "yeah, what's up"},
			{inbound: true, text: "demo at 3, can you drive?"},
		},
	}
}

// Kind implements Provider.
func (s *SMS) Kind() wm.Kind { return KindSMS }

// Title implements Provider.
func (s *SMS) Title() string { return "Messages · " + s.contact }

// HandleKey implements KeyReceiver. Enter sends the pending input as an
// outbound message and snaps the view back to the newest entry.
func (s *SMS) HandleKey(key string) bool {
	if key == "enter" {
		if s.input != "" {
			s.thread = append(s.thread, smsMessage{text: s.input})
			s.input = ""
			s.scroll = 0
		}
		return true
	}
	line, ok := editLine(s.input, key)
	s.input = line
	return ok
}

// Scroll implements Scroller. Positive delta moves toward the newest
// message.
func (s *SMS) Scroll(delta int) {
	s.scroll -= delta
	if s.scroll < 0 {
		s.scroll = 0
	}
	if limit := len(s.thread) * 2; s.scroll > limit {
		s.scroll = limit
	}
}

// Cursor implements CursorProvider: the caret follows the input line at
// the bottom of the pane.
func (s *SMS) Cursor() (x, y int, ok bool) {
	if s.lastHeight <= 0 {
		return 0, 0, false
	}
	return 2 + lipgloss.Width(s.input), s.lastHeight - 1, true
}

// Render implements Provider.
func (s *SMS) Render(width, height int) string {
	accent := theme.KindAccent(string(KindSMS))
	inStyle := lipgloss.NewStyle().Foreground(theme.ContentFg()).Padding(0, 1)
	outStyle := lipgloss.NewStyle().Foreground(theme.ButtonFg()).Background(accent).Padding(0, 1)
	dim := lipgloss.NewStyle().Foreground(theme.HelpGray())

	maxBubble := max(width-6, 8)
	var rows []string
	for _, msg := range s.thread {
		text := msg.text
		if lipgloss.Width(text) > maxBubble {
			text = truncate(text, maxBubble)
		}
		if msg.inbound {
			rows = append(rows, inStyle.Render(text))
		} else {
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Right, outStyle.Render(text)))
		}
	}

	// Clamp the scroll so the view never runs past the oldest message,
	// then keep the newest rows that fit above the input line.
	s.lastHeight = height
	threadHeight := max(height-2, 1)
	maxScroll := max(len(rows)-threadHeight, 0)
	if s.scroll > maxScroll {
		s.scroll = maxScroll
	}
	end := len(rows) - s.scroll
	start := max(end-threadHeight, 0)
	visible := rows[start:end]

	lines := make([]string, 0, threadHeight+2)
	for i := threadHeight - len(visible); i > 0; i-- {
		lines = append(lines, "")
	}
	lines = append(lines, visible...)
	lines = append(lines, dim.Render(strings.Repeat(ruleChar(), max(width, 1))))
	lines = append(lines, dim.Render("> ")+s.input)

	b := pool.GetBuilder()
	defer pool.PutBuilder(b)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}

// truncate cuts a string to the given display width, appending an
// ellipsis marker.
func truncate(s string, width int) string {
	if width <= 1 {
		return "…"
	}
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	w := 0
	for _, r := range runes {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}
