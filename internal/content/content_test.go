package content

import (
	"strings"
	"testing"

	"github.com/flotilla-sh/flotilla/internal/wm"
)

// Compile-time capability checks: the manager discovers these through
// type assertions, so a provider silently losing one is a real bug.
var (
	_ Provider       = (*Composer)(nil)
	_ KeyReceiver    = (*Composer)(nil)
	_ CursorProvider = (*Composer)(nil)
	_ Provider       = (*Dialer)(nil)
	_ KeyReceiver    = (*Dialer)(nil)
	_ Provider       = (*SMS)(nil)
	_ KeyReceiver    = (*SMS)(nil)
	_ Scroller       = (*SMS)(nil)
	_ CursorProvider = (*SMS)(nil)
	_ Provider       = (*Notes)(nil)
	_ KeyReceiver    = (*Notes)(nil)
	_ Scroller       = (*Notes)(nil)
	_ CursorProvider = (*Notes)(nil)
)

func typeKeys(t *testing.T, recv KeyReceiver, keys ...string) {
	t.Helper()
	for _, key := range keys {
		recv.HandleKey(key)
	}
}

func TestFactoryRegistry(t *testing.T) {
	for _, kind := range []wm.Kind{KindComposer, KindDialer, KindSMS, KindNotes} {
		p, ok := New(kind)
		if !ok {
			t.Fatalf("New(%q) not registered", kind)
		}
		if p.Kind() != kind {
			t.Errorf("New(%q).Kind() = %q", kind, p.Kind())
		}
	}

	if _, ok := New(wm.Kind("spreadsheet")); ok {
		t.Error("New(unknown kind) reported ok")
	}
}

func TestFactoryRegisterCustom(t *testing.T) {
	kind := wm.Kind("custom-test")
	Register(kind, func() Provider { return NewNotes() })
	defer delete(factories, kind)

	if _, ok := New(kind); !ok {
		t.Fatal("custom kind not registered")
	}
	found := false
	for _, k := range Kinds() {
		if k == kind {
			found = true
		}
	}
	if !found {
		t.Errorf("Kinds() = %v, missing %q", Kinds(), kind)
	}
}

func TestEditLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		key      string
		want     string
		consumed bool
	}{
		{name: "append letter", line: "ab", key: "c", want: "abc", consumed: true},
		{name: "append space", line: "ab", key: " ", want: "ab ", consumed: true},
		{name: "append wide rune", line: "", key: "界", want: "界", consumed: true},
		{name: "backspace", line: "abc", key: "backspace", want: "ab", consumed: true},
		{name: "backspace multibyte", line: "café", key: "backspace", want: "caf", consumed: true},
		{name: "backspace empty", line: "", key: "backspace", want: "", consumed: true},
		{name: "named key ignored", line: "ab", key: "ctrl+a", want: "ab", consumed: false},
		{name: "arrow ignored", line: "ab", key: "left", want: "ab", consumed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, consumed := editLine(tt.line, tt.key)
			if got != tt.want || consumed != tt.consumed {
				t.Errorf("editLine(%q, %q) = (%q, %v), want (%q, %v)", tt.line, tt.key, got, consumed, tt.want, tt.consumed)
			}
		})
	}
}

func TestComposerFieldCycling(t *testing.T) {
	c := NewComposer()

	tests := []struct {
		name string
		key  string
		want int
	}{
		{name: "tab to subject", key: "tab", want: composerFieldSubject},
		{name: "tab to body", key: "tab", want: composerFieldBody},
		{name: "tab wraps to to", key: "tab", want: composerFieldTo},
		{name: "shift+tab wraps to body", key: "shift+tab", want: composerFieldBody},
		{name: "up to subject", key: "up", want: composerFieldSubject},
		{name: "down back to body", key: "down", want: composerFieldBody},
	}

	for _, tt := range tests {
		if !c.HandleKey(tt.key) {
			t.Fatalf("%s: HandleKey(%q) not consumed", tt.name, tt.key)
		}
		if c.focus != tt.want {
			t.Errorf("%s: focus = %d, want %d", tt.name, c.focus, tt.want)
		}
	}
}

func TestComposerTyping(t *testing.T) {
	c := NewComposer()
	typeKeys(t, c, "a", "l", "i", "tab", "h", "i", "tab", "y", "o", "enter", "!")

	if c.to != "ali" {
		t.Errorf("to = %q, want %q", c.to, "ali")
	}
	if c.subject != "hi" {
		t.Errorf("subject = %q, want %q", c.subject, "hi")
	}
	wantBody := []string{"yo", "!"}
	if len(c.body) != len(wantBody) {
		t.Fatalf("body = %v, want %v", c.body, wantBody)
	}
	for i := range wantBody {
		if c.body[i] != wantBody[i] {
			t.Errorf("body[%d] = %q, want %q", i, c.body[i], wantBody[i])
		}
	}
	if got := c.Title(); got != "hi" {
		t.Errorf("Title() = %q, want subject", got)
	}
}

func TestComposerEnterAdvancesHeaderFields(t *testing.T) {
	c := NewComposer()
	c.HandleKey("enter")
	if c.focus != composerFieldSubject {
		t.Errorf("focus after enter on To = %d, want subject", c.focus)
	}
	c.HandleKey("enter")
	if c.focus != composerFieldBody {
		t.Errorf("focus after enter on Subject = %d, want body", c.focus)
	}
	c.HandleKey("enter")
	if len(c.body) != 2 {
		t.Errorf("enter in body added no line: %v", c.body)
	}
}

func TestComposerBackspaceJoinsBodyLines(t *testing.T) {
	c := NewComposer()
	c.focus = composerFieldBody
	typeKeys(t, c, "a", "enter", "backspace")

	if len(c.body) != 1 || c.body[0] != "a" {
		t.Errorf("body = %v, want [a]", c.body)
	}

	// A second backspace edits the remaining line instead of dropping it.
	c.HandleKey("backspace")
	if len(c.body) != 1 || c.body[0] != "" {
		t.Errorf("body = %v, want one empty line", c.body)
	}
}

func TestComposerCursor(t *testing.T) {
	c := NewComposer()
	typeKeys(t, c, "a", "b")

	x, y, ok := c.Cursor()
	if !ok || x != composerLabelWidth+2 || y != 0 {
		t.Errorf("Cursor() on To = (%d, %d, %v), want (%d, 0, true)", x, y, ok, composerLabelWidth+2)
	}

	typeKeys(t, c, "tab", "tab", "h", "i", "enter", "!")
	x, y, ok = c.Cursor()
	if !ok || x != 1 || y != 4 {
		t.Errorf("Cursor() in body = (%d, %d, %v), want (1, 4, true)", x, y, ok)
	}
}

func TestComposerSend(t *testing.T) {
	c := NewComposer()
	typeKeys(t, c, "a", "ctrl+s")
	if !c.sent {
		t.Error("ctrl+s with recipient did not mark sent")
	}

	out := c.Render(40, 10)
	if !strings.Contains(out, "Sent") {
		t.Error("Render() missing sent confirmation")
	}

	typeKeys(t, c, "tab", "x")
	if c.sent {
		t.Error("typing after send kept the sent banner")
	}
}

func TestComposerSendRequiresRecipient(t *testing.T) {
	c := NewComposer()
	c.HandleKey("ctrl+s")
	if c.sent {
		t.Error("ctrl+s with empty To marked sent")
	}
}

func TestDialerInput(t *testing.T) {
	d := NewDialer()

	tests := []struct {
		name     string
		keys     []string
		want     string
		consumed bool
	}{
		{name: "digits", keys: []string{"5", "5", "5"}, want: "555", consumed: true},
		{name: "star and pound", keys: []string{"*", "#"}, want: "555*#", consumed: true},
		{name: "backspace", keys: []string{"backspace"}, want: "555*", consumed: true},
		{name: "letters rejected", keys: []string{"a"}, want: "555*", consumed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var consumed bool
			for _, key := range tt.keys {
				consumed = d.HandleKey(key)
			}
			if consumed != tt.consumed {
				t.Errorf("HandleKey consumed = %v, want %v", consumed, tt.consumed)
			}
			if d.number != tt.want {
				t.Errorf("number = %q, want %q", d.number, tt.want)
			}
		})
	}
}

func TestDialerDigitCap(t *testing.T) {
	d := NewDialer()
	for range maxDialDigits + 5 {
		d.HandleKey("9")
	}
	if len(d.number) != maxDialDigits {
		t.Errorf("number length = %d, want cap %d", len(d.number), maxDialDigits)
	}
}

func TestDialerCallToggle(t *testing.T) {
	d := NewDialer()

	// Enter with no number stays idle.
	d.HandleKey("enter")
	if d.calling {
		t.Error("enter with empty number started a call")
	}

	typeKeys(t, d, "5", "5", "5", "enter")
	if !d.calling {
		t.Fatal("enter with number did not start the call")
	}
	if got := d.Title(); got != "Call 555" {
		t.Errorf("Title() = %q, want %q", got, "Call 555")
	}

	// Backspace is inert mid-call, enter hangs up.
	d.HandleKey("backspace")
	if d.number != "555" {
		t.Errorf("number edited mid-call: %q", d.number)
	}
	d.HandleKey("enter")
	if d.calling {
		t.Error("enter did not hang up")
	}
}

func TestSMSSend(t *testing.T) {
	s := NewSMS()
	seeded := len(s.thread)

	typeKeys(t, s, "o", "k", "enter")
	if len(s.thread) != seeded+1 {
		t.Fatalf("thread length = %d, want %d", len(s.thread), seeded+1)
	}
	last := s.thread[len(s.thread)-1]
	if last.inbound || last.text != "ok" {
		t.Errorf("appended message = %+v, want outbound %q", last, "ok")
	}
	if s.input != "" {
		t.Errorf("input not cleared after send: %q", s.input)
	}

	// Empty input sends nothing.
	s.HandleKey("enter")
	if len(s.thread) != seeded+1 {
		t.Error("enter with empty input appended a message")
	}
}

func TestSMSScrollClamping(t *testing.T) {
	s := NewSMS()

	s.Scroll(-3)
	if s.scroll != 3 {
		t.Errorf("scroll after wheel up = %d, want 3", s.scroll)
	}
	s.Scroll(100)
	if s.scroll != 0 {
		t.Errorf("scroll after large wheel down = %d, want 0", s.scroll)
	}
	s.Scroll(-100)
	if limit := len(s.thread) * 2; s.scroll != limit {
		t.Errorf("scroll = %d, want clamp at %d", s.scroll, limit)
	}

	// Sending snaps the view back to the newest message.
	typeKeys(t, s, "x", "enter")
	if s.scroll != 0 {
		t.Errorf("scroll after send = %d, want 0", s.scroll)
	}
}

func TestSMSRenderShape(t *testing.T) {
	s := NewSMS()
	out := s.Render(30, 8)

	lines := strings.Split(out, "\n")
	if len(lines) != 8 {
		t.Fatalf("Render(30, 8) produced %d lines, want 8", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], ">") {
		t.Errorf("last line %q missing input prompt", lines[len(lines)-1])
	}

	x, y, ok := s.Cursor()
	if !ok || y != 7 || x != 2 {
		t.Errorf("Cursor() = (%d, %d, %v), want (2, 7, true)", x, y, ok)
	}
}

func TestNotesEditing(t *testing.T) {
	n := NewNotes()
	typeKeys(t, n, "t", "o", "enter", "d", "o")

	if len(n.lines) != 2 || n.lines[0] != "to" || n.lines[1] != "do" {
		t.Fatalf("lines = %v, want [to do]", n.lines)
	}
	if got := n.Title(); got != "to" {
		t.Errorf("Title() = %q, want first line", got)
	}

	typeKeys(t, n, "backspace", "backspace", "backspace")
	if len(n.lines) != 1 || n.lines[0] != "to" {
		t.Errorf("lines after unwinding = %v, want [to]", n.lines)
	}
}

func TestNotesCursorFollowsTail(t *testing.T) {
	n := NewNotes()
	typeKeys(t, n, "h", "i")

	x, y, ok := n.Cursor()
	if !ok || x != 2 || y != 0 {
		t.Errorf("Cursor() = (%d, %d, %v), want (2, 0, true)", x, y, ok)
	}

	typeKeys(t, n, "enter", "y", "o")
	n.Scroll(-1)
	if _, _, ok := n.Cursor(); ok {
		t.Error("Cursor() visible while scrolled")
	}

	// Typing snaps back to the tail and shows the caret again.
	n.HandleKey("!")
	if _, _, ok := n.Cursor(); !ok {
		t.Error("Cursor() hidden after typing")
	}
}

func TestNotesRenderTail(t *testing.T) {
	n := NewNotes()
	for range 10 {
		n.HandleKey("x")
		n.HandleKey("enter")
	}

	out := n.Render(20, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("Render(20, 4) produced %d lines, want 4", len(lines))
	}

	// Caret is pinned to the bottom visible row.
	_, y, ok := n.Cursor()
	if !ok || y != 3 {
		t.Errorf("Cursor() y = %d (ok=%v), want 3", y, ok)
	}
}

func TestKindGlyphFallbacks(t *testing.T) {
	for _, kind := range Kinds() {
		if KindGlyph(kind) == "" {
			t.Errorf("KindGlyph(%q) empty", kind)
		}
	}
	if KindGlyph(wm.Kind("mystery")) == "" {
		t.Error("KindGlyph(unknown) empty")
	}
}
