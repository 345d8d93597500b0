package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// Composer field indices, in tab order.
const (
	composerFieldTo = iota
	composerFieldSubject
	composerFieldBody
	composerFieldCount
)

// composerLabelWidth is the column where field values start.
const composerLabelWidth = 9

// Composer is a mock email composition pane with To/Subject/Body fields
// and tab cycling between them.
type Composer struct {
	to      string
	subject string
	body    []string
	focus   int
	sent    bool
}

// NewComposer returns an empty composer focused on the To field.
func NewComposer() *Composer {
	return &Composer{body: []string{""}}
}

// Kind implements Provider.
func (c *Composer) Kind() wm.Kind { return KindComposer }

// Title implements Provider. The subject line doubles as the window
// title once the user has typed one.
func (c *Composer) Title() string {
	if c.subject != "" {
		return c.subject
	}
	return "New Message"
}

// HandleKey implements KeyReceiver.
func (c *Composer) HandleKey(key string) bool {
	switch key {
	case "tab", "down":
		c.focus = (c.focus + 1) % composerFieldCount
		return true
	case "shift+tab", "up":
		c.focus = (c.focus + composerFieldCount - 1) % composerFieldCount
		return true
	case "ctrl+s":
		if c.to != "" {
			c.sent = true
		}
		return true
	case "enter":
		if c.focus == composerFieldBody {
			c.body = append(c.body, "")
		} else {
			c.focus++
		}
		return true
	}

	c.sent = false
	switch c.focus {
	case composerFieldTo:
		line, ok := editLine(c.to, key)
		c.to = line
		return ok
	case composerFieldSubject:
		line, ok := editLine(c.subject, key)
		c.subject = line
		return ok
	default:
		last := len(c.body) - 1
		if key == "backspace" && c.body[last] == "" && last > 0 {
			c.body = c.body[:last]
			return true
		}
		line, ok := editLine(c.body[last], key)
		c.body[last] = line
		return ok
	}
}

// Cursor implements CursorProvider: the caret sits at the end of the
// focused field's text.
func (c *Composer) Cursor() (x, y int, ok bool) {
	switch c.focus {
	case composerFieldTo:
		return composerLabelWidth + lipgloss.Width(c.to), 0, true
	case composerFieldSubject:
		return composerLabelWidth + lipgloss.Width(c.subject), 1, true
	default:
		last := len(c.body) - 1
		return lipgloss.Width(c.body[last]), 3 + last, true
	}
}

// Render implements Provider.
func (c *Composer) Render(width, height int) string {
	accent := theme.KindAccent(string(KindComposer))
	label := lipgloss.NewStyle().Foreground(accent).Width(composerLabelWidth)
	focusedLabel := label.Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.HelpGray())

	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	toLabel, subjectLabel := label, label
	switch c.focus {
	case composerFieldTo:
		toLabel = focusedLabel
	case composerFieldSubject:
		subjectLabel = focusedLabel
	}

	b.WriteString(toLabel.Render("To"))
	b.WriteString(c.to)
	b.WriteString("\n")
	b.WriteString(subjectLabel.Render("Subject"))
	b.WriteString(c.subject)
	b.WriteString("\n")
	b.WriteString(dim.Render(strings.Repeat(ruleChar(), max(width, 1))))

	for _, line := range c.body {
		b.WriteString("\n")
		b.WriteString(line)
	}

	if c.sent {
		used := 3 + len(c.body)
		for used < height-1 {
			b.WriteString("\n")
			used++
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(okMark() + " Sent (mock)"))
	}

	return b.String()
}
