package content

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/flotilla-sh/flotilla/internal/pool"
	"github.com/flotilla-sh/flotilla/internal/theme"
	"github.com/flotilla-sh/flotilla/internal/wm"
)

// maxDialDigits caps the number display so it never outgrows the pane.
const maxDialDigits = 24

var keypadRows = [4][3]string{
	{"1", "2", "3"},
	{"4", "5", "6"},
	{"7", "8", "9"},
	{"*", "0", "#"},
}

// Dialer is a mock phone dialer: a number display over a 12-key pad.
// Digits come from the keyboard, enter toggles the (pretend) call.
type Dialer struct {
	number  string
	calling bool
}

// NewDialer returns an idle dialer with an empty display.
func NewDialer() *Dialer {
	return &Dialer{}
}

// Kind implements Provider.
func (d *Dialer) Kind() wm.Kind { return KindDialer }

// Title implements Provider.
func (d *Dialer) Title() string {
	if d.calling {
		return "Call " + d.number
	}
	return "Dialer"
}

// HandleKey implements KeyReceiver.
func (d *Dialer) HandleKey(key string) bool {
	switch {
	case key == "enter":
		if d.calling {
			d.calling = false
		} else if d.number != "" {
			d.calling = true
		}
		return true
	case key == "backspace":
		if d.calling {
			return true
		}
		if d.number != "" {
			d.number = d.number[:len(d.number)-1]
		}
		return true
	case key == "*", key == "#",
		len(key) == 1 && key[0] >= '0' && key[0] <= '9':
		if len(d.number) < maxDialDigits {
			d.number += key
		}
		return true
	default:
		return false
	}
}

// Render implements Provider.
func (d *Dialer) Render(width, height int) string {
	accent := theme.KindAccent(string(KindDialer))
	display := lipgloss.NewStyle().Foreground(theme.ContentFg()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.HelpGray())
	keyStyle := lipgloss.NewStyle().Foreground(accent).Padding(0, 2)

	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	number := d.number
	if number == "" {
		number = dim.Render("enter a number")
	} else {
		number = display.Render(number)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, number))
	b.WriteString("\n")
	b.WriteString(dim.Render(strings.Repeat(ruleChar(), max(width, 1))))
	b.WriteString("\n")

	for _, row := range keypadRows {
		var cells [3]string
		for i, key := range row {
			cells[i] = keyStyle.Render(key)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1], cells[2])
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	}

	b.WriteString("\n")
	status := dim.Render("enter to call")
	if d.calling {
		status = lipgloss.NewStyle().Foreground(accent).Bold(true).Render("CALLING " + d.number)
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, status))

	return b.String()
}
