package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/giftolexia/screenterm/internal/ui/theme"
)

// ScalePicker selects one entry of the fixed frequency scale for a
// question. There is no right answer; Chosen just records the pick.
type ScalePicker struct {
	Question string
	Options  []string
	Cursor   int
	// Chosen is the previously stored answer, -1 when unanswered.
	Chosen int
}

// NewScalePicker creates a picker over the given scale labels. chosen
// should be -1 when the question has no stored answer yet.
func NewScalePicker(question string, options []string, chosen int) ScalePicker {
	cursor := chosen
	if cursor < 0 {
		cursor = 0
	}
	return ScalePicker{
		Question: question,
		Options:  options,
		Cursor:   cursor,
		Chosen:   chosen,
	}
}

// Update handles keyboard navigation. Number keys 1..4 move the cursor
// and choose in one stroke; enter chooses the cursor entry. The second
// return value is true when a choice was made this update.
func (p ScalePicker) Update(msg tea.Msg) (ScalePicker, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, false
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Options)-1 {
			p.Cursor++
		}
	case "enter", "space":
		p.Chosen = p.Cursor
		return p, true
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(p.Options) {
			p.Cursor = idx
			p.Chosen = idx
			return p, true
		}
	}
	return p, false
}

// View renders the question and the scale.
func (p ScalePicker) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Question) + "\n\n"

	for i, opt := range p.Options {
		prefix := "  "
		if i == p.Cursor {
			prefix = "▸ "
		}
		marker := "( )"
		if i == p.Chosen {
			marker = "(●)"
		}

		line := fmt.Sprintf("%s%s %d. %s", prefix, marker, i+1, opt)

		switch {
		case i == p.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == p.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
