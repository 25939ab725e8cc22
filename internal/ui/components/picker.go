package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/giftolexia/screenterm/internal/ui/theme"
)

// ListPicker cycles through a fixed list of labeled values, rendered as
// a single line with arrows. Used for the language selector.
type ListPicker struct {
	Label    string
	Values   []string
	Labels   []string
	Selected int
	Focused  bool
}

// NewListPicker creates a picker; values and labels must be the same
// length. initial selects the starting value, falling back to 0 when
// absent.
func NewListPicker(label string, values, labels []string, initial string) ListPicker {
	selected := 0
	for i, v := range values {
		if v == initial {
			selected = i
			break
		}
	}
	return ListPicker{
		Label:    label,
		Values:   values,
		Labels:   labels,
		Selected: selected,
	}
}

// Value returns the currently selected value.
func (p ListPicker) Value() string {
	if len(p.Values) == 0 {
		return ""
	}
	return p.Values[p.Selected]
}

// Update handles left/right cycling while focused. The second return
// value is true when the selection changed.
func (p ListPicker) Update(msg tea.Msg) (ListPicker, bool) {
	if !p.Focused || len(p.Values) == 0 {
		return p, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, false
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected = (p.Selected + len(p.Values) - 1) % len(p.Values)
		return p, true
	case "right", "l", "space":
		p.Selected = (p.Selected + 1) % len(p.Values)
		return p, true
	}
	return p, false
}

// View renders the picker line.
func (p ListPicker) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	valueStyle := lipgloss.NewStyle().Foreground(theme.Secondary)
	if p.Focused {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		valueStyle = theme.Selected
	}

	display := ""
	if p.Selected < len(p.Labels) {
		display = p.Labels[p.Selected]
	}
	return labelStyle.Render(p.Label) + "  " + valueStyle.Render("◂ "+display+" ▸")
}
