package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/giftolexia/screenterm/internal/ui/theme"
)

// FormField wraps bubbles/textinput for one contact form field. Numeric
// fields drop non-digit keystrokes so the age can only ever be digits.
type FormField struct {
	Label       string
	Model       textinput.Model
	NumericOnly bool
}

// NewFormField creates a styled, unfocused form field.
func NewFormField(label, placeholder string, numericOnly bool, charLimit int) FormField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return FormField{
		Label:       label,
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Focus gives the field keyboard focus.
func (f *FormField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes keyboard focus.
func (f *FormField) Blur() {
	f.Model.Blur()
}

// Focused reports whether the field has focus.
func (f FormField) Focused() bool {
	return f.Model.Focused()
}

// Update handles messages.
func (f FormField) Update(msg tea.Msg) (FormField, tea.Cmd) {
	if f.NumericOnly {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the label and the input on one line.
func (f FormField) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if f.Focused() {
		labelStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}
	return labelStyle.Render(f.Label) + "  " + f.Model.View()
}

// Value returns the current input value.
func (f FormField) Value() string {
	return f.Model.Value()
}
