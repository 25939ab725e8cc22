package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/giftolexia/screenterm/internal/ui/theme"
)

// Button is a focusable action row at the bottom of a form.
type Button struct {
	Label   string
	Focused bool
	OnPress func() tea.Cmd
}

// NewButton creates a button.
func NewButton(label string, onPress func() tea.Cmd) Button {
	return Button{Label: label, OnPress: onPress}
}

// Update fires OnPress on enter while focused.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Focused || b.OnPress == nil {
		return b, nil
	}
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		return b, b.OnPress()
	}
	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := " " + b.Label + " "
	if b.Focused {
		return theme.ButtonActive.Render("▸" + label)
	}
	return theme.ButtonInactive.Render(label)
}
