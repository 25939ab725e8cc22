package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/giftolexia/screenterm/internal/ui/layout"
)

// Screen is one full-frame view of the wizard. The app model owns the
// chrome (header, step bar, footer) and delegates the content area to
// the active screen.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus a
	// follow-up command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area.
	View(width, height int) string

	// Title is shown in the header.
	Title() string

	// StepIndex is the 0-based wizard step, driving the header step bar.
	StepIndex() int
}

// KeyHintProvider lets a screen override the footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
