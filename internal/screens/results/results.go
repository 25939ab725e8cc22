// Package results is the final wizard step: the score, the risk
// category, and where to go from here. The step is terminal; the only
// actions are quitting or starting a new run from the shell.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/giftolexia/screenterm/internal/risk"
	"github.com/giftolexia/screenterm/internal/screen"
	"github.com/giftolexia/screenterm/internal/ui/layout"
	"github.com/giftolexia/screenterm/internal/ui/theme"
	"github.com/giftolexia/screenterm/internal/wizard"
)

// ResultsScreen implements screen.Screen for the results step.
type ResultsScreen struct {
	st       wizard.State
	category risk.Category
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a state that reached StepResults.
func New(st wizard.State) *ResultsScreen {
	return &ResultsScreen{
		st:       st,
		category: risk.Categorize(st.Result.Action),
	}
}

func (s *ResultsScreen) Init() tea.Cmd { return nil }

func (s *ResultsScreen) Title() string { return "Results" }

func (s *ResultsScreen) StepIndex() int { return int(wizard.StepResults) }

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "Q", "enter":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Assessment Complete"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("Results for %s's child", s.st.Contact.Name)))
	b.WriteString("\n\n")

	labelStyle := theme.PositiveText
	if s.category.Severity == risk.Attention {
		labelStyle = theme.AttentionText
	}

	var card strings.Builder
	card.WriteString(labelStyle.Render(s.category.Label))
	card.WriteString("\n\n")
	card.WriteString(theme.Body.Render(fmt.Sprintf("Score: %.0f", s.st.Result.Score)))
	card.WriteString("\n")
	if s.st.Result.Msg != "" {
		card.WriteString("\n")
		card.WriteString(theme.Body.Render(s.st.Result.Msg))
		card.WriteString("\n")
	}
	card.WriteString("\n")
	card.WriteString(theme.Hint.Render(s.category.NextSteps))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Card.Width(min(width-4, 64)).Render(card.String())))
	b.WriteString("\n\n")

	var contact strings.Builder
	contact.WriteString(theme.Body.Render("Want to discuss these results with our specialists?"))
	contact.WriteString("\n")
	contact.WriteString(theme.Hint.Render("support@giftolexia.com"))
	contact.WriteString("\n\n")
	contact.WriteString(theme.Hint.Render("Reference: " + s.st.AssessmentID))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, contact.String()))

	return b.String()
}
