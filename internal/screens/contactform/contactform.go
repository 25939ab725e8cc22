// Package contactform is the first wizard step: contact details and
// language, gated by validation before the question set is fetched.
package contactform

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/giftolexia/screenterm/internal/langs"
	"github.com/giftolexia/screenterm/internal/router"
	"github.com/giftolexia/screenterm/internal/screen"
	"github.com/giftolexia/screenterm/internal/screens/questionnaire"
	"github.com/giftolexia/screenterm/internal/surveyapi"
	"github.com/giftolexia/screenterm/internal/ui/components"
	"github.com/giftolexia/screenterm/internal/ui/layout"
	"github.com/giftolexia/screenterm/internal/ui/theme"
	"github.com/giftolexia/screenterm/internal/wizard"
)

// Focus order on the form.
const (
	focusName = iota
	focusAge
	focusEmail
	focusPhone
	focusLanguage
	focusStart
	focusCount
)

// ContactScreen implements screen.Screen for the contact step.
type ContactScreen struct {
	st     wizard.State
	client *surveyapi.Client

	fields   [4]components.FormField
	language components.ListPicker
	start    components.Button
	focus    int
}

var _ screen.Screen = (*ContactScreen)(nil)
var _ screen.KeyHintProvider = (*ContactScreen)(nil)

// New creates the contact screen. defaultLanguage presets the language
// picker; it must be a supported code.
func New(client *surveyapi.Client, defaultLanguage string) *ContactScreen {
	st := wizard.NewState()
	st = wizard.Apply(st, wizard.LanguageChosen{Code: defaultLanguage})

	supported := langs.Supported()
	codes := make([]string, len(supported))
	names := make([]string, len(supported))
	for i, l := range supported {
		codes[i] = l.Code
		names[i] = l.Name
	}

	s := &ContactScreen{
		st:     st,
		client: client,
		fields: [4]components.FormField{
			components.NewFormField("Full Name    ", "Enter your full name", false, 60),
			components.NewFormField("Child's Age  ", "Age in years", true, 2),
			components.NewFormField("Email        ", "your.email@example.com", false, 80),
			components.NewFormField("Phone        ", "Phone number", false, 20),
		},
		language: components.NewListPicker("Language     ", codes, names, st.Contact.Language),
	}
	s.start = components.NewButton("Start Assessment", s.requestFetch)
	return s
}

func (s *ContactScreen) Init() tea.Cmd {
	return s.fields[focusName].Focus()
}

func (s *ContactScreen) Title() string { return "Contact Information" }

func (s *ContactScreen) StepIndex() int { return int(wizard.StepContact) }

func (s *ContactScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ContactScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsFetchedMsg:
		return s.handleFetched(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.focus < focusLanguage {
		var cmd tea.Cmd
		s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
		s.syncField(s.focus)
		return s, cmd
	}
	return s, nil
}

func (s *ContactScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.st.Loading {
		// The fetch runs to completion; keys do nothing meanwhile.
		return s, nil
	}

	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab", "up":
		return s, s.setFocus((s.focus + focusCount - 1) % focusCount)
	case "enter":
		// Enter on any field jumps to the start action; on the button it
		// fires it.
		if s.focus != focusStart {
			return s, s.setFocus(focusStart)
		}
		var cmd tea.Cmd
		s.start, cmd = s.start.Update(msg)
		return s, cmd
	}

	switch {
	case s.focus < focusLanguage:
		var cmd tea.Cmd
		s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
		s.syncField(s.focus)
		return s, cmd
	case s.focus == focusLanguage:
		var changed bool
		s.language, changed = s.language.Update(msg)
		if changed {
			s.st = wizard.Apply(s.st, wizard.LanguageChosen{Code: s.language.Value()})
		}
	}
	return s, nil
}

// syncField mirrors one input's value into the wizard state.
func (s *ContactScreen) syncField(index int) {
	fieldFor := [4]wizard.ContactField{
		wizard.FieldName, wizard.FieldAge, wizard.FieldEmail, wizard.FieldPhone,
	}
	s.st = wizard.Apply(s.st, wizard.ContactEdited{
		Field: fieldFor[index],
		Value: s.fields[index].Value(),
	})
}

// requestFetch runs the validation gate and, when it passes, issues the
// question-bank request.
func (s *ContactScreen) requestFetch() tea.Cmd {
	next := wizard.Apply(s.st, wizard.FetchRequested{AssessmentID: uuid.NewString()})
	s.st = next
	if !next.Loading {
		// Validation failed; the state carries the message.
		return nil
	}

	s.client.SetAssessmentID(next.AssessmentID)
	client := s.client
	lang := next.Contact.Language
	group := next.AgeGroup.Code()
	return func() tea.Msg {
		questions, err := client.FetchQuestions(context.Background(), lang, group)
		return questionsFetchedMsg{Questions: questions, Err: err}
	}
}

func (s *ContactScreen) handleFetched(msg questionsFetchedMsg) (screen.Screen, tea.Cmd) {
	s.st = wizard.Apply(s.st, wizard.FetchCompleted{Questions: msg.Questions, Err: msg.Err})
	if s.st.Step != wizard.StepQuestionnaire {
		// Fetch failed: stay here, error line is showing.
		return s, nil
	}
	next := questionnaire.New(s.st, s.client)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *ContactScreen) setFocus(focus int) tea.Cmd {
	for i := range s.fields {
		s.fields[i].Blur()
	}
	s.language.Focused = false
	s.start.Focused = false

	s.focus = focus
	switch {
	case focus < focusLanguage:
		return s.fields[focus].Focus()
	case focus == focusLanguage:
		s.language.Focused = true
	case focus == focusStart:
		s.start.Focused = true
	}
	return nil
}

func (s *ContactScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Early Screening Checklist"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"Answer as best as you can to understand the likelihood of risk."))
	b.WriteString("\n\n")

	var form strings.Builder
	for i := range s.fields {
		form.WriteString(s.fields[i].View())
		form.WriteString("\n\n")
	}
	form.WriteString(s.language.View())
	form.WriteString("\n\n")
	form.WriteString(s.start.View())

	card := theme.Card.Render(form.String())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.st.Loading {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Loading questionnaire...")))
	}
	if s.st.Err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ErrorLine.Render(s.st.Err)))
	}

	return b.String()
}
