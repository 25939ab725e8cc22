// Package questionnaire is the second wizard step: one checklist
// question at a time on the four-point scale, then submission for
// scoring once every question is answered.
package questionnaire

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/giftolexia/screenterm/internal/router"
	"github.com/giftolexia/screenterm/internal/screen"
	"github.com/giftolexia/screenterm/internal/screens/results"
	"github.com/giftolexia/screenterm/internal/surveyapi"
	"github.com/giftolexia/screenterm/internal/ui/components"
	"github.com/giftolexia/screenterm/internal/ui/layout"
	"github.com/giftolexia/screenterm/internal/ui/theme"
	"github.com/giftolexia/screenterm/internal/wizard"
)

// scoredMsg is sent when the scoring request completes.
type scoredMsg struct {
	Result *surveyapi.SubmitResult
	Err    error
}

// QuestionnaireScreen implements screen.Screen for the answering step.
type QuestionnaireScreen struct {
	st      wizard.State
	client  *surveyapi.Client
	current int
	picker  components.ScalePicker
}

var _ screen.Screen = (*QuestionnaireScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionnaireScreen)(nil)

// New creates the questionnaire screen for a state that has just
// entered StepQuestionnaire.
func New(st wizard.State, client *surveyapi.Client) *QuestionnaireScreen {
	s := &QuestionnaireScreen{st: st, client: client}
	s.loadPicker()
	return s
}

func (s *QuestionnaireScreen) Init() tea.Cmd { return nil }

func (s *QuestionnaireScreen) Title() string { return "Assessment Questions" }

func (s *QuestionnaireScreen) StepIndex() int { return int(wizard.StepQuestionnaire) }

func (s *QuestionnaireScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "←→", Description: "Question"},
	}
	if s.st.Answers.AllAnswered(len(s.st.Questions)) {
		hints = append(hints, layout.KeyHint{Key: "V", Description: "View results"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *QuestionnaireScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case scoredMsg:
		return s.handleScored(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuestionnaireScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.st.Loading {
		return s, nil
	}

	switch msg.String() {
	case "left", "p":
		if s.current > 0 {
			s.current--
			s.loadPicker()
		}
		return s, nil
	case "right", "n", "tab":
		if s.current < len(s.st.Questions)-1 {
			s.current++
			s.loadPicker()
		}
		return s, nil
	case "v", "V":
		return s, s.requestSubmit()
	}

	var chosen bool
	s.picker, chosen = s.picker.Update(msg)
	if !chosen {
		return s, nil
	}

	s.st = wizard.Apply(s.st, wizard.AnswerChosen{
		Index:  s.current,
		Option: wizard.Option(s.picker.Chosen),
	})

	// Jump to the next unanswered question; if none remain, submit.
	if next, ok := s.nextUnanswered(); ok {
		s.current = next
		s.loadPicker()
		return s, nil
	}
	if s.current < len(s.st.Questions)-1 {
		s.current++
		s.loadPicker()
		return s, nil
	}
	return s, s.requestSubmit()
}

// nextUnanswered finds the first unanswered question after the current
// one, wrapping around.
func (s *QuestionnaireScreen) nextUnanswered() (int, bool) {
	n := len(s.st.Questions)
	for offset := 1; offset <= n; offset++ {
		i := (s.current + offset) % n
		if _, ok := s.st.Answers.Get(i); !ok {
			return i, true
		}
	}
	return 0, false
}

// requestSubmit runs the completeness gate and, when it passes, posts
// the answers for scoring.
func (s *QuestionnaireScreen) requestSubmit() tea.Cmd {
	next := wizard.Apply(s.st, wizard.SubmitRequested{})
	s.st = next
	if !next.Loading {
		return nil
	}

	client := s.client
	submission := wizard.BuildSubmission(next)
	return func() tea.Msg {
		result, err := client.SubmitSurvey(context.Background(), submission)
		return scoredMsg{Result: result, Err: err}
	}
}

func (s *QuestionnaireScreen) handleScored(msg scoredMsg) (screen.Screen, tea.Cmd) {
	s.st = wizard.Apply(s.st, wizard.SubmitCompleted{Result: msg.Result, Err: msg.Err})
	if s.st.Step != wizard.StepResults {
		// Submit failed; answers are retained for a manual retry.
		return s, nil
	}
	next := results.New(s.st)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuestionnaireScreen) loadPicker() {
	chosen := -1
	if opt, ok := s.st.Answers.Get(s.current); ok {
		chosen = int(opt)
	}
	question := fmt.Sprintf("%d. %s", s.current+1, s.st.Questions[s.current].Text)
	s.picker = components.NewScalePicker(question, wizard.ScaleLabels(), chosen)
}

func (s *QuestionnaireScreen) View(width, height int) string {
	var b strings.Builder

	answered := 0
	for i := range s.st.Questions {
		if _, ok := s.st.Answers.Get(i); ok {
			answered++
		}
	}

	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf(
		"Question %d of %d  ·  %d answered", s.current+1, len(s.st.Questions), answered)))
	b.WriteString("\n\n")

	card := theme.Card.Width(min(width-4, 76)).Render(s.picker.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n")

	if s.st.Loading {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Scoring your answers...")))
	}
	if s.st.Err != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.ErrorLine.Render(s.st.Err)))
	}

	return b.String()
}
