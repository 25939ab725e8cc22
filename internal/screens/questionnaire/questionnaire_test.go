package questionnaire

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/giftolexia/screenterm/internal/contact"
	"github.com/giftolexia/screenterm/internal/router"
	"github.com/giftolexia/screenterm/internal/screens/results"
	"github.com/giftolexia/screenterm/internal/surveyapi"
	"github.com/giftolexia/screenterm/internal/wizard"
)

func testState(questionCount int) wizard.State {
	s := wizard.NewState()
	s.Contact = contact.Info{
		Name: "A", Age: "4", Email: "a@a.com", Phone: "123", Language: "eng",
	}
	s = wizard.Apply(s, wizard.FetchRequested{AssessmentID: "ref"})
	questions := make([]surveyapi.Question, questionCount)
	for i := range questions {
		questions[i] = surveyapi.Question{ID: i, Text: "q"}
	}
	return wizard.Apply(s, wizard.FetchCompleted{Questions: questions})
}

func press(s *QuestionnaireScreen, key rune) (tea.Cmd, *QuestionnaireScreen) {
	updated, cmd := s.Update(tea.KeyPressMsg{Code: key})
	return cmd, updated.(*QuestionnaireScreen)
}

func TestNumberKeyAnswersAndAdvances(t *testing.T) {
	s := New(testState(3), surveyapi.New("http://unused.example"))

	_, s = press(s, '3')

	got, ok := s.st.Answers.Get(0)
	if !ok {
		t.Fatal("answer for question 0 should be stored")
	}
	if got != wizard.OptionOften {
		t.Errorf("key 3 should store ordinal 2, got %d", got)
	}
	if s.current != 1 {
		t.Errorf("should advance to the next question, at %d", s.current)
	}
}

func TestViewResultsBlockedWhileUnanswered(t *testing.T) {
	s := New(testState(2), surveyapi.New("http://unused.example"))

	cmd, s := press(s, 'v')

	if cmd != nil {
		t.Error("no submit command may be issued while questions are unanswered")
	}
	if s.st.Loading {
		t.Error("loading must stay off")
	}
	if s.st.Err == "" {
		t.Error("an error line should be shown")
	}
}

func TestAnsweringLastQuestionSubmits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"score": 20, "action": "ok"}`))
	}))
	defer server.Close()

	s := New(testState(2), surveyapi.New(server.URL))

	_, s = press(s, '1')
	cmd, s := press(s, '1')
	if cmd == nil {
		t.Fatal("answering the last question should trigger submission")
	}
	if !s.st.Loading {
		t.Fatal("loading should be on while the submit is in flight")
	}

	msg := cmd()
	scored, ok := msg.(scoredMsg)
	if !ok {
		t.Fatalf("expected scoredMsg, got %T", msg)
	}

	updated, cmd := s.Update(scored)
	s = updated.(*QuestionnaireScreen)
	if cmd == nil {
		t.Fatal("a successful score should navigate to results")
	}
	nav := cmd()
	replace, ok := nav.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", nav)
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("expected results screen, got %T", replace.Screen)
	}
}

func TestFailedSubmitKeepsAnswers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	s := New(testState(1), surveyapi.New(server.URL))

	cmd, s := press(s, '2')
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	updated, navCmd := s.Update(cmd())
	s = updated.(*QuestionnaireScreen)

	if navCmd != nil {
		t.Error("a failed submit must not navigate")
	}
	if s.st.Step != wizard.StepQuestionnaire {
		t.Errorf("step should stay at questionnaire, got %v", s.st.Step)
	}
	if s.st.Err == "" {
		t.Error("an error line should be shown")
	}
	if got, ok := s.st.Answers.Get(0); !ok || got != wizard.OptionSometimes {
		t.Error("answers must survive a failed submit")
	}
}

func TestArrowNavigationPreservesAnswers(t *testing.T) {
	s := New(testState(3), surveyapi.New("http://unused.example"))

	_, s = press(s, '4')
	if s.current != 1 {
		t.Fatalf("should sit on question 1, at %d", s.current)
	}

	_, s = press(s, 'p')
	if s.current != 0 {
		t.Fatalf("p should go back a question, at %d", s.current)
	}
	if s.picker.Chosen != int(wizard.OptionAlways) {
		t.Errorf("revisiting a question should show the stored answer, got %d", s.picker.Chosen)
	}
}
