// Package wizard is the assessment flow engine: a three-step state
// machine (contact → questionnaire → results) advanced by a pure event
// reducer. The screens translate key presses and HTTP completions into
// events; all gating (required fields, every question answered, one
// request in flight at a time) lives here so it can be tested without a
// terminal or a network.
package wizard

import (
	"github.com/giftolexia/screenterm/internal/contact"
	"github.com/giftolexia/screenterm/internal/langs"
	"github.com/giftolexia/screenterm/internal/surveyapi"
)

// Step identifies the wizard step. Steps only ever advance; once the
// question set is fetched for an age band and language, going back to
// edit them is not offered.
type Step int

const (
	StepContact Step = iota
	StepQuestionnaire
	StepResults
)

func (s Step) String() string {
	switch s {
	case StepContact:
		return "contact"
	case StepQuestionnaire:
		return "questionnaire"
	default:
		return "results"
	}
}

// StepCount is the number of wizard steps, for progress display.
const StepCount = 3

// State is the single source of truth for the flow. It is a value:
// Apply returns a new State and never mutates its input.
type State struct {
	Step     Step
	Contact  contact.Info
	AgeGroup contact.AgeGroup

	// Questions is the currently loaded set, replaced wholesale on each
	// successful fetch.
	Questions []surveyapi.Question

	// Answers maps question index to the chosen scale ordinal.
	Answers AnswerMap

	// Result is set once scoring succeeds and never changes after.
	Result *surveyapi.SubmitResult

	// AssessmentID is the reference id stamped when a fetch is accepted.
	AssessmentID string

	// Loading is true while a fetch or submit is outstanding. It is the
	// only in-flight guard: events that would start another request are
	// ignored while it is set.
	Loading bool

	// Err is the user-visible error line, empty when there is none.
	Err string
}

// NewState returns the initial state: contact step, default language,
// nothing loaded.
func NewState() State {
	return State{
		Step:    StepContact,
		Contact: contact.Info{Language: langs.Default},
		Answers: AnswerMap{},
	}
}
