package wizard

import "github.com/giftolexia/screenterm/internal/surveyapi"

// Event is something that happened that may move the wizard forward.
// Events carry data in, never behavior; Apply decides what they mean in
// the current step.
type Event interface {
	isEvent()
}

// ContactField names an editable contact form field.
type ContactField int

const (
	FieldName ContactField = iota
	FieldAge
	FieldEmail
	FieldPhone
)

// ContactEdited replaces one contact field with new input.
type ContactEdited struct {
	Field ContactField
	Value string
}

// LanguageChosen selects the questionnaire language.
type LanguageChosen struct {
	Code string
}

// FetchRequested asks to leave the contact step. AssessmentID is the
// reference id to stamp if the validation gate passes; the caller
// generates it so the reducer stays deterministic.
type FetchRequested struct {
	AssessmentID string
}

// FetchCompleted reports the outcome of the question fetch.
type FetchCompleted struct {
	Questions []surveyapi.Question
	Err       error
}

// AnswerChosen records the scale ordinal picked for one question.
type AnswerChosen struct {
	Index  int
	Option Option
}

// SubmitRequested asks to leave the questionnaire step.
type SubmitRequested struct{}

// SubmitCompleted reports the outcome of scoring.
type SubmitCompleted struct {
	Result *surveyapi.SubmitResult
	Err    error
}

func (ContactEdited) isEvent()   {}
func (LanguageChosen) isEvent()  {}
func (FetchRequested) isEvent()  {}
func (FetchCompleted) isEvent()  {}
func (AnswerChosen) isEvent()    {}
func (SubmitRequested) isEvent() {}
func (SubmitCompleted) isEvent() {}
