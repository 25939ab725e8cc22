package wizard

import (
	"github.com/giftolexia/screenterm/internal/contact"
	"github.com/giftolexia/screenterm/internal/langs"
)

// User-visible failure lines. Transport errors and service rejections
// deliberately collapse into the same retry message; errors never let a
// step advance, so the detail would only be noise on screen.
const (
	fetchFailedMsg  = "Could not load the questionnaire. Please try again."
	submitFailedMsg = "Could not submit your answers. Please try again."
	unansweredMsg   = "Please answer every question before viewing results."
)

// Apply advances the wizard by one event and returns the next state.
// Events that do not apply to the current step, or that would start a
// request while one is in flight, leave the state unchanged. A caller
// that wants to know whether FetchRequested or SubmitRequested passed
// its gate checks whether Loading turned on: the network call must be
// issued exactly when it did.
func Apply(s State, ev Event) State {
	switch ev := ev.(type) {
	case ContactEdited:
		return applyContactEdited(s, ev)
	case LanguageChosen:
		return applyLanguageChosen(s, ev)
	case FetchRequested:
		return applyFetchRequested(s, ev)
	case FetchCompleted:
		return applyFetchCompleted(s, ev)
	case AnswerChosen:
		return applyAnswerChosen(s, ev)
	case SubmitRequested:
		return applySubmitRequested(s)
	case SubmitCompleted:
		return applySubmitCompleted(s, ev)
	}
	return s
}

func applyContactEdited(s State, ev ContactEdited) State {
	if s.Step != StepContact || s.Loading {
		return s
	}
	switch ev.Field {
	case FieldName:
		s.Contact.Name = ev.Value
	case FieldAge:
		s.Contact.Age = ev.Value
	case FieldEmail:
		s.Contact.Email = ev.Value
	case FieldPhone:
		s.Contact.Phone = ev.Value
	}
	s.Err = ""
	return s
}

func applyLanguageChosen(s State, ev LanguageChosen) State {
	if s.Step != StepContact || s.Loading {
		return s
	}
	if !langs.IsSupported(ev.Code) {
		return s
	}
	s.Contact.Language = ev.Code
	s.Err = ""
	return s
}

func applyFetchRequested(s State, ev FetchRequested) State {
	if s.Step != StepContact || s.Loading {
		return s
	}
	if err := contact.Validate(s.Contact); err != nil {
		s.Err = err.Error()
		return s
	}
	years, err := contact.ParseAge(s.Contact.Age)
	if err != nil {
		s.Err = err.Error()
		return s
	}
	s.AgeGroup = contact.Classify(years)
	s.AssessmentID = ev.AssessmentID
	s.Loading = true
	s.Err = ""
	return s
}

func applyFetchCompleted(s State, ev FetchCompleted) State {
	if s.Step != StepContact || !s.Loading {
		return s
	}
	s.Loading = false
	// An empty checklist is as unusable as no response.
	if ev.Err != nil || len(ev.Questions) == 0 {
		s.Err = fetchFailedMsg
		return s
	}
	s.Step = StepQuestionnaire
	s.Questions = ev.Questions
	s.Answers = AnswerMap{}
	s.Err = ""
	return s
}

func applyAnswerChosen(s State, ev AnswerChosen) State {
	if s.Step != StepQuestionnaire || s.Loading {
		return s
	}
	if ev.Index < 0 || ev.Index >= len(s.Questions) || !ev.Option.Valid() {
		return s
	}
	answers := s.Answers.clone()
	answers.Set(ev.Index, ev.Option)
	s.Answers = answers
	s.Err = ""
	return s
}

func applySubmitRequested(s State) State {
	if s.Step != StepQuestionnaire || s.Loading {
		return s
	}
	if !s.Answers.AllAnswered(len(s.Questions)) {
		s.Err = unansweredMsg
		return s
	}
	s.Loading = true
	s.Err = ""
	return s
}

func applySubmitCompleted(s State, ev SubmitCompleted) State {
	if s.Step != StepQuestionnaire || !s.Loading {
		return s
	}
	s.Loading = false
	if ev.Err != nil {
		// Answers are untouched so a retry needs no re-entry.
		s.Err = submitFailedMsg
		return s
	}
	s.Step = StepResults
	s.Result = ev.Result
	s.Err = ""
	return s
}
