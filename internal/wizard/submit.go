package wizard

import "github.com/giftolexia/screenterm/internal/surveyapi"

// BuildSubmission packages the current state into the scoring request.
// Answers are emitted in question order with the 1-based option ids the
// service expects. Callers must only invoke this after SubmitRequested
// passed its gate, so every question has an answer.
func BuildSubmission(s State) surveyapi.SubmitRequest {
	answers := make([]surveyapi.SurveyAnswer, 0, len(s.Questions))
	for i, q := range s.Questions {
		opt := s.Answers[i]
		answers = append(answers, surveyapi.SurveyAnswer{
			QuestionID: q.ID,
			OptionID:   opt.WireID(),
		})
	}
	return surveyapi.SubmitRequest{
		LanguageCode: s.Contact.Language,
		AgeGroup:     s.AgeGroup.Code(),
		UserInfo: surveyapi.UserInfo{
			Name:  s.Contact.Name,
			Age:   s.Contact.Age,
			Email: s.Contact.Email,
			Phone: s.Contact.Phone,
		},
		Survey: answers,
	}
}
