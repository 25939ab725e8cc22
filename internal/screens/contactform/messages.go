package contactform

import "github.com/giftolexia/screenterm/internal/surveyapi"

// questionsFetchedMsg is sent when the question-bank request completes.
type questionsFetchedMsg struct {
	Questions []surveyapi.Question
	Err       error
}
