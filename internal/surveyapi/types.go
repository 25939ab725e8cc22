// Package surveyapi is the HTTP client for the two screening service
// endpoints: the question bank (GET /survey/{lang}/{agegroup}) and the
// scoring endpoint (POST /survey).
package surveyapi

// Question is one checklist entry, normalized from the several shapes
// the question bank serves. ID is the identifier sent back with the
// answer; when the bank omits ids the position in the list is used.
type Question struct {
	ID   int
	Text string
}

// UserInfo is the contact block of the scoring request. Age stays the
// raw string the parent typed; the service stores it verbatim.
type UserInfo struct {
	Name  string `json:"name"`
	Age   string `json:"age"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SurveyAnswer is one answered question. OptionID is 1-based on the
// wire: the service numbers the frequency scale 1..4 while the client
// stores 0-based ordinals, so callers must send ordinal+1.
type SurveyAnswer struct {
	QuestionID int `json:"question_id"`
	OptionID   int `json:"option_id"`
}

// SubmitRequest is the POST /survey body.
type SubmitRequest struct {
	LanguageCode string         `json:"language_code"`
	AgeGroup     string         `json:"age_group"`
	UserInfo     UserInfo       `json:"user_info"`
	Survey       []SurveyAnswer `json:"survey"`
}

// SubmitResult is the scoring verdict. Action is the categorical
// outcome ("ok" or anything else); Msg is optional explanatory text.
type SubmitResult struct {
	Score  float64 `json:"score"`
	Action string  `json:"action"`
	Msg    string  `json:"msg,omitempty"`
}
