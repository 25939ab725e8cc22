package surveyapi

import (
	"encoding/json"
	"fmt"
)

// The question bank has served several body shapes over time:
//
//	{"questions": [...]}            wrapped list
//	[...]                           bare list
//
// where each entry is either a plain string or an object carrying the
// text under "text" or "question", with an optional numeric "id".
// parseQuestions accepts all of them and produces one normalized slice
// so nothing downstream ever sees the raw shapes.

type questionEnvelope struct {
	Questions json.RawMessage `json:"questions"`
}

type questionObject struct {
	ID       *int   `json:"id"`
	Text     string `json:"text"`
	Question string `json:"question"`
}

func parseQuestions(body []byte) ([]Question, error) {
	list := json.RawMessage(body)

	// Unwrap {"questions": [...]} when present.
	var env questionEnvelope
	if err := json.Unmarshal(body, &env); err == nil && env.Questions != nil {
		list = env.Questions
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(list, &entries); err != nil {
		return nil, fmt.Errorf("question list is not an array: %w", err)
	}

	questions := make([]Question, 0, len(entries))
	for i, entry := range entries {
		q, err := parseQuestionEntry(i, entry)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func parseQuestionEntry(index int, entry json.RawMessage) (Question, error) {
	var text string
	if err := json.Unmarshal(entry, &text); err == nil {
		if text == "" {
			return Question{}, fmt.Errorf("question %d is empty", index)
		}
		return Question{ID: index, Text: text}, nil
	}

	var obj questionObject
	if err := json.Unmarshal(entry, &obj); err != nil {
		return Question{}, fmt.Errorf("question %d has unrecognized shape: %w", index, err)
	}

	text = obj.Text
	if text == "" {
		text = obj.Question
	}
	if text == "" {
		return Question{}, fmt.Errorf("question %d has no text", index)
	}

	id := index
	if obj.ID != nil {
		id = *obj.ID
	}
	return Question{ID: id, Text: text}, nil
}
