package surveyapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []Question
	}{
		{
			name: "wrapped list of strings",
			body: `{"questions": ["Follows instructions?", "Counts to ten?"]}`,
			want: []Question{
				{ID: 0, Text: "Follows instructions?"},
				{ID: 1, Text: "Counts to ten?"},
			},
		},
		{
			name: "bare array of strings",
			body: `["First?", "Second?"]`,
			want: []Question{
				{ID: 0, Text: "First?"},
				{ID: 1, Text: "Second?"},
			},
		},
		{
			name: "objects with text field",
			body: `{"questions": [{"id": 11, "text": "Reads aloud?"}, {"id": 12, "text": "Writes name?"}]}`,
			want: []Question{
				{ID: 11, Text: "Reads aloud?"},
				{ID: 12, Text: "Writes name?"},
			},
		},
		{
			name: "objects with question field and no ids",
			body: `[{"question": "Draws shapes?"}, {"question": "Shares toys?"}]`,
			want: []Question{
				{ID: 0, Text: "Draws shapes?"},
				{ID: 1, Text: "Shares toys?"},
			},
		},
		{
			name: "mixed entries",
			body: `["Plain?", {"id": 5, "text": "Tagged?"}]`,
			want: []Question{
				{ID: 0, Text: "Plain?"},
				{ID: 5, Text: "Tagged?"},
			},
		},
		{
			name: "empty list",
			body: `{"questions": []}`,
			want: []Question{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseQuestions([]byte(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuestionsRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not a list", `{"questions": "nope"}`},
		{"object without text", `[{"id": 1}]`},
		{"empty string entry", `[""]`},
		{"number entry", `[42]`},
		{"invalid json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseQuestions([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
