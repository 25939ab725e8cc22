package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name   string
		action string
		want   Severity
	}{
		{"ok is positive", "ok", Positive},
		{"risk needs attention", "risk", Attention},
		{"unknown verdicts need attention", "review", Attention},
		{"empty action needs attention", "", Attention},
		{"case sensitive", "OK", Attention},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.action)
			assert.Equal(t, tt.want, got.Severity)
			assert.NotEmpty(t, got.Label)
			assert.NotEmpty(t, got.NextSteps)
		})
	}
}

func TestCategorizeIgnoresScore(t *testing.T) {
	// The category follows the action verdict alone; a low score with
	// "ok" is positive and a high score with any other action is not.
	assert.Equal(t, Positive, Categorize("ok").Severity)
	assert.Equal(t, Attention, Categorize("risk").Severity)
}
