// Package risk turns the scoring service's verdict into the category
// shown on the results screen.
package risk

// Severity is the coarse outcome class.
type Severity int

const (
	Positive  Severity = iota // no risk indicators
	Attention                 // follow-up recommended
)

func (s Severity) String() string {
	if s == Positive {
		return "positive"
	}
	return "attention"
}

// Category is the displayed outcome.
type Category struct {
	Label    string
	Severity Severity
	// NextSteps is the recommendation line shown under the label.
	NextSteps string
}

// Categorize maps the service's action field to a category. The rule is
// closed and total: "ok" is the one positive verdict, every other value
// is treated as needing attention. The numeric score is displayed but
// never consulted here; the service owns the thresholding.
func Categorize(action string) Category {
	if action == "ok" {
		return Category{
			Label:     "No Risk Detected",
			Severity:  Positive,
			NextSteps: "No indicators were found. Re-screen if concerns appear later.",
		}
	}
	return Category{
		Label:     "Needs Attention",
		Severity:  Attention,
		NextSteps: "Consider discussing these results with a specialist.",
	}
}
