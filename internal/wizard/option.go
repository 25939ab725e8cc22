package wizard

// Option is a 0-based ordinal into the fixed four-point frequency scale
// every checklist question is answered on.
type Option int

const (
	OptionNever Option = iota
	OptionSometimes
	OptionOften
	OptionAlways

	optionCount = 4
)

func (o Option) Label() string {
	switch o {
	case OptionNever:
		return "Never"
	case OptionSometimes:
		return "Sometimes"
	case OptionOften:
		return "Often"
	case OptionAlways:
		return "Always"
	default:
		return "Unknown"
	}
}

// WireID is the 1-based option index the scoring service expects. The
// off-by-one shift is part of the scoring contract: stored ordinal 0
// ("Never") is transmitted as 1, ordinal 3 ("Always") as 4.
func (o Option) WireID() int { return int(o) + 1 }

// Valid reports whether o is one of the four scale ordinals.
func (o Option) Valid() bool { return o >= OptionNever && o < optionCount }

// ScaleLabels returns the scale in ordinal order for display.
func ScaleLabels() []string {
	return []string{
		OptionNever.Label(),
		OptionSometimes.Label(),
		OptionOften.Label(),
		OptionAlways.Label(),
	}
}

// AnswerMap holds in-progress answers keyed by question index.
type AnswerMap map[int]Option

// Set upserts the answer for one question index.
func (a AnswerMap) Set(index int, opt Option) { a[index] = opt }

// Get returns the stored answer and whether one exists.
func (a AnswerMap) Get(index int) (Option, bool) {
	opt, ok := a[index]
	return opt, ok
}

// AllAnswered reports whether every index in [0, questionCount) has an
// answer. This predicate gates the transition to the results step.
func (a AnswerMap) AllAnswered(questionCount int) bool {
	for i := 0; i < questionCount; i++ {
		if _, ok := a[i]; !ok {
			return false
		}
	}
	return true
}

// clone returns an independent copy so Apply never mutates the map held
// by a previous state value.
func (a AnswerMap) clone() AnswerMap {
	out := make(AnswerMap, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
