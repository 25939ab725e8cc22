package contact

// AgeGroup is one of the three age bands the question bank publishes
// separate checklists for.
type AgeGroup int

const (
	Age1 AgeGroup = iota // up to 5 years
	Age2                 // over 5, up to 8
	Age3                 // over 8
)

// Code returns the wire identifier used in the survey URLs and payloads.
func (g AgeGroup) Code() string {
	switch g {
	case Age1:
		return "age1"
	case Age2:
		return "age2"
	default:
		return "age3"
	}
}

func (g AgeGroup) String() string { return g.Code() }

// Classify maps whole years to an age band. Both boundaries are
// inclusive on the lower band: 5 is Age1 and 8 is Age2.
func Classify(years int) AgeGroup {
	switch {
	case years <= 5:
		return Age1
	case years <= 8:
		return Age2
	default:
		return Age3
	}
}
