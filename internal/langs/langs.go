// Package langs owns the fixed set of languages the screening service
// publishes question sets for. Codes are the short identifiers the
// question-bank and scoring endpoints expect in their URLs and payloads;
// display names are only for presentation.
package langs

// Default is the language preselected on the contact form.
const Default = "eng"

// Language pairs a wire code with its display name.
type Language struct {
	Code string
	Name string
}

// table is ordered the way the contact form lists languages.
var table = []Language{
	{Code: "eng", Name: "English"},
	{Code: "hindi", Name: "Hindi"},
	{Code: "kann", Name: "Kannada"},
	{Code: "tam", Name: "Tamil"},
	{Code: "tel", Name: "Telugu"},
	{Code: "mal", Name: "Malayalam"},
}

// Supported returns the languages in display order. The slice is a copy.
func Supported() []Language {
	out := make([]Language, len(table))
	copy(out, table)
	return out
}

// IsSupported reports whether code is one of the published language codes.
func IsSupported(code string) bool {
	for _, l := range table {
		if l.Code == code {
			return true
		}
	}
	return false
}

// DisplayName returns the display name for code, or the code itself when
// it is not in the table.
func DisplayName(code string) string {
	for _, l := range table {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}
