// Package contact holds the details collected on the first wizard step
// and the checks that gate leaving it: required-field presence, age
// parsing, and the age-band classification that selects a question set.
package contact

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Info is the contact form data. Age stays a string here because it is
// raw user input; ParseAge is the only way it becomes a number.
type Info struct {
	Name     string
	Age      string
	Email    string
	Phone    string
	Language string
}

// ErrInvalidAge is returned when the age field is present but not a
// whole number of years.
var ErrInvalidAge = errors.New("age must be a whole number of years")

// MissingFieldError reports a required contact field that is empty.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// Validate checks that every required field is present and that the age
// parses. Field format (email syntax, phone digits) is not checked; the
// scoring service treats those as opaque strings. The first problem found
// is returned.
func Validate(info Info) error {
	required := []struct {
		name  string
		value string
	}{
		{"name", info.Name},
		{"age", info.Age},
		{"email", info.Email},
		{"phone", info.Phone},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	if _, err := ParseAge(info.Age); err != nil {
		return err
	}
	return nil
}

// ParseAge converts the raw age field to whole years. Anything that is
// not a non-negative integer fails with ErrInvalidAge, so an unparsable
// age is caught at the validation gate and never reaches Classify.
func ParseAge(raw string) (int, error) {
	years, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || years < 0 {
		return 0, ErrInvalidAge
	}
	return years, nil
}
