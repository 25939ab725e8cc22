package surveyapi

import "fmt"

// FetchError indicates the question set could not be retrieved, either
// because the question bank was unreachable or returned a non-success
// status. StatusCode is zero for transport failures.
type FetchError struct {
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("question bank returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("question bank unreachable: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// SubmitError indicates the answers could not be scored: transport
// failure, non-success status, or a response body that does not match
// the scoring contract.
type SubmitError struct {
	StatusCode int
	Err        error
}

func (e *SubmitError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("scoring service returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("scoring failed: %v", e.Err)
}

func (e *SubmitError) Unwrap() error { return e.Err }
