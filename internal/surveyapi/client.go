package surveyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the screening service. It is safe for reuse across
// calls; the wizard issues at most one request at a time.
type Client struct {
	baseURL      string
	client       *http.Client
	assessmentID string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

// WithAssessmentID sets the reference id attached to every request as
// the X-Assessment-ID header.
func WithAssessmentID(id string) Option {
	return func(c *Client) { c.assessmentID = id }
}

// New creates a Client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAssessmentID updates the reference id for subsequent requests.
func (c *Client) SetAssessmentID(id string) { c.assessmentID = id }

// FetchQuestions retrieves the question set for an age band and
// language. The returned slice is complete or the error is non-nil;
// there is never a partial list. Failures are reported as *FetchError.
func (c *Client) FetchQuestions(ctx context.Context, languageCode, ageGroup string) ([]Question, error) {
	url := fmt.Sprintf("%s/survey/%s/%s", c.baseURL, languageCode, ageGroup)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	questions, err := parseQuestions(body)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	return questions, nil
}

// SubmitSurvey posts the answered checklist for scoring and returns the
// verdict. The response body is validated against the scoring contract
// before it is accepted. Failures are reported as *SubmitError.
func (c *Client) SubmitSurvey(ctx context.Context, submission SubmitRequest) (*SubmitResult, error) {
	payload, err := json.Marshal(submission)
	if err != nil {
		return nil, &SubmitError{Err: fmt.Errorf("encode submission: %w", err)}
	}

	url := c.baseURL + "/survey"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &SubmitError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &SubmitError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &SubmitError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &SubmitError{Err: err}
	}

	if err := validateResult(body); err != nil {
		return nil, &SubmitError{Err: err}
	}

	var result SubmitResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, &SubmitError{Err: fmt.Errorf("decode result: %w", err)}
	}
	return &result, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if c.assessmentID != "" {
		req.Header.Set("X-Assessment-ID", c.assessmentID)
	}
}
