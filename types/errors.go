package types

import "fmt"

// ClientInputError marks a request rejected before any processing happened:
// missing file, unsupported type, not enough readable text. Handlers map it
// to HTTP 400.
type ClientInputError struct {
	Message string
}

func (e *ClientInputError) Error() string { return e.Message }

// ExtractionError reports a parser-level failure while pulling text out of
// an uploaded document. Timeout distinguishes the word-processing deadline
// from generic parse failures.
type ExtractionError struct {
	Format  string
	Timeout bool
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("%s processing timed out", e.Format)
	}
	return fmt.Sprintf("%s extraction error: %v", e.Format, e.Cause)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

type ApiErrorKind int

const (
	// ApiErrorMissingCredential means the provider API key is not configured.
	ApiErrorMissingCredential ApiErrorKind = iota
	// ApiErrorStatus means the provider answered with a non-2xx status.
	ApiErrorStatus
	// ApiErrorTransport means the request never got a usable response.
	ApiErrorTransport
)

// ApiError reports a failed call to an external provider (LLM completion or
// subscription verification). None of the kinds are retried.
type ApiError struct {
	Kind       ApiErrorKind
	StatusCode int
	Body       string
	Cause      error
}

func (e *ApiError) Error() string {
	switch e.Kind {
	case ApiErrorMissingCredential:
		return "API key not set"
	case ApiErrorStatus:
		if e.Body != "" {
			return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Body)
		}
		return fmt.Sprintf("API error: %d", e.StatusCode)
	default:
		return fmt.Sprintf("network error: %v", e.Cause)
	}
}

func (e *ApiError) Unwrap() error { return e.Cause }

type SummaryGenerationError struct {
	Cause error
}

func (e *SummaryGenerationError) Error() string {
	return fmt.Sprintf("summary generation error: %v", e.Cause)
}

func (e *SummaryGenerationError) Unwrap() error { return e.Cause }

type QuestionGenerationError struct {
	Cause error
}

func (e *QuestionGenerationError) Error() string {
	return fmt.Sprintf("question generation error: %v", e.Cause)
}

func (e *QuestionGenerationError) Unwrap() error { return e.Cause }
