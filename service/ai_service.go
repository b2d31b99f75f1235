package service

import "context"

// CompletionService sends a single prompt to a language-model provider and
// returns the raw text reply. An empty reply with a nil error means the
// provider answered but produced no usable content; callers treat that as a
// soft failure rather than an error.
type CompletionService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
