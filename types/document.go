package types

import (
	"encoding/json"
	"time"
)

// GeneratedQuestion is one exam-style question/answer pair parsed from a
// model reply. Answer stays empty when the model never produced an A: line
// for the question.
type GeneratedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// ChunkOutcome carries the study material produced from a single text chunk.
type ChunkOutcome struct {
	Summary   string
	Questions []GeneratedQuestion
}

// ProcessingResult is the aggregate response for one uploaded document.
type ProcessingResult struct {
	Summary   string              `json:"summary"`
	Questions []GeneratedQuestion `json:"questions"`
	Status    string              `json:"status"`
}

// PipelineConfig contains configuration options for document processing
type PipelineConfig struct {
	ChunkSize     int           // Maximum size for text chunks
	MinTextLength int           // Minimum extracted text length to proceed
	ChunkTimeout  time.Duration // Wall-clock budget per chunk
}

// VerificationSession records one verified subscription for a browser
// session. User holds the identity payload returned by the verification
// provider, kept opaque.
type VerificationSession struct {
	ID        string
	Verified  bool
	User      json.RawMessage
	CreatedAt time.Time
	ExpiresAt time.Time
}
