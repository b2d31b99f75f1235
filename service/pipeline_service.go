package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

const (
	summaryPlaceholder   = "No summary generated"
	questionsPlaceholder = "No questions generated"
)

var DefaultPipelineConfig = types.PipelineConfig{
	ChunkSize:     5000,
	MinTextLength: 100,
	ChunkTimeout:  15 * time.Second,
}

// PipelineService drives one uploaded document through extraction,
// chunking, and per-chunk study-material generation.
type PipelineService struct {
	extractor TextExtractor
	study     *StudyService
	config    types.PipelineConfig
}

func NewPipelineService(extractor TextExtractor, study *StudyService, config types.PipelineConfig) *PipelineService {
	return &PipelineService{
		extractor: extractor,
		study:     study,
		config:    config,
	}
}

// Process runs the whole per-request flow. It returns ClientInputError for
// bad input and ExtractionError for parser failures; once extraction
// succeeded the request cannot fail anymore, it degrades to placeholder
// content instead. opts is validated by the handler but does not currently
// alter prompt construction.
func (s *PipelineService) Process(ctx context.Context, filename string, data []byte, opts types.ProcessDocumentOptions) (*types.ProcessingResult, error) {
	name := utils.SanitizeFilename(filename)
	if name == "" {
		return nil, &types.ClientInputError{Message: "Invalid file"}
	}
	if !s.extractor.SupportedExt(utils.FileExt(name)) {
		return nil, &types.ClientInputError{Message: "Unsupported file type"}
	}

	text, err := s.extractor.Extract(ctx, name, data)
	if err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if len(text) < s.config.MinTextLength {
		return nil, &types.ClientInputError{Message: "No readable text in file"}
	}

	chunks := utils.SplitChunks(text, s.config.ChunkSize)
	summaries := make([]string, 0, len(chunks))
	var questions []types.GeneratedQuestion

	// Chunks run strictly in order so the summary concatenation follows the
	// document.
	for i, chunk := range chunks {
		outcome, err := s.processChunk(ctx, chunk)
		if err != nil {
			// One chunk never aborts the request.
			log.Printf("Warning: skipping chunk %d/%d: %v", i+1, len(chunks), err)
			continue
		}
		if outcome.Summary != "" {
			summaries = append(summaries, outcome.Summary)
		}
		questions = append(questions, outcome.Questions...)
	}

	finalSummary := strings.TrimSpace(strings.Join(summaries, " "))
	if finalSummary == "" {
		finalSummary = summaryPlaceholder
	}
	if len(questions) == 0 {
		questions = []types.GeneratedQuestion{{Question: questionsPlaceholder}}
	}

	return &types.ProcessingResult{
		Summary:   finalSummary,
		Questions: questions,
		Status:    "success",
	}, nil
}

type chunkResult struct {
	outcome *types.ChunkOutcome
	err     error
}

// processChunk runs summary and question generation for one chunk under the
// configured wall-clock budget. The generation goroutine races the
// deadline; on expiry the context cancels the in-flight network call and
// the chunk is abandoned.
func (s *PipelineService) processChunk(ctx context.Context, chunk string) (*types.ChunkOutcome, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.ChunkTimeout)
	defer cancel()

	resultChan := make(chan chunkResult, 1)
	go func() {
		outcome, err := s.generate(ctx, chunk)
		resultChan <- chunkResult{outcome: outcome, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-resultChan:
		return res.outcome, res.err
	}
}

func (s *PipelineService) generate(ctx context.Context, chunk string) (*types.ChunkOutcome, error) {
	summary, err := s.study.GenerateSummary(ctx, chunk)
	if err != nil {
		return nil, err
	}
	qs, err := s.study.GenerateQuestions(ctx, chunk)
	if err != nil {
		return nil, err
	}
	return &types.ChunkOutcome{Summary: summary, Questions: qs}, nil
}
