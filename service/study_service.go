package service

import (
	"context"
	"strings"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

const (
	promptInputLimit = 15000
	summaryFallback  = "Failed to generate summary"
)

// StudyService builds prompts from a text chunk and turns the model replies
// into study material.
type StudyService struct {
	ai CompletionService
}

func NewStudyService(ai CompletionService) *StudyService {
	return &StudyService{ai: ai}
}

// GenerateSummary asks the model for a concise summary of chunk. A reply
// with no content falls back to a fixed string instead of failing.
func (s *StudyService) GenerateSummary(ctx context.Context, chunk string) (string, error) {
	prompt := "Write a concise summary of the following text:\n\n" + utils.Truncate(chunk, promptInputLimit)

	result, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		return "", &types.SummaryGenerationError{Cause: err}
	}
	if result == "" {
		return summaryFallback, nil
	}
	return result, nil
}

// GenerateQuestions asks the model for exam-style Q/A pairs and parses the
// line-oriented reply. An empty reply yields no questions and no error.
func (s *StudyService) GenerateQuestions(ctx context.Context, chunk string) ([]types.GeneratedQuestion, error) {
	prompt := "Generate exam-style questions with answers based on:\n" +
		utils.Truncate(chunk, promptInputLimit) +
		"\nFormat each as: Q: [question]\nA: [answer]"

	result, err := s.ai.Complete(ctx, prompt)
	if err != nil {
		return nil, &types.QuestionGenerationError{Cause: err}
	}
	return ParseQuestions(result), nil
}

// ParseQuestions scans reply lines in order. A "Q:" line opens a new
// pending question, first flushing any previous one with whatever answer it
// holds; an "A:" line answers the pending question and flushes it; blank
// lines are skipped. A trailing pending question is flushed at the end. A
// question immediately followed by another question therefore survives with
// an empty answer rather than being dropped.
func ParseQuestions(reply string) []types.GeneratedQuestion {
	var questions []types.GeneratedQuestion
	var pending *types.GeneratedQuestion

	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "Q:"):
			if pending != nil {
				questions = append(questions, *pending)
			}
			pending = &types.GeneratedQuestion{Question: strings.TrimSpace(line[2:])}
		case strings.HasPrefix(line, "A:") && pending != nil:
			pending.Answer = strings.TrimSpace(line[2:])
			questions = append(questions, *pending)
			pending = nil
		}
	}

	if pending != nil {
		questions = append(questions, *pending)
	}
	return questions
}
