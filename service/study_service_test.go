package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aalify-X/progrify-be/types"
)

// mockCompletion implements CompletionService for testing
type mockCompletion struct {
	completeFn func(ctx context.Context, prompt string) (string, error)
}

func (m *mockCompletion) Complete(ctx context.Context, prompt string) (string, error) {
	if m.completeFn != nil {
		return m.completeFn(ctx, prompt)
	}
	return "", nil
}

func TestParseQuestionsWellFormed(t *testing.T) {
	got := ParseQuestions("Q: a\nA: 1\nQ: b\nA: 2")

	assert.Equal(t, []types.GeneratedQuestion{
		{Question: "a", Answer: "1"},
		{Question: "b", Answer: "2"},
	}, got)
}

func TestParseQuestionsOrphanedQuestion(t *testing.T) {
	// A question followed by another question keeps its slot with an empty
	// answer instead of being dropped.
	got := ParseQuestions("Q: a\nQ: b\nA: 2")

	assert.Equal(t, []types.GeneratedQuestion{
		{Question: "a", Answer: ""},
		{Question: "b", Answer: "2"},
	}, got)
}

func TestParseQuestionsTrailingPending(t *testing.T) {
	got := ParseQuestions("Q: a\nA: 1\nQ: b")

	assert.Equal(t, []types.GeneratedQuestion{
		{Question: "a", Answer: "1"},
		{Question: "b", Answer: ""},
	}, got)
}

func TestParseQuestionsIgnoresNoise(t *testing.T) {
	got := ParseQuestions("Here are your questions:\n\nQ: a\n\nA: 1\n\nGood luck!")

	assert.Equal(t, []types.GeneratedQuestion{
		{Question: "a", Answer: "1"},
	}, got)
}

func TestParseQuestionsAnswerWithoutQuestion(t *testing.T) {
	assert.Empty(t, ParseQuestions("A: orphaned answer"))
}

func TestParseQuestionsEmptyReply(t *testing.T) {
	assert.Empty(t, ParseQuestions(""))
}

func TestGenerateSummary(t *testing.T) {
	ai := &mockCompletion{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			assert.True(t, strings.HasPrefix(prompt, "Write a concise summary"))
			return "a summary", nil
		},
	}
	study := NewStudyService(ai)

	summary, err := study.GenerateSummary(context.Background(), "some chunk")
	require.NoError(t, err)
	assert.Equal(t, "a summary", summary)
}

func TestGenerateSummaryFallbackOnEmptyReply(t *testing.T) {
	study := NewStudyService(&mockCompletion{})

	summary, err := study.GenerateSummary(context.Background(), "some chunk")
	require.NoError(t, err)
	assert.Equal(t, "Failed to generate summary", summary)
}

func TestGenerateSummaryWrapsGatewayError(t *testing.T) {
	gatewayErr := &types.ApiError{Kind: types.ApiErrorTransport, Cause: errors.New("boom")}
	study := NewStudyService(&mockCompletion{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", gatewayErr
		},
	})

	_, err := study.GenerateSummary(context.Background(), "some chunk")

	var sumErr *types.SummaryGenerationError
	require.ErrorAs(t, err, &sumErr)
	var apiErr *types.ApiError
	assert.ErrorAs(t, err, &apiErr)
}

func TestGenerateSummaryTruncatesPromptInput(t *testing.T) {
	var gotPrompt string
	study := NewStudyService(&mockCompletion{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			gotPrompt = prompt
			return "ok", nil
		},
	})

	_, err := study.GenerateSummary(context.Background(), strings.Repeat("x", 20000))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(gotPrompt), 15000+len("Write a concise summary of the following text:\n\n"))
}

func TestGenerateQuestions(t *testing.T) {
	study := NewStudyService(&mockCompletion{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "exam-style questions")
			return "Q: what\nA: that", nil
		},
	})

	qs, err := study.GenerateQuestions(context.Background(), "some chunk")
	require.NoError(t, err)
	assert.Equal(t, []types.GeneratedQuestion{{Question: "what", Answer: "that"}}, qs)
}

func TestGenerateQuestionsEmptyReply(t *testing.T) {
	study := NewStudyService(&mockCompletion{})

	qs, err := study.GenerateQuestions(context.Background(), "some chunk")
	require.NoError(t, err)
	assert.Empty(t, qs)
}

func TestGenerateQuestionsWrapsGatewayError(t *testing.T) {
	study := NewStudyService(&mockCompletion{
		completeFn: func(ctx context.Context, prompt string) (string, error) {
			return "", &types.ApiError{Kind: types.ApiErrorStatus, StatusCode: 500}
		},
	})

	_, err := study.GenerateQuestions(context.Background(), "some chunk")

	var qErr *types.QuestionGenerationError
	assert.ErrorAs(t, err, &qErr)
}
