package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

const completionTimeout = 30 * time.Second

// OpenRouterService talks to the OpenRouter chat-completions API, which
// speaks the OpenAI wire format, so the stock client works with a custom
// base URL.
type OpenRouterService struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewOpenRouterService(baseURL, apiKey, model string) *OpenRouterService {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL
	config.HTTPClient = &http.Client{
		Timeout:   completionTimeout,
		Transport: &attributionTransport{base: http.DefaultTransport},
	}
	client := openai.NewClientWithConfig(config)
	return &OpenRouterService{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

// attributionTransport adds the app-attribution headers OpenRouter uses for
// ranking and usage reporting.
type attributionTransport struct {
	base http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("HTTP-Referer", "https://your-webapp.onrender.com")
	req.Header.Set("X-Title", "Progrify PDF Summarizer")
	return t.base.RoundTrip(req)
}

// Complete sends prompt as a single user message. Failures are not retried;
// an answer with no usable content comes back as ("", nil).
func (s *OpenRouterService) Complete(ctx context.Context, prompt string) (string, error) {
	if s.apiKey == "" {
		return "", &types.ApiError{Kind: types.ApiErrorMissingCredential}
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: s.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
			Temperature: 0.7,
			MaxTokens:   1000,
		},
	)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &types.ApiError{
				Kind:       types.ApiErrorStatus,
				StatusCode: apiErr.HTTPStatusCode,
				Body:       utils.Truncate(apiErr.Message, 200),
				Cause:      err,
			}
		}
		return "", &types.ApiError{Kind: types.ApiErrorTransport, Cause: err}
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
