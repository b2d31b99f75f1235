package service

import (
	"context"
	"errors"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

// GeminiService is the alternate completion provider. Multiple API keys can
// be configured; on a failed call the service fails over to the next key
// once before giving up.
type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	model      *genai.GenerativeModel
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 || apiKeys[0] == "" {
		return nil, &types.ApiError{Kind: types.ApiErrorMissingCredential}
	}

	service := &GeminiService{
		apiKeys:   apiKeys,
		modelName: modelName,
	}
	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resetClientLocked()
}

// resetClientLocked rebuilds the client and model for the current key.
// Callers must hold s.mu.
func (s *GeminiService) resetClientLocked() error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	// The previous client is left open: concurrent Complete calls may
	// still hold a model built on it.
	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	return s.resetClientLocked()
}

func (s *GeminiService) currentModel() *genai.GenerativeModel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

func (s *GeminiService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := s.currentModel().GenerateContent(ctx, genai.Text(prompt))
	if err != nil && len(s.apiKeys) > 1 {
		// Fail over to the next key, not a retry of the same credential.
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", wrapGeminiError(err)
		}
		resp, err = s.currentModel().GenerateContent(ctx, genai.Text(prompt))
	}
	if err != nil {
		return "", wrapGeminiError(err)
	}

	content := ""
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				content += string(text)
			}
		}
	}
	return content, nil
}

func wrapGeminiError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &types.ApiError{
			Kind:       types.ApiErrorStatus,
			StatusCode: gerr.Code,
			Body:       utils.Truncate(gerr.Body, 200),
			Cause:      err,
		}
	}
	return &types.ApiError{Kind: types.ApiErrorTransport, Cause: err}
}
