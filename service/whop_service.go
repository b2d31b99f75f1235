package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Aalify-X/progrify-be/types"
	"github.com/Aalify-X/progrify-be/utils"
)

const verifyTimeout = 5 * time.Second

// TokenVerifier checks a subscription token against an external provider
// and returns the identity payload on success.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (json.RawMessage, error)
}

// WhopService verifies subscription tokens against the Whop membership API.
type WhopService struct {
	endpoint string
	client   *http.Client
}

func NewWhopService(endpoint string) *WhopService {
	return &WhopService{
		endpoint: endpoint,
		client:   &http.Client{Timeout: verifyTimeout},
	}
}

// Verify calls the provider with the bearer token. Only a 200 response
// establishes identity; every other outcome is an error and no session may
// be created from it.
func (s *WhopService) Verify(ctx context.Context, token string) (json.RawMessage, error) {
	if !strings.HasPrefix(token, "Bearer ") {
		token = "Bearer " + token
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", token)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &types.ApiError{Kind: types.ApiErrorTransport, Cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &types.ApiError{Kind: types.ApiErrorTransport, Cause: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &types.ApiError{
			Kind:       types.ApiErrorStatus,
			StatusCode: resp.StatusCode,
			Body:       utils.Truncate(string(body), 200),
		}
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("verification provider returned invalid identity payload")
	}
	return json.RawMessage(body), nil
}
