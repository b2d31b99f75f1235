package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aalify-X/progrify-be/types"
)

func TestNewGeminiServiceRequiresAPIKey(t *testing.T) {
	_, err := NewGeminiService(nil, "gemini-1.5-flash")
	var apiErr *types.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, types.ApiErrorMissingCredential, apiErr.Kind)

	_, err = NewGeminiService([]string{""}, "gemini-1.5-flash")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, types.ApiErrorMissingCredential, apiErr.Kind)
}

func TestGeminiCompleteSequentialFailover(t *testing.T) {
	svc, err := NewGeminiService([]string{"key-one", "key-two"}, "gemini-1.5-flash")
	require.NoError(t, err)

	// A cancelled context fails every call before it leaves the process,
	// driving the failover path without a live API.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for i := 0; i < 3; i++ {
		_, err := svc.Complete(ctx, "hello")
		var apiErr *types.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, types.ApiErrorTransport, apiErr.Kind)
	}
}

func TestGeminiCompleteConcurrentFailover(t *testing.T) {
	svc, err := NewGeminiService([]string{"key-one", "key-two"}, "gemini-1.5-flash")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Every goroutine fails and triggers key rotation at the same time.
	// Each call must come back with an error, never a panic from a model
	// whose client was torn down mid-flight.
	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Complete(ctx, "hello")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		var apiErr *types.ApiError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, types.ApiErrorTransport, apiErr.Kind)
	}
}
