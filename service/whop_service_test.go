package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aalify-X/progrify-be/types"
)

func TestWhopVerifySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"user_1","email":"a@b.c"}`))
	}))
	defer srv.Close()

	verifier := NewWhopService(srv.URL)
	user, err := verifier.Verify(context.Background(), "tok-123")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"user_1","email":"a@b.c"}`, string(user))
}

func TestWhopVerifyKeepsExistingBearerPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := NewWhopService(srv.URL).Verify(context.Background(), "Bearer tok-123")
	require.NoError(t, err)
}

func TestWhopVerifyNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid token"}`))
	}))
	defer srv.Close()

	_, err := NewWhopService(srv.URL).Verify(context.Background(), "bad-token")

	var apiErr *types.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, types.ApiErrorStatus, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestWhopVerifyTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse all connections

	_, err := NewWhopService(srv.URL).Verify(context.Background(), "tok")

	var apiErr *types.ApiError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, types.ApiErrorTransport, apiErr.Kind)
}

func TestWhopVerifyRejectsNonJSONIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	_, err := NewWhopService(srv.URL).Verify(context.Background(), "tok")
	assert.Error(t, err)
}
