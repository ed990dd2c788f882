package openai_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestError(t *testing.T) {
	t.Parallel()

	t.Run("api error body", func(t *testing.T) {
		t.Parallel()

		body := []byte(`{"error":{"message":"No such model","type":"invalid_request_error","param":"model","code":"model_not_found"}}`)

		err := openai.NewRequestError(http.StatusNotFound, body)
		require.NotNil(t, err.API)
		assert.Equal(t, "No such model", err.API.Message)
		assert.Equal(t, "model", *err.API.Param)
		assert.Equal(t, "model_not_found", err.API.Code)
		assert.Equal(t, "request failed with status 404: invalid_request_error: No such model", err.Error())
		assert.Equal(t, body, err.Body)
	})

	t.Run("non-json body", func(t *testing.T) {
		t.Parallel()

		err := openai.NewRequestError(http.StatusBadGateway, []byte("<html>bad gateway</html>"))
		assert.Nil(t, err.API)
		assert.Equal(t, "request failed with status 502", err.Error())
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Parallel()

	wrapped := func(status int) error {
		return fmt.Errorf("retrieve model: %w", openai.NewRequestError(status, nil))
	}

	assert.True(t, openai.IsNotFound(wrapped(http.StatusNotFound)))
	assert.False(t, openai.IsNotFound(wrapped(http.StatusBadRequest)))
	assert.True(t, openai.IsUnauthorized(wrapped(http.StatusUnauthorized)))
	assert.True(t, openai.IsRateLimited(wrapped(http.StatusTooManyRequests)))
	assert.False(t, openai.IsRateLimited(errors.New("boom")))

	unsupported := &openai.UnsupportedOperationError{Operation: "realtime"}
	assert.True(t, openai.IsUnsupported(unsupported))
	assert.Equal(t, "realtime: unsupported operation", unsupported.Error())

	validation := &openai.ValidationError{Field: "file", Value: "a.mp3", Reason: openai.ErrFileNotFound}
	assert.True(t, openai.IsValidation(validation))
	assert.Equal(t, `invalid file "a.mp3": file does not exist`, validation.Error())
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := &openai.TransportError{Method: http.MethodGet, Path: "/v1/models", Err: cause}

	require.ErrorIs(t, err, cause)
	assert.Equal(t, "GET /v1/models: connection refused", err.Error())
}
