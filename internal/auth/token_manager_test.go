package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fivetwenty-io/openai-client/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errSecretStore = errors.New("secret store unavailable")

func TestStaticTokenManager(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "plain key", token: "sk-test", expected: "sk-test"},
		{name: "trailing newline", token: "sk-test\n", expected: "sk-test"},
		{name: "empty key", token: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			token, err := auth.NewStaticTokenManager(tt.token).GetToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestTokenFunc(t *testing.T) {
	t.Parallel()

	t.Run("returns token", func(t *testing.T) {
		t.Parallel()

		manager := auth.TokenFunc(func(ctx context.Context) (string, error) {
			return "sk-rotated", nil
		})

		token, err := manager.GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "sk-rotated", token)
	})

	t.Run("empty token is an error", func(t *testing.T) {
		t.Parallel()

		manager := auth.TokenFunc(func(ctx context.Context) (string, error) {
			return "", nil
		})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, auth.ErrEmptyToken)
	})

	t.Run("propagates source error", func(t *testing.T) {
		t.Parallel()

		manager := auth.TokenFunc(func(ctx context.Context) (string, error) {
			return "", errSecretStore
		})

		_, err := manager.GetToken(context.Background())
		require.ErrorIs(t, err, errSecretStore)
	})
}
