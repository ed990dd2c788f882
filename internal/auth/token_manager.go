// Package auth supplies the credentials attached to outgoing requests.
package auth

import (
	"context"
	"errors"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrEmptyToken = errors.New("token source returned an empty token")
)

// TokenManager supplies the bearer token for a request. An empty token means
// the request is sent without an Authorization header.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
}

// StaticTokenManager always returns the same API key.
type StaticTokenManager struct {
	token string
}

// NewStaticTokenManager returns a manager for a fixed API key with surrounding
// whitespace trimmed.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: strings.TrimSpace(token)}
}

// GetToken implements TokenManager.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	return m.token, nil
}

// TokenFunc adapts a function, e.g. a lookup in a secret store, to TokenManager.
// Unlike StaticTokenManager it reports an empty result as an error.
type TokenFunc func(ctx context.Context) (string, error)

// GetToken implements TokenManager.
func (f TokenFunc) GetToken(ctx context.Context) (string, error) {
	token, err := f(ctx)
	if err != nil {
		return "", err
	}

	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
