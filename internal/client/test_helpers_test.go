package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// NewTestClient creates a client for baseURL authenticated with a fixed key.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(&openai.Config{BaseURL: baseURL, APIKey: "sk-test"})
	require.NoError(t, err)

	return client
}

// TestRoute describes the request a facade method must produce.
type TestRoute struct {
	Name        string
	Method      string
	Path        string
	RawQuery    string
	ContentType string
	Call        func(ctx context.Context, c *Client) (*openai.Response, error)
}

// RunRouteTests checks each route against a fake server answering 200 {"ok":true}.
func RunRouteTests(t *testing.T, routes []TestRoute) {
	t.Helper()

	for _, route := range routes {
		t.Run(route.Name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, route.Method, request.Method)
				assert.Equal(t, route.Path, request.URL.Path)
				assert.Equal(t, route.RawQuery, request.URL.RawQuery)
				assert.Equal(t, "Bearer sk-test", request.Header.Get("Authorization"))

				if route.ContentType != "" {
					assert.Contains(t, request.Header.Get("Content-Type"), route.ContentType)
				} else {
					assert.Empty(t, request.Header.Get("Content-Type"))
				}

				writer.Header().Set("Content-Type", "application/json")
				_, _ = writer.Write([]byte(`{"ok":true}`))
			}))
			defer server.Close()

			client := NewTestClient(t, server.URL)

			resp, err := route.Call(context.Background(), client)
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.True(t, resp.Field("ok").Bool())
		})
	}
}
