package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	openaihttp "github.com/fivetwenty-io/openai-client/internal/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path == "/v1/missing" {
			writer.WriteHeader(http.StatusNotFound)

			return
		}

		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	registry := prometheus.NewRegistry()

	metrics, err := openaihttp.NewMetrics(registry)
	require.NoError(t, err)

	client := openaihttp.NewClient(server.URL, nil, openaihttp.WithMetrics(metrics))

	_, err = client.Do(context.Background(), &openaihttp.Request{Method: "GET", Path: "/v1/models"})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), &openaihttp.Request{Method: "GET", Path: "/v1/models"})
	require.NoError(t, err)

	_, err = client.Do(context.Background(), &openaihttp.Request{Method: "GET", Path: "/v1/missing"})
	require.Error(t, err)

	expected := `
# HELP openai_client_requests_total Requests sent to the OpenAI API
# TYPE openai_client_requests_total counter
openai_client_requests_total{method="GET",status="2xx"} 2
openai_client_requests_total{method="GET",status="4xx"} 1
`
	require.NoError(t, testutil.GatherAndCompare(registry, strings.NewReader(expected), "openai_client_requests_total"))

	count, err := testutil.GatherAndCount(registry, "openai_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_SharesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()

	first, err := openaihttp.NewMetrics(registry)
	require.NoError(t, err)

	second, err := openaihttp.NewMetrics(registry)
	require.NoError(t, err)
	assert.NotNil(t, first)
	assert.NotNil(t, second)
}
