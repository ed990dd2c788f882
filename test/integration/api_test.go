//go:build integration

package integration

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModels(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	resp, err := client.Models().List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "list", resp.Field("object").String())

	_, err = client.Models().Retrieve(ctx, "model-that-does-not-exist")
	require.Error(t, err)
	assert.True(t, openai.IsNotFound(err))
}

func TestEmbeddingsDimensions(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)

	resp, err := client.Embeddings().Create(context.Background(), &openai.CreateEmbeddingsRequest{
		Input:      openai.Text("integration"),
		Model:      "text-embedding-3-small",
		Dimensions: openai.Some(64),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Field("data.0.embedding").Array(), 64)
}

func TestFileLifecycle(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "batch.jsonl")
	line := `{"custom_id":"1","method":"POST","url":"/v1/chat/completions","body":{"model":"gpt-4o-mini","messages":[{"role":"user","content":"hi"}]}}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(line), 0o600))

	uploaded, err := client.Files().Upload(ctx, &openai.UploadFileRequest{
		File:    openai.FileFromPath(path),
		Purpose: "batch",
	})
	require.NoError(t, err)

	fileID := uploaded.Field("id").String()
	assert.Equal(t, "batch.jsonl", uploaded.Field("filename").String())

	defer func() {
		_, _ = client.Files().Delete(ctx, fileID)
	}()

	listed, err := client.Files().List(ctx, &openai.ListFilesRequest{
		Purpose: openai.Some("batch"),
		Limit:   openai.Some(100),
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, listed.StatusCode)

	content, err := client.Files().RetrieveContent(ctx, fileID)
	require.NoError(t, err)
	assert.Equal(t, line, string(content.Body))
}

func TestUnsupportedGroups(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client := config.NewClient(t)

	_, err := client.Realtime()
	assert.True(t, openai.IsUnsupported(err))
}
