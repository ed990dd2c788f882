package openai_test

import (
	"net/http"
	"path/filepath"
	"testing"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(body *openai.Body) []string {
	names := make([]string, 0, len(body.Fields))
	for _, field := range body.Fields {
		names = append(names, field.Name)
	}

	return names
}

func TestRequestShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    openai.Request
		method string
		path   string
	}{
		{"speech", &openai.CreateSpeechRequest{}, http.MethodPost, "/v1/audio/speech"},
		{"transcription", &openai.CreateTranscriptionRequest{}, http.MethodPost, "/v1/audio/transcriptions"},
		{"translation", &openai.CreateTranslationRequest{}, http.MethodPost, "/v1/audio/translations"},
		{"create batch", &openai.CreateBatchRequest{}, http.MethodPost, "/v1/batches"},
		{"retrieve batch", &openai.RetrieveBatchRequest{BatchID: "batch_123"}, http.MethodGet, "/v1/batches/batch_123"},
		{"cancel batch", &openai.CancelBatchRequest{BatchID: "batch_123"}, http.MethodPost, "/v1/batches/batch_123/cancel"},
		{"list batches", &openai.ListBatchesRequest{}, http.MethodGet, "/v1/batches"},
		{"chat", &openai.CreateChatCompletionRequest{}, http.MethodPost, "/v1/chat/completions"},
		{"completion", &openai.CreateCompletionRequest{}, http.MethodPost, "/v1/completions"},
		{"embeddings", &openai.CreateEmbeddingsRequest{}, http.MethodPost, "/v1/embeddings"},
		{"upload file", &openai.UploadFileRequest{}, http.MethodPost, "/v1/files"},
		{"list files", &openai.ListFilesRequest{}, http.MethodGet, "/v1/files"},
		{"retrieve file", &openai.RetrieveFileRequest{FileID: "file-1"}, http.MethodGet, "/v1/files/file-1"},
		{"delete file", &openai.DeleteFileRequest{FileID: "file-1"}, http.MethodDelete, "/v1/files/file-1"},
		{"file content", &openai.RetrieveFileContentRequest{FileID: "file-1"}, http.MethodGet, "/v1/files/file-1/content"},
		{"create job", &openai.CreateFineTuningJobRequest{}, http.MethodPost, "/v1/fine_tuning/jobs"},
		{"list jobs", &openai.ListFineTuningJobsRequest{}, http.MethodGet, "/v1/fine_tuning/jobs"},
		{"retrieve job", &openai.RetrieveFineTuningJobRequest{JobID: "ftjob-1"}, http.MethodGet, "/v1/fine_tuning/jobs/ftjob-1"},
		{"cancel job", &openai.CancelFineTuningJobRequest{JobID: "ftjob-1"}, http.MethodPost, "/v1/fine_tuning/jobs/ftjob-1/cancel"},
		{"job events", &openai.ListFineTuningEventsRequest{JobID: "ftjob-1"}, http.MethodGet, "/v1/fine_tuning/jobs/ftjob-1/events"},
		{"job checkpoints", &openai.ListFineTuningCheckpointsRequest{JobID: "ftjob-1"}, http.MethodGet, "/v1/fine_tuning/jobs/ftjob-1/checkpoints"},
		{"image", &openai.CreateImageRequest{}, http.MethodPost, "/v1/images/generations"},
		{"image edit", &openai.CreateImageEditRequest{}, http.MethodPost, "/v1/images/edits"},
		{"image variation", &openai.CreateImageVariationRequest{}, http.MethodPost, "/v1/images/variations"},
		{"list models", &openai.ListModelsRequest{}, http.MethodGet, "/v1/models"},
		{"retrieve model", &openai.RetrieveModelRequest{Model: "gpt-4o"}, http.MethodGet, "/v1/models/gpt-4o"},
		{"delete model", &openai.DeleteModelRequest{Model: "ft:gpt-4o:acme"}, http.MethodDelete, "/v1/models/ft:gpt-4o:acme"},
		{"moderation", &openai.CreateModerationRequest{}, http.MethodPost, "/v1/moderations"},
		{"create upload", &openai.CreateUploadRequest{}, http.MethodPost, "/v1/uploads"},
		{"add part", &openai.AddUploadPartRequest{UploadID: "upload_1"}, http.MethodPost, "/v1/uploads/upload_1/parts"},
		{"complete upload", &openai.CompleteUploadRequest{UploadID: "upload_1"}, http.MethodPost, "/v1/uploads/upload_1/complete"},
		{"cancel upload", &openai.CancelUploadRequest{UploadID: "upload_1"}, http.MethodPost, "/v1/uploads/upload_1/cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.method, tt.req.Method())
			assert.Equal(t, tt.path, tt.req.Path())
		})
	}
}

func TestBodilessRequests(t *testing.T) {
	t.Parallel()

	for _, req := range []openai.Request{
		&openai.RetrieveBatchRequest{BatchID: "batch_123"},
		&openai.CancelBatchRequest{BatchID: "batch_123"},
		&openai.ListFilesRequest{},
		&openai.CancelUploadRequest{UploadID: "upload_1"},
		&openai.ListModelsRequest{},
	} {
		body, err := req.Body()
		require.NoError(t, err)
		assert.Nil(t, body, req.Path())
	}
}

func TestCreateTranscriptionRequest_Body(t *testing.T) {
	t.Parallel()

	path := writeTempFile(t, "speech.mp3", "ID3")

	t.Run("only required parameters", func(t *testing.T) {
		t.Parallel()

		req := &openai.CreateTranscriptionRequest{File: openai.FileFromPath(path), Model: "whisper-1"}

		body, err := req.Body()
		require.NoError(t, err)
		assert.Equal(t, openai.BodyMultipart, body.Type)
		assert.Equal(t, []string{"file", "model"}, fieldNames(body))
		assert.Equal(t, "speech.mp3", body.Lookup("file")[0].Name())
		assert.Equal(t, "whisper-1", body.Lookup("model")[0].Text())
	})

	t.Run("timestamp granularities repeat", func(t *testing.T) {
		t.Parallel()

		req := &openai.CreateTranscriptionRequest{
			File:                   openai.FileFromPath(path),
			Model:                  "whisper-1",
			ResponseFormat:         openai.Some("verbose_json"),
			Temperature:            openai.Some(0.0),
			TimestampGranularities: openai.Some([]string{"word", "segment"}),
		}

		body, err := req.Body()
		require.NoError(t, err)

		granularities := body.Lookup("timestamp_granularities[]")
		require.Len(t, granularities, 2)
		assert.Equal(t, "word", granularities[0].Text())
		assert.Equal(t, "segment", granularities[1].Text())
		assert.Equal(t, "0", body.Lookup("temperature")[0].Text())
	})

	t.Run("empty granularities write no fields", func(t *testing.T) {
		t.Parallel()

		req := &openai.CreateTranscriptionRequest{
			File:                   openai.FileFromPath(path),
			Model:                  "whisper-1",
			TimestampGranularities: openai.Some([]string{}),
		}

		body, err := req.Body()
		require.NoError(t, err)
		assert.Equal(t, []string{"file", "model"}, fieldNames(body))
	})

	t.Run("missing file fails before sending", func(t *testing.T) {
		t.Parallel()

		req := &openai.CreateTranscriptionRequest{
			File:  openai.FileFromPath(filepath.Join(t.TempDir(), "nope.mp3")),
			Model: "whisper-1",
		}

		body, err := req.Body()
		require.ErrorIs(t, err, openai.ErrFileNotFound)
		assert.Nil(t, body)
	})
}

func TestCreateImageEditRequest_Body(t *testing.T) {
	t.Parallel()

	image := writeTempFile(t, "otter.png", "PNG")

	t.Run("mask error names the mask field", func(t *testing.T) {
		t.Parallel()

		req := &openai.CreateImageEditRequest{
			Image:  openai.FileFromPath(image),
			Prompt: "add a hat",
			Mask:   openai.Some(openai.FileFromPath(filepath.Join(t.TempDir(), "mask.png"))),
		}

		_, err := req.Body()

		validationErr := &openai.ValidationError{}
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "mask", validationErr.Field)
	})

	t.Run("zero n is sent", func(t *testing.T) {
		t.Parallel()

		req := &openai.CreateImageEditRequest{
			Image:  openai.FileFromPath(image),
			Prompt: "add a hat",
			N:      openai.Some(0),
		}

		body, err := req.Body()
		require.NoError(t, err)
		assert.Equal(t, []string{"image", "prompt", "n"}, fieldNames(body))
		assert.Equal(t, openai.PartInt, body.Lookup("n")[0].Kind())
	})
}

func TestAddUploadPartRequest_Body(t *testing.T) {
	t.Parallel()

	req := &openai.AddUploadPartRequest{UploadID: "upload_1", Data: openai.DataFromBytes([]byte("chunk"))}

	body, err := req.Body()
	require.NoError(t, err)
	require.Len(t, body.Fields, 1)
	assert.Equal(t, "data", body.Fields[0].Name)
	assert.Equal(t, []byte("chunk"), body.Fields[0].Part.Bytes())

	_, err = (&openai.AddUploadPartRequest{UploadID: "upload_1"}).Body()

	validationErr := &openai.ValidationError{}
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "data", validationErr.Field)
}

func TestJSONBodies(t *testing.T) {
	t.Parallel()

	t.Run("embeddings without dimensions", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateEmbeddingsRequest{
			Input: openai.Text("The food was delicious"),
			Model: "text-embedding-3-small",
		}).Body()
		require.NoError(t, err)
		assert.Equal(t, openai.BodyJSON, body.Type)
		assert.Equal(t, map[string]interface{}{
			"input": "The food was delicious",
			"model": "text-embedding-3-small",
		}, body.JSON)
	})

	t.Run("embeddings with dimensions", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateEmbeddingsRequest{
			Input:      openai.Texts("a", "b"),
			Model:      "text-embedding-3-small",
			Dimensions: openai.Some(256),
		}).Body()
		require.NoError(t, err)
		assert.Equal(t, 256, body.JSON["dimensions"])
		assert.Equal(t, []string{"a", "b"}, body.JSON["input"])
	})

	t.Run("falsy values are sent", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateCompletionRequest{
			Model:       "gpt-3.5-turbo-instruct",
			Prompt:      openai.Text(""),
			Echo:        openai.Some(false),
			Temperature: openai.Some(0.0),
			Suffix:      openai.Some(""),
			Logprobs:    openai.Some(0),
		}).Body()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{
			"model":       "gpt-3.5-turbo-instruct",
			"prompt":      "",
			"echo":        false,
			"temperature": 0.0,
			"suffix":      "",
			"logprobs":    0,
		}, body.JSON)
	})

	t.Run("chat messages default to empty list", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateChatCompletionRequest{Model: "gpt-4o"}).Body()
		require.NoError(t, err)
		assert.Equal(t, []openai.ChatMessage{}, body.JSON["messages"])
	})

	t.Run("fine-tuning method key", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateFineTuningJobRequest{
			Model:        "gpt-4o-mini",
			TrainingFile: "file-abc",
			TuningMethod: openai.Some(map[string]interface{}{"type": "supervised"}),
		}).Body()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"type": "supervised"}, body.JSON["method"])
	})

	t.Run("complete upload part ids", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CompleteUploadRequest{UploadID: "upload_1"}).Body()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"part_ids": []string{}}, body.JSON)
	})

	t.Run("create upload", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateUploadRequest{
			Filename: "training.jsonl",
			Purpose:  "fine-tune",
			Bytes:    2147483648,
			MimeType: "text/jsonl",
		}).Body()
		require.NoError(t, err)
		assert.Equal(t, int64(2147483648), body.JSON["bytes"])
		assert.Equal(t, "text/jsonl", body.JSON["mime_type"])
	})

	t.Run("moderation list input", func(t *testing.T) {
		t.Parallel()

		body, err := (&openai.CreateModerationRequest{Input: openai.Texts("one")}).Body()
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"input": []string{"one"}}, body.JSON)
	})
}

func TestQueries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "limit=50", (&openai.ListFilesRequest{Limit: openai.Some(50)}).Query().Encode())
	assert.Empty(t, (&openai.ListFilesRequest{}).Query().Encode())
	assert.Equal(t,
		"after=file-9&limit=0&order=desc&purpose=batch",
		(&openai.ListFilesRequest{
			Purpose: openai.Some("batch"),
			Limit:   openai.Some(0),
			Order:   openai.Some("desc"),
			After:   openai.Some("file-9"),
		}).Query().Encode(),
	)
	assert.Equal(t,
		"after=batch_9&limit=20",
		(&openai.ListBatchesRequest{After: openai.Some("batch_9"), Limit: openai.Some(20)}).Query().Encode(),
	)
	assert.Nil(t, (&openai.RetrieveBatchRequest{BatchID: "batch_123"}).Query())
}
