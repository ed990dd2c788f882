package openai_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestEnsureFile(t *testing.T) {
	t.Parallel()

	t.Run("path to regular file", func(t *testing.T) {
		t.Parallel()

		path := writeTempFile(t, "audio.mp3", "ID3")

		part, err := openai.EnsureFile(openai.FileFromPath(path))
		require.NoError(t, err)
		assert.Equal(t, openai.PartPath, part.Kind())
		assert.Equal(t, "audio.mp3", part.Name())
		assert.Equal(t, path, part.Path())
		assert.True(t, part.IsFile())
	})

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.mp3")

		_, err := openai.EnsureFile(openai.FileFromPath(path))
		require.Error(t, err)
		require.ErrorIs(t, err, openai.ErrFileNotFound)
		assert.True(t, openai.IsValidation(err))
		assert.Contains(t, err.Error(), path)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, err := openai.EnsureFile(openai.FileFromPath(t.TempDir()))
		require.ErrorIs(t, err, openai.ErrNotAFile)
	})

	t.Run("zero input", func(t *testing.T) {
		t.Parallel()

		assert.True(t, openai.FileInput{}.IsZero())
		assert.False(t, openai.FileFromPath("").IsZero())

		_, err := openai.EnsureFile(openai.FileInput{})
		assert.True(t, openai.IsValidation(err))
		require.ErrorIs(t, err, openai.ErrFileNotFound)
	})

	t.Run("part passes through", func(t *testing.T) {
		t.Parallel()

		in := openai.BufferPart("clip.wav", []byte("RIFF"))

		part, err := openai.EnsureFile(openai.FileFromPart(in))
		require.NoError(t, err)
		assert.Equal(t, in, part)
	})

	t.Run("part with missing path is not checked", func(t *testing.T) {
		t.Parallel()

		in := openai.PathPart("x", "/does/not/exist")

		part, err := openai.EnsureFile(openai.FileFromPart(in))
		require.NoError(t, err)
		assert.Equal(t, "/does/not/exist", part.Path())
	})
}

func TestEnsureData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input openai.DataInput
		kind  openai.PartKind
	}{
		{name: "reader", input: openai.DataFromReader(strings.NewReader("chunk")), kind: openai.PartStream},
		{name: "bytes", input: openai.DataFromBytes([]byte("chunk")), kind: openai.PartBuffer},
		{name: "empty bytes", input: openai.DataFromBytes([]byte{}), kind: openai.PartBuffer},
		{name: "nil bytes", input: openai.DataFromBytes(nil), kind: openai.PartBuffer},
		{name: "string", input: openai.DataFromString("chunk"), kind: openai.PartString},
		{name: "zero int", input: openai.DataFromInt(0), kind: openai.PartInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			part, err := openai.EnsureData(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, part.Kind())
			assert.Empty(t, part.Name())
		})
	}

	t.Run("part passes through", func(t *testing.T) {
		t.Parallel()

		in := openai.StringPart("named", "value")

		part, err := openai.EnsureData(openai.DataFromPart(in))
		require.NoError(t, err)
		assert.Equal(t, in, part)
	})

	t.Run("nil bytes become an empty buffer", func(t *testing.T) {
		t.Parallel()

		part, err := openai.EnsureData(openai.DataFromBytes(nil))
		require.NoError(t, err)
		assert.NotNil(t, part.Bytes())
		assert.Empty(t, part.Bytes())
	})

	t.Run("unrecognized", func(t *testing.T) {
		t.Parallel()

		for _, in := range []openai.DataInput{{}, openai.DataFromReader(nil)} {
			_, err := openai.EnsureData(in)
			require.ErrorIs(t, err, openai.ErrUnrecognizedData)
		}
	})
}

func TestPartKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stream", openai.PartStream.String())
	assert.Equal(t, "PartKind(42)", openai.PartKind(42).String())
}

func TestTextInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello", openai.Text("hello").Value())
	assert.False(t, openai.Text("hello").IsList())
	assert.Equal(t, []string{"hello"}, openai.Texts("hello").Value())
	assert.Equal(t, []string{}, openai.Texts().Value())
	assert.Empty(t, openai.TextInput{}.Value())
}

func TestOptional(t *testing.T) {
	t.Parallel()

	var absent openai.Optional[int]
	assert.False(t, absent.IsSet())
	assert.Equal(t, absent, openai.None[int]())

	value, ok := openai.Some(0).Get()
	assert.True(t, ok)
	assert.Equal(t, 0, value)
}
