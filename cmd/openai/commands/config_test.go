package commands

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readSavedConfig(t *testing.T, path string) Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestConfigSetAndUnset(t *testing.T) {
	path := setupViper(t, "")

	_, err := runCommand(NewConfigCommand(), "set", "organization", "org-123")
	require.NoError(t, err)

	_, err = runCommand(NewConfigCommand(), "set", "output", "yaml")
	require.NoError(t, err)

	config := readSavedConfig(t, path)
	assert.Equal(t, "org-123", config.Organization)
	assert.Equal(t, "yaml", config.Output)
	assert.Empty(t, config.APIKey, "flags and environment are not persisted")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	_, err = runCommand(NewConfigCommand(), "unset", "organization")
	require.NoError(t, err)
	assert.Empty(t, readSavedConfig(t, path).Organization)
}

func TestConfigSet_Errors(t *testing.T) {
	setupViper(t, "")

	_, err := runCommand(NewConfigCommand(), "set", "colour", "blue")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = runCommand(NewConfigCommand(), "set", "output", "xml")
	require.ErrorIs(t, err, constants.ErrInvalidOutput)

	_, err = runCommand(NewConfigCommand(), "set", "api_key", "  ")
	require.ErrorIs(t, err, constants.ErrEmptyAPIKey)
}

func TestConfigShow_MasksAPIKey(t *testing.T) {
	setupViper(t, "https://api.example.com")
	viper.Set(keyAPIKey, "sk-proj-abcdefghijklmnop")

	out, err := runCommand(NewConfigCommand(), "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"api_key": "sk-***mnop"`)
	assert.Contains(t, out, `"base_url": "https://api.example.com"`)
	assert.NotContains(t, out, "abcdefghijkl")
}

func TestMaskAPIKey(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskAPIKey(""))
	assert.Equal(t, Masked, maskAPIKey("sk-1234"))
	assert.Equal(t, "sk-***wxyz", maskAPIKey("sk-abcdefghwxyz"))
}

func TestLogin(t *testing.T) {
	t.Run("saves key without verification", func(t *testing.T) {
		path := setupViper(t, "")

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("  sk-new-key \n"))

		out, err := runCommand(cmd, "--skip-verify")
		require.NoError(t, err)
		assert.Contains(t, out, path)
		assert.Equal(t, "sk-new-key", readSavedConfig(t, path).APIKey)
	})

	t.Run("verifies key by listing models", func(t *testing.T) {
		server, requests := newTestServer(t, http.StatusOK, `{"data":[]}`)
		path := setupViper(t, server.URL)

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("sk-verified"))

		_, err := runCommand(cmd)
		require.NoError(t, err)

		req := <-requests
		assert.Equal(t, "/v1/models", req.Path)
		assert.Equal(t, "Bearer sk-verified", req.Authorization)
		assert.Equal(t, "sk-verified", readSavedConfig(t, path).APIKey)
	})

	t.Run("rejected key is not saved", func(t *testing.T) {
		server, _ := newTestServer(t, http.StatusUnauthorized, `{"error":{"message":"Incorrect API key"}}`)
		path := setupViper(t, server.URL)

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("sk-bad\n"))

		_, err := runCommand(cmd)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key rejected")

		_, statErr := os.Stat(path)
		assert.True(t, os.IsNotExist(statErr))
	})

	t.Run("empty key", func(t *testing.T) {
		setupViper(t, "")

		cmd := NewLoginCommand()
		cmd.SetIn(strings.NewReader("\n"))

		_, err := runCommand(cmd, "--skip-verify")
		require.ErrorIs(t, err, constants.ErrEmptyAPIKey)
	})
}

func TestVersionCommand(t *testing.T) {
	setupViper(t, "")

	out, err := runCommand(NewVersionCommand("1.2.3", "abc123", "2026-01-01"))
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "1.2.3"`)
	assert.Contains(t, out, `"commit": "abc123"`)
}
