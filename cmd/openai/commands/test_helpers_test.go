package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

// capturedRequest is what the fake API saw of one request.
type capturedRequest struct {
	Method        string
	Path          string
	RawQuery      string
	Authorization string
	Body          []byte
	Fields        map[string][]string
	Files         map[string]string
}

// newTestServer answers every request with status and body and reports each
// request it received.
func newTestServer(t *testing.T, status int, body string) (*httptest.Server, <-chan capturedRequest) {
	t.Helper()

	requests := make(chan capturedRequest, 8)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		captured := capturedRequest{
			Method:        request.Method,
			Path:          request.URL.Path,
			RawQuery:      request.URL.RawQuery,
			Authorization: request.Header.Get("Authorization"),
		}

		if strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data") {
			err := request.ParseMultipartForm(1 << 20)
			if assert.NoError(t, err) {
				captured.Fields = request.MultipartForm.Value
				captured.Files = map[string]string{}

				for name, headers := range request.MultipartForm.File {
					captured.Files[name] = headers[0].Filename
				}
			}
		} else {
			captured.Body, _ = io.ReadAll(request.Body)
		}

		requests <- captured

		writer.Header().Set("Content-Type", "application/json")
		writer.Header().Set("X-Request-Id", "req_123")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, requests
}

// setupViper resets the global configuration to point at baseURL with a test
// key and a config file inside a temporary directory.
func setupViper(t *testing.T, baseURL string) string {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	configPath := filepath.Join(t.TempDir(), "config.yml")

	viper.Set("config", configPath)
	viper.Set(keyBaseURL, baseURL)
	viper.Set(keyAPIKey, "sk-test")
	viper.Set(keyOutput, "json")

	return configPath
}

// runCommand executes cmd with args and returns what it wrote to stdout.
func runCommand(cmd *cobra.Command, args ...string) (string, error) {
	var out bytes.Buffer

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
