package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"

	"github.com/fivetwenty-io/openai-client/internal/constants"
	"github.com/fivetwenty-io/openai-client/pkg/openai"
	"github.com/fivetwenty-io/openai-client/pkg/openaiclient"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	// maxTableValue truncates nested JSON in table cells.
	maxTableValue = 60
)

// newClient builds an API client from the effective configuration.
func newClient(ctx context.Context) (openai.Client, error) {
	config := loadConfig()
	if config.APIKey == "" {
		return nil, constants.ErrAPIKeyRequired
	}

	clientConfig := &openai.Config{
		BaseURL:      config.BaseURL,
		APIKey:       config.APIKey,
		Organization: config.Organization,
		Project:      config.Project,
	}

	if viper.GetBool("verbose") {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		clientConfig.Debug = true
		clientConfig.Logger = openai.NewSlogLogger(slog.New(handler))
	}

	client, err := openaiclient.New(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// execute runs one API call and renders its response. A failed response is
// rendered before the error is returned so the API error body stays visible.
func execute(cmd *cobra.Command, call func(ctx context.Context, client openai.Client) (*openai.Response, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := newClient(ctx)
	if err != nil {
		return err
	}

	resp, err := call(ctx, client)
	if resp != nil {
		renderErr := renderResponse(cmd.OutOrStdout(), resp, viper.GetString(keyOutput), viper.GetString("field"))
		if err == nil {
			return renderErr
		}
	}

	return err
}

// renderResponse writes resp in the requested format. field selects a gjson
// path from a JSON body first.
func renderResponse(w io.Writer, resp *openai.Response, format, field string) error {
	body := resp.Body

	if field != "" {
		result := resp.Field(field)
		if !result.Exists() {
			return fmt.Errorf("%q: %w", field, constants.ErrFieldNotFound)
		}

		if !result.IsObject() && !result.IsArray() {
			_, err := fmt.Fprintln(w, result.String())

			return err
		}

		body = []byte(result.Raw)
	}

	switch format {
	case constants.FormatRaw:
		_, err := w.Write(body)

		return err
	case constants.FormatYAML:
		return renderYAML(w, body)
	case constants.FormatTable:
		return renderTable(w, resp, body)
	default:
		return renderJSON(w, body)
	}
}

func renderJSON(w io.Writer, body []byte) error {
	if !json.Valid(body) {
		_, err := w.Write(body)

		return err
	}

	var out bytes.Buffer

	err := json.Indent(&out, body, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}

	out.WriteByte('\n')

	_, err = out.WriteTo(w)

	return err
}

func renderYAML(w io.Writer, body []byte) error {
	var value interface{}

	err := json.Unmarshal(body, &value)
	if err != nil {
		_, err = w.Write(body)

		return err
	}

	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(value)
}

func renderTable(w io.Writer, resp *openai.Response, body []byte) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")
	_ = table.Append("Status", fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)))

	if contentType := resp.Header.Get(constants.HeaderContentType); contentType != "" {
		_ = table.Append("Content-Type", contentType)
	}

	if requestID := resp.Header.Get("X-Request-Id"); requestID != "" {
		_ = table.Append("Request ID", requestID)
	}

	var object map[string]json.RawMessage

	err := json.Unmarshal(body, &object)
	if err != nil {
		_ = table.Append("Body", fmt.Sprintf("%d bytes", len(body)))
	} else {
		keys := make([]string, 0, len(object))
		for key := range object {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = table.Append(key, tableValue(object[key]))
		}
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func tableValue(raw json.RawMessage) string {
	var text string
	if json.Unmarshal(raw, &text) == nil {
		return text
	}

	value := string(raw)
	if len(value) > maxTableValue {
		return value[:maxTableValue] + "..."
	}

	return value
}

// optionalFlag returns the flag value when it was passed on the command line
// and an absent value otherwise, so defaults never reach the request. It panics
// when get does not match the type the flag was registered with.
func optionalFlag[T any](cmd *cobra.Command, name string, get func(string) (T, error)) openai.Optional[T] {
	if !cmd.Flags().Changed(name) {
		return openai.None[T]()
	}

	value, err := get(name)
	if err != nil {
		panic(fmt.Sprintf("reading flag --%s: %v", name, err))
	}

	return openai.Some(value)
}

// textInput sends a single value as a string and several as a list.
func textInput(values []string) openai.TextInput {
	if len(values) == 1 {
		return openai.Text(values[0])
	}

	return openai.Texts(values...)
}

func optionalText(cmd *cobra.Command, name string) openai.Optional[openai.TextInput] {
	values := optionalFlag(cmd, name, cmd.Flags().GetStringArray)
	if v, ok := values.Get(); ok {
		return openai.Some(textInput(v))
	}

	return openai.None[openai.TextInput]()
}

// parseMetadata converts repeated KEY=VALUE flags into a map.
func parseMetadata(cmd *cobra.Command) (openai.Optional[map[string]string], error) {
	entries := optionalFlag(cmd, "metadata", cmd.Flags().GetStringArray)

	values, ok := entries.Get()
	if !ok {
		return openai.None[map[string]string](), nil
	}

	metadata := make(map[string]string, len(values))

	for _, entry := range values {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			return openai.None[map[string]string](), fmt.Errorf("%q: %w", entry, constants.ErrInvalidMetadata)
		}

		metadata[key] = value
	}

	return openai.Some(metadata), nil
}

// parseMessages converts repeated ROLE=CONTENT flags into chat messages.
func parseMessages(entries []string) ([]openai.ChatMessage, error) {
	messages := make([]openai.ChatMessage, 0, len(entries))

	for _, entry := range entries {
		role, content, found := strings.Cut(entry, "=")
		if !found || role == "" {
			return nil, fmt.Errorf("%q: %w", entry, constants.ErrInvalidMessage)
		}

		messages = append(messages, openai.ChatMessage{Role: role, Content: content})
	}

	return messages, nil
}

func addCursorFlags(cmd *cobra.Command) {
	cmd.Flags().String("after", "", "cursor returned by the previous page")
	cmd.Flags().Int("limit", 0, "number of objects to return")
}
