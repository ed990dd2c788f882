package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidOutput     = errors.New("invalid output format, use json, yaml, table or raw")
	ErrAPIKeyRequired    = errors.New("API key is required, use 'openai login' or set OPENAI_API_KEY")
	ErrEmptyAPIKey       = errors.New("API key must not be empty")
	ErrFieldNotFound     = errors.New("field not found in response")
	ErrInvalidMessage    = errors.New("invalid --message, use ROLE=CONTENT")
	ErrInvalidMetadata   = errors.New("invalid --metadata, use KEY=VALUE")
	ErrInvalidDataSource = errors.New("exactly one of --file or --stdin is required")
)
