package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API defaults.
const (
	// DefaultBaseURL is the public OpenAI API root.
	DefaultBaseURL = "https://api.openai.com"

	// DefaultHTTPTimeout is the default per-request timeout. Audio and image
	// generation routinely take minutes.
	DefaultHTTPTimeout = 300 * time.Second

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "openai-client-go/1.0"
)

// Request headers.
const (
	HeaderAuthorization = "Authorization"
	HeaderOrganization  = "OpenAI-Organization"
	HeaderProject       = "OpenAI-Project"
	HeaderUserAgent     = "User-Agent"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"
)

// Output formats.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
	FormatRaw   = "raw"
)

// CLI configuration.
const (
	// ConfigDirName is created under the user's home directory.
	ConfigDirName = ".openai-client"

	// ConfigFileName is the configuration file inside ConfigDirName.
	ConfigFileName = "config.yml"

	// EnvPrefix is the viper environment prefix, e.g. OPENAI_API_KEY.
	EnvPrefix = "OPENAI"

	// MinimumArgumentCount is the argument count of "config set KEY VALUE".
	MinimumArgumentCount = 2
)
