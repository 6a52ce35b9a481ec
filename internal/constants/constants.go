package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoint defaults.
const (
	// DefaultBaseURL is the public Trello API endpoint.
	DefaultBaseURL = "https://api.trello.com"

	// DefaultUserAgent is the User-Agent header sent with every request.
	DefaultUserAgent = "trello-helper-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Rate-limit recovery.
const (
	// RateLimitStatusCode is the HTTP status Trello returns when the
	// caller must slow down.
	RateLimitStatusCode = 429

	// DefaultRetryDelay is the fixed wait between rate-limited read
	// attempts.
	DefaultRetryDelay = 500 * time.Millisecond

	// UnboundedRetries selects no ceiling on rate-limit retries.
	UnboundedRetries = 0
)
