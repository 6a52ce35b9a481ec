// Package trelloclient provides the main entry point for creating
// Trello API clients.
package trelloclient

import (
	"fmt"
	"strings"

	"github.com/pluralsight/trello-helper/internal/client"
	"github.com/pluralsight/trello-helper/internal/constants"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// New creates a new Trello API client. The config must carry an API key
// and token; construction fails rather than producing a client that
// sends unauthenticated requests.
func New(config *trello.Config) (trello.Client, error) {
	if config == nil {
		return nil, trello.ErrConfigRequired
	}

	if config.Key == "" || config.Token == "" {
		return nil, trello.ErrCredentialsRequired
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// normalizeBaseURL applies the default endpoint, trims a trailing slash,
// and adds https when no scheme is present.
func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
