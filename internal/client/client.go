// Package client contains the concrete trello.Client and the
// per-resource clients that make up the verb catalog.
package client

import (
	"fmt"

	"github.com/pluralsight/trello-helper/internal/auth"
	"github.com/pluralsight/trello-helper/internal/constants"
	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// Client implements the trello.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     trello.Logger

	// Resource clients
	boards       trello.BoardsClient
	lists        trello.ListsClient
	cards        trello.CardsClient
	members      trello.MembersClient
	customFields trello.CustomFieldsClient
	actions      trello.ActionsClient
	raw          trello.RawClient
}

// New creates a new Trello API client. Missing credentials are a
// construction-time failure.
func New(config *trello.Config) (*Client, error) {
	if config == nil {
		return nil, trello.ErrConfigRequired
	}

	credentials, err := auth.NewStaticCredentials(config.Key, config.Token)
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, credentials, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *trello.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	if config.RetryDelay > 0 || config.RetryMax > 0 {
		retryDelay := constants.DefaultRetryDelay
		if config.RetryDelay > 0 {
			retryDelay = config.RetryDelay
		}

		httpOpts = append(httpOpts, http.WithRateLimitPolicy(retryDelay, config.RetryMax))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.boards = NewBoardsClient(c.httpClient)
	c.lists = NewListsClient(c.httpClient)
	c.cards = NewCardsClient(c.httpClient)
	c.members = NewMembersClient(c.httpClient)
	c.customFields = NewCustomFieldsClient(c.httpClient)
	c.actions = NewActionsClient(c.httpClient)
	c.raw = NewRawClient(c.httpClient)
}

// Boards implements trello.Client.Boards.
func (c *Client) Boards() trello.BoardsClient {
	return c.boards
}

// Lists implements trello.Client.Lists.
func (c *Client) Lists() trello.ListsClient {
	return c.lists
}

// Cards implements trello.Client.Cards.
func (c *Client) Cards() trello.CardsClient {
	return c.cards
}

// Members implements trello.Client.Members.
func (c *Client) Members() trello.MembersClient {
	return c.members
}

// CustomFields implements trello.Client.CustomFields.
func (c *Client) CustomFields() trello.CustomFieldsClient {
	return c.customFields
}

// Actions implements trello.Client.Actions.
func (c *Client) Actions() trello.ActionsClient {
	return c.actions
}

// Raw implements trello.Client.Raw.
func (c *Client) Raw() trello.RawClient {
	return c.raw
}

// loggerAdapter adapts trello.Logger to http.Logger.
type loggerAdapter struct {
	logger trello.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
