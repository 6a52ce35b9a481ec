package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// ActionsClient implements trello.ActionsClient
type ActionsClient struct {
	httpClient *http.Client
}

// NewActionsClient creates a new actions client
func NewActionsClient(httpClient *http.Client) *ActionsClient {
	return &ActionsClient{
		httpClient: httpClient,
	}
}

// Get implements trello.ActionsClient.Get
func (c *ActionsClient) Get(ctx context.Context, actionID string, args trello.Arguments) (*trello.Action, error) {
	if actionID == "" {
		return nil, trello.ErrActionIDRequired
	}

	path := fmt.Sprintf("/1/actions/%s", actionID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting action: %w", err)
	}

	var action trello.Action
	if err := json.Unmarshal(resp.Body, &action); err != nil {
		return nil, fmt.Errorf("parsing action response: %w", err)
	}

	return &action, nil
}

// Update implements trello.ActionsClient.Update. Only comment actions
// accept new text.
func (c *ActionsClient) Update(ctx context.Context, actionID, text string) (*trello.Action, error) {
	if actionID == "" {
		return nil, trello.ErrActionIDRequired
	}

	if text == "" {
		return nil, trello.ErrCommentTextRequired
	}

	path := fmt.Sprintf("/1/actions/%s", actionID)

	body := map[string]string{"text": text}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("updating action: %w", err)
	}

	var action trello.Action
	if err := json.Unmarshal(resp.Body, &action); err != nil {
		return nil, fmt.Errorf("parsing action response: %w", err)
	}

	return &action, nil
}

// Delete implements trello.ActionsClient.Delete
func (c *ActionsClient) Delete(ctx context.Context, actionID string) error {
	if actionID == "" {
		return trello.ErrActionIDRequired
	}

	path := fmt.Sprintf("/1/actions/%s", actionID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting action: %w", err)
	}

	return nil
}
