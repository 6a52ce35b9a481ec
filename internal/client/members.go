package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// MembersClient implements trello.MembersClient
type MembersClient struct {
	httpClient *http.Client
}

// NewMembersClient creates a new members client
func NewMembersClient(httpClient *http.Client) *MembersClient {
	return &MembersClient{
		httpClient: httpClient,
	}
}

// Get implements trello.MembersClient.Get
func (c *MembersClient) Get(ctx context.Context, memberID string, args trello.Arguments) (*trello.Member, error) {
	if memberID == "" {
		return nil, trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/members/%s", memberID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting member: %w", err)
	}

	var member trello.Member
	if err := json.Unmarshal(resp.Body, &member); err != nil {
		return nil, fmt.Errorf("parsing member response: %w", err)
	}

	return &member, nil
}

// Boards implements trello.MembersClient.Boards
func (c *MembersClient) Boards(ctx context.Context, memberID string, args trello.Arguments) ([]trello.Board, error) {
	if memberID == "" {
		return nil, trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/members/%s/boards", memberID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing member boards: %w", err)
	}

	var boards []trello.Board
	if err := json.Unmarshal(resp.Body, &boards); err != nil {
		return nil, fmt.Errorf("parsing boards response: %w", err)
	}

	return boards, nil
}

// Cards implements trello.MembersClient.Cards
func (c *MembersClient) Cards(ctx context.Context, memberID string, args trello.Arguments) ([]trello.Card, error) {
	if memberID == "" {
		return nil, trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/members/%s/cards", memberID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing member cards: %w", err)
	}

	var cards []trello.Card
	if err := json.Unmarshal(resp.Body, &cards); err != nil {
		return nil, fmt.Errorf("parsing cards response: %w", err)
	}

	return cards, nil
}

// Actions implements trello.MembersClient.Actions
func (c *MembersClient) Actions(ctx context.Context, memberID string, args trello.Arguments) ([]trello.Action, error) {
	if memberID == "" {
		return nil, trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/members/%s/actions", memberID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing member actions: %w", err)
	}

	var actions []trello.Action
	if err := json.Unmarshal(resp.Body, &actions); err != nil {
		return nil, fmt.Errorf("parsing actions response: %w", err)
	}

	return actions, nil
}

// Notifications implements trello.MembersClient.Notifications
func (c *MembersClient) Notifications(ctx context.Context, memberID string, args trello.Arguments) ([]trello.Notification, error) {
	if memberID == "" {
		return nil, trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/members/%s/notifications", memberID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing member notifications: %w", err)
	}

	var notifications []trello.Notification
	if err := json.Unmarshal(resp.Body, &notifications); err != nil {
		return nil, fmt.Errorf("parsing notifications response: %w", err)
	}

	return notifications, nil
}
