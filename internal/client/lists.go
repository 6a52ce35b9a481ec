package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// ListsClient implements trello.ListsClient
type ListsClient struct {
	httpClient *http.Client
}

// NewListsClient creates a new lists client
func NewListsClient(httpClient *http.Client) *ListsClient {
	return &ListsClient{
		httpClient: httpClient,
	}
}

// Get implements trello.ListsClient.Get
func (c *ListsClient) Get(ctx context.Context, listID string, args trello.Arguments) (*trello.List, error) {
	if listID == "" {
		return nil, trello.ErrListIDRequired
	}

	path := fmt.Sprintf("/1/lists/%s", listID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	var list trello.List
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &list, nil
}

// Create implements trello.ListsClient.Create
func (c *ListsClient) Create(ctx context.Context, request *trello.ListCreateRequest) (*trello.List, error) {
	resp, err := c.httpClient.Post(ctx, "/1/lists", request)
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}

	var list trello.List
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &list, nil
}

// Update implements trello.ListsClient.Update
func (c *ListsClient) Update(ctx context.Context, listID string, request *trello.ListUpdateRequest) (*trello.List, error) {
	if listID == "" {
		return nil, trello.ErrListIDRequired
	}

	path := fmt.Sprintf("/1/lists/%s", listID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating list: %w", err)
	}

	var list trello.List
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &list, nil
}

// Cards implements trello.ListsClient.Cards
func (c *ListsClient) Cards(ctx context.Context, listID string, args trello.Arguments) ([]trello.Card, error) {
	if listID == "" {
		return nil, trello.ErrListIDRequired
	}

	path := fmt.Sprintf("/1/lists/%s/cards", listID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing cards on list: %w", err)
	}

	var cards []trello.Card
	if err := json.Unmarshal(resp.Body, &cards); err != nil {
		return nil, fmt.Errorf("parsing cards response: %w", err)
	}

	return cards, nil
}

// Archive implements trello.ListsClient.Archive
func (c *ListsClient) Archive(ctx context.Context, listID string) (*trello.List, error) {
	return c.setClosed(ctx, listID, true)
}

// Unarchive implements trello.ListsClient.Unarchive
func (c *ListsClient) Unarchive(ctx context.Context, listID string) (*trello.List, error) {
	return c.setClosed(ctx, listID, false)
}

func (c *ListsClient) setClosed(ctx context.Context, listID string, closed bool) (*trello.List, error) {
	if listID == "" {
		return nil, trello.ErrListIDRequired
	}

	path := fmt.Sprintf("/1/lists/%s/closed", listID)

	body := map[string]bool{"value": closed}

	resp, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("archiving list: %w", err)
	}

	var list trello.List
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	return &list, nil
}

// ArchiveAllCards implements trello.ListsClient.ArchiveAllCards
func (c *ListsClient) ArchiveAllCards(ctx context.Context, listID string) error {
	if listID == "" {
		return trello.ErrListIDRequired
	}

	path := fmt.Sprintf("/1/lists/%s/archiveAllCards", listID)

	_, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("archiving all cards on list: %w", err)
	}

	return nil
}

// MoveAllCards implements trello.ListsClient.MoveAllCards
func (c *ListsClient) MoveAllCards(ctx context.Context, listID, destBoardID, destListID string) error {
	if listID == "" {
		return trello.ErrListIDRequired
	}

	path := fmt.Sprintf("/1/lists/%s/moveAllCards", listID)

	body := map[string]string{
		"idBoard": destBoardID,
		"idList":  destListID,
	}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("moving all cards on list: %w", err)
	}

	return nil
}
