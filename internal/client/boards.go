package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// BoardsClient implements trello.BoardsClient
type BoardsClient struct {
	httpClient *http.Client
}

// NewBoardsClient creates a new boards client
func NewBoardsClient(httpClient *http.Client) *BoardsClient {
	return &BoardsClient{
		httpClient: httpClient,
	}
}

// Get implements trello.BoardsClient.Get
func (c *BoardsClient) Get(ctx context.Context, boardID string, args trello.Arguments) (*trello.Board, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s", boardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting board: %w", err)
	}

	var board trello.Board
	if err := json.Unmarshal(resp.Body, &board); err != nil {
		return nil, fmt.Errorf("parsing board response: %w", err)
	}

	return &board, nil
}

// Create implements trello.BoardsClient.Create
func (c *BoardsClient) Create(ctx context.Context, request *trello.BoardCreateRequest) (*trello.Board, error) {
	resp, err := c.httpClient.Post(ctx, "/1/boards", request)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}

	var board trello.Board
	if err := json.Unmarshal(resp.Body, &board); err != nil {
		return nil, fmt.Errorf("parsing board response: %w", err)
	}

	return &board, nil
}

// Update implements trello.BoardsClient.Update
func (c *BoardsClient) Update(ctx context.Context, boardID string, request *trello.BoardUpdateRequest) (*trello.Board, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s", boardID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating board: %w", err)
	}

	var board trello.Board
	if err := json.Unmarshal(resp.Body, &board); err != nil {
		return nil, fmt.Errorf("parsing board response: %w", err)
	}

	return &board, nil
}

// Lists implements trello.BoardsClient.Lists
func (c *BoardsClient) Lists(ctx context.Context, boardID string, args trello.Arguments) ([]trello.List, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s/lists", boardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing board lists: %w", err)
	}

	var lists []trello.List
	if err := json.Unmarshal(resp.Body, &lists); err != nil {
		return nil, fmt.Errorf("parsing lists response: %w", err)
	}

	return lists, nil
}

// Cards implements trello.BoardsClient.Cards
func (c *BoardsClient) Cards(ctx context.Context, boardID string, args trello.Arguments) ([]trello.Card, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s/cards", boardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing board cards: %w", err)
	}

	var cards []trello.Card
	if err := json.Unmarshal(resp.Body, &cards); err != nil {
		return nil, fmt.Errorf("parsing cards response: %w", err)
	}

	return cards, nil
}

// Members implements trello.BoardsClient.Members
func (c *BoardsClient) Members(ctx context.Context, boardID string) ([]trello.Member, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s/members", boardID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing board members: %w", err)
	}

	var members []trello.Member
	if err := json.Unmarshal(resp.Body, &members); err != nil {
		return nil, fmt.Errorf("parsing members response: %w", err)
	}

	return members, nil
}

// Labels implements trello.BoardsClient.Labels
func (c *BoardsClient) Labels(ctx context.Context, boardID string, args trello.Arguments) ([]trello.Label, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s/labels", boardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing board labels: %w", err)
	}

	var labels []trello.Label
	if err := json.Unmarshal(resp.Body, &labels); err != nil {
		return nil, fmt.Errorf("parsing labels response: %w", err)
	}

	return labels, nil
}

// CustomFields implements trello.BoardsClient.CustomFields
func (c *BoardsClient) CustomFields(ctx context.Context, boardID string) ([]trello.CustomField, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s/customFields", boardID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing board custom fields: %w", err)
	}

	var fields []trello.CustomField
	if err := json.Unmarshal(resp.Body, &fields); err != nil {
		return nil, fmt.Errorf("parsing custom fields response: %w", err)
	}

	return fields, nil
}

// Actions implements trello.BoardsClient.Actions
func (c *BoardsClient) Actions(ctx context.Context, boardID string, args trello.Arguments) ([]trello.Action, error) {
	if boardID == "" {
		return nil, trello.ErrBoardIDRequired
	}

	path := fmt.Sprintf("/1/boards/%s/actions", boardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing board actions: %w", err)
	}

	var actions []trello.Action
	if err := json.Unmarshal(resp.Body, &actions); err != nil {
		return nil, fmt.Errorf("parsing actions response: %w", err)
	}

	return actions, nil
}
