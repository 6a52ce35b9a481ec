package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// CardsClient implements trello.CardsClient
type CardsClient struct {
	httpClient *http.Client
}

// NewCardsClient creates a new cards client
func NewCardsClient(httpClient *http.Client) *CardsClient {
	return &CardsClient{
		httpClient: httpClient,
	}
}

// Get implements trello.CardsClient.Get
func (c *CardsClient) Get(ctx context.Context, cardID string, args trello.Arguments) (*trello.Card, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s", cardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting card: %w", err)
	}

	var card trello.Card
	if err := json.Unmarshal(resp.Body, &card); err != nil {
		return nil, fmt.Errorf("parsing card response: %w", err)
	}

	return &card, nil
}

// Create implements trello.CardsClient.Create
func (c *CardsClient) Create(ctx context.Context, request *trello.CardCreateRequest) (*trello.Card, error) {
	resp, err := c.httpClient.Post(ctx, "/1/cards", request)
	if err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	var card trello.Card
	if err := json.Unmarshal(resp.Body, &card); err != nil {
		return nil, fmt.Errorf("parsing card response: %w", err)
	}

	return &card, nil
}

// Update implements trello.CardsClient.Update
func (c *CardsClient) Update(ctx context.Context, cardID string, request *trello.CardUpdateRequest) (*trello.Card, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s", cardID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating card: %w", err)
	}

	var card trello.Card
	if err := json.Unmarshal(resp.Body, &card); err != nil {
		return nil, fmt.Errorf("parsing card response: %w", err)
	}

	return &card, nil
}

// Delete implements trello.CardsClient.Delete
func (c *CardsClient) Delete(ctx context.Context, cardID string) error {
	if cardID == "" {
		return trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s", cardID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting card: %w", err)
	}

	return nil
}

// MoveToList implements trello.CardsClient.MoveToList
func (c *CardsClient) MoveToList(ctx context.Context, cardID, listID string) (*trello.Card, error) {
	if listID == "" {
		return nil, trello.ErrListIDRequired
	}

	return c.Update(ctx, cardID, &trello.CardUpdateRequest{IDList: &listID})
}

// Archive implements trello.CardsClient.Archive
func (c *CardsClient) Archive(ctx context.Context, cardID string) (*trello.Card, error) {
	closed := true

	return c.Update(ctx, cardID, &trello.CardUpdateRequest{Closed: &closed})
}

// Unarchive implements trello.CardsClient.Unarchive
func (c *CardsClient) Unarchive(ctx context.Context, cardID string) (*trello.Card, error) {
	closed := false

	return c.Update(ctx, cardID, &trello.CardUpdateRequest{Closed: &closed})
}

// AddComment implements trello.CardsClient.AddComment
func (c *CardsClient) AddComment(ctx context.Context, cardID, text string) (*trello.Action, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	if text == "" {
		return nil, trello.ErrCommentTextRequired
	}

	path := fmt.Sprintf("/1/cards/%s/actions/comments", cardID)

	body := map[string]string{"text": text}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("adding comment to card: %w", err)
	}

	var action trello.Action
	if err := json.Unmarshal(resp.Body, &action); err != nil {
		return nil, fmt.Errorf("parsing action response: %w", err)
	}

	return &action, nil
}

// Members implements trello.CardsClient.Members
func (c *CardsClient) Members(ctx context.Context, cardID string) ([]trello.Member, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/members", cardID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing card members: %w", err)
	}

	var members []trello.Member
	if err := json.Unmarshal(resp.Body, &members); err != nil {
		return nil, fmt.Errorf("parsing members response: %w", err)
	}

	return members, nil
}

// AddMember implements trello.CardsClient.AddMember
func (c *CardsClient) AddMember(ctx context.Context, cardID, memberID string) ([]trello.Member, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	if memberID == "" {
		return nil, trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/idMembers", cardID)

	body := map[string]string{"value": memberID}

	resp, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return nil, fmt.Errorf("adding member to card: %w", err)
	}

	var members []trello.Member
	if err := json.Unmarshal(resp.Body, &members); err != nil {
		return nil, fmt.Errorf("parsing members response: %w", err)
	}

	return members, nil
}

// RemoveMember implements trello.CardsClient.RemoveMember
func (c *CardsClient) RemoveMember(ctx context.Context, cardID, memberID string) error {
	if cardID == "" {
		return trello.ErrCardIDRequired
	}

	if memberID == "" {
		return trello.ErrMemberIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/idMembers/%s", cardID, memberID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("removing member from card: %w", err)
	}

	return nil
}

// AddLabel implements trello.CardsClient.AddLabel
func (c *CardsClient) AddLabel(ctx context.Context, cardID, labelID string) error {
	if cardID == "" {
		return trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/idLabels", cardID)

	body := map[string]string{"value": labelID}

	_, err := c.httpClient.Post(ctx, path, body)
	if err != nil {
		return fmt.Errorf("adding label to card: %w", err)
	}

	return nil
}

// RemoveLabel implements trello.CardsClient.RemoveLabel
func (c *CardsClient) RemoveLabel(ctx context.Context, cardID, labelID string) error {
	if cardID == "" {
		return trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/idLabels/%s", cardID, labelID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("removing label from card: %w", err)
	}

	return nil
}

// Actions implements trello.CardsClient.Actions
func (c *CardsClient) Actions(ctx context.Context, cardID string, args trello.Arguments) ([]trello.Action, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/actions", cardID)

	resp, err := c.httpClient.Get(ctx, path, args.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing card actions: %w", err)
	}

	var actions []trello.Action
	if err := json.Unmarshal(resp.Body, &actions); err != nil {
		return nil, fmt.Errorf("parsing actions response: %w", err)
	}

	return actions, nil
}

// CustomFieldItems implements trello.CardsClient.CustomFieldItems
func (c *CardsClient) CustomFieldItems(ctx context.Context, cardID string) ([]trello.CustomFieldItem, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/customFieldItems", cardID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing card custom field items: %w", err)
	}

	var items []trello.CustomFieldItem
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, fmt.Errorf("parsing custom field items response: %w", err)
	}

	return items, nil
}

// customFieldItemUpdate is the wire shape for setting a custom field
// value on a card. Value and IDValue are mutually exclusive.
type customFieldItemUpdate struct {
	Value   *trello.CustomFieldValue `json:"value,omitempty"`
	IDValue string                   `json:"idValue,omitempty"`
}

// SetCustomField implements trello.CardsClient.SetCustomField
func (c *CardsClient) SetCustomField(ctx context.Context, cardID, fieldID string, value *trello.CustomFieldValue) (*trello.CustomFieldItem, error) {
	return c.setCustomFieldItem(ctx, cardID, fieldID, &customFieldItemUpdate{Value: value})
}

// SetCustomFieldOption implements trello.CardsClient.SetCustomFieldOption
func (c *CardsClient) SetCustomFieldOption(ctx context.Context, cardID, fieldID, optionID string) (*trello.CustomFieldItem, error) {
	return c.setCustomFieldItem(ctx, cardID, fieldID, &customFieldItemUpdate{IDValue: optionID})
}

func (c *CardsClient) setCustomFieldItem(ctx context.Context, cardID, fieldID string, update *customFieldItemUpdate) (*trello.CustomFieldItem, error) {
	if cardID == "" {
		return nil, trello.ErrCardIDRequired
	}

	if fieldID == "" {
		return nil, trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/cards/%s/customField/%s/item", cardID, fieldID)

	resp, err := c.httpClient.Put(ctx, path, update)
	if err != nil {
		return nil, fmt.Errorf("setting card custom field: %w", err)
	}

	var item trello.CustomFieldItem
	if err := json.Unmarshal(resp.Body, &item); err != nil {
		return nil, fmt.Errorf("parsing custom field item response: %w", err)
	}

	return &item, nil
}
