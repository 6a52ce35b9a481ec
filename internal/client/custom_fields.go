package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// CustomFieldsClient implements trello.CustomFieldsClient
type CustomFieldsClient struct {
	httpClient *http.Client
}

// NewCustomFieldsClient creates a new custom fields client
func NewCustomFieldsClient(httpClient *http.Client) *CustomFieldsClient {
	return &CustomFieldsClient{
		httpClient: httpClient,
	}
}

// Get implements trello.CustomFieldsClient.Get
func (c *CustomFieldsClient) Get(ctx context.Context, fieldID string) (*trello.CustomField, error) {
	if fieldID == "" {
		return nil, trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/customFields/%s", fieldID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting custom field: %w", err)
	}

	var field trello.CustomField
	if err := json.Unmarshal(resp.Body, &field); err != nil {
		return nil, fmt.Errorf("parsing custom field response: %w", err)
	}

	return &field, nil
}

// Create implements trello.CustomFieldsClient.Create
func (c *CustomFieldsClient) Create(ctx context.Context, request *trello.CustomFieldCreateRequest) (*trello.CustomField, error) {
	if request != nil && !request.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", trello.ErrInvalidCustomFieldType, request.Type)
	}

	resp, err := c.httpClient.Post(ctx, "/1/customFields", request)
	if err != nil {
		return nil, fmt.Errorf("creating custom field: %w", err)
	}

	var field trello.CustomField
	if err := json.Unmarshal(resp.Body, &field); err != nil {
		return nil, fmt.Errorf("parsing custom field response: %w", err)
	}

	return &field, nil
}

// Update implements trello.CustomFieldsClient.Update
func (c *CustomFieldsClient) Update(ctx context.Context, fieldID string, request *trello.CustomFieldUpdateRequest) (*trello.CustomField, error) {
	if fieldID == "" {
		return nil, trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/customFields/%s", fieldID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating custom field: %w", err)
	}

	var field trello.CustomField
	if err := json.Unmarshal(resp.Body, &field); err != nil {
		return nil, fmt.Errorf("parsing custom field response: %w", err)
	}

	return &field, nil
}

// Delete implements trello.CustomFieldsClient.Delete
func (c *CustomFieldsClient) Delete(ctx context.Context, fieldID string) error {
	if fieldID == "" {
		return trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/customFields/%s", fieldID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting custom field: %w", err)
	}

	return nil
}

// Options implements trello.CustomFieldsClient.Options
func (c *CustomFieldsClient) Options(ctx context.Context, fieldID string) ([]trello.CustomFieldOption, error) {
	if fieldID == "" {
		return nil, trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/customFields/%s/options", fieldID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("listing custom field options: %w", err)
	}

	var options []trello.CustomFieldOption
	if err := json.Unmarshal(resp.Body, &options); err != nil {
		return nil, fmt.Errorf("parsing custom field options response: %w", err)
	}

	return options, nil
}

// AddOption implements trello.CustomFieldsClient.AddOption
func (c *CustomFieldsClient) AddOption(ctx context.Context, fieldID string, option *trello.CustomFieldOption) (*trello.CustomFieldOption, error) {
	if fieldID == "" {
		return nil, trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/customFields/%s/options", fieldID)

	resp, err := c.httpClient.Post(ctx, path, option)
	if err != nil {
		return nil, fmt.Errorf("adding custom field option: %w", err)
	}

	var created trello.CustomFieldOption
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("parsing custom field option response: %w", err)
	}

	return &created, nil
}

// DeleteOption implements trello.CustomFieldsClient.DeleteOption
func (c *CustomFieldsClient) DeleteOption(ctx context.Context, fieldID, optionID string) error {
	if fieldID == "" {
		return trello.ErrCustomFieldIDRequired
	}

	path := fmt.Sprintf("/1/customFields/%s/options/%s", fieldID, optionID)

	_, err := c.httpClient.Delete(ctx, path, nil)
	if err != nil {
		return fmt.Errorf("deleting custom field option: %w", err)
	}

	return nil
}
