package client

import (
	"context"
	"net/url"

	"github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// RawClient implements trello.RawClient. It hands back the full response
// envelope for callers that need status codes or headers; the dispatch
// layer's auth, validation, and rate-limit recovery still apply.
type RawClient struct {
	httpClient *http.Client
}

// NewRawClient creates a new raw client.
func NewRawClient(httpClient *http.Client) *RawClient {
	return &RawClient{
		httpClient: httpClient,
	}
}

// Get implements trello.RawClient.Get.
func (c *RawClient) Get(ctx context.Context, path string, query url.Values) (*trello.Response, error) {
	resp, err := c.httpClient.Get(ctx, path, query)

	return toEnvelope(resp), err
}

// Put implements trello.RawClient.Put.
func (c *RawClient) Put(ctx context.Context, path string, body interface{}) (*trello.Response, error) {
	resp, err := c.httpClient.Put(ctx, path, body)

	return toEnvelope(resp), err
}

// Post implements trello.RawClient.Post.
func (c *RawClient) Post(ctx context.Context, path string, body interface{}) (*trello.Response, error) {
	resp, err := c.httpClient.Post(ctx, path, body)

	return toEnvelope(resp), err
}

// Delete implements trello.RawClient.Delete.
func (c *RawClient) Delete(ctx context.Context, path string, query url.Values) (*trello.Response, error) {
	resp, err := c.httpClient.Delete(ctx, path, query)

	return toEnvelope(resp), err
}

func toEnvelope(resp *http.Response) *trello.Response {
	if resp == nil {
		return nil
	}

	return &trello.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}
