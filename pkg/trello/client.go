package trello

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// BoardsClient provides access to board operations.
type BoardsClient interface {
	Get(ctx context.Context, boardID string, args Arguments) (*Board, error)
	Create(ctx context.Context, request *BoardCreateRequest) (*Board, error)
	Update(ctx context.Context, boardID string, request *BoardUpdateRequest) (*Board, error)
	Lists(ctx context.Context, boardID string, args Arguments) ([]List, error)
	Cards(ctx context.Context, boardID string, args Arguments) ([]Card, error)
	Members(ctx context.Context, boardID string) ([]Member, error)
	Labels(ctx context.Context, boardID string, args Arguments) ([]Label, error)
	CustomFields(ctx context.Context, boardID string) ([]CustomField, error)
	Actions(ctx context.Context, boardID string, args Arguments) ([]Action, error)
}

// ListsClient provides access to list operations.
type ListsClient interface {
	Get(ctx context.Context, listID string, args Arguments) (*List, error)
	Create(ctx context.Context, request *ListCreateRequest) (*List, error)
	Update(ctx context.Context, listID string, request *ListUpdateRequest) (*List, error)
	Cards(ctx context.Context, listID string, args Arguments) ([]Card, error)
	Archive(ctx context.Context, listID string) (*List, error)
	Unarchive(ctx context.Context, listID string) (*List, error)
	ArchiveAllCards(ctx context.Context, listID string) error
	MoveAllCards(ctx context.Context, listID, destBoardID, destListID string) error
}

// CardsClient provides access to card operations.
type CardsClient interface {
	Get(ctx context.Context, cardID string, args Arguments) (*Card, error)
	Create(ctx context.Context, request *CardCreateRequest) (*Card, error)
	Update(ctx context.Context, cardID string, request *CardUpdateRequest) (*Card, error)
	Delete(ctx context.Context, cardID string) error
	MoveToList(ctx context.Context, cardID, listID string) (*Card, error)
	Archive(ctx context.Context, cardID string) (*Card, error)
	Unarchive(ctx context.Context, cardID string) (*Card, error)
	AddComment(ctx context.Context, cardID, text string) (*Action, error)
	Members(ctx context.Context, cardID string) ([]Member, error)
	AddMember(ctx context.Context, cardID, memberID string) ([]Member, error)
	RemoveMember(ctx context.Context, cardID, memberID string) error
	AddLabel(ctx context.Context, cardID, labelID string) error
	RemoveLabel(ctx context.Context, cardID, labelID string) error
	Actions(ctx context.Context, cardID string, args Arguments) ([]Action, error)
	CustomFieldItems(ctx context.Context, cardID string) ([]CustomFieldItem, error)
	SetCustomField(ctx context.Context, cardID, fieldID string, value *CustomFieldValue) (*CustomFieldItem, error)
	SetCustomFieldOption(ctx context.Context, cardID, fieldID, optionID string) (*CustomFieldItem, error)
}

// MembersClient provides access to member operations. The member ID "me"
// refers to the authenticated member.
type MembersClient interface {
	Get(ctx context.Context, memberID string, args Arguments) (*Member, error)
	Boards(ctx context.Context, memberID string, args Arguments) ([]Board, error)
	Cards(ctx context.Context, memberID string, args Arguments) ([]Card, error)
	Actions(ctx context.Context, memberID string, args Arguments) ([]Action, error)
	Notifications(ctx context.Context, memberID string, args Arguments) ([]Notification, error)
}

// CustomFieldsClient provides access to custom field definitions.
type CustomFieldsClient interface {
	Get(ctx context.Context, fieldID string) (*CustomField, error)
	Create(ctx context.Context, request *CustomFieldCreateRequest) (*CustomField, error)
	Update(ctx context.Context, fieldID string, request *CustomFieldUpdateRequest) (*CustomField, error)
	Delete(ctx context.Context, fieldID string) error
	Options(ctx context.Context, fieldID string) ([]CustomFieldOption, error)
	AddOption(ctx context.Context, fieldID string, option *CustomFieldOption) (*CustomFieldOption, error)
	DeleteOption(ctx context.Context, fieldID, optionID string) error
}

// ActionsClient provides access to action operations. Only comment
// actions can be updated or deleted.
type ActionsClient interface {
	Get(ctx context.Context, actionID string, args Arguments) (*Action, error)
	Update(ctx context.Context, actionID, text string) (*Action, error)
	Delete(ctx context.Context, actionID string) error
}

// Response is the raw response envelope: upstream status, headers, and
// undecoded body.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// RawClient issues requests against arbitrary API paths and returns the
// full response envelope instead of a decoded value. It is the explicit
// alternative to the typed resource clients for callers that need status
// codes or headers; requests still carry credentials and reads still
// recover from rate limiting.
type RawClient interface {
	Get(ctx context.Context, path string, query url.Values) (*Response, error)
	Put(ctx context.Context, path string, body interface{}) (*Response, error)
	Post(ctx context.Context, path string, body interface{}) (*Response, error)
	Delete(ctx context.Context, path string, query url.Values) (*Response, error)
}

// Client is the top-level Trello API client.
type Client interface {
	Boards() BoardsClient
	Lists() ListsClient
	Cards() CardsClient
	Members() MembersClient
	CustomFields() CustomFieldsClient
	Actions() ActionsClient
	Raw() RawClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a trello.Client.
//
// # Authentication
//
// Key and Token are both required and are sent as query-string parameters
// on every request; they never appear in request bodies. Missing
// credentials fail client construction rather than producing a client
// that sends unauthenticated requests.
//
// # Rate-limit recovery
//
// When the API answers a read with HTTP 429, the client waits RetryDelay
// and re-issues the identical request. RetryMax bounds the number of
// retries per logical call; zero means no ceiling, matching the service's
// contract that rate limiting is transient. Writes (PUT/POST/DELETE) are
// never retried and surface 429 directly.
type Config struct {
	// Key is the application API key.
	Key string
	// Token is the member authorization token.
	Token string
	// BaseURL overrides the default API endpoint. A missing scheme is
	// normalized to https and a trailing slash is trimmed.
	BaseURL string
	// HTTPTimeout is the per-attempt HTTP timeout. Most callers should
	// rely on context deadlines instead.
	HTTPTimeout time.Duration
	// RetryDelay is the fixed wait between rate-limited read attempts.
	RetryDelay time.Duration
	// RetryMax caps rate-limit retries per call. Zero means unbounded.
	RetryMax int
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
