package trello

import (
	"time"
)

// Board represents a Trello board.
type Board struct {
	ID             string      `json:"id"                       yaml:"id"`
	Name           string      `json:"name"                     yaml:"name"`
	Desc           string      `json:"desc"                     yaml:"desc"`
	Closed         bool        `json:"closed"                   yaml:"closed"`
	IDOrganization string      `json:"idOrganization,omitempty" yaml:"idOrganization,omitempty"`
	Pinned         bool        `json:"pinned"                   yaml:"pinned"`
	Starred        bool        `json:"starred"                  yaml:"starred"`
	URL            string      `json:"url"                      yaml:"url"`
	ShortURL       string      `json:"shortUrl"                 yaml:"shortUrl"`
	ShortLink      string      `json:"shortLink"                yaml:"shortLink"`
	Prefs          *BoardPrefs `json:"prefs,omitempty"          yaml:"prefs,omitempty"`
	DateLastView   *time.Time  `json:"dateLastView,omitempty"   yaml:"dateLastView,omitempty"`
}

// BoardPrefs represents board display preferences.
type BoardPrefs struct {
	PermissionLevel string `json:"permissionLevel" yaml:"permissionLevel"`
	Voting          string `json:"voting"          yaml:"voting"`
	Comments        string `json:"comments"        yaml:"comments"`
	Invitations     string `json:"invitations"     yaml:"invitations"`
	SelfJoin        bool   `json:"selfJoin"        yaml:"selfJoin"`
	CardCovers      bool   `json:"cardCovers"      yaml:"cardCovers"`
	Background      string `json:"background"      yaml:"background"`
}

// List represents a list on a board.
type List struct {
	ID         string  `json:"id"         yaml:"id"`
	Name       string  `json:"name"       yaml:"name"`
	Closed     bool    `json:"closed"     yaml:"closed"`
	IDBoard    string  `json:"idBoard"    yaml:"idBoard"`
	Pos        float64 `json:"pos"        yaml:"pos"`
	Subscribed bool    `json:"subscribed" yaml:"subscribed"`
}

// Card represents a card.
type Card struct {
	ID               string     `json:"id"                         yaml:"id"`
	Name             string     `json:"name"                       yaml:"name"`
	Desc             string     `json:"desc"                       yaml:"desc"`
	Closed           bool       `json:"closed"                     yaml:"closed"`
	IDBoard          string     `json:"idBoard"                    yaml:"idBoard"`
	IDList           string     `json:"idList"                     yaml:"idList"`
	IDMembers        []string   `json:"idMembers,omitempty"        yaml:"idMembers,omitempty"`
	IDLabels         []string   `json:"idLabels,omitempty"         yaml:"idLabels,omitempty"`
	Labels           []Label    `json:"labels,omitempty"           yaml:"labels,omitempty"`
	Due              *time.Time `json:"due,omitempty"              yaml:"due,omitempty"`
	DueComplete      bool       `json:"dueComplete"                yaml:"dueComplete"`
	Pos              float64    `json:"pos"                        yaml:"pos"`
	URL              string     `json:"url"                        yaml:"url"`
	ShortURL         string     `json:"shortUrl"                   yaml:"shortUrl"`
	ShortLink        string     `json:"shortLink"                  yaml:"shortLink"`
	Badges           *Badges    `json:"badges,omitempty"           yaml:"badges,omitempty"`
	DateLastActivity *time.Time `json:"dateLastActivity,omitempty" yaml:"dateLastActivity,omitempty"`
}

// Badges represents the badge counters shown on a card.
type Badges struct {
	Votes              int  `json:"votes"              yaml:"votes"`
	Comments           int  `json:"comments"           yaml:"comments"`
	Attachments        int  `json:"attachments"        yaml:"attachments"`
	CheckItems         int  `json:"checkItems"         yaml:"checkItems"`
	CheckItemsChecked  int  `json:"checkItemsChecked"  yaml:"checkItemsChecked"`
	Description        bool `json:"description"        yaml:"description"`
	Subscribed         bool `json:"subscribed"         yaml:"subscribed"`
	ViewingMemberVoted bool `json:"viewingMemberVoted" yaml:"viewingMemberVoted"`
}

// Label represents a board label.
type Label struct {
	ID      string `json:"id"      yaml:"id"`
	IDBoard string `json:"idBoard" yaml:"idBoard"`
	Name    string `json:"name"    yaml:"name"`
	Color   string `json:"color"   yaml:"color"`
}

// Member represents a Trello member.
type Member struct {
	ID         string `json:"id"                  yaml:"id"`
	Username   string `json:"username"            yaml:"username"`
	FullName   string `json:"fullName"            yaml:"fullName"`
	Initials   string `json:"initials"            yaml:"initials"`
	AvatarURL  string `json:"avatarUrl,omitempty" yaml:"avatarUrl,omitempty"`
	Bio        string `json:"bio,omitempty"       yaml:"bio,omitempty"`
	URL        string `json:"url"                 yaml:"url"`
	MemberType string `json:"memberType"          yaml:"memberType"`
}

// Action represents an entry in a board, card, or member activity feed.
// Data carries the action-type-specific payload as delivered by the API.
type Action struct {
	ID              string                 `json:"id"                      yaml:"id"`
	IDMemberCreator string                 `json:"idMemberCreator"         yaml:"idMemberCreator"`
	Type            string                 `json:"type"                    yaml:"type"`
	Date            time.Time              `json:"date"                    yaml:"date"`
	Data            map[string]interface{} `json:"data,omitempty"          yaml:"data,omitempty"`
	MemberCreator   *Member                `json:"memberCreator,omitempty" yaml:"memberCreator,omitempty"`
}

// Notification represents a member notification.
type Notification struct {
	ID              string                 `json:"id"              yaml:"id"`
	IDMemberCreator string                 `json:"idMemberCreator" yaml:"idMemberCreator"`
	Type            string                 `json:"type"            yaml:"type"`
	Date            time.Time              `json:"date"            yaml:"date"`
	Unread          bool                   `json:"unread"          yaml:"unread"`
	Data            map[string]interface{} `json:"data,omitempty"  yaml:"data,omitempty"`
}

// CustomField represents a custom field definition attached to a board.
type CustomField struct {
	ID        string              `json:"id"                yaml:"id"`
	IDModel   string              `json:"idModel"           yaml:"idModel"`
	ModelType string              `json:"modelType"         yaml:"modelType"`
	Name      string              `json:"name"              yaml:"name"`
	Type      CustomFieldType     `json:"type"              yaml:"type"`
	Pos       float64             `json:"pos"               yaml:"pos"`
	Options   []CustomFieldOption `json:"options,omitempty" yaml:"options,omitempty"`
	Display   *CustomFieldDisplay `json:"display,omitempty" yaml:"display,omitempty"`
}

// CustomFieldDisplay controls where a field value is shown.
type CustomFieldDisplay struct {
	CardFront bool `json:"cardFront" yaml:"cardFront"`
}

// CustomFieldOption is one selectable value of a list-typed custom field.
type CustomFieldOption struct {
	ID            string            `json:"id"            yaml:"id"`
	IDCustomField string            `json:"idCustomField" yaml:"idCustomField"`
	Value         map[string]string `json:"value"         yaml:"value"`
	Color         string            `json:"color"         yaml:"color"`
	Pos           float64           `json:"pos"           yaml:"pos"`
}

// CustomFieldValue is the typed value carried by a custom field item.
// Exactly one field is set, matching the field's declared type.
type CustomFieldValue struct {
	Text    string `json:"text,omitempty"    yaml:"text,omitempty"`
	Number  string `json:"number,omitempty"  yaml:"number,omitempty"`
	Date    string `json:"date,omitempty"    yaml:"date,omitempty"`
	Checked string `json:"checked,omitempty" yaml:"checked,omitempty"`
}

// CustomFieldItem is the value of a custom field on a particular card.
// List-typed fields reference their selected option through IDValue.
type CustomFieldItem struct {
	ID            string            `json:"id"                yaml:"id"`
	IDCustomField string            `json:"idCustomField"     yaml:"idCustomField"`
	IDModel       string            `json:"idModel"           yaml:"idModel"`
	ModelType     string            `json:"modelType"         yaml:"modelType"`
	Value         *CustomFieldValue `json:"value,omitempty"   yaml:"value,omitempty"`
	IDValue       string            `json:"idValue,omitempty" yaml:"idValue,omitempty"`
}

// BoardCreateRequest is the payload for creating a board.
type BoardCreateRequest struct {
	Name           string `json:"name"                     yaml:"name"`
	Desc           string `json:"desc,omitempty"           yaml:"desc,omitempty"`
	IDOrganization string `json:"idOrganization,omitempty" yaml:"idOrganization,omitempty"`
	DefaultLists   *bool  `json:"defaultLists,omitempty"   yaml:"defaultLists,omitempty"`
}

// BoardUpdateRequest is the payload for updating a board. Nil fields are
// left unchanged.
type BoardUpdateRequest struct {
	Name   *string `json:"name,omitempty"   yaml:"name,omitempty"`
	Desc   *string `json:"desc,omitempty"   yaml:"desc,omitempty"`
	Closed *bool   `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// ListCreateRequest is the payload for creating a list.
type ListCreateRequest struct {
	Name    string `json:"name"          yaml:"name"`
	IDBoard string `json:"idBoard"       yaml:"idBoard"`
	Pos     string `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// ListUpdateRequest is the payload for updating a list.
type ListUpdateRequest struct {
	Name   *string `json:"name,omitempty"   yaml:"name,omitempty"`
	Closed *bool   `json:"closed,omitempty" yaml:"closed,omitempty"`
	Pos    *string `json:"pos,omitempty"    yaml:"pos,omitempty"`
}

// CardCreateRequest is the payload for creating a card.
type CardCreateRequest struct {
	Name      string     `json:"name"                yaml:"name"`
	Desc      string     `json:"desc,omitempty"      yaml:"desc,omitempty"`
	IDList    string     `json:"idList"              yaml:"idList"`
	IDMembers []string   `json:"idMembers,omitempty" yaml:"idMembers,omitempty"`
	IDLabels  []string   `json:"idLabels,omitempty"  yaml:"idLabels,omitempty"`
	Due       *time.Time `json:"due,omitempty"       yaml:"due,omitempty"`
	Pos       string     `json:"pos,omitempty"       yaml:"pos,omitempty"`
}

// CardUpdateRequest is the payload for updating a card.
type CardUpdateRequest struct {
	Name        *string    `json:"name,omitempty"        yaml:"name,omitempty"`
	Desc        *string    `json:"desc,omitempty"        yaml:"desc,omitempty"`
	Closed      *bool      `json:"closed,omitempty"      yaml:"closed,omitempty"`
	IDList      *string    `json:"idList,omitempty"      yaml:"idList,omitempty"`
	Due         *time.Time `json:"due,omitempty"         yaml:"due,omitempty"`
	DueComplete *bool      `json:"dueComplete,omitempty" yaml:"dueComplete,omitempty"`
	Pos         *string    `json:"pos,omitempty"         yaml:"pos,omitempty"`
}

// CustomFieldCreateRequest is the payload for defining a custom field on
// a board.
type CustomFieldCreateRequest struct {
	IDModel   string              `json:"idModel"           yaml:"idModel"`
	ModelType string              `json:"modelType"         yaml:"modelType"`
	Name      string              `json:"name"              yaml:"name"`
	Type      CustomFieldType     `json:"type"              yaml:"type"`
	Pos       string              `json:"pos,omitempty"     yaml:"pos,omitempty"`
	Options   []CustomFieldOption `json:"options,omitempty" yaml:"options,omitempty"`
	Display   *CustomFieldDisplay `json:"display,omitempty" yaml:"display,omitempty"`
}

// CustomFieldUpdateRequest is the payload for updating a custom field
// definition.
type CustomFieldUpdateRequest struct {
	Name    *string             `json:"name,omitempty"    yaml:"name,omitempty"`
	Pos     *string             `json:"pos,omitempty"     yaml:"pos,omitempty"`
	Display *CustomFieldDisplay `json:"display,omitempty" yaml:"display,omitempty"`
}
