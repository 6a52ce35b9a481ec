package trello

import "strings"

// CustomFieldType represents the declared type of a custom field.
type CustomFieldType string

const (
	// CustomFieldTypeCheckbox is a boolean field.
	CustomFieldTypeCheckbox CustomFieldType = "checkbox"

	// CustomFieldTypeDate is a date field.
	CustomFieldTypeDate CustomFieldType = "date"

	// CustomFieldTypeList is a dropdown field backed by options.
	CustomFieldTypeList CustomFieldType = "list"

	// CustomFieldTypeNumber is a numeric field.
	CustomFieldTypeNumber CustomFieldType = "number"

	// CustomFieldTypeText is a free-text field.
	CustomFieldTypeText CustomFieldType = "text"
)

// Valid reports whether the type is one the API accepts.
func (t CustomFieldType) Valid() bool {
	switch t {
	case CustomFieldTypeCheckbox, CustomFieldTypeDate, CustomFieldTypeList,
		CustomFieldTypeNumber, CustomFieldTypeText:
		return true
	default:
		return false
	}
}

// ActionFilter restricts an activity feed to specific action types.
type ActionFilter string

const (
	ActionFilterAll                  ActionFilter = "all"
	ActionFilterAddMemberToBoard     ActionFilter = "addMemberToBoard"
	ActionFilterAddMemberToCard      ActionFilter = "addMemberToCard"
	ActionFilterAddAttachmentToCard  ActionFilter = "addAttachmentToCard"
	ActionFilterAddChecklistToCard   ActionFilter = "addChecklistToCard"
	ActionFilterCommentCard          ActionFilter = "commentCard"
	ActionFilterCreateBoard          ActionFilter = "createBoard"
	ActionFilterCreateCard           ActionFilter = "createCard"
	ActionFilterCreateList           ActionFilter = "createList"
	ActionFilterDeleteCard           ActionFilter = "deleteCard"
	ActionFilterMoveCardFromBoard    ActionFilter = "moveCardFromBoard"
	ActionFilterMoveCardToBoard      ActionFilter = "moveCardToBoard"
	ActionFilterMoveListFromBoard    ActionFilter = "moveListFromBoard"
	ActionFilterMoveListToBoard      ActionFilter = "moveListToBoard"
	ActionFilterRemoveMemberFromCard ActionFilter = "removeMemberFromCard"
	ActionFilterUpdateBoard          ActionFilter = "updateBoard"
	ActionFilterUpdateCard           ActionFilter = "updateCard"
	ActionFilterUpdateCheckItemState ActionFilter = "updateCheckItemStateOnCard"
	ActionFilterUpdateList           ActionFilter = "updateList"
)

// validActionFilters is the set of filters the API accepts.
var validActionFilters = map[ActionFilter]struct{}{
	ActionFilterAll:                  {},
	ActionFilterAddMemberToBoard:     {},
	ActionFilterAddMemberToCard:      {},
	ActionFilterAddAttachmentToCard:  {},
	ActionFilterAddChecklistToCard:   {},
	ActionFilterCommentCard:          {},
	ActionFilterCreateBoard:          {},
	ActionFilterCreateCard:           {},
	ActionFilterCreateList:           {},
	ActionFilterDeleteCard:           {},
	ActionFilterMoveCardFromBoard:    {},
	ActionFilterMoveCardToBoard:      {},
	ActionFilterMoveListFromBoard:    {},
	ActionFilterMoveListToBoard:      {},
	ActionFilterRemoveMemberFromCard: {},
	ActionFilterUpdateBoard:          {},
	ActionFilterUpdateCard:           {},
	ActionFilterUpdateCheckItemState: {},
	ActionFilterUpdateList:           {},
}

// Valid reports whether the filter is one the API accepts.
func (f ActionFilter) Valid() bool {
	_, ok := validActionFilters[f]

	return ok
}

// JoinActionFilters builds the comma-separated filter parameter value for
// an actions query.
func JoinActionFilters(filters ...ActionFilter) string {
	parts := make([]string, 0, len(filters))
	for _, f := range filters {
		parts = append(parts, string(f))
	}

	return strings.Join(parts, ",")
}
