package trello_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pluralsight/trello-helper/pkg/trello"
)

func TestCustomFieldType_Valid(t *testing.T) {
	t.Parallel()

	valid := []trello.CustomFieldType{
		trello.CustomFieldTypeCheckbox,
		trello.CustomFieldTypeDate,
		trello.CustomFieldTypeList,
		trello.CustomFieldTypeNumber,
		trello.CustomFieldTypeText,
	}
	for _, fieldType := range valid {
		assert.True(t, fieldType.Valid(), "expected %q to be valid", fieldType)
	}

	assert.False(t, trello.CustomFieldType("dropdown").Valid())
	assert.False(t, trello.CustomFieldType("").Valid())
}

func TestActionFilter_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, trello.ActionFilterCommentCard.Valid())
	assert.True(t, trello.ActionFilterAll.Valid())
	assert.False(t, trello.ActionFilter("renameCard").Valid())
	assert.False(t, trello.ActionFilter("").Valid())
}

func TestJoinActionFilters(t *testing.T) {
	t.Parallel()

	joined := trello.JoinActionFilters(
		trello.ActionFilterCommentCard,
		trello.ActionFilterUpdateCard,
	)
	assert.Equal(t, "commentCard,updateCard", joined)

	assert.Equal(t, "createCard", trello.JoinActionFilters(trello.ActionFilterCreateCard))
	assert.Equal(t, "", trello.JoinActionFilters())
}
