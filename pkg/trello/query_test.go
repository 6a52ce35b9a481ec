package trello_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluralsight/trello-helper/pkg/trello"
)

func TestArguments_ToValues(t *testing.T) {
	t.Parallel()

	t.Run("maps every pair", func(t *testing.T) {
		t.Parallel()

		args := trello.Arguments{"fields": "name,desc", "limit": "50"}

		values := args.ToValues()
		require.NotNil(t, values)
		assert.Equal(t, "name,desc", values.Get("fields"))
		assert.Equal(t, "50", values.Get("limit"))
	})

	t.Run("empty arguments yield nil", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, trello.Arguments{}.ToValues())
		assert.Nil(t, trello.Arguments(nil).ToValues())
	})
}

func TestArguments_With(t *testing.T) {
	t.Parallel()

	original := trello.Arguments{"fields": "name"}

	extended := original.With("filter", "open")
	assert.Equal(t, "name", extended["fields"])
	assert.Equal(t, "open", extended["filter"])

	replaced := original.With("fields", "all")
	assert.Equal(t, "all", replaced["fields"])

	// The receiver is never touched.
	assert.Equal(t, trello.Arguments{"fields": "name"}, original)

	fromNil := trello.Arguments(nil).With("limit", "10")
	assert.Equal(t, trello.Arguments{"limit": "10"}, fromNil)
}
