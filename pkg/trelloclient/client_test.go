package trelloclient_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluralsight/trello-helper/pkg/trello"
	"github.com/pluralsight/trello-helper/pkg/trelloclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := trelloclient.New(nil)
		assert.ErrorIs(t, err, trello.ErrConfigRequired)
		assert.Nil(t, apiClient)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()

		apiClient, err := trelloclient.New(&trello.Config{Key: "test-key"})
		assert.ErrorIs(t, err, trello.ErrCredentialsRequired)
		assert.Nil(t, apiClient)
	})

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()

		apiClient, err := trelloclient.New(&trello.Config{
			Key:   "test-key",
			Token: "test-token",
		})
		require.NoError(t, err)
		require.NotNil(t, apiClient)
		assert.NotNil(t, apiClient.Boards())
		assert.NotNil(t, apiClient.Cards())
		assert.NotNil(t, apiClient.Raw())
	})
}

func TestNew_BaseURLNormalization(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"BOARD1","name":"Roadmap"}`))
	}))
	defer server.Close()

	// A trailing slash must not produce double slashes in request paths.
	apiClient, err := trelloclient.New(&trello.Config{
		Key:     "test-key",
		Token:   "test-token",
		BaseURL: server.URL + "/",
	})
	require.NoError(t, err)

	board, err := apiClient.Boards().Get(context.Background(), "BOARD1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", board.Name)
}
