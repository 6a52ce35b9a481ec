package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluralsight/trello-helper/pkg/trello"
)

func TestNew(t *testing.T) {
	t.Run("builds a client with all resource clients wired", func(t *testing.T) {
		client, err := New(&trello.Config{Key: "k", Token: "t"})
		require.NoError(t, err)

		assert.NotNil(t, client.Boards())
		assert.NotNil(t, client.Lists())
		assert.NotNil(t, client.Cards())
		assert.NotNil(t, client.Members())
		assert.NotNil(t, client.CustomFields())
		assert.NotNil(t, client.Actions())
		assert.NotNil(t, client.Raw())
	})

	t.Run("missing credentials fail construction", func(t *testing.T) {
		_, err := New(&trello.Config{Key: "k"})
		require.Error(t, err)

		_, err = New(&trello.Config{Token: "t"})
		require.Error(t, err)
	})

	t.Run("nil config fails construction", func(t *testing.T) {
		_, err := New(nil)
		require.ErrorIs(t, err, trello.ErrConfigRequired)
	})
}

func TestClient_Raw(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/search", r.URL.Path)
		assert.Equal(t, "demo", r.URL.Query().Get("query"))

		w.Header().Set("X-Request-Id", "req-1")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"cards": []string{}})
	}))
	defer server.Close()

	client, err := New(&trello.Config{Key: "k", Token: "t", BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := client.Raw().Get(context.Background(), "/1/search", map[string][]string{"query": {"demo"}})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "req-1", resp.Headers.Get("X-Request-Id"))
	assert.NotEmpty(t, resp.Body)
}
