package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluralsight/trello-helper/pkg/trello"
	"github.com/pluralsight/trello-helper/pkg/trelloclient"
)

// TestCardWorkflow drives a complete card journey through the public
// client API against a stubbed server: create, comment, rename, and
// archive.
func TestCardWorkflow(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.Equal(t, "test-token", r.URL.Query().Get("token"))

		w.Header().Set("Content-Type", "application/json")

		switch r.Method + " " + r.URL.Path {
		case "POST /1/cards":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Release checklist", body["name"])

			_, _ = w.Write([]byte(`{"id":"CARD1","name":"Release checklist","idList":"LIST1"}`))
		case "POST /1/cards/CARD1/actions/comments":
			_, _ = w.Write([]byte(`{"id":"ACTION1","type":"commentCard"}`))
		case "PUT /1/cards/CARD1":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			if name, ok := body["name"]; ok {
				assert.Equal(t, "Release checklist v2", name)
				_, _ = w.Write([]byte(`{"id":"CARD1","name":"Release checklist v2","idList":"LIST1"}`))

				return
			}

			assert.Equal(t, true, body["closed"])
			_, _ = w.Write([]byte(`{"id":"CARD1","name":"Release checklist v2","closed":true}`))
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := trelloclient.New(&trello.Config{
		Key:     "test-key",
		Token:   "test-token",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	ctx := context.Background()

	card, err := client.Cards().Create(ctx, &trello.CardCreateRequest{
		Name:   "Release checklist",
		IDList: "LIST1",
	})
	require.NoError(t, err)
	require.Equal(t, "CARD1", card.ID)

	action, err := client.Cards().AddComment(ctx, card.ID, "kicking off")
	require.NoError(t, err)
	assert.Equal(t, "commentCard", action.Type)

	newName := "Release checklist v2"
	card, err = client.Cards().Update(ctx, card.ID, &trello.CardUpdateRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, newName, card.Name)

	card, err = client.Cards().Archive(ctx, card.ID)
	require.NoError(t, err)
	assert.True(t, card.Closed)
}

// TestRateLimitedReadWorkflow verifies that a rate-limited board read
// recovers transparently through the public API while a write does not.
func TestRateLimitedReadWorkflow(t *testing.T) {
	t.Parallel()

	var readAttempts, writeAttempts int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if r.Method == http.MethodGet {
			if atomic.AddInt64(&readAttempts, 1) < 3 {
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"message":"rate limit reached"}`))

				return
			}

			_, _ = w.Write([]byte(`{"id":"BOARD1","name":"Roadmap"}`))

			return
		}

		atomic.AddInt64(&writeAttempts, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limit reached"}`))
	}))
	defer server.Close()

	client, err := trelloclient.New(&trello.Config{
		Key:        "test-key",
		Token:      "test-token",
		BaseURL:    server.URL,
		RetryDelay: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	ctx := context.Background()

	// The read succeeds after two 429s without the caller noticing.
	board, err := client.Boards().Get(ctx, "BOARD1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", board.Name)
	assert.EqualValues(t, 3, atomic.LoadInt64(&readAttempts))

	// The write surfaces the 429 after a single attempt.
	name := "Roadmap 2027"
	_, err = client.Boards().Update(ctx, "BOARD1", &trello.BoardUpdateRequest{Name: &name})
	require.Error(t, err)
	assert.True(t, trello.IsRateLimited(err))
	assert.EqualValues(t, 1, atomic.LoadInt64(&writeAttempts))
}
