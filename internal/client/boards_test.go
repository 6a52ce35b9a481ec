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

func TestBoardsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards/board-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		board := trello.Board{ID: "board-1", Name: "Roadmap", Desc: "Team roadmap"}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(board)
	}))
	defer server.Close()

	boards := NewBoardsClient(newTestHTTPClient(t, server.URL))

	board, err := boards.Get(context.Background(), "board-1", nil)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", board.Name)
	assert.Equal(t, "Team roadmap", board.Desc)
}

func TestBoardsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body trello.BoardCreateRequest

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "Roadmap", body.Name)

		board := trello.Board{ID: "board-1", Name: body.Name}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(board)
	}))
	defer server.Close()

	boards := NewBoardsClient(newTestHTTPClient(t, server.URL))

	board, err := boards.Create(context.Background(), &trello.BoardCreateRequest{Name: "Roadmap"})
	require.NoError(t, err)
	assert.Equal(t, "board-1", board.ID)
}

func TestBoardsClient_Lists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards/board-1/lists", r.URL.Path)

		lists := []trello.List{
			{ID: "list-1", Name: "Todo"},
			{ID: "list-2", Name: "Doing"},
			{ID: "list-3", Name: "Done"},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(lists)
	}))
	defer server.Close()

	boards := NewBoardsClient(newTestHTTPClient(t, server.URL))

	lists, err := boards.Lists(context.Background(), "board-1", nil)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, "Doing", lists[1].Name)
}

func TestBoardsClient_CustomFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards/board-1/customFields", r.URL.Path)

		fields := []trello.CustomField{
			{ID: "field-1", Name: "Priority", Type: trello.CustomFieldTypeList},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(fields)
	}))
	defer server.Close()

	boards := NewBoardsClient(newTestHTTPClient(t, server.URL))

	fields, err := boards.CustomFields(context.Background(), "board-1")
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, trello.CustomFieldTypeList, fields[0].Type)
}

func TestBoardsClient_Actions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/1/boards/board-1/actions", r.URL.Path)
		assert.Equal(t, "commentCard", r.URL.Query().Get("filter"))

		actions := []trello.Action{{ID: "action-1", Type: "commentCard"}}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(actions)
	}))
	defer server.Close()

	boards := NewBoardsClient(newTestHTTPClient(t, server.URL))

	args := trello.Arguments{"filter": string(trello.ActionFilterCommentCard)}

	actions, err := boards.Actions(context.Background(), "board-1", args)
	require.NoError(t, err)
	require.Len(t, actions, 1)
	assert.Equal(t, "commentCard", actions[0].Type)
}

func TestBoardsClient_Get_EmptyID(t *testing.T) {
	boards := NewBoardsClient(newTestHTTPClient(t, "http://127.0.0.1:1"))

	_, err := boards.Get(context.Background(), "", nil)
	require.ErrorIs(t, err, trello.ErrBoardIDRequired)
}
