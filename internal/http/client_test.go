package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluralsight/trello-helper/internal/auth"
	trellohttp "github.com/pluralsight/trello-helper/internal/http"
	"github.com/pluralsight/trello-helper/pkg/trello"
)

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) append(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.append("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.append("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.append("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.append("error", msg, fields) }

func testCredentials(t *testing.T) *auth.StaticCredentials {
	t.Helper()

	creds, err := auth.NewStaticCredentials("test-key", "test-token")
	require.NoError(t, err)

	return creds
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request merges credentials into query", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			assert.Equal(t, "/1/cards/ABC", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("key"))
			assert.Equal(t, "test-token", request.URL.Query().Get("token"))
			assert.Equal(t, "name", request.URL.Query().Get("fields"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			response := map[string]string{"id": "ABC", "name": "Demo"}
			_ = json.NewEncoder(writer).Encode(response)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t))

		resp, err := client.Get(context.Background(), "/1/cards/ABC", url.Values{"fields": []string{"name"}})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, 1, attempts)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "ABC", result["id"])
		assert.Equal(t, "Demo", result["name"])
	})

	t.Run("credentials win over caller-supplied query keys", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "test-key", request.URL.Query().Get("key"))
			assert.Equal(t, "test-token", request.URL.Query().Get("token"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t))

		query := url.Values{"key": []string{"caller-key"}, "token": []string{"caller-token"}}

		resp, err := client.Get(context.Background(), "/1/members/me", query)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request body carries payload but never credentials", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "POST", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))
			assert.Equal(t, "test-key", request.URL.Query().Get("key"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "Demo card", body["name"])
			assert.NotContains(t, body, "key")
			assert.NotContains(t, body, "token")

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t))

		resp, err := client.Post(context.Background(), "/1/cards", map[string]string{"name": "Demo card"})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("empty path rejected before any network call", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t))

		resp, err := client.Get(context.Background(), "", nil)
		require.ErrorIs(t, err, trello.ErrPathRequired)
		assert.Nil(t, resp)
		assert.Equal(t, 0, attempts)
	})

	t.Run("error response carries the upstream status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)

			_ = json.NewEncoder(writer).Encode(map[string]string{"message": "card not found"})
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t))

		resp, err := client.Get(context.Background(), "/1/cards/missing", nil)
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		apiErr := &trello.APIError{}
		ok := errors.As(err, &apiErr)
		require.True(t, ok)
		assert.Equal(t, 404, apiErr.StatusCode)
		assert.Equal(t, "card not found", apiErr.Message)
	})

	t.Run("envelope exposes headers and raw body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Request-Id", "req-1")
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{"id":"ABC"}`))
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t))

		resp, err := client.Get(context.Background(), "/1/cards/ABC", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "req-1", resp.Headers.Get("X-Request-Id"))
		assert.JSONEq(t, `{"id":"ABC"}`, string(resp.Body))
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := trellohttp.NewClient(server.URL, testCredentials(t), trellohttp.WithLogger(logger), trellohttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/1/members/me", nil)
		require.NoError(t, err)

		// Should have logged request and response
		assert.Len(t, logger.logs, 2)
		assert.Equal(t, "HTTP Request", logger.logs[0]["msg"])
		assert.Equal(t, "HTTP Response", logger.logs[1]["msg"])
	})
}

func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*trellohttp.Client, context.Context) (*trellohttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"name": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"name": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
				return c.Delete(ctx, "/test", nil)
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := trellohttp.NewClient(server.URL, testCredentials(t))
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_RateLimitRecovery(t *testing.T) {
	t.Parallel()
	t.Run("GET retries until rate limiting clears", func(t *testing.T) {
		t.Parallel()

		var (
			mu       sync.Mutex
			attempts []time.Time
		)

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			mu.Lock()
			attempts = append(attempts, time.Now())
			count := len(attempts)
			mu.Unlock()

			if count <= 2 {
				writer.WriteHeader(http.StatusTooManyRequests)

				return
			}

			_ = json.NewEncoder(writer).Encode(map[string]string{"id": "ABC"})
		}))
		defer server.Close()

		delay := 25 * time.Millisecond
		client := trellohttp.NewClient(server.URL, testCredentials(t), trellohttp.WithRateLimitPolicy(delay, 0))

		resp, err := client.Get(context.Background(), "/1/cards/ABC", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "ABC", result["id"])

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, attempts, 3)

		for i := 1; i < len(attempts); i++ {
			assert.GreaterOrEqual(t, attempts[i].Sub(attempts[i-1]), delay)
		}
	})

	t.Run("GET does not retry other failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t), trellohttp.WithRateLimitPolicy(time.Millisecond, 0))

		resp, err := client.Get(context.Background(), "/1/cards/ABC", nil)
		require.Error(t, err)
		assert.Equal(t, 500, resp.StatusCode)
		assert.Equal(t, 1, attempts)

		apiErr := &trello.APIError{}
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 500, apiErr.StatusCode)
	})

	t.Run("writes surface 429 without retrying", func(t *testing.T) {
		t.Parallel()

		writeOps := []struct {
			name string
			fn   func(*trellohttp.Client, context.Context) (*trellohttp.Response, error)
		}{
			{
				name: "POST",
				fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
					return c.Post(ctx, "/1/cards", map[string]string{"name": "n"})
				},
			},
			{
				name: "PUT",
				fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
					return c.Put(ctx, "/1/cards/ABC", map[string]string{"name": "n"})
				},
			},
			{
				name: "DELETE",
				fn: func(c *trellohttp.Client, ctx context.Context) (*trellohttp.Response, error) {
					return c.Delete(ctx, "/1/cards/ABC", nil)
				},
			},
		}

		for _, op := range writeOps {
			op := op
			t.Run(op.name, func(t *testing.T) {
				t.Parallel()

				attempts := 0

				server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
					attempts++

					writer.WriteHeader(http.StatusTooManyRequests)
				}))
				defer server.Close()

				client := trellohttp.NewClient(server.URL, testCredentials(t), trellohttp.WithRateLimitPolicy(time.Millisecond, 0))

				resp, err := op.fn(client, context.Background())
				require.Error(t, err)
				assert.Equal(t, 429, resp.StatusCode)
				assert.Equal(t, 1, attempts)
				assert.True(t, trello.IsRateLimited(err))
			})
		}
	})

	t.Run("retry ceiling surfaces the final 429", func(t *testing.T) {
		t.Parallel()

		attempts := 0

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			attempts++

			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t), trellohttp.WithRateLimitPolicy(time.Millisecond, 2))

		resp, err := client.Get(context.Background(), "/1/cards/ABC", nil)
		require.Error(t, err)
		assert.Equal(t, 429, resp.StatusCode)
		assert.Equal(t, 3, attempts) // initial attempt + 2 retries
		assert.True(t, trello.IsRateLimited(err))
	})

	t.Run("cancellation stops the retry chain", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		client := trellohttp.NewClient(server.URL, testCredentials(t), trellohttp.WithRateLimitPolicy(time.Hour, 0))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err := client.Get(ctx, "/1/cards/ABC", nil)
		require.Error(t, err)
	})
}
