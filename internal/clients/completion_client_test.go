package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionClient_Complete(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expectedText  string
		expectedCode  int
		expectedError bool
	}{
		{
			name:         "success",
			status:       http.StatusOK,
			body:         `{"choices":[{"message":{"role":"assistant","content":"1) Qisqa javob"}}]}`,
			expectedText: "1) Qisqa javob",
		},
		{
			name:         "no choices",
			status:       http.StatusOK,
			body:         `{"choices":[]}`,
			expectedText: "",
		},
		{
			name:          "server error",
			status:        http.StatusInternalServerError,
			body:          `upstream exploded`,
			expectedCode:  http.StatusInternalServerError,
			expectedError: true,
		},
		{
			name:          "rate limited",
			status:        http.StatusTooManyRequests,
			body:          `{"error":"slow down"}`,
			expectedCode:  http.StatusTooManyRequests,
			expectedError: true,
		},
		{
			name:          "invalid json",
			status:        http.StatusOK,
			body:          `not json`,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received completionRequest
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewCompletionClient(server.URL, "test-key", "llama-3.3-70b-versatile", 5*time.Second)
			text, err := client.Complete(context.Background(), []ChatMessage{
				{Role: "system", Content: "rules"},
				{Role: "user", Content: "Salom"},
			})

			assert.Equal(t, "llama-3.3-70b-versatile", received.Model)
			assert.Equal(t, 0.2, received.Temperature)
			assert.Len(t, received.Messages, 2)

			if tt.expectedError {
				assert.Error(t, err)
				if tt.expectedCode != 0 {
					var statusErr *StatusError
					require.True(t, errors.As(err, &statusErr))
					assert.Equal(t, tt.expectedCode, statusErr.Code)
					assert.Equal(t, tt.body, statusErr.Body)
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedText, text)
			}
		})
	}
}

func TestCompletionClient_MissingAPIKey(t *testing.T) {
	client := NewCompletionClient("http://127.0.0.1:1", "", "model", time.Second)

	_, err := client.Complete(context.Background(), nil)

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestCompletionClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "test-key", "model", 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Complete(ctx, nil)

	assert.ErrorIs(t, err, context.Canceled)
}
