package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		headerID   string
		expectSame bool
	}{
		{name: "generates id", headerID: ""},
		{name: "keeps provided id", headerID: "req-123", expectSame: true},
		{name: "replaces id with spaces", headerID: "req 123 injected"},
		{name: "replaces id with quotes", headerID: `req"},{"level":"error`},
		{name: "replaces long id", headerID: strings.Repeat("r", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.headerID != "" {
				req.Header.Set(RequestIDHeader, tt.headerID)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			if tt.expectSame {
				assert.Equal(t, tt.headerID, seen)
			} else {
				assert.NotEqual(t, tt.headerID, seen)
			}
		})
	}
}

func TestClientIDMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		headerID       string
		expectedStatus int
		expectedID     string
	}{
		{name: "generates id", headerID: "", expectedStatus: http.StatusOK},
		{name: "keeps valid id", headerID: "browser_0001-abc", expectedStatus: http.StatusOK, expectedID: "browser_0001-abc"},
		{name: "too short", headerID: "abc", expectedStatus: http.StatusBadRequest},
		{name: "invalid characters", headerID: "client:with:colons", expectedStatus: http.StatusBadRequest},
		{name: "too long", headerID: strings.Repeat("a", 65), expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := ClientIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetClientID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.headerID != "" {
				req.Header.Set(ClientIDHeader, tt.headerID)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Empty(t, seen)
				return
			}
			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(ClientIDHeader))
			if tt.expectedID != "" {
				assert.Equal(t, tt.expectedID, seen)
			}
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := RequestIDMiddleware(ClientIDMiddleware(RecoveryMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))))

	req := httptest.NewRequest(http.MethodPost, "/api/applications/analyze", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	req.Header.Set(ClientIDHeader, "browser-0001")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "req-7", fields["request_id"])
	assert.Equal(t, "browser-0001", fields["client_id"])
	assert.Equal(t, "/api/applications/analyze", fields["path"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields["stack"], "TestRecoveryMiddleware")
}

func TestRecoveryMiddleware_AbortHandler(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := RecoveryMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, 0, logs.Len())
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name              string
		allowed           []string
		origin            string
		method            string
		expectedOrigin    string
		expectCredentials bool
		expectedStatus    int
	}{
		{name: "wildcard echoes origin", allowed: []string{"*"}, origin: "http://a.uz", method: http.MethodGet, expectedOrigin: "http://a.uz", expectCredentials: true, expectedStatus: http.StatusOK},
		{name: "listed origin", allowed: []string{"http://localhost:5173"}, origin: "http://LOCALHOST:5173", method: http.MethodGet, expectedOrigin: "http://LOCALHOST:5173", expectCredentials: true, expectedStatus: http.StatusOK},
		{name: "unlisted origin", allowed: []string{"http://localhost:5173"}, origin: "http://evil.example", method: http.MethodGet, expectedStatus: http.StatusOK},
		{name: "no origin", allowed: []string{"*"}, method: http.MethodGet, expectedStatus: http.StatusOK},
		{name: "preflight", allowed: []string{"*"}, origin: "http://a.uz", method: http.MethodOptions, expectedOrigin: "http://a.uz", expectCredentials: true, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORSMiddleware(tt.allowed)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.expectCredentials, w.Header().Get("Access-Control-Allow-Credentials") == "true")
			assert.Equal(t, "Origin", w.Header().Get("Vary"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), ClientIDHeader)
		})
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	handler := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("small body passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("1234")))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("large body rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("123456789")))
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.JSONEq(t, `{"error":"request body too large","limit_bytes":8}`, w.Body.String())
	})
}
