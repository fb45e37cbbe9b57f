package middlewares

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// ClientIDHeader carries the identifier of the browser whose documents a request works with
const ClientIDHeader = "X-Client-ID"

var clientIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// ClientIDMiddleware resolves the client namespace of a request.
//
// A missing header gets a freshly generated ID which is echoed back, so the client can persist it.
// A malformed header is rejected with 400.
func ClientIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := r.Header.Get(ClientIDHeader)
		if clientID == "" {
			clientID = uuid.New().String()
		} else if !clientIDRegex.MatchString(clientID) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"invalid client id"}`))
			return
		}

		w.Header().Set(ClientIDHeader, clientID)
		ctx := WithClientID(r.Context(), clientID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithClientID stores the client ID in the context
func WithClientID(ctx context.Context, clientID string) context.Context {
	return context.WithValue(ctx, clientIDKey, clientID)
}

// GetClientID retrieves the client ID from context
func GetClientID(ctx context.Context) string {
	if id, ok := ctx.Value(clientIDKey).(string); ok {
		return id
	}
	return ""
}
