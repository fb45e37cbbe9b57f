package middlewares

import (
	"net/http"
	"strconv"
)

// RequestSizeLimitMiddleware rejects request bodies larger than maxRequestSize bytes.
// A declared Content-Length is checked up front; chunked bodies are cut off while they are read.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	tooLarge := []byte(`{"error":"request body too large","limit_bytes":` + strconv.FormatInt(maxRequestSize, 10) + `}`)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write(tooLarge)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
