package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/benefitnavigator/backend/internal/middlewares"
	"go.uber.org/zap"
)

var errEmptyBody = errors.New("empty request body")

// BaseHandler provides common handler functionality
type BaseHandler struct {
	logger *zap.Logger
}

// respondJSON sends a JSON response
func (h *BaseHandler) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

// respondError sends an error JSON response
func (h *BaseHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into v; an empty body is an error
func (h *BaseHandler) decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// clientID returns the client namespace resolved by the middleware chain
func (h *BaseHandler) clientID(r *http.Request) string {
	return middlewares.GetClientID(r.Context())
}
