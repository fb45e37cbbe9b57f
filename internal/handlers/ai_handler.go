package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/benefitnavigator/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

// RelayService is the interface that wraps methods for the AI relay business logic.
type RelayService interface {
	// Method Ask answers a chat message grounded on the provided context.
	//
	// If the message is empty, services.ErrEmptyMessage will be returned together with an empty string.
	// Failures of the completion API are not errors: a localized fallback text is returned instead.
	Ask(ctx context.Context, req *models.ChatRequest) (string, error)
	// Method SummarizeNews turns official document snippets into news cards.
	//
	// If the context has no items, services.ErrEmptyContext will be returned together with an empty string.
	// Please reference Ask method for more information about fallback texts.
	SummarizeNews(ctx context.Context, req *models.NewsSummaryRequest) (string, error)
}

// AIHandler handles AI relay HTTP requests
type AIHandler struct {
	BaseHandler
	service     RelayService
	perMinute   int
	limitWindow time.Duration
}

// NewAIHandler creates a new AI relay handler limited to perMinute requests per IP
func NewAIHandler(svc RelayService, perMinute int, logger *zap.Logger) *AIHandler {
	return &AIHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
		perMinute:   perMinute,
		limitWindow: time.Minute,
	}
}

// RegisterRoutes registers all AI handler routes
func (h *AIHandler) RegisterRoutes(r chi.Router) {
	r.Route("/ai", func(r chi.Router) {
		// Completion requests have their own, stricter limit
		r.Use(httprate.LimitByIP(h.perMinute, h.limitWindow))
		r.Post("/", h.Ask)
		r.Post("/news", h.SummarizeNews)
	})
}

// Ask handles POST /api/ai
// @Summary Ask the legal assistant
// @Description Relay a chat message to the completion API. Upstream failures return a localized fallback text with status 200.
// @Tags ai
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of fallback texts when lang is empty: uz, ru or en"
// @Param request body models.ChatRequest true "Message, profile, history and context"
// @Success 200 {object} models.RelayResponse
// @Failure 400 {object} map[string]string "Empty message"
// @Failure 429 {object} map[string]string
// @Router /ai [post]
func (h *AIHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" {
		req.Language = r.Header.Get("Accept-Language")
	}

	text, err := h.service.Ask(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			h.respondError(w, http.StatusBadRequest, "Empty message")
			return
		}
		h.logger.Error("failed to relay chat message", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	h.respondJSON(w, http.StatusOK, models.RelayResponse{Text: text})
}

// SummarizeNews handles POST /api/ai/news
// @Summary Summarize legal news
// @Description Turn document snippets into news cards. The text is the raw model output, expected to be a JSON array.
// @Tags ai
// @Accept json
// @Produce json
// @Param Accept-Language header string false "Language of fallback texts when lang is empty: uz, ru or en"
// @Param request body models.NewsSummaryRequest true "Context"
// @Success 200 {object} models.RelayResponse
// @Failure 400 {object} map[string]string "Empty context"
// @Failure 429 {object} map[string]string
// @Router /ai/news [post]
func (h *AIHandler) SummarizeNews(w http.ResponseWriter, r *http.Request) {
	var req models.NewsSummaryRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Language == "" {
		req.Language = r.Header.Get("Accept-Language")
	}

	text, err := h.service.SummarizeNews(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyContext) {
			h.respondError(w, http.StatusBadRequest, "Empty context")
			return
		}
		h.logger.Error("failed to summarize news", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to summarize news")
		return
	}

	h.respondJSON(w, http.StatusOK, models.RelayResponse{Text: text})
}
