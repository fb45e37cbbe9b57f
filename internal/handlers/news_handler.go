package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/benefitnavigator/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewsService is the interface that wraps methods for the legal news feed.
type NewsService interface {
	// Method List returns up to "limit" entries of the feed filtered by "mode" and "query".
	//
	// Invalid parameters are reported with services.ErrInvalidArgument.
	// If the feed can not be fetched and nothing is cached, services.ErrNewsUnavailable will be returned together with "nil" value.
	List(ctx context.Context, limit int, query string, mode models.NewsMode) (*models.NewsResponse, error)
}

// ContextService is the interface that wraps retrieval of official documents.
type ContextService interface {
	// Method FetchContext downloads the document at "url" and returns it as a single context item.
	//
	// An invalid URL is reported with services.ErrInvalidArgument, a failed download with services.ErrContextUnavailable.
	FetchContext(ctx context.Context, url, title, publishedDate string) (*models.ContextPayload, error)
}

// LexHandler handles HTTP requests for the lex.uz news feed and documents
type LexHandler struct {
	BaseHandler
	news     NewsService
	contexts ContextService
}

// NewLexHandler creates a new lex.uz handler
func NewLexHandler(news NewsService, contexts ContextService, logger *zap.Logger) *LexHandler {
	return &LexHandler{
		BaseHandler: BaseHandler{logger: logger},
		news:        news,
		contexts:    contexts,
	}
}

// RegisterRoutes registers all lex.uz handler routes
func (h *LexHandler) RegisterRoutes(r chi.Router) {
	r.Get("/news/lex", h.ListNews)
	r.Get("/context/lex", h.FetchContext)
}

// ListNews handles GET /api/news/lex
// @Summary List legal news
// @Description Entries of the lex.uz RSS feed; mode entrepreneurship keeps entries relevant to entrepreneurs and then applies q
// @Tags news
// @Produce json
// @Param limit query int false "1..100, default 20"
// @Param q query string false "Search text"
// @Param mode query string false "entrepreneurship (default) or all"
// @Success 200 {object} models.NewsResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /news/lex [get]
func (h *LexHandler) ListNews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		var err error
		if limit, err = strconv.Atoi(raw); err != nil {
			h.respondError(w, http.StatusBadRequest, "invalid limit parameter")
			return
		}
	}

	resp, err := h.news.List(r.Context(), limit, query.Get("q"), models.NewsMode(query.Get("mode")))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNewsUnavailable):
			h.respondError(w, http.StatusBadGateway, err.Error())
		default:
			h.logger.Error("failed to list news", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to list news")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// FetchContext handles GET /api/context/lex
// @Summary Fetch document context
// @Description Download an official document and return its text as a context item for the AI relay
// @Tags news
// @Produce json
// @Param url query string true "Absolute http(s) URL of the document"
// @Param title query string false "Document title"
// @Param published_date query string false "Publication date"
// @Success 200 {object} models.ContextPayload
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /context/lex [get]
func (h *LexHandler) FetchContext(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	payload, err := h.contexts.FetchContext(r.Context(), query.Get("url"), query.Get("title"), query.Get("published_date"))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrContextUnavailable):
			h.respondError(w, http.StatusBadGateway, err.Error())
		default:
			h.logger.Error("failed to fetch context", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to fetch context")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, payload)
}
