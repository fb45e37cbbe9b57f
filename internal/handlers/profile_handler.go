package handlers

import (
	"context"
	"net/http"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileService is the interface that wraps methods for business profile business logic.
type ProfileService interface {
	// Method Get returns the business profile of the client namespace.
	//
	// If no profile is stored, the default profile will be returned.
	Get(ctx context.Context, clientID string) (*models.BusinessProfile, error)
	// Method Save overwrites the whole business profile and returns the stored value.
	Save(ctx context.Context, clientID string, profile *models.BusinessProfile) (*models.BusinessProfile, error)
}

// ProfileHandler handles business profile HTTP requests
type ProfileHandler struct {
	BaseHandler
	service ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(svc ProfileService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Get("/profile", h.Get)
	r.Put("/profile", h.Save)
}

// Get handles GET /api/profile
// @Summary Get business profile
// @Tags profile
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Success 200 {object} models.BusinessProfile
// @Failure 500 {object} map[string]string
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context(), h.clientID(r))
	if err != nil {
		h.logger.Error("failed to get profile", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	h.respondJSON(w, http.StatusOK, profile)
}

// Save handles PUT /api/profile
// @Summary Save business profile
// @Description Overwrite the whole profile; name and region are trimmed and an empty region is reset to the default
// @Tags profile
// @Accept json
// @Produce json
// @Param X-Client-ID header string true "Client namespace"
// @Param request body models.BusinessProfile true "Business profile"
// @Success 200 {object} models.BusinessProfile
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /profile [put]
func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	var profile models.BusinessProfile
	if err := h.decodeJSON(r, &profile); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saved, err := h.service.Save(r.Context(), h.clientID(r), &profile)
	if err != nil {
		h.logger.Error("failed to save profile", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	h.respondJSON(w, http.StatusOK, saved)
}
