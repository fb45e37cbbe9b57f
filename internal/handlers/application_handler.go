package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ApplicationService is the interface that wraps methods for automatic benefit applications.
type ApplicationService interface {
	// Method Scan reports the eligibility of "profile" for every open opportunity.
	Scan(ctx context.Context, profile *models.BusinessProfile) *models.ScanResponse
	// Method Analyze submits drafts for eligible opportunities and queues requests for missing data.
	//
	// When "req" carries no profile, the stored profile of the client namespace is used.
	// Only storage failures are returned as errors.
	Analyze(ctx context.Context, clientID string, req *models.AnalyzeRequest) (*models.AnalyzeResponse, error)
}

// ApplicationHandler handles automatic application HTTP requests
type ApplicationHandler struct {
	BaseHandler
	service ApplicationService
}

// NewApplicationHandler creates a new automatic application handler
func NewApplicationHandler(svc ApplicationService, logger *zap.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all automatic application handler routes
func (h *ApplicationHandler) RegisterRoutes(r chi.Router) {
	r.Route("/auto-applications", func(r chi.Router) {
		r.Get("/new", h.Scan)
		r.Post("/analyze", h.Analyze)
	})
}

// Scan handles GET /api/auto-applications/new
// @Summary Scan opportunities
// @Description Eligibility of the business described by the query parameters for every open opportunity
// @Tags auto-applications
// @Produce json
// @Param user_name query string false "Name of the user"
// @Param region query string false "Region"
// @Param business_name query string false "Business name"
// @Param tin query string false "Taxpayer identification number"
// @Param legal_form query string false "Legal form, e.g. YTT or MCHJ"
// @Param activity_type query string false "Activity type"
// @Param director_name query string false "Director name"
// @Param phone query string false "Phone"
// @Param email query string false "Email"
// @Param address query string false "Address"
// @Param employee_count query int false "Number of employees"
// @Success 200 {object} models.ScanResponse
// @Failure 400 {object} map[string]string
// @Router /auto-applications/new [get]
func (h *ApplicationHandler) Scan(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	profile := &models.BusinessProfile{
		Name:         query.Get("user_name"),
		Region:       query.Get("region"),
		BusinessName: query.Get("business_name"),
		TIN:          query.Get("tin"),
		LegalForm:    query.Get("legal_form"),
		ActivityType: query.Get("activity_type"),
		DirectorName: query.Get("director_name"),
		Phone:        query.Get("phone"),
		Email:        query.Get("email"),
		Address:      query.Get("address"),
	}
	if raw := query.Get("employee_count"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil || count < 0 {
			h.respondError(w, http.StatusBadRequest, "invalid employee_count parameter")
			return
		}
		profile.EmployeeCount = &count
	}

	h.respondJSON(w, http.StatusOK, h.service.Scan(r.Context(), profile))
}

// Analyze handles POST /api/auto-applications/analyze
// @Summary Analyze and submit applications
// @Description Submit drafts for eligible opportunities and queue SMS requests for missing data. Without a profile the stored profile is used.
// @Tags auto-applications
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client namespace"
// @Param request body models.AnalyzeRequest false "Profile"
// @Success 200 {object} models.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auto-applications/analyze [post]
func (h *ApplicationHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := h.decodeJSON(r, &req); err != nil && !errors.Is(err, errEmptyBody) {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Analyze(r.Context(), h.clientID(r), &req)
	if err != nil {
		h.logger.Error("failed to analyze applications", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to analyze applications")
		return
	}

	h.respondJSON(w, http.StatusOK, resp)
}
