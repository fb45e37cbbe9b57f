package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/benefitnavigator/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionService is the interface that wraps methods for account and session business logic.
type SessionService interface {
	// Method Register validates the form, stores the account of the client namespace and opens the session.
	//
	// "clientID" parameter identifies the namespace the account belongs to.
	// If the form is invalid, a *services.ValidationError will be returned together with "nil" value.
	Register(ctx context.Context, clientID string, req *models.RegisterRequest) (*models.AuthResponse, error)
	// Method Login checks the credentials against the account of the client namespace and opens the session.
	//
	// If the account does not exist or the credentials do not match, services.ErrInvalidCredentials will be returned together with "nil" value.
	Login(ctx context.Context, clientID string, req *models.LoginRequest) (*models.AuthResponse, error)
	// Method Logout closes the session and removes the business profile of the client namespace.
	Logout(ctx context.Context, clientID string) error
	// Method CurrentUser returns the session state of the client namespace.
	CurrentUser(ctx context.Context, clientID string) (*models.Session, error)
	// Method SetPlan changes the subscription tier of the account.
	//
	// If the plan is unknown, services.ErrInvalidPlan will be returned; if there is no account, services.ErrUserNotFound.
	SetPlan(ctx context.Context, clientID string, plan models.Plan) (*models.UserResponse, error)
	// Method DeleteAccount removes the account and every document of the client namespace.
	DeleteAccount(ctx context.Context, clientID string) error
}

// SessionHandler handles account and session HTTP requests
type SessionHandler struct {
	BaseHandler
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(svc SessionService, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler: BaseHandler{logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all session handler routes
// Note: This assumes the router is already scoped to /api
func (h *SessionHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)
			r.Get("/me", h.Me)
			r.Put("/plan", h.SetPlan)
			r.Delete("/account", h.DeleteAccount)
		})
	})
}

// Register handles POST /api/auth/register
// @Summary Register an account
// @Description Create the account of the client namespace, open the session and write the default business profile
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client namespace"
// @Param request body models.RegisterRequest true "Registration form"
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} map[string]any "Validation failed"
// @Failure 500 {object} map[string]string
// @Router /auth/register [post]
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), h.clientID(r), &req)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			h.respondJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "validation failed",
				"fields": validationErr.Fields,
			})
			return
		}
		h.logger.Error("failed to register user", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to register")
		return
	}

	setTokenCookie(w, resp.AccessToken)
	h.respondJSON(w, http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Log in
// @Description Check the credentials against the account of the client namespace and open the session
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Client-ID header string false "Client namespace"
// @Param request body models.LoginRequest true "Login form"
// @Success 200 {object} models.AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string
// @Router /auth/login [post]
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), h.clientID(r), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.respondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		h.logger.Error("failed to login user", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to login")
		return
	}

	setTokenCookie(w, resp.AccessToken)
	h.respondJSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Log out
// @Description Close the session and remove the business profile; the account is kept
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/logout [post]
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context(), h.clientID(r)); err != nil {
		h.logger.Error("failed to logout user", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to logout")
		return
	}

	clearTokenCookie(w)
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Me handles GET /api/auth/me
// @Summary Current user
// @Description Get the session state and the account without credentials
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Session
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/me [get]
func (h *SessionHandler) Me(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.CurrentUser(r.Context(), h.clientID(r))
	if err != nil {
		h.logger.Error("failed to get current user", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to get current user")
		return
	}

	h.respondJSON(w, http.StatusOK, session)
}

// SetPlan handles PUT /api/auth/plan
// @Summary Change plan
// @Description Switch the account between freemium and premium
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SetPlanRequest true "New plan"
// @Success 200 {object} models.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/plan [put]
func (h *SessionHandler) SetPlan(w http.ResponseWriter, r *http.Request) {
	var req models.SetPlanRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.SetPlan(r.Context(), h.clientID(r), req.Plan)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPlan):
			h.respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrUserNotFound):
			h.respondError(w, http.StatusNotFound, err.Error())
		default:
			h.logger.Error("failed to set plan", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to set plan")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, user)
}

// DeleteAccount handles DELETE /api/auth/account
// @Summary Delete account
// @Description Remove the account, the session, the business profile and the course progress of the client namespace
// @Tags auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /auth/account [delete]
func (h *SessionHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAccount(r.Context(), h.clientID(r)); err != nil {
		h.logger.Error("failed to delete account", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to delete account")
		return
	}

	clearTokenCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// setTokenCookie sets the access token as an HTTP-only cookie
func setTokenCookie(w http.ResponseWriter, accessToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// clearTokenCookie expires the access token cookie
func clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
