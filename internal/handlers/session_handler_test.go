package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/benefitnavigator/backend/internal/models"
	"github.com/benefitnavigator/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSessionService is a mock implementation of SessionService
type mockSessionService struct {
	authResp    *models.AuthResponse
	session     *models.Session
	user        *models.UserResponse
	err         error
	gotClientID string
	gotPlan     models.Plan
}

func (m *mockSessionService) Register(ctx context.Context, clientID string, req *models.RegisterRequest) (*models.AuthResponse, error) {
	m.gotClientID = clientID
	return m.authResp, m.err
}

func (m *mockSessionService) Login(ctx context.Context, clientID string, req *models.LoginRequest) (*models.AuthResponse, error) {
	m.gotClientID = clientID
	return m.authResp, m.err
}

func (m *mockSessionService) Logout(ctx context.Context, clientID string) error {
	m.gotClientID = clientID
	return m.err
}

func (m *mockSessionService) CurrentUser(ctx context.Context, clientID string) (*models.Session, error) {
	m.gotClientID = clientID
	return m.session, m.err
}

func (m *mockSessionService) SetPlan(ctx context.Context, clientID string, plan models.Plan) (*models.UserResponse, error) {
	m.gotClientID = clientID
	m.gotPlan = plan
	return m.user, m.err
}

func (m *mockSessionService) DeleteAccount(ctx context.Context, clientID string) error {
	m.gotClientID = clientID
	return m.err
}

// sessionRoutes adapts the session handler to the test router with a configurable auth gate
type sessionRoutes struct {
	handler *SessionHandler
	allow   bool
}

func (s sessionRoutes) RegisterRoutes(r chi.Router) {
	s.handler.RegisterRoutes(r, func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.allow {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
}

func TestSessionHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		svcErr         error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "success",
			body:           models.RegisterRequest{FirstName: "Ali", LastName: "Valiyev", Email: "ali@example.uz", Password: "secret1"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "validation error",
			body:           models.RegisterRequest{},
			svcErr:         &services.ValidationError{Fields: map[string]string{"email": "email is required"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "validation failed",
		},
		{
			name:           "store failure",
			body:           models.RegisterRequest{},
			svcErr:         errors.New("database down"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to register",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSessionService{
				authResp: &models.AuthResponse{AccessToken: "token", User: models.UserResponse{Email: "ali@example.uz", Plan: models.PlanFreemium}},
				err:      tt.svcErr,
			}
			router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger())})

			w := doRequest(t, router, http.MethodPost, "/api/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				body := decodeBody[map[string]any](t, w)
				assert.Equal(t, tt.expectedError, body["error"])
				return
			}
			resp := decodeBody[models.AuthResponse](t, w)
			assert.Equal(t, "token", resp.AccessToken)
			assert.Equal(t, testClientID, svc.gotClientID)
			require.Len(t, w.Result().Cookies(), 1)
			assert.Equal(t, "access_token", w.Result().Cookies()[0].Name)
		})
	}
}

func TestSessionHandler_RegisterValidationFields(t *testing.T) {
	svc := &mockSessionService{err: &services.ValidationError{Fields: map[string]string{"password": "password must be at least 6 characters"}}}
	router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger())})

	w := doRequest(t, router, http.MethodPost, "/api/auth/register", models.RegisterRequest{Password: "1"})

	body := decodeBody[struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}](t, w)
	assert.Equal(t, "password must be at least 6 characters", body.Fields["password"])
}

func TestSessionHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		svcErr         error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "invalid credentials", svcErr: services.ErrInvalidCredentials, expectedStatus: http.StatusUnauthorized},
		{name: "store failure", svcErr: errors.New("timeout"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSessionService{authResp: &models.AuthResponse{AccessToken: "token"}, err: tt.svcErr}
			router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger())})

			w := doRequest(t, router, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: "a@b.uz", Password: "secret1"})

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestSessionHandler_AuthenticatedRoutes(t *testing.T) {
	routes := []struct {
		method string
		path   string
		body   any
	}{
		{method: http.MethodPost, path: "/api/auth/logout"},
		{method: http.MethodGet, path: "/api/auth/me"},
		{method: http.MethodPut, path: "/api/auth/plan", body: models.SetPlanRequest{Plan: models.PlanPremium}},
		{method: http.MethodDelete, path: "/api/auth/account"},
	}

	for _, route := range routes {
		t.Run(route.path, func(t *testing.T) {
			svc := &mockSessionService{}
			router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger()), allow: false})

			w := doRequest(t, router, route.method, route.path, route.body)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "", svc.gotClientID)
		})
	}
}

func TestSessionHandler_LogoutAndMe(t *testing.T) {
	svc := &mockSessionService{session: &models.Session{Authenticated: true, User: &models.UserResponse{Email: "a@b.uz"}}}
	router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger()), allow: true})

	w := doRequest(t, router, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	session := decodeBody[models.Session](t, w)
	assert.True(t, session.Authenticated)

	w = doRequest(t, router, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestSessionHandler_DeleteAccount(t *testing.T) {
	tests := []struct {
		name           string
		svcErr         error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusNoContent},
		{name: "store failure", svcErr: errors.New("database down"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSessionService{err: tt.svcErr}
			router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger()), allow: true})

			w := doRequest(t, router, http.MethodDelete, "/api/auth/account", nil)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, testClientID, svc.gotClientID)
			if tt.svcErr != nil {
				body := decodeBody[map[string]any](t, w)
				assert.Equal(t, "failed to delete account", body["error"])
				return
			}
			assert.Empty(t, w.Body.String())
			cookies := w.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "access_token", cookies[0].Name)
			assert.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}

func TestSessionHandler_SetPlan(t *testing.T) {
	tests := []struct {
		name           string
		svcErr         error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "invalid plan", svcErr: services.ErrInvalidPlan, expectedStatus: http.StatusBadRequest},
		{name: "no account", svcErr: services.ErrUserNotFound, expectedStatus: http.StatusNotFound},
		{name: "store failure", svcErr: errors.New("timeout"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockSessionService{user: &models.UserResponse{Plan: models.PlanPremium}, err: tt.svcErr}
			router := newTestRouter(sessionRoutes{handler: NewSessionHandler(svc, testLogger()), allow: true})

			w := doRequest(t, router, http.MethodPut, "/api/auth/plan", models.SetPlanRequest{Plan: models.PlanPremium})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, models.PlanPremium, svc.gotPlan)
		})
	}
}
