package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/benefitnavigator/backend/internal/auth"
	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/benefitnavigator/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// emailRegex validates email format
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const minPasswordLength = 6

type sessionService struct {
	store          *documents.Store
	tokenGenerator *auth.TokenGenerator
	logger         *zap.Logger
}

// NewSessionService creates a new session service
func NewSessionService(store *documents.Store, tokenGenerator *auth.TokenGenerator, logger *zap.Logger) *sessionService {
	return &sessionService{
		store:          store,
		tokenGenerator: tokenGenerator,
		logger:         logger,
	}
}

func defaultUser() models.UserRecord {
	return models.UserRecord{Plan: models.PlanFreemium}
}

func defaultSession() bool {
	return false
}

// Register creates the account of the client namespace, replacing any previous one,
// logs it in and writes the default business profile
func (s *sessionService) Register(ctx context.Context, clientID string, req *models.RegisterRequest) (*models.AuthResponse, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = normalizeEmail(req.Email)

	if err := validateRegister(req); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.UserRecord{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Plan:         models.PlanFreemium,
	}

	if err := s.store.Save(ctx, clientID, models.UserKey, user); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, clientID, models.SessionKey, true); err != nil {
		return nil, err
	}
	profile := models.BusinessProfile{Name: user.FirstName, Region: models.DefaultRegion}
	if err := s.store.Save(ctx, clientID, models.ProfileKey, profile); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", zap.String("client_id", clientID))

	return s.authResponse(clientID, &user)
}

// Login checks the credentials against the stored account and opens the session.
// The default profile is written when the namespace has none.
func (s *sessionService) Login(ctx context.Context, clientID string, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.getUser(ctx, clientID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if normalizeEmail(user.Email) != email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := s.store.Save(ctx, clientID, models.SessionKey, true); err != nil {
		return nil, err
	}

	hasProfile, err := s.store.Exists(ctx, clientID, models.ProfileKey)
	if err != nil {
		return nil, err
	}
	if !hasProfile {
		profile := models.BusinessProfile{Name: user.FirstName, Region: models.DefaultRegion}
		if err := s.store.Save(ctx, clientID, models.ProfileKey, profile); err != nil {
			return nil, err
		}
	}

	return s.authResponse(clientID, user)
}

// Logout closes the session and removes the business profile. The account itself is kept.
func (s *sessionService) Logout(ctx context.Context, clientID string) error {
	if err := s.store.Delete(ctx, clientID, models.SessionKey); err != nil {
		return err
	}
	return s.store.Delete(ctx, clientID, models.ProfileKey)
}

// CurrentUser returns the session state of the namespace
func (s *sessionService) CurrentUser(ctx context.Context, clientID string) (*models.Session, error) {
	authed, err := s.IsAuthed(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !authed {
		return &models.Session{Authenticated: false}, nil
	}

	user, err := s.getUser(ctx, clientID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &models.Session{Authenticated: true, User: &resp}, nil
}

// IsAuthed reports whether the session flag is set and an account exists
func (s *sessionService) IsAuthed(ctx context.Context, clientID string) (bool, error) {
	user, err := s.sessionUser(ctx, clientID)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// HasSession reports whether the namespace is logged in to the account with the given email.
// A token issued for an account that was replaced by a later registration is no longer accepted.
func (s *sessionService) HasSession(ctx context.Context, clientID, email string) (bool, error) {
	user, err := s.sessionUser(ctx, clientID)
	if err != nil {
		return false, err
	}
	return user != nil && user.Email == normalizeEmail(email), nil
}

// DeleteAccount removes the account together with every document of the namespace
func (s *sessionService) DeleteAccount(ctx context.Context, clientID string) error {
	if err := s.store.DeleteAll(ctx, clientID); err != nil {
		return err
	}
	s.logger.Info("Account deleted", zap.String("client_id", clientID))
	return nil
}

// sessionUser returns the logged in account, or nil when the namespace has no session
func (s *sessionService) sessionUser(ctx context.Context, clientID string) (*models.UserRecord, error) {
	session, err := documents.Load(ctx, s.store, clientID, models.SessionKey, defaultSession)
	if err != nil {
		return nil, err
	}
	if !session {
		return nil, nil
	}

	user, err := s.getUser(ctx, clientID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// SetPlan changes the subscription tier of the account
func (s *sessionService) SetPlan(ctx context.Context, clientID string, plan models.Plan) (*models.UserResponse, error) {
	if !plan.IsValid() {
		return nil, ErrInvalidPlan
	}

	var missing bool
	user, err := documents.Update(ctx, s.store, clientID, models.UserKey, defaultUser, func(u *models.UserRecord) error {
		if u.Email == "" {
			missing = true
			return ErrUserNotFound
		}
		u.Plan = plan
		return nil
	})
	if missing {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

// getUser loads the account; a missing or unreadable record is reported as ErrUserNotFound
func (s *sessionService) getUser(ctx context.Context, clientID string) (*models.UserRecord, error) {
	user, err := documents.Load(ctx, s.store, clientID, models.UserKey, defaultUser)
	if err != nil {
		return nil, err
	}
	if user.Email == "" {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

func (s *sessionService) authResponse(clientID string, user *models.UserRecord) (*models.AuthResponse, error) {
	token, err := s.tokenGenerator.GenerateAccessToken(clientID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &models.AuthResponse{
		AccessToken: token,
		User:        user.ToResponse(),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateRegister checks the registration form field by field
func validateRegister(req *models.RegisterRequest) error {
	fields := map[string]string{}

	if req.FirstName == "" {
		fields["firstName"] = "first name is required"
	}
	if req.LastName == "" {
		fields["lastName"] = "last name is required"
	}
	if req.Email == "" {
		fields["email"] = "email is required"
	} else if !emailRegex.MatchString(req.Email) {
		fields["email"] = "invalid email format"
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
