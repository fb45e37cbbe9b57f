package services

import (
	"context"

	"github.com/benefitnavigator/backend/internal/documents"
	"github.com/benefitnavigator/backend/internal/models"
	"go.uber.org/zap"
)

type profileService struct {
	store  *documents.Store
	logger *zap.Logger
}

// NewProfileService creates a new business profile service
func NewProfileService(store *documents.Store, logger *zap.Logger) *profileService {
	return &profileService{
		store:  store,
		logger: logger,
	}
}

// Get returns the business profile, the default profile when none is stored
func (s *profileService) Get(ctx context.Context, clientID string) (*models.BusinessProfile, error) {
	profile, err := documents.Load(ctx, s.store, clientID, models.ProfileKey, models.NewBusinessProfile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Save overwrites the business profile
func (s *profileService) Save(ctx context.Context, clientID string, profile *models.BusinessProfile) (*models.BusinessProfile, error) {
	saved := *profile
	saved.Normalize()

	if err := s.store.Save(ctx, clientID, models.ProfileKey, saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
