// services/profile_service.go
package services

import (
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// ProfileStore provides profile persistence
type ProfileStore interface {
	UpsertProfile(profile *models.Profile) error
	GetProfileByID(userID string) (*models.Profile, error)
	SetSubscription(userID, tier string, maxGroups, maxMembersPerGroup int) error
}

// ProfileService syncs profiles from the identity provider and manages
// subscription tiers.
type ProfileService struct {
	profiles ProfileStore
}

// NewProfileService creates a new profile service
func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{
		profiles: profiles,
	}
}

// SyncProfile upserts the profile from identity attributes on each
// session. New profiles start on the free tier; existing tier and quotas
// are preserved.
func (s *ProfileService) SyncProfile(userID, email, fullName, avatarURL string) (*models.Profile, error) {
	if err := utils.ValidateRequired(userID, "user id"); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:                 userID,
		Email:              utils.NormalizeEmail(email),
		FullName:           fullName,
		AvatarURL:          avatarURL,
		SubscriptionTier:   utils.TierFree,
		MaxGroups:          utils.FreeMaxGroups,
		MaxMembersPerGroup: utils.FreeMaxMembersPerGroup,
	}
	if err := s.profiles.UpsertProfile(profile); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return s.GetProfile(userID)
}

// GetProfile returns the user's profile and current limits
func (s *ProfileService) GetProfile(userID string) (*models.Profile, error) {
	profile, err := s.profiles.GetProfileByID(userID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if profile == nil {
		return nil, utils.NewNotFoundError(utils.ErrProfileNotFound)
	}
	return profile, nil
}

// UpgradeToPremium raises the user's quotas to the premium tier
func (s *ProfileService) UpgradeToPremium(userID string) error {
	if err := s.profiles.SetSubscription(userID, utils.TierPremium,
		utils.PremiumMaxGroups, utils.PremiumMaxMembersPerGroup); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// DowngradeToFree resets the user's quotas to the free tier
func (s *ProfileService) DowngradeToFree(userID string) error {
	if err := s.profiles.SetSubscription(userID, utils.TierFree,
		utils.FreeMaxGroups, utils.FreeMaxMembersPerGroup); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}
