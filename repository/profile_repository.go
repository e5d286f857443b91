// repository/profile_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	DB *sql.DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		DB: GetDB(),
	}
}

// UpsertProfile inserts or refreshes a profile from identity attributes.
// Subscription tier and quotas are preserved on conflict.
func (r *ProfileRepository) UpsertProfile(profile *models.Profile) error {
	_, err := r.DB.Exec(
		`INSERT INTO profiles (id, email, full_name, avatar_url, subscription_tier, max_groups, max_members_per_group)
         VALUES ($1, $2, $3, $4, $5, $6, $7)
         ON CONFLICT (id) DO UPDATE
         SET email = EXCLUDED.email,
             full_name = EXCLUDED.full_name,
             avatar_url = EXCLUDED.avatar_url,
             updated_at = now()`,
		profile.ID, profile.Email, profile.FullName, profile.AvatarURL,
		profile.SubscriptionTier, profile.MaxGroups, profile.MaxMembersPerGroup,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %v", err)
	}
	return nil
}

// GetProfileByID retrieves a profile by its ID
func (r *ProfileRepository) GetProfileByID(id string) (*models.Profile, error) {
	return r.getProfile("id = $1", id)
}

// GetProfileByEmail retrieves a profile by email
func (r *ProfileRepository) GetProfileByEmail(email string) (*models.Profile, error) {
	return r.getProfile("email = $1", email)
}

func (r *ProfileRepository) getProfile(where string, arg interface{}) (*models.Profile, error) {
	var profile models.Profile
	var email, fullName, avatarURL sql.NullString

	err := r.DB.QueryRow(
		`SELECT id, email, full_name, avatar_url, subscription_tier, max_groups, max_members_per_group
         FROM profiles WHERE `+where,
		arg,
	).Scan(&profile.ID, &email, &fullName, &avatarURL,
		&profile.SubscriptionTier, &profile.MaxGroups, &profile.MaxMembersPerGroup)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %v", err)
	}

	profile.Email = email.String
	profile.FullName = fullName.String
	profile.AvatarURL = avatarURL.String
	return &profile, nil
}

// SetSubscription updates a profile's tier and quotas
func (r *ProfileRepository) SetSubscription(userID, tier string, maxGroups, maxMembersPerGroup int) error {
	_, err := r.DB.Exec(
		`UPDATE profiles
         SET subscription_tier = $2, max_groups = $3, max_members_per_group = $4, updated_at = now()
         WHERE id = $1`,
		userID, tier, maxGroups, maxMembersPerGroup,
	)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %v", err)
	}
	return nil
}

// CountGroupsCreatedBy counts groups created by a user
func (r *ProfileRepository) CountGroupsCreatedBy(userID string) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM groups WHERE created_by = $1",
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count groups: %v", err)
	}
	return count, nil
}
