// services/profile_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

func TestProfileService_SyncCreatesFreeTierProfile(t *testing.T) {
	store := newFakeStore()
	service := NewProfileService(store)

	profile, err := service.SyncProfile("u1", "User@Example.com", "User One", "")
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", profile.Email)
	assert.Equal(t, utils.TierFree, profile.SubscriptionTier)
	assert.Equal(t, utils.FreeMaxGroups, profile.MaxGroups)
	assert.Equal(t, utils.FreeMaxMembersPerGroup, profile.MaxMembersPerGroup)
}

func TestProfileService_SyncPreservesTierOnResync(t *testing.T) {
	store := newFakeStore()
	service := NewProfileService(store)

	_, err := service.SyncProfile("u1", "user@example.com", "User One", "")
	require.NoError(t, err)
	require.NoError(t, service.UpgradeToPremium("u1"))

	profile, err := service.SyncProfile("u1", "user@example.com", "Renamed User", "")
	require.NoError(t, err)
	assert.Equal(t, "Renamed User", profile.FullName)
	assert.Equal(t, utils.TierPremium, profile.SubscriptionTier)
	assert.Equal(t, utils.PremiumMaxGroups, profile.MaxGroups)
}

func TestProfileService_UpgradeAndDowngrade(t *testing.T) {
	store := newFakeStore()
	service := NewProfileService(store)

	_, err := service.SyncProfile("u1", "user@example.com", "User One", "")
	require.NoError(t, err)

	require.NoError(t, service.UpgradeToPremium("u1"))
	profile, err := service.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, utils.PremiumMaxMembersPerGroup, profile.MaxMembersPerGroup)

	require.NoError(t, service.DowngradeToFree("u1"))
	profile, err = service.GetProfile("u1")
	require.NoError(t, err)
	assert.Equal(t, utils.FreeMaxGroups, profile.MaxGroups)
}

func TestProfileService_GetUnknownProfile(t *testing.T) {
	store := newFakeStore()
	service := NewProfileService(store)

	_, err := service.GetProfile("ghost")
	assertKind(t, err, utils.KindNotFound)
}
