// services/authorization_service.go
package services

import (
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// GroupAuthStore provides the group and membership reads behind
// authorization checks.
type GroupAuthStore interface {
	GetGroupByID(groupID string) (*models.Group, error)
	IsMember(groupID, userID string) (bool, error)
	CountMembers(groupID string) (int, error)
}

// ProfileAuthStore provides the profile reads behind quota checks
type ProfileAuthStore interface {
	GetProfileByID(userID string) (*models.Profile, error)
	CountGroupsCreatedBy(userID string) (int, error)
}

// AuthorizationService centralizes every creator-only and quota check so
// enforcement cannot diverge between call sites.
type AuthorizationService struct {
	groups   GroupAuthStore
	profiles ProfileAuthStore
}

// NewAuthorizationService creates a new authorization service
func NewAuthorizationService(groups GroupAuthStore, profiles ProfileAuthStore) *AuthorizationService {
	return &AuthorizationService{
		groups:   groups,
		profiles: profiles,
	}
}

// RequireGroupCreator loads the group and verifies the caller created it
func (s *AuthorizationService) RequireGroupCreator(groupID, userID string) (*models.Group, error) {
	group, err := s.groups.GetGroupByID(groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if group == nil {
		return nil, utils.NewNotFoundError(utils.ErrGroupNotFound)
	}
	if group.CreatedBy != userID {
		return nil, utils.NewForbiddenError("only the group creator can perform this action")
	}
	return group, nil
}

// RequireMember loads the group and verifies the caller belongs to it
func (s *AuthorizationService) RequireMember(groupID, userID string) (*models.Group, error) {
	group, err := s.groups.GetGroupByID(groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if group == nil {
		return nil, utils.NewNotFoundError(utils.ErrGroupNotFound)
	}
	member, err := s.groups.IsMember(groupID, userID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	if !member {
		return nil, utils.NewForbiddenError("you are not a member of this group")
	}
	return group, nil
}

// RequireExpenseEditor verifies the caller recorded the expense or
// created its group.
func (s *AuthorizationService) RequireExpenseEditor(expense *models.Expense, userID string) error {
	if expense.CreatedBy == userID {
		return nil
	}
	group, err := s.groups.GetGroupByID(expense.GroupID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if group == nil {
		return utils.NewNotFoundError(utils.ErrGroupNotFound)
	}
	if group.CreatedBy != userID {
		return utils.NewForbiddenError("only the expense recorder or the group creator can modify this expense")
	}
	return nil
}

// CheckGroupQuota verifies the creator is below their max_groups limit
func (s *AuthorizationService) CheckGroupQuota(creatorID string) error {
	profile, err := s.profiles.GetProfileByID(creatorID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if profile == nil {
		return utils.NewNotFoundError(utils.ErrProfileNotFound)
	}
	count, err := s.profiles.CountGroupsCreatedBy(creatorID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if count >= profile.MaxGroups {
		return utils.NewGroupLimitExceededError(profile.MaxGroups)
	}
	return nil
}

// CheckMemberQuota verifies the group is below the creator's
// max_members_per_group limit. The limit is read from the creator's
// profile, not the invitee's.
func (s *AuthorizationService) CheckMemberQuota(group *models.Group) error {
	profile, err := s.profiles.GetProfileByID(group.CreatedBy)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if profile == nil {
		return utils.NewNotFoundError(utils.ErrProfileNotFound)
	}
	count, err := s.groups.CountMembers(group.ID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if count >= profile.MaxMembersPerGroup {
		return utils.NewMemberLimitExceededError(profile.MaxMembersPerGroup)
	}
	return nil
}
