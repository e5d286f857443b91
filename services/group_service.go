// services/group_service.go
package services

import (
	"fmt"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// GroupStore provides group and membership persistence
type GroupStore interface {
	CreateGroup(group *models.Group) error
	GetGroupByID(groupID string) (*models.Group, error)
	ListGroupsForUser(userID string) ([]models.Group, error)
	GetGroupMembers(groupID string) ([]models.Profile, error)
	RenameGroup(groupID, name string) error
	DeleteGroup(groupID string) error
	RemoveMember(groupID, userID string) error
	IsMember(groupID, userID string) (bool, error)
}

// InvitationStore provides invitation persistence
type InvitationStore interface {
	CreateInvitation(invitation *models.Invitation, notification *models.Notification) error
	HasPendingInvitation(groupID, inviteeID string) (bool, error)
}

// ProfileLookupStore resolves invitees and inviters
type ProfileLookupStore interface {
	GetProfileByID(userID string) (*models.Profile, error)
	GetProfileByEmail(email string) (*models.Profile, error)
}

// EmailSender delivers invite mail to unregistered invitees
type EmailSender interface {
	SendInvite(toEmail, groupName, inviterName string) error
}

// GroupService handles group lifecycle and membership
type GroupService struct {
	groups      GroupStore
	invitations InvitationStore
	profiles    ProfileLookupStore
	guard       *AuthorizationService
	email       EmailSender
}

// NewGroupService creates a new group service
func NewGroupService(groups GroupStore, invitations InvitationStore, profiles ProfileLookupStore, guard *AuthorizationService, email EmailSender) *GroupService {
	return &GroupService{
		groups:      groups,
		invitations: invitations,
		profiles:    profiles,
		guard:       guard,
		email:       email,
	}
}

// CreateGroup creates a group with the caller as creator and first
// member, subject to the creator's group quota.
func (s *GroupService) CreateGroup(userID string, req *models.CreateGroupRequest) (*models.Group, error) {
	if err := utils.ValidateRequired(req.Name, "group name"); err != nil {
		return nil, err
	}
	if err := s.guard.CheckGroupQuota(userID); err != nil {
		return nil, err
	}

	group := &models.Group{
		ID:        utils.GenerateID(),
		Name:      req.Name,
		IconURL:   req.IconURL,
		CreatedBy: userID,
	}
	if err := s.groups.CreateGroup(group); err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	group.MemberCount = 1
	return group, nil
}

// ListGroups returns all groups the user belongs to
func (s *GroupService) ListGroups(userID string) ([]models.Group, error) {
	groups, err := s.groups.ListGroupsForUser(userID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return groups, nil
}

// GetGroupDetails returns a group and its member profiles
func (s *GroupService) GetGroupDetails(userID, groupID string) (*models.GroupDetailsResponse, error) {
	group, err := s.guard.RequireMember(groupID, userID)
	if err != nil {
		return nil, err
	}
	members, err := s.groups.GetGroupMembers(groupID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return &models.GroupDetailsResponse{
		Group:   group,
		Members: members,
	}, nil
}

// RenameGroup renames a group (creator only)
func (s *GroupService) RenameGroup(userID, groupID, name string) error {
	if err := utils.ValidateRequired(name, "group name"); err != nil {
		return err
	}
	if _, err := s.guard.RequireGroupCreator(groupID, userID); err != nil {
		return err
	}
	if err := s.groups.RenameGroup(groupID, name); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// DeleteGroup deletes a group (creator only); owned rows cascade at the
// store level.
func (s *GroupService) DeleteGroup(userID, groupID string) error {
	if _, err := s.guard.RequireGroupCreator(groupID, userID); err != nil {
		return err
	}
	if err := s.groups.DeleteGroup(groupID); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// AddMember invites a user to the group by email (creator only). A
// registered invitee gets a pending invitation plus an in-app
// notification; an unregistered one gets an email invite instead.
func (s *GroupService) AddMember(userID, groupID, email string) (string, error) {
	group, err := s.guard.RequireGroupCreator(groupID, userID)
	if err != nil {
		return "", err
	}

	inviter, err := s.profiles.GetProfileByID(userID)
	if err != nil {
		return "", utils.NewStoreUnavailableError(err)
	}
	if inviter == nil {
		return "", utils.NewNotFoundError(utils.ErrProfileNotFound)
	}

	invitee, err := s.profiles.GetProfileByEmail(utils.NormalizeEmail(email))
	if err != nil {
		return "", utils.NewStoreUnavailableError(err)
	}
	if invitee == nil {
		// No registered profile: hand off to the email collaborator.
		if err := s.email.SendInvite(utils.NormalizeEmail(email), group.Name, inviter.FullName); err != nil {
			return "", err
		}
		return utils.InviteOutcomeEmail, nil
	}

	member, err := s.groups.IsMember(groupID, invitee.ID)
	if err != nil {
		return "", utils.NewStoreUnavailableError(err)
	}
	if member {
		return "", utils.NewAlreadyMemberError()
	}

	pending, err := s.invitations.HasPendingInvitation(groupID, invitee.ID)
	if err != nil {
		return "", utils.NewStoreUnavailableError(err)
	}
	if pending {
		return "", utils.NewDuplicateInviteError()
	}

	if err := s.guard.CheckMemberQuota(group); err != nil {
		return "", err
	}

	invitation := &models.Invitation{
		ID:        utils.GenerateID(),
		GroupID:   groupID,
		InviterID: userID,
		InviteeID: invitee.ID,
		Status:    utils.StatusPending,
	}
	notification := &models.Notification{
		ID:          utils.GenerateID(),
		UserID:      invitee.ID,
		Type:        utils.NotificationTypeInvite,
		ReferenceID: invitation.ID,
		Message:     fmt.Sprintf("%s invited you to join \"%s\"", inviter.FullName, group.Name),
	}
	if err := s.invitations.CreateInvitation(invitation, notification); err != nil {
		return "", utils.NewStoreUnavailableError(err)
	}
	return utils.InviteOutcomeRegistered, nil
}

// RemoveMember removes a member from the group (creator only). Removing
// oneself is rejected regardless of creator status.
func (s *GroupService) RemoveMember(userID, groupID, memberID string) error {
	if userID == memberID {
		return utils.NewCannotRemoveSelfError()
	}
	if _, err := s.guard.RequireGroupCreator(groupID, userID); err != nil {
		return err
	}

	member, err := s.groups.IsMember(groupID, memberID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if !member {
		return utils.NewNotFoundError("Member")
	}

	if err := s.groups.RemoveMember(groupID, memberID); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}
