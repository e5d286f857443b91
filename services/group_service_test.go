// services/group_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

func groupFixture(t *testing.T) (*fakeStore, *GroupService, *fakeEmailSender) {
	t.Helper()
	store := newFakeStore()
	store.seedProfile("alice", "alice@example.com", "Alice")
	store.seedProfile("bob", "bob@example.com", "Bob")
	store.seedProfile("carol", "carol@example.com", "Carol")
	groupService, _, _, _, _, email := newServiceGraph(store)
	return store, groupService, email
}

func TestGroupService_CreateGroupMakesCreatorFirstMember(t *testing.T) {
	store, service, _ := groupFixture(t)

	group, err := service.CreateGroup("alice", &models.CreateGroupRequest{Name: "Ski Trip"})
	require.NoError(t, err)
	assert.Equal(t, "alice", group.CreatedBy)
	assert.Equal(t, 1, group.MemberCount)

	member, _ := store.IsMember(group.ID, "alice")
	assert.True(t, member)
}

func TestGroupService_CreateGroupEnforcesQuota(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.profiles["alice"].MaxGroups = 1

	_, err := service.CreateGroup("alice", &models.CreateGroupRequest{Name: "First"})
	require.NoError(t, err)

	_, err = service.CreateGroup("alice", &models.CreateGroupRequest{Name: "Second"})
	assertKind(t, err, utils.KindGroupLimitExceeded)

	count, _ := store.CountGroupsCreatedBy("alice")
	assert.Equal(t, 1, count)
}

func TestGroupService_RenameAndDeleteAreCreatorOnly(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")

	assertKind(t, service.RenameGroup("bob", "g1", "New Name"), utils.KindForbidden)
	assertKind(t, service.DeleteGroup("bob", "g1"), utils.KindForbidden)
	assert.Equal(t, "Flat", store.groups["g1"].Name)

	require.NoError(t, service.RenameGroup("alice", "g1", "New Name"))
	assert.Equal(t, "New Name", store.groups["g1"].Name)

	require.NoError(t, service.DeleteGroup("alice", "g1"))
	_, ok := store.groups["g1"]
	assert.False(t, ok)
}

func TestGroupService_GetGroupDetailsRequiresMembership(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")

	details, err := service.GetGroupDetails("bob", "g1")
	require.NoError(t, err)
	assert.Len(t, details.Members, 2)

	_, err = service.GetGroupDetails("carol", "g1")
	assertKind(t, err, utils.KindForbidden)
}

func TestGroupService_AddMemberInvitesRegisteredUser(t *testing.T) {
	store, service, email := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice")

	outcome, err := service.AddMember("alice", "g1", "Bob@Example.com")
	require.NoError(t, err)
	assert.Equal(t, utils.InviteOutcomeRegistered, outcome)
	assert.Empty(t, email.sentTo)

	// bob is invited, not yet a member
	member, _ := store.IsMember("g1", "bob")
	assert.False(t, member)

	pending, _ := store.HasPendingInvitation("g1", "bob")
	assert.True(t, pending)

	notifications, _ := store.ListNotifications("bob")
	require.Len(t, notifications, 1)
	assert.Equal(t, utils.NotificationTypeInvite, notifications[0].Type)
}

func TestGroupService_AddMemberEmailsUnregisteredUser(t *testing.T) {
	store, service, email := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice")

	outcome, err := service.AddMember("alice", "g1", "stranger@example.com")
	require.NoError(t, err)
	assert.Equal(t, utils.InviteOutcomeEmail, outcome)
	assert.Equal(t, []string{"stranger@example.com"}, email.sentTo)
}

func TestGroupService_AddMemberIsCreatorOnly(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")

	_, err := service.AddMember("bob", "g1", "carol@example.com")
	assertKind(t, err, utils.KindForbidden)
}

func TestGroupService_AddMemberRejectsExistingMember(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")

	_, err := service.AddMember("alice", "g1", "bob@example.com")
	assertKind(t, err, utils.KindAlreadyMember)
}

func TestGroupService_AddMemberRejectsDuplicateInvite(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice")

	_, err := service.AddMember("alice", "g1", "bob@example.com")
	require.NoError(t, err)

	_, err = service.AddMember("alice", "g1", "bob@example.com")
	assertKind(t, err, utils.KindDuplicateInvite)
}

func TestGroupService_AddMemberEnforcesMemberQuota(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")
	// The limit comes from the creator's profile.
	store.profiles["alice"].MaxMembersPerGroup = 2

	_, err := service.AddMember("alice", "g1", "carol@example.com")
	assertKind(t, err, utils.KindMemberLimitExceeded)

	count, _ := store.CountMembers("g1")
	assert.Equal(t, 2, count)
	pending, _ := store.HasPendingInvitation("g1", "carol")
	assert.False(t, pending)
}

func TestGroupService_RemoveMember(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")

	require.NoError(t, service.RemoveMember("alice", "g1", "bob"))
	member, _ := store.IsMember("g1", "bob")
	assert.False(t, member)
}

func TestGroupService_RemoveMemberRejectsSelf(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob")

	// Even the creator cannot remove themselves.
	assertKind(t, service.RemoveMember("alice", "g1", "alice"), utils.KindCannotRemoveSelf)

	member, _ := store.IsMember("g1", "alice")
	assert.True(t, member)
}

func TestGroupService_RemoveMemberIsCreatorOnly(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice", "bob", "carol")

	assertKind(t, service.RemoveMember("bob", "g1", "carol"), utils.KindForbidden)

	member, _ := store.IsMember("g1", "carol")
	assert.True(t, member)
}

func TestGroupService_RemoveUnknownMember(t *testing.T) {
	store, service, _ := groupFixture(t)
	store.seedGroup("g1", "Flat", "alice")

	assertKind(t, service.RemoveMember("alice", "g1", "bob"), utils.KindNotFound)
}
