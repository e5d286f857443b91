// services/ledger_scenario_test.go
package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// TestLedger_LunchThenSettleUp walks a two-person group through the full
// lifecycle: record a shared lunch, check both balances, settle up, and
// check again.
func TestLedger_LunchThenSettleUp(t *testing.T) {
	store := newFakeStore()
	store.seedProfile("a", "a@example.com", "A")
	store.seedProfile("b", "b@example.com", "B")
	groupService, expenseService, settlementService, balanceService, _, _ := newServiceGraph(store)

	group, err := groupService.CreateGroup("a", &models.CreateGroupRequest{Name: "Lunch Club"})
	require.NoError(t, err)
	store.members[group.ID]["b"] = true

	// A records "Lunch", 20.00, paid by A, split equally with B.
	expense, err := expenseService.CreateExpense("a", &models.CreateExpenseRequest{
		GroupID:      group.ID,
		Description:  "Lunch",
		Amount:       decimal.RequireFromString("20.00"),
		PayerID:      "a",
		SplitType:    utils.SplitTypeEqual,
		Participants: []string{"a", "b"},
	})
	require.NoError(t, err)
	require.Len(t, expense.Splits, 2)
	for _, split := range expense.Splits {
		assert.True(t, split.AmountOwed.Equal(decimal.NewFromInt(10)))
	}

	balanceA, err := balanceService.GetUserBalance("a", group.ID)
	require.NoError(t, err)
	assert.True(t, balanceA.Owed.Equal(decimal.NewFromInt(10)))
	assert.True(t, balanceA.Owes.IsZero())

	balanceB, err := balanceService.GetUserBalance("b", group.ID)
	require.NoError(t, err)
	assert.True(t, balanceB.Owed.IsZero())
	assert.True(t, balanceB.Owes.Equal(decimal.NewFromInt(10)))

	// B proposes a settlement; pending has no balance effect.
	settlement, err := settlementService.CreateSettlement("b", &models.CreateSettlementRequest{
		GroupID:    group.ID,
		ReceiverID: "a",
		Amount:     decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	balanceB, err = balanceService.GetUserBalance("b", group.ID)
	require.NoError(t, err)
	assert.True(t, balanceB.Owes.Equal(decimal.NewFromInt(10)),
		"pending settlement must not change the balance")

	// A accepts; both sides are square.
	_, err = settlementService.UpdateStatus("a", settlement.ID, utils.StatusAccepted)
	require.NoError(t, err)

	balanceA, err = balanceService.GetUserBalance("a", group.ID)
	require.NoError(t, err)
	assert.True(t, balanceA.Owed.IsZero())
	assert.True(t, balanceA.Owes.IsZero())

	balanceB, err = balanceService.GetUserBalance("b", group.ID)
	require.NoError(t, err)
	assert.True(t, balanceB.Owed.IsZero())
	assert.True(t, balanceB.Owes.IsZero())
}

// TestLedger_MemberQuotaBlocksInvite covers inviting into a group that is
// already at the creator's member limit.
func TestLedger_MemberQuotaBlocksInvite(t *testing.T) {
	store := newFakeStore()
	store.seedProfile("a", "a@example.com", "A")
	store.seedProfile("b", "b@example.com", "B")
	store.seedProfile("c", "c@example.com", "C")
	store.profiles["a"].MaxMembersPerGroup = 2
	store.seedGroup("g1", "Full House", "a", "b")
	groupService, _, _, _, _, _ := newServiceGraph(store)

	_, err := groupService.AddMember("a", "g1", "c@example.com")
	assertKind(t, err, utils.KindMemberLimitExceeded)

	count, _ := store.CountMembers("g1")
	assert.Equal(t, 2, count, "membership count must be unchanged")
}

// TestLedger_MismatchedManualSplitWritesNothing covers the atomicity of a
// rejected expense: no expense and no splits may land.
func TestLedger_MismatchedManualSplitWritesNothing(t *testing.T) {
	store := newFakeStore()
	store.seedProfile("a", "a@example.com", "A")
	store.seedProfile("b", "b@example.com", "B")
	store.seedGroup("g1", "Flat", "a", "b")
	_, expenseService, _, _, _, _ := newServiceGraph(store)

	_, err := expenseService.CreateExpense("a", &models.CreateExpenseRequest{
		GroupID:     "g1",
		Description: "Dinner",
		Amount:      decimal.RequireFromString("30.00"),
		PayerID:     "a",
		SplitType:   utils.SplitTypeManual,
		Splits: []models.SplitInput{
			{UserID: "a", AmountOwed: decimal.RequireFromString("15.00")},
			{UserID: "b", AmountOwed: decimal.RequireFromString("14.00")},
		},
	})
	assertKind(t, err, utils.KindSplitMismatch)

	assert.Empty(t, store.expenses)
	assert.Empty(t, store.splits)
	notifications, _ := store.ListNotifications("b")
	assert.Empty(t, notifications)
}

// TestLedger_InviteAcceptExpenseFlow covers the invite-to-expense path: a
// registered user is invited, accepts, and then shows up in splits.
func TestLedger_InviteAcceptExpenseFlow(t *testing.T) {
	store := newFakeStore()
	store.seedProfile("a", "a@example.com", "A")
	store.seedProfile("b", "b@example.com", "B")
	groupService, expenseService, _, balanceService, notificationService, _ := newServiceGraph(store)

	group, err := groupService.CreateGroup("a", &models.CreateGroupRequest{Name: "Roadtrip"})
	require.NoError(t, err)

	outcome, err := groupService.AddMember("a", group.ID, "b@example.com")
	require.NoError(t, err)
	require.Equal(t, utils.InviteOutcomeRegistered, outcome)

	notifications, err := notificationService.ListNotifications("b")
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	invitationID := notifications[0].ReferenceID

	require.NoError(t, notificationService.RespondToInvitation("b", invitationID, utils.StatusAccepted))
	member, _ := store.IsMember(group.ID, "b")
	require.True(t, member)

	_, err = expenseService.CreateExpense("b", &models.CreateExpenseRequest{
		GroupID:      group.ID,
		Description:  "Fuel",
		Amount:       decimal.RequireFromString("50.00"),
		PayerID:      "b",
		Participants: []string{"a", "b"},
	})
	require.NoError(t, err)

	balanceA, err := balanceService.GetUserBalance("a", group.ID)
	require.NoError(t, err)
	assert.True(t, balanceA.Owes.Equal(decimal.NewFromInt(25)))
}
