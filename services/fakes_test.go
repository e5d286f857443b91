// services/fakes_test.go
package services

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// fakeStore is an in-memory stand-in for the repository layer. It
// implements every store interface the services consume so one instance
// can back a full service graph in tests.
type fakeStore struct {
	profiles      map[string]*models.Profile
	groups        map[string]*models.Group
	members       map[string]map[string]bool
	expenses      map[string]*models.Expense
	splits        map[string][]models.ExpenseSplit
	settlements   map[string]*models.Settlement
	invitations   map[string]*models.Invitation
	notifications map[string]*models.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		profiles:      make(map[string]*models.Profile),
		groups:        make(map[string]*models.Group),
		members:       make(map[string]map[string]bool),
		expenses:      make(map[string]*models.Expense),
		splits:        make(map[string][]models.ExpenseSplit),
		settlements:   make(map[string]*models.Settlement),
		invitations:   make(map[string]*models.Invitation),
		notifications: make(map[string]*models.Notification),
	}
}

func (f *fakeStore) seedProfile(id, email, fullName string) *models.Profile {
	profile := &models.Profile{
		ID:                 id,
		Email:              email,
		FullName:           fullName,
		SubscriptionTier:   utils.TierFree,
		MaxGroups:          utils.FreeMaxGroups,
		MaxMembersPerGroup: utils.FreeMaxMembersPerGroup,
	}
	f.profiles[id] = profile
	return profile
}

func (f *fakeStore) seedGroup(id, name, creatorID string, memberIDs ...string) *models.Group {
	group := &models.Group{
		ID:        id,
		Name:      name,
		CreatedBy: creatorID,
		CreatedAt: time.Now(),
	}
	f.groups[id] = group
	f.members[id] = map[string]bool{creatorID: true}
	for _, memberID := range memberIDs {
		f.members[id][memberID] = true
	}
	return group
}

// GroupStore

func (f *fakeStore) CreateGroup(group *models.Group) error {
	stored := *group
	stored.CreatedAt = time.Now()
	f.groups[group.ID] = &stored
	f.members[group.ID] = map[string]bool{group.CreatedBy: true}
	return nil
}

func (f *fakeStore) GetGroupByID(groupID string) (*models.Group, error) {
	group, ok := f.groups[groupID]
	if !ok {
		return nil, nil
	}
	copied := *group
	return &copied, nil
}

func (f *fakeStore) ListGroupsForUser(userID string) ([]models.Group, error) {
	var groups []models.Group
	for groupID, memberSet := range f.members {
		if memberSet[userID] {
			groups = append(groups, *f.groups[groupID])
		}
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (f *fakeStore) GetGroupMembers(groupID string) ([]models.Profile, error) {
	var members []models.Profile
	for userID := range f.members[groupID] {
		if profile, ok := f.profiles[userID]; ok {
			members = append(members, *profile)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (f *fakeStore) RenameGroup(groupID, name string) error {
	if group, ok := f.groups[groupID]; ok {
		group.Name = name
	}
	return nil
}

func (f *fakeStore) DeleteGroup(groupID string) error {
	delete(f.groups, groupID)
	delete(f.members, groupID)
	for id, expense := range f.expenses {
		if expense.GroupID == groupID {
			delete(f.expenses, id)
			delete(f.splits, id)
		}
	}
	for id, settlement := range f.settlements {
		if settlement.GroupID == groupID {
			delete(f.settlements, id)
		}
	}
	for id, invitation := range f.invitations {
		if invitation.GroupID == groupID {
			delete(f.invitations, id)
		}
	}
	return nil
}

func (f *fakeStore) RemoveMember(groupID, userID string) error {
	delete(f.members[groupID], userID)
	return nil
}

func (f *fakeStore) IsMember(groupID, userID string) (bool, error) {
	return f.members[groupID][userID], nil
}

func (f *fakeStore) CountMembers(groupID string) (int, error) {
	return len(f.members[groupID]), nil
}

// ProfileStore

func (f *fakeStore) UpsertProfile(profile *models.Profile) error {
	if existing, ok := f.profiles[profile.ID]; ok {
		existing.Email = profile.Email
		existing.FullName = profile.FullName
		existing.AvatarURL = profile.AvatarURL
		return nil
	}
	stored := *profile
	f.profiles[profile.ID] = &stored
	return nil
}

func (f *fakeStore) GetProfileByID(userID string) (*models.Profile, error) {
	profile, ok := f.profiles[userID]
	if !ok {
		return nil, nil
	}
	copied := *profile
	return &copied, nil
}

func (f *fakeStore) GetProfileByEmail(email string) (*models.Profile, error) {
	for _, profile := range f.profiles {
		if profile.Email == email {
			copied := *profile
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) SetSubscription(userID, tier string, maxGroups, maxMembersPerGroup int) error {
	if profile, ok := f.profiles[userID]; ok {
		profile.SubscriptionTier = tier
		profile.MaxGroups = maxGroups
		profile.MaxMembersPerGroup = maxMembersPerGroup
	}
	return nil
}

func (f *fakeStore) CountGroupsCreatedBy(userID string) (int, error) {
	count := 0
	for _, group := range f.groups {
		if group.CreatedBy == userID {
			count++
		}
	}
	return count, nil
}

// ExpenseStore

func (f *fakeStore) StoreExpense(expense *models.Expense, splits []models.ExpenseSplit) error {
	stored := *expense
	stored.CreatedAt = time.Now()
	f.expenses[expense.ID] = &stored
	f.splits[expense.ID] = append([]models.ExpenseSplit(nil), splits...)
	return nil
}

func (f *fakeStore) UpdateExpense(expense *models.Expense, splits []models.ExpenseSplit) error {
	stored := *expense
	f.expenses[expense.ID] = &stored
	f.splits[expense.ID] = append([]models.ExpenseSplit(nil), splits...)
	return nil
}

func (f *fakeStore) GetExpenseByID(expenseID string) (*models.Expense, error) {
	expense, ok := f.expenses[expenseID]
	if !ok {
		return nil, nil
	}
	copied := *expense
	copied.Splits = append([]models.ExpenseSplit(nil), f.splits[expenseID]...)
	return &copied, nil
}

func (f *fakeStore) ListGroupExpenses(groupID string) ([]models.Expense, error) {
	var expenses []models.Expense
	for id, expense := range f.expenses {
		if expense.GroupID != groupID {
			continue
		}
		copied := *expense
		copied.Splits = append([]models.ExpenseSplit(nil), f.splits[id]...)
		if payer, ok := f.profiles[expense.PayerID]; ok {
			copied.PayerName = payer.FullName
		}
		expenses = append(expenses, copied)
	}
	sort.Slice(expenses, func(i, j int) bool {
		return expenses[i].CreatedAt.After(expenses[j].CreatedAt)
	})
	return expenses, nil
}

func (f *fakeStore) DeleteExpense(expenseID string) error {
	delete(f.expenses, expenseID)
	delete(f.splits, expenseID)
	return nil
}

func (f *fakeStore) SumOwedToUser(userID, groupID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for expenseID, expense := range f.expenses {
		if expense.PayerID != userID {
			continue
		}
		if groupID != "" && expense.GroupID != groupID {
			continue
		}
		for _, split := range f.splits[expenseID] {
			if split.UserID != userID {
				total = total.Add(split.AmountOwed)
			}
		}
	}
	return total, nil
}

func (f *fakeStore) SumOwedByUser(userID, groupID string) (decimal.Decimal, error) {
	total := decimal.Zero
	for expenseID, expense := range f.expenses {
		if expense.PayerID == userID {
			continue
		}
		if groupID != "" && expense.GroupID != groupID {
			continue
		}
		for _, split := range f.splits[expenseID] {
			if split.UserID == userID {
				total = total.Add(split.AmountOwed)
			}
		}
	}
	return total, nil
}

// SettlementStore

func (f *fakeStore) CreateSettlement(settlement *models.Settlement) error {
	stored := *settlement
	stored.CreatedAt = time.Now()
	f.settlements[settlement.ID] = &stored
	return nil
}

func (f *fakeStore) GetSettlementByID(settlementID string) (*models.Settlement, error) {
	settlement, ok := f.settlements[settlementID]
	if !ok {
		return nil, nil
	}
	copied := *settlement
	return &copied, nil
}

func (f *fakeStore) UpdateStatusIfPending(settlementID, status string) (bool, error) {
	settlement, ok := f.settlements[settlementID]
	if !ok || settlement.Status != utils.StatusPending {
		return false, nil
	}
	settlement.Status = status
	return true, nil
}

func (f *fakeStore) ListGroupSettlements(groupID string) ([]models.Settlement, error) {
	var settlements []models.Settlement
	for _, settlement := range f.settlements {
		if settlement.GroupID != groupID {
			continue
		}
		copied := *settlement
		if sender, ok := f.profiles[settlement.SenderID]; ok {
			copied.SenderName = sender.FullName
		}
		if receiver, ok := f.profiles[settlement.ReceiverID]; ok {
			copied.ReceiverName = receiver.FullName
		}
		settlements = append(settlements, copied)
	}
	sort.Slice(settlements, func(i, j int) bool {
		return settlements[i].CreatedAt.After(settlements[j].CreatedAt)
	})
	return settlements, nil
}

func (f *fakeStore) SumSent(userID, groupID string) (decimal.Decimal, error) {
	return f.sumAccepted(groupID, func(s *models.Settlement) bool {
		return s.SenderID == userID
	}), nil
}

func (f *fakeStore) SumReceived(userID, groupID string) (decimal.Decimal, error) {
	return f.sumAccepted(groupID, func(s *models.Settlement) bool {
		return s.ReceiverID == userID
	}), nil
}

func (f *fakeStore) sumAccepted(groupID string, match func(*models.Settlement) bool) decimal.Decimal {
	total := decimal.Zero
	for _, settlement := range f.settlements {
		if settlement.Status != utils.StatusAccepted || !match(settlement) {
			continue
		}
		if groupID != "" && settlement.GroupID != groupID {
			continue
		}
		total = total.Add(settlement.Amount)
	}
	return total
}

func (f *fakeStore) GetGroupMemberTotals(groupID string) ([]models.MemberBalance, error) {
	var balances []models.MemberBalance
	for userID := range f.members[groupID] {
		balance := models.MemberBalance{
			UserID:    userID,
			TotalPaid: decimal.Zero,
			TotalOwes: decimal.Zero,
			Sent:      decimal.Zero,
			Received:  decimal.Zero,
		}
		if profile, ok := f.profiles[userID]; ok {
			balance.FullName = profile.FullName
		}
		for expenseID, expense := range f.expenses {
			if expense.GroupID != groupID {
				continue
			}
			if expense.PayerID == userID {
				balance.TotalPaid = balance.TotalPaid.Add(expense.Amount)
			}
			for _, split := range f.splits[expenseID] {
				if split.UserID == userID {
					balance.TotalOwes = balance.TotalOwes.Add(split.AmountOwed)
				}
			}
		}
		balance.Sent = f.sumAccepted(groupID, func(s *models.Settlement) bool {
			return s.SenderID == userID
		})
		balance.Received = f.sumAccepted(groupID, func(s *models.Settlement) bool {
			return s.ReceiverID == userID
		})
		balances = append(balances, balance)
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].UserID < balances[j].UserID })
	return balances, nil
}

// InvitationStore and NotificationStore

func (f *fakeStore) CreateInvitation(invitation *models.Invitation, notification *models.Notification) error {
	storedInvitation := *invitation
	storedInvitation.CreatedAt = time.Now()
	f.invitations[invitation.ID] = &storedInvitation

	storedNotification := *notification
	storedNotification.CreatedAt = time.Now()
	f.notifications[notification.ID] = &storedNotification
	return nil
}

func (f *fakeStore) HasPendingInvitation(groupID, inviteeID string) (bool, error) {
	for _, invitation := range f.invitations {
		if invitation.GroupID == groupID && invitation.InviteeID == inviteeID &&
			invitation.Status == utils.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) GetInvitationForInvitee(invitationID, inviteeID string) (*models.Invitation, error) {
	invitation, ok := f.invitations[invitationID]
	if !ok || invitation.InviteeID != inviteeID {
		return nil, nil
	}
	copied := *invitation
	return &copied, nil
}

func (f *fakeStore) ResolveInvitation(invitation *models.Invitation, status string) error {
	stored, ok := f.invitations[invitation.ID]
	if !ok {
		return nil
	}
	if status == utils.StatusAccepted {
		if f.members[invitation.GroupID] == nil {
			f.members[invitation.GroupID] = make(map[string]bool)
		}
		f.members[invitation.GroupID][invitation.InviteeID] = true
	}
	stored.Status = status
	for id, notification := range f.notifications {
		if notification.ReferenceID == invitation.ID && notification.Type == utils.NotificationTypeInvite {
			delete(f.notifications, id)
		}
	}
	return nil
}

func (f *fakeStore) CreateNotification(notification *models.Notification) error {
	stored := *notification
	stored.CreatedAt = time.Now()
	f.notifications[notification.ID] = &stored
	return nil
}

func (f *fakeStore) PruneRead(userID string, readBefore time.Time) error {
	for id, notification := range f.notifications {
		if notification.UserID != userID || !notification.IsRead || notification.ReadAt == nil {
			continue
		}
		if notification.ReadAt.Before(readBefore) {
			delete(f.notifications, id)
		}
	}
	return nil
}

func (f *fakeStore) ListNotifications(userID string) ([]models.Notification, error) {
	var notifications []models.Notification
	for _, notification := range f.notifications {
		if notification.UserID == userID {
			notifications = append(notifications, *notification)
		}
	}
	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}

func (f *fakeStore) MarkAsRead(notificationID, userID string) error {
	if notification, ok := f.notifications[notificationID]; ok && notification.UserID == userID {
		now := time.Now()
		notification.IsRead = true
		notification.ReadAt = &now
	}
	return nil
}

func (f *fakeStore) DeleteNotification(notificationID, userID string) error {
	if notification, ok := f.notifications[notificationID]; ok && notification.UserID == userID {
		delete(f.notifications, notificationID)
	}
	return nil
}

// fakeEmailSender records invite mail instead of dialing SMTP
type fakeEmailSender struct {
	sentTo []string
}

func (f *fakeEmailSender) SendInvite(toEmail, groupName, inviterName string) error {
	f.sentTo = append(f.sentTo, toEmail)
	return nil
}

// newServiceGraph wires a full service graph over one fake store
func newServiceGraph(store *fakeStore) (*GroupService, *ExpenseService, *SettlementService, *BalanceService, *NotificationService, *fakeEmailSender) {
	guard := NewAuthorizationService(store, store)
	email := &fakeEmailSender{}
	notificationService := NewNotificationService(store)
	groupService := NewGroupService(store, store, store, guard, email)
	expenseService := NewExpenseService(store, NewSplitService(), guard, notificationService)
	settlementService := NewSettlementService(store, guard)
	balanceService := NewBalanceService(store, store)
	return groupService, expenseService, settlementService, balanceService, notificationService, email
}
