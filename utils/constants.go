package utils

const (
	// Split policies
	SplitTypeEqual  = "equal"
	SplitTypeManual = "manual"

	// Settlement and invitation statuses
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"

	// Subscription tiers
	TierFree    = "free"
	TierPremium = "premium"

	// Per-tier quotas
	FreeMaxGroups             = 10
	FreeMaxMembersPerGroup    = 15
	PremiumMaxGroups          = 50
	PremiumMaxMembersPerGroup = 99

	// Notification types
	NotificationTypeInvite  = "invite"
	NotificationTypeExpense = "expense"

	// Read notifications older than this are purged on the next read
	NotificationRetentionDays = 2

	// Outcomes of the add-member flow
	InviteOutcomeRegistered = "invited_registered"
	InviteOutcomeEmail      = "invited_email"

	// HTTP status messages
	ErrInvalidRequest      = "Invalid request"
	ErrGroupNotFound       = "Group not found"
	ErrExpenseNotFound     = "Expense not found"
	ErrSettlementNotFound  = "Settlement not found"
	ErrInvitationNotFound  = "Invitation not found"
	ErrProfileNotFound     = "Profile not found"
	ErrFailedToStore       = "Failed to store data"
	ErrFailedToRetrieve    = "Failed to retrieve data"
)
