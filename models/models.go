// models/models.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Profile represents a registered user and their subscription limits.
// One profile per authenticated user, upserted on each session sync.
type Profile struct {
	ID                 string `json:"id" db:"id"`
	Email              string `json:"email" db:"email"`
	FullName           string `json:"fullName" db:"full_name"`
	AvatarURL          string `json:"avatarUrl,omitempty" db:"avatar_url"`
	SubscriptionTier   string `json:"subscriptionTier" db:"subscription_tier"`
	MaxGroups          int    `json:"maxGroups" db:"max_groups"`
	MaxMembersPerGroup int    `json:"maxMembersPerGroup" db:"max_members_per_group"`
}

// Group represents a group of people sharing expenses.
// The creator is immutable and holds exclusive authority over the group
// lifecycle, membership and settlement approvals.
type Group struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	IconURL     string    `json:"iconUrl,omitempty" db:"icon_url"`
	CreatedBy   string    `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	MemberCount int       `json:"memberCount,omitempty" db:"member_count"`
}

// Expense represents a shared expense within a group
type Expense struct {
	ID          string          `json:"id" db:"id"`
	GroupID     string          `json:"groupId" db:"group_id"`
	Description string          `json:"description" db:"description"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	PayerID     string          `json:"payerId" db:"payer_id"`
	SplitType   string          `json:"splitType" db:"split_type"`
	CreatedBy   string          `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	PayerName   string          `json:"payerName,omitempty" db:"payer_name"`
	Splits      []ExpenseSplit  `json:"splits,omitempty"`
}

// ExpenseSplit represents one participant's owed share of an expense
type ExpenseSplit struct {
	ExpenseID  string          `json:"expenseId" db:"expense_id"`
	UserID     string          `json:"userId" db:"user_id"`
	AmountOwed decimal.Decimal `json:"amountOwed" db:"amount_owed"`
}

// Settlement represents a claimed out-of-band payment between two members.
// Only accepted settlements affect balance computation.
type Settlement struct {
	ID           string          `json:"id" db:"id"`
	GroupID      string          `json:"groupId" db:"group_id"`
	SenderID     string          `json:"senderId" db:"sender_id"`
	ReceiverID   string          `json:"receiverId" db:"receiver_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Status       string          `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	SenderName   string          `json:"senderName,omitempty" db:"sender_name"`
	ReceiverName string          `json:"receiverName,omitempty" db:"receiver_name"`
}

// Invitation represents a pending group invite for a registered user.
// Terminal after one accept/reject decision.
type Invitation struct {
	ID        string    `json:"id" db:"id"`
	GroupID   string    `json:"groupId" db:"group_id"`
	InviterID string    `json:"inviterId" db:"inviter_id"`
	InviteeID string    `json:"inviteeId" db:"invitee_id"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Notification represents an in-app notification for a user
type Notification struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"userId" db:"user_id"`
	Type        string     `json:"type" db:"type"`
	ReferenceID string     `json:"referenceId" db:"reference_id"`
	Message     string     `json:"message" db:"message"`
	IsRead      bool       `json:"isRead" db:"is_read"`
	ReadAt      *time.Time `json:"readAt,omitempty" db:"read_at"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Balance represents a user's net position, both values non-negative
type Balance struct {
	Owed decimal.Decimal `json:"owed"`
	Owes decimal.Decimal `json:"owes"`
}

// MemberBalance represents one group member's aggregate totals
type MemberBalance struct {
	UserID    string          `json:"userId"`
	FullName  string          `json:"fullName"`
	TotalPaid decimal.Decimal `json:"totalPaid"`
	TotalOwes decimal.Decimal `json:"totalOwes"`
	Sent      decimal.Decimal `json:"sentPayments"`
	Received  decimal.Decimal `json:"receivedPayments"`
}
