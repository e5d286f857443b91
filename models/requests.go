// models/requests.go
package models

import "github.com/shopspring/decimal"

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	Name    string `json:"name" binding:"required"`
	IconURL string `json:"iconUrl"`
}

// RenameGroupRequest represents the request body for renaming a group
type RenameGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// AddMemberRequest represents the request body for inviting a member by email
type AddMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AddMemberResponse reports which invite path was taken
type AddMemberResponse struct {
	Outcome string `json:"outcome"`
}

// SplitInput represents one caller-supplied split share
type SplitInput struct {
	UserID     string          `json:"userId" binding:"required"`
	AmountOwed decimal.Decimal `json:"amountOwed"`
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	GroupID      string          `json:"groupId" binding:"required"`
	Description  string          `json:"description" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	PayerID      string          `json:"payerId" binding:"required"`
	SplitType    string          `json:"splitType"`
	Participants []string        `json:"participants"`
	Splits       []SplitInput    `json:"splits"`
}

// UpdateExpenseRequest represents the request body for editing an expense.
// The split set is replaced wholesale.
type UpdateExpenseRequest struct {
	Description  string          `json:"description" binding:"required"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	PayerID      string          `json:"payerId" binding:"required"`
	SplitType    string          `json:"splitType"`
	Participants []string        `json:"participants"`
	Splits       []SplitInput    `json:"splits"`
}

// CreateSettlementRequest represents the request body for proposing a settlement
type CreateSettlementRequest struct {
	GroupID    string          `json:"groupId" binding:"required"`
	ReceiverID string          `json:"receiverId" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// UpdateSettlementRequest represents the accept/reject decision
type UpdateSettlementRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// RespondInvitationRequest represents the invitee's accept/reject decision
type RespondInvitationRequest struct {
	Status string `json:"status" binding:"required,oneof=accepted rejected"`
}

// GroupDetailsResponse bundles a group with its member profiles
type GroupDetailsResponse struct {
	Group   *Group    `json:"group"`
	Members []Profile `json:"members"`
}
