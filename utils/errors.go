package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Error kinds returned to clients alongside the message. Handlers and tests
// match on these rather than on message text.
const (
	KindSplitMismatch       = "split_mismatch"
	KindNoParticipants      = "no_participants"
	KindForbidden           = "forbidden"
	KindCannotRemoveSelf    = "cannot_remove_self"
	KindAlreadyMember       = "already_member"
	KindDuplicateInvite     = "duplicate_invite"
	KindGroupLimitExceeded  = "group_limit_exceeded"
	KindMemberLimitExceeded = "member_limit_exceeded"
	KindInvalidTransition   = "invalid_transition"
	KindNotFound            = "not_found"
	KindStoreUnavailable    = "store_unavailable"
	KindValidation          = "validation"
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

func NewSplitMismatchError(splitTotal, total decimal.Decimal) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindSplitMismatch,
		Message: fmt.Sprintf("the split amounts (%s) do not match the total expense (%s)", splitTotal.StringFixed(2), total.StringFixed(2)),
	}
}

func NewNoParticipantsError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindNoParticipants,
		Message: "at least one person must be involved in the expense",
	}
}

func NewForbiddenError(message string) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: message,
	}
}

func NewCannotRemoveSelfError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindCannotRemoveSelf,
		Message: "you cannot remove yourself from the group",
	}
}

func NewAlreadyMemberError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindAlreadyMember,
		Message: "this user is already a member of the group",
	}
}

func NewDuplicateInviteError() *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindDuplicateInvite,
		Message: "this user already has a pending invitation to the group",
	}
}

func NewGroupLimitExceededError(max int) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Kind:    KindGroupLimitExceeded,
		Message: fmt.Sprintf("group limit reached. Your limit is %d groups", max),
	}
}

func NewMemberLimitExceededError(max int) *AppError {
	return &AppError{
		Code:    http.StatusForbidden,
		Kind:    KindMemberLimitExceeded,
		Message: fmt.Sprintf("member limit reached. Max members per group is %d", max),
	}
}

func NewInvalidTransitionError(status string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Kind:    KindInvalidTransition,
		Message: fmt.Sprintf("settlement is already %s and can no longer be updated", status),
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewStoreUnavailableError(err error) *AppError {
	Logger.WithError(err).Error("store operation failed")
	return &AppError{
		Code:    http.StatusServiceUnavailable,
		Kind:    KindStoreUnavailable,
		Message: "the data store is temporarily unavailable, please try again",
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: message,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Kind:    KindStoreUnavailable,
		Message: message,
	}
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
		return
	}

	// Default to internal server error
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
