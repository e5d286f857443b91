// services/notification_service.go
package services

import (
	"time"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// NotificationStore provides notification and invitation persistence
type NotificationStore interface {
	CreateNotification(notification *models.Notification) error
	PruneRead(userID string, readBefore time.Time) error
	ListNotifications(userID string) ([]models.Notification, error)
	MarkAsRead(notificationID, userID string) error
	DeleteNotification(notificationID, userID string) error
	GetInvitationForInvitee(invitationID, inviteeID string) (*models.Invitation, error)
	ResolveInvitation(invitation *models.Invitation, status string) error
}

// NotificationService is the side-effect boundary for invite and expense
// activity, and handles invitation decisions.
type NotificationService struct {
	notifications NotificationStore
	now           func() time.Time
}

// NewNotificationService creates a new notification service
func NewNotificationService(notifications NotificationStore) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		now:           time.Now,
	}
}

// ListNotifications returns the user's notifications, newest first. Read
// notifications past the retention window are purged first: cleanup is
// triggered by reads instead of a background job, trading slightly stale
// storage for zero scheduling.
func (s *NotificationService) ListNotifications(userID string) ([]models.Notification, error) {
	cutoff := s.now().AddDate(0, 0, -utils.NotificationRetentionDays)
	if err := s.notifications.PruneRead(userID, cutoff); err != nil {
		// Retention is cosmetic; a failed prune never blocks the read.
		utils.Logger.WithError(err).Warn("failed to prune read notifications")
	}

	notifications, err := s.notifications.ListNotifications(userID)
	if err != nil {
		return nil, utils.NewStoreUnavailableError(err)
	}
	return notifications, nil
}

// MarkAsRead marks one of the user's notifications as read
func (s *NotificationService) MarkAsRead(userID, notificationID string) error {
	if err := s.notifications.MarkAsRead(notificationID, userID); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// DeleteNotification removes one of the user's notifications
func (s *NotificationService) DeleteNotification(userID, notificationID string) error {
	if err := s.notifications.DeleteNotification(notificationID, userID); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// RespondToInvitation finalizes a group invitation for the invitee.
// Acceptance creates the membership; either decision is terminal and
// removes the invite notification.
func (s *NotificationService) RespondToInvitation(userID, invitationID, status string) error {
	if status != utils.StatusAccepted && status != utils.StatusRejected {
		return utils.NewValidationError("status must be accepted or rejected")
	}

	invitation, err := s.notifications.GetInvitationForInvitee(invitationID, userID)
	if err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	if invitation == nil {
		return utils.NewNotFoundError(utils.ErrInvitationNotFound)
	}
	if invitation.Status != utils.StatusPending {
		return utils.NewInvalidTransitionError(invitation.Status)
	}

	if err := s.notifications.ResolveInvitation(invitation, status); err != nil {
		return utils.NewStoreUnavailableError(err)
	}
	return nil
}

// CreateNotification records a notification for a user
func (s *NotificationService) CreateNotification(userID, notificationType, referenceID, message string) error {
	return s.notifications.CreateNotification(&models.Notification{
		ID:          utils.GenerateID(),
		UserID:      userID,
		Type:        notificationType,
		ReferenceID: referenceID,
		Message:     message,
	})
}
