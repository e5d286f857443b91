// repository/notification_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// NotificationRepository handles database operations for notifications
// and invitations.
type NotificationRepository struct {
	DB *sql.DB
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{
		DB: GetDB(),
	}
}

// CreateNotification inserts a notification row
func (r *NotificationRepository) CreateNotification(notification *models.Notification) error {
	_, err := r.DB.Exec(
		`INSERT INTO notifications (id, user_id, type, reference_id, message)
         VALUES ($1, $2, $3, $4, $5)`,
		notification.ID, notification.UserID, notification.Type,
		notification.ReferenceID, notification.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %v", err)
	}
	return nil
}

// PruneRead deletes the user's read notifications older than the cutoff
func (r *NotificationRepository) PruneRead(userID string, readBefore time.Time) error {
	_, err := r.DB.Exec(
		"DELETE FROM notifications WHERE user_id = $1 AND is_read = TRUE AND read_at < $2",
		userID, readBefore,
	)
	if err != nil {
		return fmt.Errorf("failed to prune notifications: %v", err)
	}
	return nil
}

// ListNotifications retrieves the user's notifications, newest first
func (r *NotificationRepository) ListNotifications(userID string) ([]models.Notification, error) {
	rows, err := r.DB.Query(
		`SELECT id, user_id, type, reference_id, message, is_read, read_at, created_at
         FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %v", err)
	}
	defer rows.Close()

	var notifications []models.Notification
	for rows.Next() {
		var notification models.Notification
		var readAt sql.NullTime
		if err := rows.Scan(&notification.ID, &notification.UserID, &notification.Type,
			&notification.ReferenceID, &notification.Message, &notification.IsRead,
			&readAt, &notification.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %v", err)
		}
		if readAt.Valid {
			notification.ReadAt = &readAt.Time
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

// MarkAsRead marks one of the user's notifications as read
func (r *NotificationRepository) MarkAsRead(notificationID, userID string) error {
	_, err := r.DB.Exec(
		"UPDATE notifications SET is_read = TRUE, read_at = now() WHERE id = $1 AND user_id = $2",
		notificationID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %v", err)
	}
	return nil
}

// DeleteNotification removes one of the user's notifications
func (r *NotificationRepository) DeleteNotification(notificationID, userID string) error {
	_, err := r.DB.Exec(
		"DELETE FROM notifications WHERE id = $1 AND user_id = $2",
		notificationID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %v", err)
	}
	return nil
}

// CreateInvitation saves an invitation and the invitee's notification
// atomically.
func (r *NotificationRepository) CreateInvitation(invitation *models.Invitation, notification *models.Notification) error {
	return ExecBatch([]Statement{
		{
			SQL: `INSERT INTO invitations (id, group_id, inviter_id, invitee_id, status)
                  VALUES ($1, $2, $3, $4, $5)`,
			Args: []interface{}{invitation.ID, invitation.GroupID, invitation.InviterID,
				invitation.InviteeID, invitation.Status},
		},
		{
			SQL: `INSERT INTO notifications (id, user_id, type, reference_id, message)
                  VALUES ($1, $2, $3, $4, $5)`,
			Args: []interface{}{notification.ID, notification.UserID, notification.Type,
				notification.ReferenceID, notification.Message},
		},
	})
}

// GetInvitationForInvitee retrieves an invitation addressed to the given user
func (r *NotificationRepository) GetInvitationForInvitee(invitationID, inviteeID string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := r.DB.QueryRow(
		`SELECT id, group_id, inviter_id, invitee_id, status, created_at
         FROM invitations WHERE id = $1 AND invitee_id = $2`,
		invitationID, inviteeID,
	).Scan(&invitation.ID, &invitation.GroupID, &invitation.InviterID,
		&invitation.InviteeID, &invitation.Status, &invitation.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %v", err)
	}
	return &invitation, nil
}

// HasPendingInvitation reports whether the invitee already has a pending
// invitation to the group.
func (r *NotificationRepository) HasPendingInvitation(groupID, inviteeID string) (bool, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM invitations WHERE group_id = $1 AND invitee_id = $2 AND status = $3",
		groupID, inviteeID, utils.StatusPending,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check invitations: %v", err)
	}
	return count > 0, nil
}

// ResolveInvitation finalizes an invitation decision atomically: status
// update, membership insert on acceptance, and removal of the invite
// notification.
func (r *NotificationRepository) ResolveInvitation(invitation *models.Invitation, status string) error {
	statements := []Statement{
		{
			SQL:  "UPDATE invitations SET status = $2 WHERE id = $1",
			Args: []interface{}{invitation.ID, status},
		},
	}
	if status == utils.StatusAccepted {
		statements = append([]Statement{
			{
				SQL:  "INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)",
				Args: []interface{}{invitation.GroupID, invitation.InviteeID},
			},
		}, statements...)
	}
	statements = append(statements, Statement{
		SQL:  "DELETE FROM notifications WHERE user_id = $1 AND type = $2 AND reference_id = $3",
		Args: []interface{}{invitation.InviteeID, utils.NotificationTypeInvite, invitation.ID},
	})
	return ExecBatch(statements)
}
