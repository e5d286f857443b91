// handlers/notification_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// ListNotifications returns the caller's notifications, newest first
func ListNotifications(c *gin.Context) {
	notifications, err := handlerServices.NotificationService.ListNotifications(middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, notifications)
}

// MarkNotificationRead marks one of the caller's notifications as read
func MarkNotificationRead(c *gin.Context) {
	if err := handlerServices.NotificationService.MarkAsRead(middleware.UserID(c), c.Param("notificationId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"read": true})
}

// DeleteNotification removes one of the caller's notifications
func DeleteNotification(c *gin.Context) {
	if err := handlerServices.NotificationService.DeleteNotification(middleware.UserID(c), c.Param("notificationId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// RespondInvitation records the invitee's accept or reject decision
func RespondInvitation(c *gin.Context) {
	var request models.RespondInvitationRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.NotificationService.RespondToInvitation(middleware.UserID(c), c.Param("invitationId"), request.Status); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"status": request.Status})
}
