// handlers/profile_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// SyncProfile upserts the caller's profile from their token claims
func SyncProfile(c *gin.Context) {
	profile, err := handlerServices.ProfileService.SyncProfile(
		middleware.UserID(c),
		c.GetString(middleware.ContextUserEmail),
		c.GetString(middleware.ContextUserName),
		c.GetString(middleware.ContextAvatarURL),
	)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, profile)
}

// GetProfile returns the caller's profile and quota limits
func GetProfile(c *gin.Context) {
	profile, err := handlerServices.ProfileService.GetProfile(middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, profile)
}

// UpgradeSubscription moves the caller to the premium tier
func UpgradeSubscription(c *gin.Context) {
	userID := middleware.UserID(c)
	if err := handlerServices.ProfileService.UpgradeToPremium(userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	profile, err := handlerServices.ProfileService.GetProfile(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, profile)
}

// DowngradeSubscription moves the caller back to the free tier
func DowngradeSubscription(c *gin.Context) {
	userID := middleware.UserID(c)
	if err := handlerServices.ProfileService.DowngradeToFree(userID); err != nil {
		utils.HandleError(c, err)
		return
	}

	profile, err := handlerServices.ProfileService.GetProfile(userID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, profile)
}
