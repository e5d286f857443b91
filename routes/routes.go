package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/handlers"
	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
)

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, hs *handlers.HandlerServices) {
	handlers.InitHandlers(hs)

	// API v1 routes, all behind bearer auth
	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthRequired())
	{
		// Profile endpoints
		v1.POST("/profile/sync", handlers.SyncProfile)
		v1.GET("/profile", handlers.GetProfile)
		v1.POST("/profile/upgrade", handlers.UpgradeSubscription)
		v1.POST("/profile/downgrade", handlers.DowngradeSubscription)

		// Group endpoints
		v1.POST("/groups", handlers.CreateGroup)
		v1.GET("/groups", handlers.ListGroups)
		v1.GET("/groups/:groupId", handlers.GetGroupDetails)
		v1.PATCH("/groups/:groupId", handlers.RenameGroup)
		v1.DELETE("/groups/:groupId", handlers.DeleteGroup)
		v1.POST("/groups/:groupId/members", handlers.AddMember)
		v1.DELETE("/groups/:groupId/members/:memberId", handlers.RemoveMember)

		// Expense endpoints
		v1.POST("/expenses", handlers.CreateExpense)
		v1.PUT("/expenses/:expenseId", handlers.UpdateExpense)
		v1.DELETE("/expenses/:expenseId", handlers.DeleteExpense)
		v1.GET("/groups/:groupId/expenses", handlers.ListGroupExpenses)

		// Balance endpoints
		v1.GET("/balance", handlers.GetUserBalance)
		v1.GET("/groups/:groupId/balances", handlers.GetGroupBalances)

		// Settlement endpoints
		v1.POST("/settlements", handlers.CreateSettlement)
		v1.PATCH("/settlements/:settlementId", handlers.UpdateSettlement)
		v1.GET("/groups/:groupId/settlements", handlers.ListGroupSettlements)

		// Notification and invitation endpoints
		v1.GET("/notifications", handlers.ListNotifications)
		v1.PATCH("/notifications/:notificationId/read", handlers.MarkNotificationRead)
		v1.DELETE("/notifications/:notificationId", handlers.DeleteNotification)
		v1.POST("/invitations/:invitationId/respond", handlers.RespondInvitation)

		// Export endpoint
		v1.GET("/groups/:groupId/export", handlers.ExportGroupReport)
	}
}
