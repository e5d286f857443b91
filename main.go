// main.go
package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/sickmonk1434-ops/Xpense-Share/handlers"
	"github.com/sickmonk1434-ops/Xpense-Share/repository"
	"github.com/sickmonk1434-ops/Xpense-Share/routes"
	"github.com/sickmonk1434-ops/Xpense-Share/services"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		utils.Logger.Warn(".env file not found, using environment variables")
	}

	utils.InitLogger()

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Xpense Share API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		utils.Logger.WithError(err).Warn("failed to initialize New Relic")
	}

	// Initialize database
	if err := repository.InitDB(); err != nil {
		utils.Logger.WithError(err).Fatal("failed to initialize database")
	}
	defer repository.CloseDB()

	// Repositories
	profileRepo := repository.NewProfileRepository()
	groupRepo := repository.NewGroupRepository()
	expenseRepo := repository.NewExpenseRepository()
	settlementRepo := repository.NewSettlementRepository()
	notificationRepo := repository.NewNotificationRepository()

	// Services
	guard := services.NewAuthorizationService(groupRepo, profileRepo)
	splitService := services.NewSplitService()
	notificationService := services.NewNotificationService(notificationRepo)
	balanceService := services.NewBalanceService(expenseRepo, settlementRepo)
	expenseService := services.NewExpenseService(expenseRepo, splitService, guard, notificationService)
	settlementService := services.NewSettlementService(settlementRepo, guard)
	groupService := services.NewGroupService(groupRepo, notificationRepo, profileRepo, guard, services.NewEmailService())
	profileService := services.NewProfileService(profileRepo)
	exportService := services.NewExportService(expenseRepo, settlementRepo, balanceService, guard)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, &handlers.HandlerServices{
		ProfileService:      profileService,
		GroupService:        groupService,
		ExpenseService:      expenseService,
		BalanceService:      balanceService,
		SettlementService:   settlementService,
		NotificationService: notificationService,
		ExportService:       exportService,
		Guard:               guard,
	})

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	utils.Logger.WithField("port", port).Info("server starting")
	if err := router.Run(":" + port); err != nil {
		utils.Logger.WithError(err).Fatal("failed to start server")
	}
}
