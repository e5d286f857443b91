// handlers/handlers.go
package handlers

import (
	"github.com/sickmonk1434-ops/Xpense-Share/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	ProfileService      *services.ProfileService
	GroupService        *services.GroupService
	ExpenseService      *services.ExpenseService
	BalanceService      *services.BalanceService
	SettlementService   *services.SettlementService
	NotificationService *services.NotificationService
	ExportService       *services.ExportService
	Guard               *services.AuthorizationService
}

var handlerServices *HandlerServices

// InitHandlers wires the handler layer to the service graph
func InitHandlers(hs *HandlerServices) {
	handlerServices = hs
}
