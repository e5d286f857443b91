// handlers/settlement_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// CreateSettlement proposes a pending settlement from the caller
func CreateSettlement(c *gin.Context) {
	var request models.CreateSettlementRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	settlement, err := handlerServices.SettlementService.CreateSettlement(middleware.UserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settlement)
}

// UpdateSettlement accepts or rejects a pending settlement, group creator only
func UpdateSettlement(c *gin.Context) {
	var request models.UpdateSettlementRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	settlement, err := handlerServices.SettlementService.UpdateStatus(middleware.UserID(c), c.Param("settlementId"), request.Status)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settlement)
}

// ListGroupSettlements returns a group's settlements for its members
func ListGroupSettlements(c *gin.Context) {
	settlements, err := handlerServices.SettlementService.ListGroupSettlements(middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, settlements)
}
