// handlers/expense_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// CreateExpense records an expense with its splits
func CreateExpense(c *gin.Context) {
	var request models.CreateExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.CreateExpense(middleware.UserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// UpdateExpense edits an expense and replaces its splits
func UpdateExpense(c *gin.Context) {
	var request models.UpdateExpenseRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := handlerServices.ExpenseService.UpdateExpense(middleware.UserID(c), c.Param("expenseId"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expense)
}

// DeleteExpense removes an expense and its splits
func DeleteExpense(c *gin.Context) {
	if err := handlerServices.ExpenseService.DeleteExpense(middleware.UserID(c), c.Param("expenseId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// ListGroupExpenses returns a group's expenses, newest first
func ListGroupExpenses(c *gin.Context) {
	expenses, err := handlerServices.ExpenseService.ListGroupExpenses(middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, expenses)
}

// GetUserBalance returns the caller's overall net position, or their
// position within one group when the group query parameter is set.
func GetUserBalance(c *gin.Context) {
	balance, err := handlerServices.BalanceService.GetUserBalance(middleware.UserID(c), c.Query("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balance)
}

// GetGroupBalances returns per-member totals for the group screen
func GetGroupBalances(c *gin.Context) {
	groupID := c.Param("groupId")
	if _, err := handlerServices.Guard.RequireMember(groupID, middleware.UserID(c)); err != nil {
		utils.HandleError(c, err)
		return
	}

	balances, err := handlerServices.BalanceService.GetGroupBalances(groupID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, balances)
}
