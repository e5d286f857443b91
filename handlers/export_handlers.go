// handlers/export_handlers.go
package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// ExportGroupReport streams the group's ledger as an Excel download
func ExportGroupReport(c *gin.Context) {
	excelFile, filename, err := handlerServices.ExportService.ExportGroupReport(middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		utils.Logger.WithError(err).Error("failed to write Excel file to response")
		utils.HandleError(c, utils.NewInternalError("Failed to generate Excel file"))
		return
	}
}
