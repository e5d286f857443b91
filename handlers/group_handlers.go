// handlers/group_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sickmonk1434-ops/Xpense-Share/middleware"
	"github.com/sickmonk1434-ops/Xpense-Share/models"
	"github.com/sickmonk1434-ops/Xpense-Share/utils"
)

// CreateGroup handles the creation of a new group
func CreateGroup(c *gin.Context) {
	var request models.CreateGroupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	group, err := handlerServices.GroupService.CreateGroup(middleware.UserID(c), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, group)
}

// ListGroups returns every group the caller belongs to
func ListGroups(c *gin.Context) {
	groups, err := handlerServices.GroupService.ListGroups(middleware.UserID(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, groups)
}

// GetGroupDetails returns a group with its member profiles
func GetGroupDetails(c *gin.Context) {
	details, err := handlerServices.GroupService.GetGroupDetails(middleware.UserID(c), c.Param("groupId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, details)
}

// RenameGroup handles renaming a group, creator only
func RenameGroup(c *gin.Context) {
	var request models.RenameGroupRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := handlerServices.GroupService.RenameGroup(middleware.UserID(c), c.Param("groupId"), request.Name); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"renamed": true})
}

// DeleteGroup handles deleting a group and all its records, creator only
func DeleteGroup(c *gin.Context) {
	if err := handlerServices.GroupService.DeleteGroup(middleware.UserID(c), c.Param("groupId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"deleted": true})
}

// AddMember invites a user to the group by email, creator only
func AddMember(c *gin.Context) {
	var request models.AddMemberRequest

	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	outcome, err := handlerServices.GroupService.AddMember(middleware.UserID(c), c.Param("groupId"), request.Email)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.AddMemberResponse{Outcome: outcome})
}

// RemoveMember removes a member from the group, creator only
func RemoveMember(c *gin.Context) {
	if err := handlerServices.GroupService.RemoveMember(middleware.UserID(c), c.Param("groupId"), c.Param("memberId")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{"removed": true})
}
