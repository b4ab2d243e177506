package handlers

import (
	"log"
	"net/http"

	"github.com/apan-dev/apan-server/db"
	"github.com/apan-dev/apan-server/internal/models"
	"github.com/apan-dev/apan-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type AddActionRequest struct {
	Title       string `json:"title" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required"`
	Status      string `json:"status"`
}

func AddAction(ctx *gin.Context) {
	projectID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req AddActionRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Action title, type and date are required"})
		return
	}

	if req.Status == "" {
		req.Status = models.ActionStatusPending
	}

	action := models.ProjectAction{
		ProjectID:   projectID,
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Date:        req.Date,
		Status:      req.Status,
	}

	if err := db.DB.Create(&action).Error; err != nil {
		log.Printf("Failed to create action: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record action"})
		return
	}

	ctx.JSON(http.StatusCreated, ActionResponse{
		ID:          action.ID,
		ProjectID:   action.ProjectID,
		Title:       action.Title,
		Type:        action.Type,
		Description: action.Description,
		Date:        action.Date,
		Status:      action.Status,
		CreatedAt:   action.CreatedAt,
	})
}

func DeleteAction(ctx *gin.Context) {
	actionID, err := utils.GetParamID(ctx, "actionId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Only the owning project's manager may delete an action.
	result := db.DB.Exec(`
		DELETE FROM project_actions
		WHERE id = ? AND project_id IN (SELECT id FROM projects WHERE manager_id = ?)`,
		actionID, userID)

	if result.Error != nil {
		log.Printf("Failed to delete action: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete action"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Action not found or access denied"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Action deleted"})
}
