package handlers

import (
	"log"
	"net/http"

	"github.com/apan-dev/apan-server/db"
	"github.com/apan-dev/apan-server/internal/models"
	"github.com/apan-dev/apan-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type AddGoalRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" binding:"required"`
	TargetValue *float64 `json:"target_value"`
}

type AddGoalProgressRequest struct {
	CurrentValue *float64 `json:"current_value"`
	Comments     *string  `json:"comments"`
}

func AddGoal(ctx *gin.Context) {
	projectID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var req AddGoalRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Goal title and type are required"})
		return
	}

	goal := models.ProjectGoal{
		ProjectID:   projectID,
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		TargetValue: req.TargetValue,
	}

	if err := db.DB.Create(&goal).Error; err != nil {
		log.Printf("Failed to create goal: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	ctx.JSON(http.StatusCreated, GoalResponse{
		ID:          goal.ID,
		ProjectID:   goal.ProjectID,
		Title:       goal.Title,
		Description: goal.Description,
		Type:        goal.Type,
		TargetValue: goal.TargetValue,
		CreatedAt:   goal.CreatedAt,
	})
}

func AddGoalProgress(ctx *gin.Context) {
	goalID, err := utils.GetParamID(ctx, "goalId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Progress may only be recorded against goals of projects the caller
	// manages or has joined.
	var accessible int64

	result := db.DB.Raw(`
		SELECT COUNT(*)
		FROM project_goals g
		JOIN projects p ON p.id = g.project_id
		LEFT JOIN project_students ps ON ps.project_id = p.id AND ps.student_id = ?
		WHERE g.id = ? AND (p.manager_id = ? OR ps.student_id IS NOT NULL)`,
		userID, goalID, userID).Scan(&accessible)

	if result.Error != nil {
		log.Printf("Failed to check goal access: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record progress"})
		return
	}

	if accessible == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Goal not found or access denied"})
		return
	}

	var req AddGoalProgressRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	progress := models.GoalProgress{
		GoalID:       goalID,
		RegisteredBy: userID,
		CurrentValue: req.CurrentValue,
		Comments:     req.Comments,
	}

	if err := db.DB.Create(&progress).Error; err != nil {
		log.Printf("Failed to record goal progress: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record progress"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"message": "Progress recorded successfully"})
}

func DeleteGoal(ctx *gin.Context) {
	goalID, err := utils.GetParamID(ctx, "goalId")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Only the owning project's manager may delete a goal.
	result := db.DB.Exec(`
		DELETE FROM project_goals
		WHERE id = ? AND project_id IN (SELECT id FROM projects WHERE manager_id = ?)`,
		goalID, userID)

	if result.Error != nil {
		log.Printf("Failed to delete goal: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Goal not found or access denied"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
