package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/apan-dev/apan-server/db"
	"github.com/apan-dev/apan-server/internal/models"
	"github.com/apan-dev/apan-server/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProjectRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	TargetAudience string  `json:"target_audience"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        string  `json:"end_date" binding:"required"`
	Budget         float64 `json:"budget"`
}

type UpdateProjectRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	TargetAudience string  `json:"target_audience"`
	StartDate      string  `json:"start_date" binding:"required"`
	EndDate        string  `json:"end_date" binding:"required"`
	Budget         float64 `json:"budget"`
}

type JoinProjectRequest struct {
	Code string `json:"code" binding:"required"`
}

type ProjectResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	TargetAudience string    `json:"target_audience"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Budget         float64   `json:"budget"`
	JoinCode       string    `json:"join_code"`
	ManagerID      uint      `json:"manager_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type MyProjectResponse struct {
	ProjectResponse
	MyRole string `json:"my_role"`
}

type GoalResponse struct {
	ID            uint      `json:"id"`
	ProjectID     uint      `json:"project_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Type          string    `json:"type"`
	TargetValue   *float64  `json:"target_value"`
	CreatedAt     time.Time `json:"created_at"`
	LatestValue   *float64  `json:"latest_value"`
	LatestComment *string   `json:"latest_comment"`
}

type ActionResponse struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	ManagerName  string           `json:"manager_name"`
	StudentCount int64            `json:"student_count"`
	Goals        []GoalResponse   `json:"goals"`
	Actions      []ActionResponse `json:"actions"`
}

type StudentResponse struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func newProjectResponse(p models.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		TargetAudience: p.TargetAudience,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Budget:         p.Budget,
		JoinCode:       p.JoinCode,
		ManagerID:      p.ManagerID,
		CreatedAt:      p.CreatedAt,
	}
}

func CreateProject(ctx *gin.Context) {
	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name, start date and end date are required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	joinCode, err := utils.NewJoinCode()

	if err != nil {
		log.Printf("Failed to generate join code: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	project := models.Project{
		Name:           req.Name,
		Description:    req.Description,
		TargetAudience: req.TargetAudience,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		JoinCode:       joinCode,
		ManagerID:      userID,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		// A join-code collision is treated as exceptional; the caller retries.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate a unique project code, please try again"})
			return
		}
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, newProjectResponse(project))
}

func ListMyProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var projects []models.Project

	result := db.DB.Raw(`
		SELECT DISTINCT p.*
		FROM projects p
		LEFT JOIN project_students ps ON ps.project_id = p.id
		WHERE p.manager_id = ? OR ps.student_id = ?
		ORDER BY p.created_at DESC`, userID, userID).Scan(&projects)

	if result.Error != nil {
		log.Printf("Failed to list projects: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]MyProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, MyProjectResponse{
			ProjectResponse: newProjectResponse(project),
			MyRole:          utils.ProjectRole(userID, project.ManagerID),
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func JoinProject(ctx *gin.Context) {
	var req JoinProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project code is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var project models.Project

	if err := db.DB.Where("join_code = ?", req.Code).First(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "No project found with this code"})
			return
		}
		log.Printf("Failed to fetch project by join code: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join project"})
		return
	}

	membership := models.ProjectStudent{
		ProjectID: project.ID,
		StudentID: userID,
	}

	if err := db.DB.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "You are already a member of this project"})
			return
		}
		log.Printf("Failed to create membership: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to join project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "You joined the project successfully"})
}

func GetProjectDetail(ctx *gin.Context) {
	projectID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// "Not found" and "not yours" collapse into one 404 so the response leaks
	// nothing about which projects exist.
	var row struct {
		models.Project
		ManagerName  string
		StudentCount int64
	}

	result := db.DB.Raw(`
		SELECT p.*,
		       u.name AS manager_name,
		       (SELECT COUNT(*) FROM project_students WHERE project_id = p.id) AS student_count
		FROM projects p
		JOIN users u ON u.id = p.manager_id
		LEFT JOIN project_students ps ON ps.project_id = p.id AND ps.student_id = ?
		WHERE p.id = ? AND (p.manager_id = ? OR ps.student_id IS NOT NULL)
		LIMIT 1`, userID, projectID, userID).Scan(&row)

	if result.Error != nil {
		log.Printf("Failed to fetch project detail: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project details"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found or access denied"})
		return
	}

	var goals []struct {
		models.ProjectGoal
		LatestValue   *float64
		LatestComment *string
	}

	if err := db.DB.Raw(`
		SELECT g.*,
		       (SELECT gp.current_value FROM goal_progress gp
		        WHERE gp.goal_id = g.id
		        ORDER BY gp.registered_at DESC, gp.id DESC LIMIT 1) AS latest_value,
		       (SELECT gp.comments FROM goal_progress gp
		        WHERE gp.goal_id = g.id
		        ORDER BY gp.registered_at DESC, gp.id DESC LIMIT 1) AS latest_comment
		FROM project_goals g
		WHERE g.project_id = ?
		ORDER BY g.created_at ASC`, projectID).Scan(&goals).Error; err != nil {
		log.Printf("Failed to fetch project goals: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project details"})
		return
	}

	var actions []models.ProjectAction

	if err := db.DB.Where("project_id = ?", projectID).Order("date DESC").Find(&actions).Error; err != nil {
		log.Printf("Failed to fetch project actions: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load project details"})
		return
	}

	response := ProjectDetailResponse{
		ProjectResponse: newProjectResponse(row.Project),
		ManagerName:     row.ManagerName,
		StudentCount:    row.StudentCount,
		Goals:           make([]GoalResponse, 0, len(goals)),
		Actions:         make([]ActionResponse, 0, len(actions)),
	}

	for _, goal := range goals {
		response.Goals = append(response.Goals, GoalResponse{
			ID:            goal.ID,
			ProjectID:     goal.ProjectID,
			Title:         goal.Title,
			Description:   goal.Description,
			Type:          goal.Type,
			TargetValue:   goal.TargetValue,
			CreatedAt:     goal.CreatedAt,
			LatestValue:   goal.LatestValue,
			LatestComment: goal.LatestComment,
		})
	}

	for _, action := range actions {
		response.Actions = append(response.Actions, ActionResponse{
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

	ctx.JSON(http.StatusOK, response)
}

func UpdateProject(ctx *gin.Context) {
	projectID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req UpdateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Name, start date and end date are required"})
		return
	}

	// A single ownership-scoped UPDATE: zero rows means missing or not owned,
	// and both come back as 403.
	result := db.DB.Model(&models.Project{}).
		Where("id = ? AND manager_id = ?", projectID, userID).
		Updates(map[string]interface{}{
			"name":            req.Name,
			"description":     req.Description,
			"target_audience": req.TargetAudience,
			"start_date":      req.StartDate,
			"end_date":        req.EndDate,
			"budget":          req.Budget,
		})

	if result.Error != nil {
		log.Printf("Failed to update project: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to edit this project or it does not exist"})
		return
	}

	var project models.Project

	if err := db.DB.First(&project, projectID).Error; err != nil {
		log.Printf("Failed to reload project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, newProjectResponse(project))
}

func DeleteProject(ctx *gin.Context) {
	projectID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	result := db.DB.Where("id = ? AND manager_id = ?", projectID, userID).Delete(&models.Project{})

	if result.Error != nil {
		log.Printf("Failed to delete project: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	if result.RowsAffected == 0 {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to delete this project or it does not exist"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

func ListProjectStudents(ctx *gin.Context) {
	projectID, err := utils.GetParamID(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project ID"})
		return
	}

	var students []StudentResponse

	result := db.DB.Raw(`
		SELECT u.id, u.name, u.email, u.role, ps.joined_at
		FROM project_students ps
		JOIN users u ON u.id = ps.student_id
		WHERE ps.project_id = ?
		ORDER BY u.name ASC`, projectID).Scan(&students)

	if result.Error != nil {
		log.Printf("Failed to list project students: %v", result.Error)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project members"})
		return
	}

	if students == nil {
		students = []StudentResponse{}
	}

	ctx.JSON(http.StatusOK, students)
}
