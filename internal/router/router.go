package router

import (
	"time"

	"github.com/apan-dev/apan-server/internal/handlers"
	"github.com/apan-dev/apan-server/internal/middleware"
	"github.com/apan-dev/apan-server/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(userHandler *handlers.UserHandler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.POST("/login", userHandler.LoginUser)
			users.POST("/forgot-password", userHandler.ForgotPassword)
			users.POST("/reset-password/:token", userHandler.ResetPassword)

			authed := users.Group("", middleware.AuthMiddleware())
			{
				authed.GET("", userHandler.ListUsers)
				authed.GET("/:id", userHandler.GetUser)
				authed.PUT("/:id", userHandler.UpdateUser)
				authed.DELETE("/:id", userHandler.DeleteUser)

				authed.POST("/projects", handlers.CreateProject)
				authed.GET("/projects", handlers.ListMyProjects)
				authed.POST("/projects/join", handlers.JoinProject)
				authed.GET("/projects/:id", handlers.GetProjectDetail)
				authed.PUT("/projects/:id", handlers.UpdateProject)
				authed.DELETE("/projects/:id", handlers.DeleteProject)
				authed.GET("/projects/:id/students", handlers.ListProjectStudents)

				authed.POST("/projects/:id/goals", handlers.AddGoal)
				authed.POST("/projects/:id/actions", handlers.AddAction)
				authed.DELETE("/goals/:goalId", handlers.DeleteGoal)
				authed.POST("/goals/:goalId/progress", handlers.AddGoalProgress)
				authed.DELETE("/actions/:actionId", handlers.DeleteAction)
			}
		}
	}

	return r
}
