package api

import (
	"net/http"

	"academiafit/gym-app/internal/catalog"
	"academiafit/gym-app/internal/domain"
	"academiafit/gym-app/internal/service"
	"academiafit/gym-app/internal/storage"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	workoutService service.WorkoutService,
	sessionService service.SessionService,
	cat *catalog.Catalog,
	mediaStorage storage.MediaStorage,
) {
	authHandler := NewAuthHandler(authService)
	workoutHandler := NewWorkoutHandler(workoutService)
	sessionHandler := NewSessionHandler(sessionService)
	catalogHandler := NewCatalogHandler(cat, mediaStorage)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			role, _ := getUserRoleFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "role": role})
		})

		// --- Catalog ---
		catalogGroup := protected.Group("/catalog")
		{
			catalogGroup.GET("", catalogHandler.List)
			catalogGroup.GET("/video-url", catalogHandler.VideoDownloadURL)
			// Only trainers may attach demonstration videos.
			catalogGroup.POST("/video-upload-url", RoleMiddleware(domain.RoleTrainer), catalogHandler.VideoUploadURL)
		}

		// --- Workouts ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			// PUT /api/v1/workouts/{id}/day - schedule, swap or unschedule
			workoutGroup.PUT("/:id/day", workoutHandler.AssignDay)

			workoutGroup.POST("/generate", workoutHandler.GeneratePlan)
			workoutGroup.POST("/plan", workoutHandler.SavePlan)
		}

		// --- Execution session ---
		// One live session per user; all routes act on the caller's session.
		sessionGroup := protected.Group("/session")
		{
			sessionGroup.POST("", sessionHandler.Start)
			sessionGroup.GET("", sessionHandler.Get)
			sessionGroup.PUT("/sets", sessionHandler.RecordSet)
			sessionGroup.PUT("/sets/toggle", sessionHandler.ToggleSet)
			sessionGroup.POST("/next", sessionHandler.NextExercise)
			sessionGroup.POST("/previous", sessionHandler.PreviousExercise)
			sessionGroup.POST("/finish", sessionHandler.Finish)
			sessionGroup.DELETE("", sessionHandler.Cancel)
		}

		// --- History ---
		protected.GET("/history", workoutHandler.ListHistory)
	}
}
