package http

import (
	"taskmanager/internal/adapter/http/handlers"
	"taskmanager/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	r.GET("/", healthHandler.Root)

	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTaskStatus)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	}
}

// NewEngine builds the gin engine with the middleware chain shared by every route.
func NewEngine(logger *zap.Logger, allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RecoveryMiddleware(),
		middleware.GinZapMiddleware(logger),
		middleware.CORSMiddleware(allowedOrigins),
	)
	return r
}
