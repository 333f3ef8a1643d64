package http

import (
	"github.com/gin-gonic/gin"

	"github.com/mrlokans/wordlist/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(auth.SecurityHeadersMiddleware())

	if cfg.WriteGuard != nil && cfg.WriteGuard.IsEnabled() {
		router.Use(cfg.WriteGuard.Handler())
	}

	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	healthController := NewHealthController(cfg.Database, cfg.Store, cfg.Version)
	if cfg.Snapshots != nil {
		healthController.WithSnapshots(cfg.Snapshots)
	}
	if cfg.ResetStatus != nil {
		healthController.WithResetStatus(cfg.ResetStatus)
	}
	router.GET("/health", healthController.Status)

	wordsController := NewWordsController(cfg.Store, cfg.ImportQueue)
	api := router.Group("/api")
	{
		api.GET("/words", wordsController.ListWords)
		api.GET("/words/count", wordsController.Count)
		api.GET("/words/position/:position", wordsController.GetByPosition)
		api.GET("/words/search", wordsController.Search)
		api.POST("/words", wordsController.AddWord)
		api.POST("/words/import", wordsController.ImportWords)
		api.PUT("/words/:id", wordsController.UpdateWord)
		api.DELETE("/words/:id", wordsController.DeleteWord)
	}

	tasksController := NewTasksController(cfg.ImportQueue)
	api.GET("/tasks/:id", tasksController.GetTaskStatus)

	adminController := NewAdminController(cfg.Resetter, cfg.Snapshots)
	if cfg.Resetter != nil {
		api.POST("/admin/reset", adminController.Reset)
	}
	if cfg.Snapshots != nil {
		api.GET("/admin/snapshots", adminController.ListSnapshots)
		api.GET("/admin/snapshots/:name", adminController.GetSnapshot)
	}

	return router
}
