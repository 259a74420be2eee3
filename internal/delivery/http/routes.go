package http

import (
	"github.com/gin-gonic/gin"
	"github.com/menucraft/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/menus", handler.ListMenus)

		menu := v1.Group("/menu")
		{
			menu.POST("/parse", handler.ParseMenu)
			menu.POST("/import", handler.Import)

			session := menu.Group("/session")
			{
				session.GET("", handler.GetSession)
				session.DELETE("", handler.EndSession)
				session.GET("/groups", handler.Groups)
				session.GET("/stats", handler.Stats)

				session.POST("/edit", handler.EnterEdit)
				session.POST("/cancel", handler.CancelEdit)
				session.POST("/save", handler.SaveEdit)

				session.PUT("/items/:index", handler.UpdateItem)
				session.DELETE("/items/:index", handler.DeleteItem)

				selection := session.Group("/selection")
				{
					selection.POST("/toggle", handler.ToggleSelection)
					selection.POST("/all", handler.SelectAll)
					selection.POST("/clear", handler.ClearSelection)
					selection.POST("/delete", handler.DeleteSelected)
				}

				categories := session.Group("/categories")
				{
					categories.POST("/rename", handler.RenameCategory)
					categories.POST("/merge", handler.MergeCategories)
					categories.POST("/delete", handler.DeleteCategory)
					categories.POST("/create", handler.CreateCategory)
					categories.POST("/expand", handler.ExpandCategory)
				}
			}
		}
	}

	return router
}
