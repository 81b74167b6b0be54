package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/drainwise/drainwise-backend/internal/handlers"
	"github.com/drainwise/drainwise-backend/internal/middleware"
)

type RouterConfig struct {
	IdentityMiddleware      *middleware.IdentityMiddleware
	PricingConfigHandler    *handlers.PricingConfigHandler
	StandardCategoryHandler *handlers.StandardCategoryHandler
	SectorStandardsHandler  *handlers.SectorStandardsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	api.Use(cfg.IdentityMiddleware.BindOwner())
	{
		// Standard categories
		api.GET("/standard-categories", cfg.StandardCategoryHandler.List)
		api.POST("/standard-categories", cfg.StandardCategoryHandler.Create)

		// Sector standards (static reference data)
		api.GET("/sector-standards", cfg.SectorStandardsHandler.List)
		api.GET("/sector-standards/:sector", cfg.SectorStandardsHandler.Get)

		// Pricing configurations
		api.GET("/pr2-clean", cfg.PricingConfigHandler.List)
		api.POST("/pr2-clean", cfg.PricingConfigHandler.Create)
		api.GET("/pr2-clean/category/:categoryId", cfg.PricingConfigHandler.ListByCategory)
		api.POST("/pr2-clean/auto-detect-pipe-size", cfg.PricingConfigHandler.AutoDetectPipeSize)
		api.GET("/pr2-clean/:id", cfg.PricingConfigHandler.Get)
		api.PUT("/pr2-clean/:id", cfg.PricingConfigHandler.Update)
		api.POST("/pr2-clean/:id/auto-save", cfg.PricingConfigHandler.AutoSave)
		api.DELETE("/pr2-clean/:id", cfg.PricingConfigHandler.Delete)
	}

	return router
}
