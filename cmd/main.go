package main

import (
	"fmt"
	"os"
	"time"

	"github.com/drainwise/drainwise-backend/internal/db"
	"github.com/drainwise/drainwise-backend/internal/handlers"
	"github.com/drainwise/drainwise-backend/internal/logger"
	"github.com/drainwise/drainwise-backend/internal/middleware"
	"github.com/drainwise/drainwise-backend/internal/repos"
	"github.com/drainwise/drainwise-backend/internal/server"
	"github.com/drainwise/drainwise-backend/internal/services"
	"github.com/drainwise/drainwise-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	ownerID := utils.GetEnv("OWNER_ID", "system-owner", log)
	serverPort := utils.GetEnv("SERVER_PORT", "8080", log)
	autoSaveDelayMs := utils.GetEnvAsInt("AUTO_SAVE_DELAY_MS", 500, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Warn("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	configRepo := repos.NewPricingConfigurationRepo(thePG, log)
	categoryRepo := repos.NewStandardCategoryRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	configService := services.NewPricingConfigService(thePG, log, configRepo)
	categoryService := services.NewStandardCategoryService(thePG, log, categoryRepo)
	standardsService := services.NewSectorStandardsService()
	configSaver := services.NewConfigSaver(log, configService, time.Duration(autoSaveDelayMs)*time.Millisecond)
	defer configSaver.Close()

	// Handlers
	log.Info("Setting up Handlers from main...")
	configHandler := handlers.NewPricingConfigHandler(log, configService, configSaver)
	categoryHandler := handlers.NewStandardCategoryHandler(log, categoryService)
	standardsHandler := handlers.NewSectorStandardsHandler(standardsService)

	// Middleware
	identityMiddleware := middleware.NewIdentityMiddleware(log, ownerID)

	// Router
	router := server.NewRouter(server.RouterConfig{
		IdentityMiddleware:      identityMiddleware,
		PricingConfigHandler:    configHandler,
		StandardCategoryHandler: categoryHandler,
		SectorStandardsHandler:  standardsHandler,
	})

	log.Info("Starting server...", "port", serverPort)
	if err := router.Run(":" + serverPort); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}
