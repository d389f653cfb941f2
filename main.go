package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bol3ezzz/spalux-backend/config"
	"github.com/bol3ezzz/spalux-backend/cron"
	"github.com/bol3ezzz/spalux-backend/database"
	adminRepoPkg "github.com/bol3ezzz/spalux-backend/database/repository/admin"
	adRepoPkg "github.com/bol3ezzz/spalux-backend/database/repository/advertisement"
	"github.com/bol3ezzz/spalux-backend/handlers"
	"github.com/bol3ezzz/spalux-backend/middleware"
	"github.com/bol3ezzz/spalux-backend/routes"
	"github.com/bol3ezzz/spalux-backend/services/advertisement"
	"github.com/bol3ezzz/spalux-backend/services/storage"
	"github.com/bol3ezzz/spalux-backend/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	storageBackend, err := storage.New()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize storage backend: %v", err)
	}

	projectRoot, err := os.Getwd()
	if err != nil {
		projectRoot = ""
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	adRepo := adRepoPkg.NewMongoAdvertisementRepo()
	adminRepo := adminRepoPkg.NewMongoAdminRepo()

	// services.
	adService := &advertisement.DefaultAdvertisementService{
		Repo:    adRepo,
		Storage: storageBackend,
		Resolver: advertisement.PathResolver{
			BaseURL: config.AppConfig.BaseURL,
			Root:    projectRoot,
		},
		Cache: advertisement.NewAdCache(utils.GetCacheClient()),
	}

	hb := &handlers.HandlerBundle{
		AdService: adService,
		AdminRepo: adminRepo,
	}

	// Local media is only served when the disk backend is active.
	uploadDir := ""
	if !config.HasCloudinary() {
		uploadDir = config.AppConfig.UploadDir
	}
	routes.RegisterRoutes(router, hb, uploadDir)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)
	sweeper := cron.StartExpirySweeper(adRepo)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("SpaLux backend listening on port %s", config.AppConfig.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	sweeper.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
