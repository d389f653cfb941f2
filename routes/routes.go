package routes

import (
	"time"

	"github.com/bol3ezzz/spalux-backend/handlers"
	"github.com/bol3ezzz/spalux-backend/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAdvertisementRoutes registers the public listing endpoints.
func RegisterAdvertisementRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/advertisements")
	{
		api.GET("", hb.ListAdvertisementsHandler)
		api.GET("/random", hb.RandomAdvertisementHandler)
		api.GET("/category/:category", hb.ListByCategoryHandler)
		api.GET("/:id", hb.GetAdvertisementHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthAdminMiddleware())
		adminGroup.GET("/advertisements", hb.AdminListAdvertisementsHandler)
		adminGroup.POST("/advertisements", hb.CreateAdvertisementHandler)
		adminGroup.PUT("/advertisements/:id", hb.UpdateAdvertisementHandler)
		adminGroup.DELETE("/advertisements/:id", hb.DeleteAdvertisementHandler)
		adminGroup.PATCH("/advertisements/:id/toggle", hb.ToggleAdvertisementHandler)
	}
}

// RegisterAuthRoutes registers admin authentication endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.AdminLoginHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, uploadDir string) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Locally stored media is served straight from the uploads directory.
	if uploadDir != "" {
		r.Static("/uploads", uploadDir)
	}

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterAdvertisementRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
