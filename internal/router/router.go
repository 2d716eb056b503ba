package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Kurbalija/IU-Dashboard/internal/config"
	"github.com/Kurbalija/IU-Dashboard/internal/handler"
	"github.com/Kurbalija/IU-Dashboard/internal/middleware"
	"github.com/Kurbalija/IU-Dashboard/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Record *handler.RecordHandler
}

// SetupRouter configures the Gin routes with the shared middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware(), middleware.AccessLog(log))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so a local form works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli(middleware.DefaultMinLength))

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	api.Use(middleware.NoStore())
	{
		api.GET("/overview", handlers.Record.GetOverview)
		api.GET("/export.xlsx", handlers.Record.ExportWorkbook)

		api.GET("/courses", handlers.Record.ListCourses)
		api.GET("/courses/:code", handlers.Record.GetCourse)
		api.PUT("/courses/:code/grade", handlers.Record.UpdateGrade)
		api.PUT("/courses/:code/credits", handlers.Record.UpdateCredits)
		api.PUT("/courses/:code/name", handlers.Record.RenameCourse)
		api.PUT("/courses/:code/code", handlers.Record.ChangeCourseCode)

		api.PUT("/student", handlers.Record.UpdateStudent)
	}

	return router
}
