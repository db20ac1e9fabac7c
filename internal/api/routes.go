package api

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/auth"
	"github.com/JustJay7/court-registry/internal/cache"
	"github.com/JustJay7/court-registry/internal/config"
	"github.com/JustJay7/court-registry/internal/registry"
	"github.com/JustJay7/court-registry/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, db *gorm.DB, cases *registry.CaseStore, hearings *registry.HearingStore, authService *auth.Service, cache cache.Cache, logger *logger.Logger, cfg *config.Config) {
	h := NewHandlers(db, cases, hearings, authService, cache, logger, cfg)

	api := router.Group("/api")
	{
		api.GET("/health", h.HealthCheck)
		api.GET("/cache/stats", h.CacheStats)

		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
	}

	records := api.Group("")
	if cfg.RequireAuth {
		records.Use(h.RequireAuth())
	}

	// Case endpoints
	caseRoutes := records.Group("/cases")
	{
		caseRoutes.POST("", h.CreateCase)
		caseRoutes.POST("/create", h.CreateCase)
		caseRoutes.GET("", h.ListCases)
		caseRoutes.GET("/summary", h.CaseSummary)
		caseRoutes.GET("/:id", h.GetCase)
		caseRoutes.PUT("/:id", h.UpdateCase)
		caseRoutes.DELETE("/:id", h.DeleteCase)
		caseRoutes.GET("/:id/hearings", h.CaseHearings)
		caseRoutes.POST("/:id/hearings", h.ScheduleForCase)
	}

	// Hearing endpoints
	hearingRoutes := records.Group("/hearings")
	{
		hearingRoutes.POST("", h.CreateHearing)
		hearingRoutes.POST("/create", h.CreateHearing)
		hearingRoutes.GET("", h.ListHearings)
		hearingRoutes.GET("/:id", h.GetHearing)
		hearingRoutes.PUT("/:id", h.UpdateHearing)
		hearingRoutes.DELETE("/:id", h.DeleteHearing)
	}
}
