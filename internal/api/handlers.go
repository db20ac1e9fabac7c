package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/court-registry/internal/apperr"
	"github.com/JustJay7/court-registry/internal/auth"
	"github.com/JustJay7/court-registry/internal/cache"
	"github.com/JustJay7/court-registry/internal/config"
	"github.com/JustJay7/court-registry/internal/filter"
	"github.com/JustJay7/court-registry/internal/registry"
	"github.com/JustJay7/court-registry/pkg/logger"
)

// Handlers holds all HTTP handlers
type Handlers struct {
	db       *gorm.DB
	cases    *registry.CaseStore
	hearings *registry.HearingStore
	auth     *auth.Service
	cache    cache.Cache
	logger   *logger.Logger
	cfg      *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(db *gorm.DB, cases *registry.CaseStore, hearings *registry.HearingStore, authService *auth.Service, cache cache.Cache, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		db:       db,
		cases:    cases,
		hearings: hearings,
		auth:     authService,
		cache:    cache,
		logger:   logger.With("component", "api"),
		cfg:      cfg,
	}
}

// CreateCase registers a new case and returns it with its minted number
func (h *Handlers) CreateCase(c *gin.Context) {
	var in registry.CaseInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.cases.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, newCaseView(*created))
}

// ListCases returns cases newest-filed first, optionally filtered
func (h *Handlers) ListCases(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		return
	}

	view, err := filter.ForView(filter.View(c.Query("view")))
	if err != nil {
		respondFailure(c, http.StatusBadRequest, err.Error())
		return
	}

	cases, err := h.cases.List(c.Request.Context(), criteria, view)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    caseViews(cases),
		"count":   len(cases),
	})
}

// CaseSummary returns the sidebar and status counts
func (h *Handlers) CaseSummary(c *gin.Context) {
	summary, err := h.cases.Summary(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, summary)
}

func (h *Handlers) GetCase(c *gin.Context) {
	record, err := h.cases.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newCaseView(*record))
}

// UpdateCase merges the given fields over the stored case
func (h *Handlers) UpdateCase(c *gin.Context) {
	var upd registry.CaseUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.cases.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newCaseView(*updated))
}

func (h *Handlers) DeleteCase(c *gin.Context) {
	if err := h.cases.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, "Case removed successfully")
}

// CaseHearings lists the hearings that reference a case's number
func (h *Handlers) CaseHearings(c *gin.Context) {
	record, err := h.cases.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	hearings, err := h.hearings.ForCase(c.Request.Context(), record.CaseNumber)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, hearingViews(hearings))
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	dbHealthy := false
	if sqlDB, err := h.db.DB(); err == nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		dbHealthy = sqlDB.PingContext(ctx) == nil
		cancel()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"court":    h.cfg.CourtName,
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   h.cache.Stats(),
	})
}

// bindCriteria reads filter criteria from the query string. The schedule
// view sends the category as caseType.
func (h *Handlers) bindCriteria(c *gin.Context) (filter.Criteria, bool) {
	var criteria filter.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.respondError(c, apperr.Invalid("query", err.Error()))
		return criteria, false
	}
	if criteria.Category == "" {
		criteria.Category = c.Query("caseType")
	}
	return criteria, true
}
