package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/court-registry/internal/registry"
)

// CreateHearing schedules a hearing. The case reference is not checked.
func (h *Handlers) CreateHearing(c *gin.Context) {
	var in registry.HearingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.hearings.Create(c.Request.Context(), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, newHearingView(*created))
}

// ScheduleForCase creates a hearing for an existing case, filling blanks
// from the case record.
func (h *Handlers) ScheduleForCase(c *gin.Context) {
	var in registry.HearingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created, err := h.hearings.CreateForCase(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, newHearingView(*created))
}

// ListHearings returns hearings earliest first, optionally filtered
func (h *Handlers) ListHearings(c *gin.Context) {
	criteria, ok := h.bindCriteria(c)
	if !ok {
		return
	}

	hearings, err := h.hearings.List(c.Request.Context(), criteria)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    hearingViews(hearings),
		"count":   len(hearings),
	})
}

func (h *Handlers) GetHearing(c *gin.Context) {
	record, err := h.hearings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newHearingView(*record))
}

func (h *Handlers) UpdateHearing(c *gin.Context) {
	var upd registry.HearingUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	updated, err := h.hearings.Update(c.Request.Context(), c.Param("id"), upd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, newHearingView(*updated))
}

func (h *Handlers) DeleteHearing(c *gin.Context) {
	if err := h.hearings.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}

	respondMessage(c, "Hearing removed successfully")
}
