package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/court-registry/internal/apperr"
	"github.com/JustJay7/court-registry/internal/database"
	"github.com/JustJay7/court-registry/internal/lifecycle"
)

// caseView is a case as the UI renders it: the record plus its badge colour.
type caseView struct {
	database.Case
	Display lifecycle.Style `json:"style"`
}

// hearingView is a hearing plus its calendar block colour.
type hearingView struct {
	database.Hearing
	Display lifecycle.Style `json:"style"`
}

func newCaseView(c database.Case) caseView {
	return caseView{Case: c, Display: c.Style()}
}

func newHearingView(h database.Hearing) hearingView {
	return hearingView{Hearing: h, Display: h.Style()}
}

func caseViews(cases []database.Case) []caseView {
	out := make([]caseView, len(cases))
	for i, c := range cases {
		out[i] = newCaseView(c)
	}
	return out
}

func hearingViews(hearings []database.Hearing) []hearingView {
	out := make([]hearingView, len(hearings))
	for i, h := range hearings {
		out[i] = newHearingView(h)
	}
	return out
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}

func respondFailure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}

// statusFor maps the registry error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope. Server-side failures are logged
// with their cause and reported to the client without detail.
func (h *Handlers) respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("Request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		respondFailure(c, status, "internal server error")
		return
	}
	respondFailure(c, status, err.Error())
}
