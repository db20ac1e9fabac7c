package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/court-registry/internal/apperr"
)

const claimsKey = "claims"

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a clerk account. A taken email is a 400, not a 409.
func (h *Handlers) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			respondFailure(c, http.StatusBadRequest, "User already exists")
			return
		}
		h.respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, user)
}

// Login exchanges credentials for a bearer token
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFailure(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
	})
}

// RequireAuth rejects requests without a valid bearer token
func (h *Handlers) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			respondFailure(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		claims, err := h.auth.Verify(strings.TrimSpace(token))
		if err != nil {
			h.logger.Debug("Rejected token", "error", err)
			respondFailure(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}
