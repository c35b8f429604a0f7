package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"chronotask/internal/auth"
	"chronotask/internal/logger"
	"chronotask/internal/router"
)

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// handleSignIn authenticates against the auth collaborator and records the
// user in the store. Invalid credentials stay an inline, non-fatal message.
func (s *Server) handleSignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := s.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Sign-in failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "authentication unavailable"})
		return
	}

	s.store.SetUser(&user)
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// handleSignOut clears all user-entered state via the store's logout flow.
func (s *Server) handleSignOut(c *gin.Context) {
	s.store.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// handleRoute resolves the logical destination for the current state.
func (s *Server) handleRoute(c *gin.Context) {
	snap := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"destination": router.Resolve(snap.User, snap.Responses),
	})
}
