package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronotask/internal/chat"
	"chronotask/internal/logger"
)

type chatRequest struct {
	History []chat.Message `json:"history"`
	Message string         `json:"message" binding:"required"`
}

// handleChat forwards one turn to the completion service. Any failure,
// whether a missing API key or a remote error, degrades to the canned
// fallback message instead of an error status; nothing here is retried.
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	if s.assistant == nil {
		c.JSON(http.StatusOK, gin.H{"message": chat.Fallback, "fallback": true})
		return
	}

	reply, err := s.assistant.Reply(c.Request.Context(), req.History, req.Message)
	if err != nil {
		logger.Warn("Chat completion failed", "error", err)
		c.JSON(http.StatusOK, gin.H{"message": chat.Fallback, "fallback": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": reply, "fallback": false})
}
