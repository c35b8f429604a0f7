package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronotask/internal/models"
	"chronotask/internal/onboarding"
)

// handleOnboarding returns the question catalog alongside the wizard's
// current position and completion state.
func (s *Server) handleOnboarding(c *gin.Context) {
	snap := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"questions":    onboarding.Questions(),
		"current_step": snap.CurrentStep,
		"answered":     onboarding.Answered(snap.Responses),
		"complete":     onboarding.Complete(snap.Responses),
	})
}

type setStepRequest struct {
	Step *int `json:"step" binding:"required"`
}

// handleSetStep moves the wizard cursor. The store does no bounds checking,
// so the boundary rejects steps outside the catalog.
func (s *Server) handleSetStep(c *gin.Context) {
	var req setStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step is required"})
		return
	}
	if *req.Step < 0 || *req.Step >= onboarding.QuestionCount() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "step out of range"})
		return
	}

	s.store.SetCurrentStep(*req.Step)
	c.JSON(http.StatusOK, gin.H{"current_step": *req.Step})
}

// handleAddResponse records one questionnaire answer.
func (s *Server) handleAddResponse(c *gin.Context) {
	var response models.UserResponse
	if err := c.ShouldBindJSON(&response); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid response payload"})
		return
	}
	if response.QuestionID == "" || len(response.Answer) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question_id and answer are required"})
		return
	}

	s.store.AddResponse(response)

	snap := s.store.Snapshot()
	c.JSON(http.StatusCreated, gin.H{
		"responses": snap.Responses,
		"complete":  onboarding.Complete(snap.Responses),
	})
}
