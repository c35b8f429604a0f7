package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chronotask/internal/models"
	"chronotask/internal/utils"
)

func (s *Server) handleListRoutines(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot().Routines)
}

func (s *Server) handleCreateRoutine(c *gin.Context) {
	var routine models.DailyRoutine
	if err := c.ShouldBindJSON(&routine); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid routine payload"})
		return
	}
	if routine.Activity == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "activity is required"})
		return
	}
	if !utils.ValidateClock(routine.Time) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time must be HH:MM"})
		return
	}
	if routine.DurationMin <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_min must be positive"})
		return
	}
	if routine.ID == "" {
		routine.ID = uuid.NewString()
	}
	if routine.Priority == "" {
		routine.Priority = models.PriorityMedium
	}
	if !routine.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority"})
		return
	}

	s.store.AddRoutine(routine)
	c.JSON(http.StatusCreated, routine)
}
