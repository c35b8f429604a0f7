package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chronotask/internal/models"
)

func (s *Server) handleListGoals(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot().Goals)
}

func (s *Server) handleCreateGoal(c *gin.Context) {
	var goal models.Goal
	if err := c.ShouldBindJSON(&goal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal payload"})
		return
	}
	if goal.Title == "" || goal.Deadline == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title and deadline are required"})
		return
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	for i := range goal.Milestones {
		if goal.Milestones[i].ID == "" {
			goal.Milestones[i].ID = uuid.NewString()
		}
	}

	s.store.AddGoal(goal)

	// Echo back the stored record so the caller sees normalized progress.
	for _, stored := range s.store.Snapshot().Goals {
		if stored.ID == goal.ID {
			c.JSON(http.StatusCreated, stored)
			return
		}
	}
	c.JSON(http.StatusCreated, goal)
}

func (s *Server) handleUpdateGoal(c *gin.Context) {
	var patch models.GoalPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patch payload"})
		return
	}

	if !s.store.UpdateGoal(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// handleToggleMilestone flips one milestone; the store updates the flag and
// the goal's progress as a single change.
func (s *Server) handleToggleMilestone(c *gin.Context) {
	goalID := c.Param("id")
	if !s.store.ToggleMilestone(goalID, c.Param("milestoneID")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "goal or milestone not found"})
		return
	}

	for _, goal := range s.store.Snapshot().Goals {
		if goal.ID == goalID {
			c.JSON(http.StatusOK, goal)
			return
		}
	}
	c.Status(http.StatusNoContent)
}
