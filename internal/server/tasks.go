package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"chronotask/internal/models"
	"chronotask/internal/projection"
)

func (s *Server) handleListTasks(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Snapshot().Tasks)
}

// handleCreateTask appends a task, assigning an id and defaults when the
// caller leaves them out.
func (s *Server) handleCreateTask(c *gin.Context) {
	var task models.Task
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task payload"})
		return
	}
	if task.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Status == "" {
		task.Status = models.StatusTodo
	}
	if !task.Priority.Valid() || !task.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority or status"})
		return
	}

	s.store.AddTask(task)
	c.JSON(http.StatusCreated, task)
}

// handleUpdateTask merges a partial update onto the task. The store treats a
// missing id as a no-op; the boundary reports it as 404 so UI callers can
// recover.
func (s *Server) handleUpdateTask(c *gin.Context) {
	var patch models.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid patch payload"})
		return
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid priority"})
		return
	}
	if patch.Status != nil && !patch.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	if !s.store.UpdateTask(c.Param("id"), patch) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if !s.store.RemoveTask(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleClearCompleted(c *gin.Context) {
	removed := s.store.ClearCompleted()
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}

// handleBoard returns the status lanes, completion stats, and the dashboard
// quick list, all derived fresh from the current snapshot.
func (s *Server) handleBoard(c *gin.Context) {
	tasks := s.store.Snapshot().Tasks
	c.JSON(http.StatusOK, gin.H{
		"lanes":      projection.Board(tasks),
		"stats":      projection.Stats(tasks),
		"quick_list": projection.QuickList(tasks),
	})
}
