package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chronotask/internal/constants"
	"chronotask/internal/projection"
)

// handleCalendar projects tasks and routines onto the requested window.
// Query params: view (day|week|month, default week) and date (YYYY-MM-DD,
// default today).
func (s *Server) handleCalendar(c *gin.Context) {
	view := projection.View(c.DefaultQuery("view", string(projection.ViewWeek)))
	if !view.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "view must be day, week, or month"})
		return
	}

	now := time.Now()
	anchor := now
	if date := c.Query("date"); date != "" {
		parsed, err := time.ParseInLocation(constants.DateFormat, date, now.Location())
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
		anchor = parsed
	}

	snap := s.store.Snapshot()
	window := projection.NewWindow(view, anchor)
	events := projection.EventsInWindow(projection.Events(snap.Tasks, snap.Routines, now), window)

	c.JSON(http.StatusOK, gin.H{
		"window": window,
		"events": events,
	})
}
