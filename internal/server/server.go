// Package server exposes the store's mutation surface and projections over
// HTTP. It is the boundary the external UI collaborators talk through; no
// domain logic lives here.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chronotask/internal/auth"
	"chronotask/internal/chat"
	"chronotask/internal/store"
)

// Server provides the HTTP handlers for the productivity app backend.
type Server struct {
	engine    *gin.Engine
	store     *store.Store
	auth      auth.Provider
	assistant *chat.Assistant
}

// New constructs the HTTP server with routes and middleware configured. The
// assistant may be nil when no completion-service API key is configured; the
// chat endpoint then degrades to the canned fallback.
func New(st *store.Store, provider auth.Provider, assistant *chat.Assistant) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	srv := &Server{
		engine:    router,
		store:     st,
		auth:      provider,
		assistant: assistant,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		api.POST("/session", s.handleSignIn)
		api.DELETE("/session", s.handleSignOut)
		api.GET("/route", s.handleRoute)

		api.GET("/onboarding", s.handleOnboarding)
		api.PUT("/onboarding/step", s.handleSetStep)
		api.POST("/responses", s.handleAddResponse)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.PATCH(":id", s.handleUpdateTask)
			tasks.DELETE(":id", s.handleDeleteTask)
			tasks.POST("/clear-completed", s.handleClearCompleted)
		}
		api.GET("/board", s.handleBoard)

		api.GET("/routines", s.handleListRoutines)
		api.POST("/routines", s.handleCreateRoutine)

		goals := api.Group("/goals")
		{
			goals.GET("", s.handleListGoals)
			goals.POST("", s.handleCreateGoal)
			goals.PATCH(":id", s.handleUpdateGoal)
			goals.POST(":id/milestones/:milestoneID/toggle", s.handleToggleMilestone)
		}

		api.GET("/calendar", s.handleCalendar)
		api.POST("/chat", s.handleChat)
	}
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
