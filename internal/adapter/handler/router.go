package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/saiydurnetcom/nexuspm/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	suggestionHandler *Suggestion
	settingsHandler   *Settings
	authMiddleware    echo.MiddlewareFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, suggestionHandler *Suggestion, settingsHandler *Settings, authMiddleware echo.MiddlewareFunc) *Router {
	return &Router{
		cfg:               cfg,
		suggestionHandler: suggestionHandler,
		settingsHandler:   settingsHandler,
		authMiddleware:    authMiddleware,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupSuggestionRoutes(v1)
	rt.setupAdminRoutes(v1)
}

// setupSuggestionRoutes configures the suggestion lifecycle routes
func (rt *Router) setupSuggestionRoutes(g *echo.Group) {
	suggestionGroup := g.Group("/suggestions", rt.authMiddleware)

	suggestionGroup.GET("", rt.suggestionHandler.ListPending)
	suggestionGroup.POST("/meetings/:meetingId/process", rt.suggestionHandler.Process)
	suggestionGroup.GET("/meetings/:meetingId", rt.suggestionHandler.ListForMeeting)
	suggestionGroup.POST("/:id/approve", rt.suggestionHandler.Approve)
	suggestionGroup.POST("/:id/reject", rt.suggestionHandler.Reject)
}

// setupAdminRoutes configures admin-only routes
func (rt *Router) setupAdminRoutes(g *echo.Group) {
	adminGroup := g.Group("/admin", rt.authMiddleware)

	adminGroup.PUT("/ai-settings", rt.settingsHandler.Update)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
