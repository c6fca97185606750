package watcher

import (
	"github.com/gofiber/fiber/v2"
)

// RouteRequest is the body of a route change notification.
type RouteRequest struct {
	Route string `json:"route"`
}

// RouteResponse tells whether a sync was scheduled.
type RouteResponse struct {
	Scheduled bool `json:"scheduled"`
}

// Handler handles HTTP requests for the watcher.
type Handler struct {
	watcher *Watcher
}

// NewHandler creates a new HTTP handler.
func NewHandler(w *Watcher) *Handler {
	return &Handler{watcher: w}
}

// RegisterRoutes registers the watcher routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/watcher/route", h.HandleRoute)
}

// HandleRoute records a host route change.
// @Summary Observe Route
// @Description Notify the bridge of a host route change. Opening a game's achievements page schedules a sync of that game.
// @Tags watcher
// @Accept json
// @Produce json
// @Param route body watcher.RouteRequest true "Route"
// @Success 200 {object} watcher.RouteResponse "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /watcher/route [post]
func (h *Handler) HandleRoute(c *fiber.Ctx) error {
	var req RouteRequest
	if err := c.BodyParser(&req); err != nil || req.Route == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "route is required"})
	}
	return c.JSON(RouteResponse{Scheduled: h.watcher.Observe(req.Route)})
}
