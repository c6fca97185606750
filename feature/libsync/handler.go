package libsync

import (
	"progress-tracker/core/library"
	"progress-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for sync.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSync)
	group.Get("/status", h.HandleStatus)
	group.Post("/:appid", h.HandleSyncGame)
}

// HandleSync runs a progressive sync of the whole library.
// @Summary Sync Library
// @Description Discover owned games and sync them one at a time. Concurrent requests share one run.
// @Tags sync
// @Produce json
// @Success 200 {object} library.SyncSummary "Sync Summary"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	summary := h.service.Sync(c.UserContext(), TriggerManual, nil)
	if !summary.Success {
		l.Error("Library sync failed", zap.String("error", summary.Error))
	}
	return c.JSON(summary)
}

// HandleSyncGame syncs one game.
// @Summary Sync Game
// @Description Collect and submit the data of a single game.
// @Tags sync
// @Produce json
// @Param appid path string true "App ID"
// @Success 200 {object} libsync.SingleResult "Sync Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /sync/{appid} [post]
func (h *Handler) HandleSyncGame(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appid"})
	}
	trigger := c.Query("trigger", TriggerManual)
	return c.JSON(h.service.SyncGame(c.UserContext(), appid, trigger))
}

// HandleStatus returns the sync indicator state.
// @Summary Sync Status
// @Description Current sync status, progress message and latest toast.
// @Tags sync
// @Produce json
// @Success 200 {object} libsync.StatusReport "Sync Status"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}
