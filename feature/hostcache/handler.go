package hostcache

import (
	"bytes"

	"progress-tracker/core/library"
	"progress-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the host cache.
type Handler struct {
	store  *Store
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// RegisterRoutes registers the host cache routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/hostcache")
	group.Get("/snapshot", h.HandleGetSnapshot)
	group.Put("/snapshot", h.HandlePutSnapshot)
	group.Put("/overviews/:appid", h.HandlePutOverview)
	group.Put("/achievements/:appid", h.HandlePutAchievements)
}

// HandleGetSnapshot returns entry counts of the current snapshot.
// @Summary Get Host Snapshot Stats
// @Description Get entry counts of the captured host caches.
// @Tags hostcache
// @Produce json
// @Success 200 {object} hostcache.Stats "Snapshot Stats"
// @Router /hostcache/snapshot [get]
func (h *Handler) HandleGetSnapshot(c *fiber.Ctx) error {
	return c.JSON(h.store.Stats())
}

// HandlePutSnapshot replaces the captured host caches.
// @Summary Replace Host Snapshot
// @Description Replace the captured host caches with a new capture.
// @Tags hostcache
// @Accept json
// @Produce json
// @Param snapshot body hostcache.Snapshot true "Host Snapshot"
// @Success 200 {object} hostcache.Stats "Snapshot Stats"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /hostcache/snapshot [put]
func (h *Handler) HandlePutSnapshot(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	snap, err := Decode(bytes.NewReader(c.Body()))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.Replace(snap)

	if err := h.store.Persist(c.Context()); err != nil {
		l.Warn("Failed to persist host snapshot", zap.Error(err))
	}
	return c.JSON(h.store.Stats())
}

// HandlePutOverview updates one overview entry.
// @Summary Update Game Overview
// @Tags hostcache
// @Accept json
// @Param appid path string true "App ID"
// @Param overview body library.Overview true "Overview"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /hostcache/overviews/{appid} [put]
func (h *Handler) HandlePutOverview(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appid"})
	}
	var o library.Overview
	if err := c.BodyParser(&o); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.PutOverview(appid, o)
	return c.SendStatus(fiber.StatusNoContent)
}

// HandlePutAchievements updates one achievement progress entry.
// @Summary Update Achievement Progress
// @Tags hostcache
// @Accept json
// @Param appid path string true "App ID"
// @Param progress body library.AchievementProgress true "Achievement Progress"
// @Success 204
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /hostcache/achievements/{appid} [put]
func (h *Handler) HandlePutAchievements(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appid"})
	}
	var p library.AchievementProgress
	if err := c.BodyParser(&p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	h.store.PutAchievements(appid, p)
	return c.SendStatus(fiber.StatusNoContent)
}
