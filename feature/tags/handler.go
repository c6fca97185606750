package tags

import (
	"errors"

	"progress-tracker/core/library"
	"progress-tracker/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SetRequest is the body of a manual tag assignment.
type SetRequest struct {
	Tag string `json:"tag"`
}

// Handler handles HTTP requests for tags.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the tag routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/tags")
	group.Get("/stats", h.HandleStats)
	group.Get("/backlog", h.HandleBacklog)
	group.Get("/", h.HandleList)
	group.Get("/:appid", h.HandleDetails)
	group.Put("/:appid", h.HandleSet)
	group.Post("/:appid/reset", h.HandleReset)
	group.Delete("/:appid", h.HandleRemove)
}

// HandleStats returns tag counts.
// @Summary Tag Statistics
// @Description Number of games per progress tag.
// @Tags tags
// @Produce json
// @Success 200 {object} rpc.TagStatistics "Statistics"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(stats)
}

// HandleList returns tagged games.
// @Summary List Tagged Games
// @Description All tagged games, optionally filtered by tag.
// @Tags tags
// @Produce json
// @Param tag query string false "Tag filter"
// @Success 200 {array} rpc.TaggedGame "Games"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	games, err := h.service.List(c.Context(), library.Tag(c.Query("tag")))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(games)
}

// HandleBacklog returns backlog games.
// @Summary List Backlog
// @Description Games tagged as backlog.
// @Tags tags
// @Produce json
// @Success 200 {array} rpc.TaggedGame "Games"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags/backlog [get]
func (h *Handler) HandleBacklog(c *fiber.Ctx) error {
	games, err := h.service.Backlog(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(games)
}

// HandleDetails returns a game's stored details.
// @Summary Game Details
// @Description Stored stats, tag and completion estimates of a game.
// @Tags tags
// @Produce json
// @Param appid path string true "App ID"
// @Success 200 {object} rpc.GameDetails "Details"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags/{appid} [get]
func (h *Handler) HandleDetails(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return badAppID(c)
	}
	details, err := h.service.Details(c.Context(), appid)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(details)
}

// HandleSet assigns a manual tag.
// @Summary Set Manual Tag
// @Description Assign a manual tag. Valid tags are completed, in_progress, mastered and dropped.
// @Tags tags
// @Accept json
// @Produce json
// @Param appid path string true "App ID"
// @Param tag body tags.SetRequest true "Tag"
// @Success 200 {object} map[string]string "Assigned tag"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags/{appid} [put]
func (h *Handler) HandleSet(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return badAppID(c)
	}
	var req SetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	tag, err := h.service.Set(c.Context(), appid, req.Tag)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"appid": appid, "tag": tag})
}

// HandleReset restores the automatic tag.
// @Summary Reset Tag
// @Description Return a game to its automatically computed tag.
// @Tags tags
// @Produce json
// @Param appid path string true "App ID"
// @Success 204 "Reset"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags/{appid}/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return badAppID(c)
	}
	if err := h.service.Reset(c.Context(), appid); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRemove clears a game's tag.
// @Summary Remove Tag
// @Description Clear the tag of a game.
// @Tags tags
// @Produce json
// @Param appid path string true "App ID"
// @Success 204 "Removed"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 502 {object} map[string]string "Backend Error"
// @Router /tags/{appid} [delete]
func (h *Handler) HandleRemove(c *fiber.Ctx) error {
	appid, ok := library.ParseAppID(c.Params("appid"))
	if !ok {
		return badAppID(c)
	}
	if err := h.service.Remove(c.Context(), appid); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrInvalidTag) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Tag request failed", zap.Error(err))
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
}

func badAppID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid appid"})
}
