package handlers

import (
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

// maxActivityLimit caps the limit query parameter.
const maxActivityLimit = 500

// ActivityLogHandler serves the audit trail.
type ActivityLogHandler struct {
	service      *services.ActivityLogService
	defaultLimit int
}

// NewActivityLogHandler creates a new ActivityLogHandler.
func NewActivityLogHandler(service *services.ActivityLogService, defaultLimit int) *ActivityLogHandler {
	return &ActivityLogHandler{
		service:      service,
		defaultLimit: defaultLimit,
	}
}

func (h *ActivityLogHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Get("/activity-log/recent", authRequired, h.HandleGetRecent)
}

// HandleGetRecent lists the newest entries; ?limit= overrides the default.
func (h *ActivityLogHandler) HandleGetRecent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.defaultLimit)
	if limit <= 0 {
		limit = h.defaultLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}
	entries, err := h.service.ListRecent(c.UserContext(), limit)
	if err != nil {
		return err
	}
	return c.JSON(entries)
}
