package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sukhraj1322/short-video-platform/internal/middleware"
	"github.com/sukhraj1322/short-video-platform/internal/service/analytics"
	"github.com/sukhraj1322/short-video-platform/internal/service/video"
)

type UserHandler struct {
	videoService     video.Service
	analyticsService analytics.Service
}

func NewUserHandler(videoService video.Service, analyticsService analytics.Service) *UserHandler {
	return &UserHandler{
		videoService:     videoService,
		analyticsService: analyticsService,
	}
}

// Videos lists a profile's uploads, newest first.
func (h *UserHandler) Videos(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return middleware.BadRequest("Missing username")
	}

	videos, err := h.videoService.ListByUsername(c.Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"videos": videos})
}

// Stats returns the acting user's creator analytics and revenue estimate.
func (h *UserHandler) Stats(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	stats, err := h.analyticsService.CreatorStats(c.Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"stats": stats})
}
