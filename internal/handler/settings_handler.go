package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sukhraj1322/short-video-platform/internal/middleware"
	"github.com/sukhraj1322/short-video-platform/internal/service/settings"
)

type SettingsHandler struct {
	settingsService settings.Service
}

func NewSettingsHandler(settingsService settings.Service) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")
	value, err := h.settingsService.Get(c.Context(), key)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"key": key, "value": value})
}

func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	key := c.Params("key")

	var input struct {
		Value string `json:"value"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	if err := h.settingsService.Set(c.Context(), key, input.Value); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"key": key, "value": input.Value})
}
