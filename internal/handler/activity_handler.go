package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/service/activity"
)

type ActivityHandler struct {
	activityService activity.Service
}

func NewActivityHandler(activityService activity.Service) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) List(c *fiber.Ctx) error {
	if logType := c.Query("type"); logType != "" {
		logs, err := h.activityService.ListByType(c.Context(), domain.LogType(logType))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"logs": logs})
	}

	logs, err := h.activityService.List(c.Context(), c.Query("order", "desc") == "desc")
	if err != nil {
		return err
	}
	total, err := h.activityService.Count(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"logs": logs, "total": total})
}

func (h *ActivityHandler) Clear(c *fiber.Ctx) error {
	if err := h.activityService.Clear(c.Context()); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logs cleared"})
}

// Report downloads the activity log as a CSV attachment.
func (h *ActivityHandler) Report(c *fiber.Ctx) error {
	report, err := h.activityService.Report(c.Context(), c.Query("order", "desc") == "desc")
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("activity_report_%s.csv", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	c.Set(fiber.HeaderContentType, "text/csv")

	return c.Send(report)
}
