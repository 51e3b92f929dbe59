package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/middleware"
	"github.com/sukhraj1322/short-video-platform/internal/service/ingest"
	"github.com/sukhraj1322/short-video-platform/internal/service/playback"
	"github.com/sukhraj1322/short-video-platform/internal/service/video"
)

type VideoHandler struct {
	videoService    video.Service
	ingestService   ingest.Service
	playbackService playback.Service
}

func NewVideoHandler(videoService video.Service, ingestService ingest.Service, playbackService playback.Service) *VideoHandler {
	return &VideoHandler{
		videoService:    videoService,
		ingestService:   ingestService,
		playbackService: playbackService,
	}
}

func (h *VideoHandler) Feed(c *fiber.Ctx) error {
	var params domain.PaginationParams
	if err := c.QueryParser(&params); err != nil {
		return middleware.BadRequest("Invalid pagination parameters")
	}

	feed, err := h.videoService.Feed(c.Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(feed)
}

func (h *VideoHandler) Search(c *fiber.Ctx) error {
	videos, err := h.videoService.Search(c.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"videos": videos})
}

func (h *VideoHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	v, err := h.videoService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"video": v})
}

// Upload ingests the multipart file (remote host or local fallback,
// whichever the server is configured for) and publishes the video record.
func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing video file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Cannot read video file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return middleware.BadRequest("Cannot read video file")
	}

	ingested, err := h.ingestService.Ingest(c.Context(), data, nil)
	if err != nil {
		return err
	}

	input := domain.PublishVideoInput{
		Caption: c.FormValue("caption"),
		Tags:    splitTags(c.FormValue("tags")),
	}

	v, err := h.videoService.Publish(c.Context(), user, input, ingested)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"video": v})
}

func (h *VideoHandler) Delete(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	if err := h.videoService.Delete(c.Context(), id, user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}

func (h *VideoHandler) RecordView(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	v, err := h.videoService.RecordView(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"views": v.Views})
}

func (h *VideoHandler) ToggleLike(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	var input struct {
		CurrentlyLiked bool `json:"currently_liked"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	v, err := h.videoService.ToggleLike(c.Context(), id, input.CurrentlyLiked)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"likes": v.Likes})
}

func (h *VideoHandler) PostComment(c *fiber.Ctx) error {
	user := middleware.GetCurrentUser(c)

	id, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	var input struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	v, err := h.videoService.PostComment(c.Context(), id, user, input.Text)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"comments": v.Comments})
}

// Stream serves the playable bytes for a video: a redirect for remote media,
// the stored blob for local media.
func (h *VideoHandler) Stream(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("videoId"))
	if err != nil {
		return middleware.BadRequest("Invalid video ID")
	}

	v, err := h.videoService.GetByID(c.Context(), id)
	if err != nil {
		return err
	}

	resolved, err := h.playbackService.Resolve(c.Context(), v.MediaURL)
	if err != nil {
		return err
	}

	if !resolved.Local() {
		return c.Redirect(resolved.RemoteURL, fiber.StatusFound)
	}

	contentType := http.DetectContentType(resolved.Data)
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(resolved.Data)
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
