package service

import (
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/adapter/mediahost"
	"github.com/sukhraj1322/short-video-platform/internal/config"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
	"github.com/sukhraj1322/short-video-platform/internal/service/activity"
	"github.com/sukhraj1322/short-video-platform/internal/service/analytics"
	"github.com/sukhraj1322/short-video-platform/internal/service/auth"
	"github.com/sukhraj1322/short-video-platform/internal/service/ingest"
	"github.com/sukhraj1322/short-video-platform/internal/service/playback"
	"github.com/sukhraj1322/short-video-platform/internal/service/settings"
	"github.com/sukhraj1322/short-video-platform/internal/service/video"
)

type Services struct {
	Auth      auth.Service
	Video     video.Service
	Ingest    ingest.Service
	Playback  playback.Service
	Activity  activity.Service
	Analytics analytics.Service
	Settings  settings.Service
}

func NewServices(repos *repository.Repositories, cfg *config.Config, log *zap.Logger) *Services {
	activityService := activity.NewService(repos.Log, log)
	authService := auth.NewService(repos.User, repos.Session, activityService)

	// Remote mode only when a media host is configured; otherwise uploads
	// stay inside the embedded database.
	var uploader ingest.Uploader
	if cfg.RemoteMediaHost() {
		uploader = mediahost.NewClient(cfg.MediaHostUploadURL, cfg.MediaHostPreset, cfg.MediaHostTimeout)
	}
	ingestService := ingest.NewService(uploader, repos.Blob, log)

	videoService := video.NewService(repos.Video, repos.Blob, repos.User, activityService, log)
	playbackService := playback.NewService(repos.Blob)
	analyticsService := analytics.NewService(repos.Video, repos.Settings, cfg.DefaultCPM)
	settingsService := settings.NewService(repos.Settings)

	return &Services{
		Auth:      authService,
		Video:     videoService,
		Ingest:    ingestService,
		Playback:  playbackService,
		Activity:  activityService,
		Analytics: analyticsService,
		Settings:  settingsService,
	}
}
