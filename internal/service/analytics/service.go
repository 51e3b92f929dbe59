package analytics

import (
	"context"
	"strconv"

	"github.com/google/uuid"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
)

// cpmSettingKey overrides the configured CPM when present in settings.
const cpmSettingKey = "analytics.cpm"

type Service interface {
	// CreatorStats aggregates a user's published videos and estimates
	// revenue as views/1000 * CPM.
	CreatorStats(ctx context.Context, userID uuid.UUID) (*domain.CreatorStats, error)
}

type service struct {
	videoRepo    repository.VideoRepository
	settingsRepo repository.SettingsRepository
	defaultCPM   float64
}

func NewService(videoRepo repository.VideoRepository, settingsRepo repository.SettingsRepository, defaultCPM float64) Service {
	return &service{
		videoRepo:    videoRepo,
		settingsRepo: settingsRepo,
		defaultCPM:   defaultCPM,
	}
}

func (s *service) CreatorStats(ctx context.Context, userID uuid.UUID) (*domain.CreatorStats, error) {
	videos, err := s.videoRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &domain.CreatorStats{
		VideoCount: int64(len(videos)),
	}
	for _, v := range videos {
		stats.TotalViews += v.Views
		stats.TotalLikes += v.Likes
		stats.TotalComments += int64(len(v.Comments))
	}

	stats.EstimatedCPM = s.cpm(ctx)
	stats.EstimatedRevenue = float64(stats.TotalViews) / 1000 * stats.EstimatedCPM

	return stats, nil
}

func (s *service) cpm(ctx context.Context) float64 {
	value, ok, err := s.settingsRepo.Get(ctx, cpmSettingKey)
	if err != nil || !ok {
		return s.defaultCPM
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil || parsed <= 0 {
		return s.defaultCPM
	}
	return parsed
}
