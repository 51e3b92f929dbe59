package settings

import (
	"context"
	"strings"

	"github.com/sukhraj1322/short-video-platform/internal/errs"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
)

type Service interface {
	Get(ctx context.Context, key string) (string, error)
	// Set upserts; writing the same value twice is a no-op.
	Set(ctx context.Context, key, value string) error
}

type service struct {
	settingsRepo repository.SettingsRepository
}

func NewService(settingsRepo repository.SettingsRepository) Service {
	return &service{settingsRepo: settingsRepo}
}

func (s *service) Get(ctx context.Context, key string) (string, error) {
	value, ok, err := s.settingsRepo.Get(ctx, strings.TrimSpace(key))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.ErrNotFound
	}
	return value, nil
}

func (s *service) Set(ctx context.Context, key, value string) error {
	return s.settingsRepo.Set(ctx, strings.TrimSpace(key), value)
}
