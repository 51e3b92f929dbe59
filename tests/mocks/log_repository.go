package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
)

type LogRepository struct {
	mock.Mock
}

func (m *LogRepository) Create(ctx context.Context, log *domain.Log) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *LogRepository) List(ctx context.Context, newestFirst bool) ([]domain.Log, error) {
	args := m.Called(ctx, newestFirst)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Log), args.Error(1)
}

func (m *LogRepository) ListByType(ctx context.Context, logType domain.LogType) ([]domain.Log, error) {
	args := m.Called(ctx, logType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Log), args.Error(1)
}

func (m *LogRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *LogRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
