package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
)

type SessionRepository struct {
	mock.Mock
}

func (m *SessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *SessionRepository) Replace(ctx context.Context, session *domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionRepository) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
