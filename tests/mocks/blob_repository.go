package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
)

type BlobRepository struct {
	mock.Mock
}

func (m *BlobRepository) Put(ctx context.Context, blob *domain.Blob) error {
	args := m.Called(ctx, blob)
	return args.Error(0)
}

func (m *BlobRepository) Get(ctx context.Context, id string) (*domain.Blob, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Blob), args.Error(1)
}

func (m *BlobRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
