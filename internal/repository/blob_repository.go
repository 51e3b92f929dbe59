package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
)

type BlobRepository interface {
	Put(ctx context.Context, blob *domain.Blob) error
	Get(ctx context.Context, id string) (*domain.Blob, error)
	Delete(ctx context.Context, id string) error
}

type blobRepository struct {
	db *sqlx.DB
}

func NewBlobRepository(db *sqlx.DB) BlobRepository {
	return &blobRepository{db: db}
}

func (r *blobRepository) Put(ctx context.Context, blob *domain.Blob) error {
	query := `INSERT INTO video_blobs (id, data, created_at) VALUES (?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, blob.ID, blob.Data, blob.CreatedAt)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func (r *blobRepository) Get(ctx context.Context, id string) (*domain.Blob, error) {
	var blob domain.Blob
	query := `SELECT * FROM video_blobs WHERE id = ?`

	err := r.db.GetContext(ctx, &blob, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &blob, nil
}

func (r *blobRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM video_blobs WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
