package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
)

type VideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	// Update overwrites the whole row, comments and counters included. Every
	// mutation is a read-modify-write of the full record.
	Update(ctx context.Context, video *domain.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]domain.Video, error)
	ListPage(ctx context.Context, limit, offset int) ([]domain.Video, error)
	Count(ctx context.Context) (int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Video, error)
	Search(ctx context.Context, query string) ([]domain.Video, error)
}

type videoRepository struct {
	db *sqlx.DB
}

func NewVideoRepository(db *sqlx.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(ctx context.Context, video *domain.Video) error {
	query := `
		INSERT INTO videos (id, user_id, username, media_url, thumbnail_url, caption, tags,
			duration, width, height, size_bytes, likes, views, comments, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		video.ID, video.UserID, video.Username, video.MediaURL, video.ThumbnailURL,
		video.Caption, video.Tags, video.Duration, video.Width, video.Height,
		video.SizeBytes, video.Likes, video.Views, video.Comments, video.CreatedAt,
	)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func (r *videoRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	var video domain.Video
	query := `SELECT * FROM videos WHERE id = ?`

	err := r.db.GetContext(ctx, &video, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Update(ctx context.Context, video *domain.Video) error {
	query := `
		UPDATE videos
		SET caption = ?, tags = ?, likes = ?, views = ?, comments = ?
		WHERE id = ?`

	_, err := r.db.ExecContext(ctx, query,
		video.Caption, video.Tags, video.Likes, video.Views, video.Comments, video.ID,
	)
	return err
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM videos WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *videoRepository) List(ctx context.Context) ([]domain.Video, error) {
	var videos []domain.Video
	query := `SELECT * FROM videos ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &videos, query)
	return videos, err
}

func (r *videoRepository) ListPage(ctx context.Context, limit, offset int) ([]domain.Video, error) {
	var videos []domain.Video
	query := `SELECT * FROM videos ORDER BY created_at DESC LIMIT ? OFFSET ?`

	err := r.db.SelectContext(ctx, &videos, query, limit, offset)
	return videos, err
}

func (r *videoRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM videos`)
	return count, err
}

func (r *videoRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Video, error) {
	var videos []domain.Video
	query := `SELECT * FROM videos WHERE user_id = ? ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &videos, query, userID)
	return videos, err
}

func (r *videoRepository) Search(ctx context.Context, query string) ([]domain.Video, error) {
	var videos []domain.Video
	pattern := "%" + query + "%"
	q := `
		SELECT * FROM videos
		WHERE caption LIKE ? OR tags LIKE ? OR username LIKE ?
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &videos, q, pattern, pattern, pattern)
	return videos, err
}
