package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
)

type LogRepository interface {
	Create(ctx context.Context, log *domain.Log) error
	List(ctx context.Context, newestFirst bool) ([]domain.Log, error)
	ListByType(ctx context.Context, logType domain.LogType) ([]domain.Log, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
}

type logRepository struct {
	db *sqlx.DB
}

func NewLogRepository(db *sqlx.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, log *domain.Log) error {
	query := `INSERT INTO logs (id, type, message, metadata, created_at) VALUES (?, ?, ?, ?, ?)`

	var metadata interface{}
	if len(log.Metadata) > 0 {
		metadata = string(log.Metadata)
	}

	_, err := r.db.ExecContext(ctx, query, log.ID, log.Type, log.Message, metadata, log.CreatedAt)
	return err
}

func (r *logRepository) List(ctx context.Context, newestFirst bool) ([]domain.Log, error) {
	order := "ASC"
	if newestFirst {
		order = "DESC"
	}

	var logs []domain.Log
	query := `SELECT * FROM logs ORDER BY created_at ` + order

	err := r.db.SelectContext(ctx, &logs, query)
	return logs, err
}

func (r *logRepository) ListByType(ctx context.Context, logType domain.LogType) ([]domain.Log, error) {
	var logs []domain.Log
	query := `SELECT * FROM logs WHERE type = ? ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &logs, query, logType)
	return logs, err
}

func (r *logRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM logs`)
	return count, err
}

func (r *logRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM logs`)
	return err
}
