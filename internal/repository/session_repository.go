package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
)

type SessionRepository interface {
	// Get returns the active session, or nil when nobody is logged in.
	Get(ctx context.Context) (*domain.Session, error)
	// Replace writes the session row, discarding any prior one. The table
	// never holds more than a single row.
	Replace(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context) error
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Get(ctx context.Context) (*domain.Session, error) {
	var session domain.Session
	query := `SELECT * FROM session LIMIT 1`

	err := r.db.GetContext(ctx, &session, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Replace(ctx context.Context, session *domain.Session) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return err
	}

	query := `INSERT INTO session (user_id, token_hash, created_at) VALUES (?, ?, ?)`
	if _, err := tx.ExecContext(ctx, query, session.UserID, session.TokenHash, session.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *sessionRepository) Delete(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM session`)
	return err
}
