package repository

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	User     UserRepository
	Video    VideoRepository
	Blob     BlobRepository
	Log      LogRepository
	Settings SettingsRepository
	Session  SessionRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Video:    NewVideoRepository(db),
		Blob:     NewBlobRepository(db),
		Log:      NewLogRepository(db),
		Settings: NewSettingsRepository(db),
		Session:  NewSessionRepository(db),
	}
}

// isUniqueViolation reports whether err came from a unique index collision.
// SQLite has no typed error for this in database/sql, so the message is the
// stable contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
