package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type LogType string

const (
	LogSignup  LogType = "signup"
	LogLogin   LogType = "login"
	LogLogout  LogType = "logout"
	LogUpload  LogType = "upload"
	LogView    LogType = "view"
	LogLike    LogType = "like"
	LogComment LogType = "comment"
	LogDelete  LogType = "delete"
)

// Log is an append-only activity record. Entries are never mutated; the only
// destructive operation is a bulk clear.
type Log struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	Type      LogType         `json:"type" db:"type"`
	Message   string          `json:"message" db:"message"`
	Metadata  json.RawMessage `json:"metadata,omitempty" db:"metadata"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}
