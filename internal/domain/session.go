package domain

import (
	"time"

	"github.com/google/uuid"
)

// Session is the single-row marker of the currently authenticated user.
// Logging in overwrites any prior row; logging out deletes it. Sessions
// carry no expiry and persist until explicit logout.
type Session struct {
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
