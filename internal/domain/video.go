package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Video struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	UserID        uuid.UUID   `json:"user_id" db:"user_id"`
	Username      string      `json:"username" db:"username"`
	MediaURL      string      `json:"media_url" db:"media_url"`
	ThumbnailURL  string      `json:"thumbnail_url" db:"thumbnail_url"`
	Caption       string      `json:"caption" db:"caption"`
	Tags          StringList  `json:"tags" db:"tags"`
	Duration      float64     `json:"duration" db:"duration"`
	Width         int         `json:"width" db:"width"`
	Height        int         `json:"height" db:"height"`
	SizeBytes     int64       `json:"size_bytes" db:"size_bytes"`
	Likes         int64       `json:"likes" db:"likes"`
	Views         int64       `json:"views" db:"views"`
	Comments      CommentList `json:"comments" db:"comments"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
}

type Comment struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type PublishVideoInput struct {
	Caption string   `json:"caption" validate:"max=300"`
	Tags    []string `json:"tags"`
}

// StringList stores a []string as a JSON column so the tag list travels with
// the video row.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// CommentList stores the embedded comment list as a JSON column. The video
// row is the single owner of its comments; they are never written separately.
type CommentList []Comment

func (l CommentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *CommentList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
