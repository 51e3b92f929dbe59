package domain

import (
	"strings"
	"time"
)

// LocalScheme marks media URLs whose bytes live in the video_blobs
// collection instead of on a remote host. Local URLs are resolved only at
// playback time and never leave the process.
const LocalScheme = "local://"

// LocalURI builds a local media URL for a blob identifier.
func LocalURI(blobID string) string {
	return LocalScheme + blobID
}

// LocalBlobID extracts the blob identifier from a local media URL. ok is
// false for remote URLs.
func LocalBlobID(uri string) (string, bool) {
	if !strings.HasPrefix(uri, LocalScheme) {
		return "", false
	}
	return strings.TrimPrefix(uri, LocalScheme), true
}

// Blob holds the raw bytes of a locally ingested video or thumbnail, keyed by
// the opaque identifier carried in a local:// media URL. Blobs are referenced
// by videos but deleted explicitly, not cascaded by the database.
type Blob struct {
	ID        string    `db:"id"`
	Data      []byte    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}
