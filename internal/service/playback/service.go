// Package playback resolves a video's media URL into something servable.
// Remote URLs pass through; local URLs are read from the blob collection
// with a short bounded retry, because the blob write can lag slightly behind
// the video record that references it.
package playback

import (
	"context"
	"time"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
)

// Resolved is either a remote locator to redirect to, or the blob bytes to
// stream directly.
type Resolved struct {
	RemoteURL string
	Data      []byte
}

func (r *Resolved) Local() bool {
	return r.RemoteURL == ""
}

type Service interface {
	Resolve(ctx context.Context, mediaURL string) (*Resolved, error)
}

type service struct {
	blobRepo repository.BlobRepository
	backoff  []time.Duration
}

// retryBackoff bounds the blob-after-metadata race: three reads spaced with
// increasing delay before the blob is declared genuinely missing.
var retryBackoff = []time.Duration{50 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond}

func NewService(blobRepo repository.BlobRepository) Service {
	return &service{blobRepo: blobRepo, backoff: retryBackoff}
}

func (s *service) Resolve(ctx context.Context, mediaURL string) (*Resolved, error) {
	blobID, ok := domain.LocalBlobID(mediaURL)
	if !ok {
		return &Resolved{RemoteURL: mediaURL}, nil
	}

	for attempt := 0; ; attempt++ {
		blob, err := s.blobRepo.Get(ctx, blobID)
		if err != nil {
			return nil, err
		}
		if blob != nil {
			return &Resolved{Data: blob.Data}, nil
		}

		if attempt >= len(s.backoff) {
			return nil, errs.ErrNotFound
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.backoff[attempt]):
		}
	}
}
