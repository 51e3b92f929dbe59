package unit_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
	"github.com/sukhraj1322/short-video-platform/internal/service/ingest"
	"github.com/sukhraj1322/short-video-platform/internal/service/playback"
)

// memBlobRepo is an in-memory stand-in for the video_blobs collection, so
// ingest and playback can be exercised end to end.
type memBlobRepo struct {
	mu    sync.Mutex
	blobs map[string]*domain.Blob
}

func newMemBlobRepo() *memBlobRepo {
	return &memBlobRepo{blobs: make(map[string]*domain.Blob)}
}

func (r *memBlobRepo) Put(_ context.Context, blob *domain.Blob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blobs[blob.ID]; ok {
		return errs.ErrAlreadyExists
	}
	r.blobs[blob.ID] = blob
	return nil
}

func (r *memBlobRepo) Get(_ context.Context, id string) (*domain.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.blobs[id], nil
}

func (r *memBlobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, id)
	return nil
}

func TestIngest_LocalRoundTrip(t *testing.T) {
	ctx := context.Background()
	blobs := newMemBlobRepo()
	svc := ingest.NewService(nil, blobs, zap.NewNop())

	assert.False(t, svc.Remote())

	file := bytes.Repeat([]byte{0xAB}, 4096)

	var progress []float64
	result, err := svc.Ingest(ctx, file, func(f float64) {
		progress = append(progress, f)
	})

	assert.NoError(t, err)
	assert.True(t, len(result.MediaURL) > len(domain.LocalScheme))
	assert.Contains(t, result.MediaURL, domain.LocalScheme)
	assert.Contains(t, result.ThumbnailURL, domain.LocalScheme)
	assert.Equal(t, int64(len(file)), result.SizeBytes)

	// Deterministic synthetic progress, ending at 1.
	assert.Equal(t, []float64{0.25, 0.5, 0.75, 1}, progress)

	// The playback path resolves the URI back to a blob of the same size.
	resolved, err := playback.NewService(blobs).Resolve(ctx, result.MediaURL)
	assert.NoError(t, err)
	assert.True(t, resolved.Local())
	assert.Equal(t, file, resolved.Data)

	// The thumbnail is its own blob with JPEG bytes.
	thumb, err := playback.NewService(blobs).Resolve(ctx, result.ThumbnailURL)
	assert.NoError(t, err)
	assert.NotEmpty(t, thumb.Data)
}

func TestPlayback_RemotePassthrough(t *testing.T) {
	svc := playback.NewService(newMemBlobRepo())

	resolved, err := svc.Resolve(context.Background(), "https://cdn.example.com/v/abc.mp4")

	assert.NoError(t, err)
	assert.False(t, resolved.Local())
	assert.Equal(t, "https://cdn.example.com/v/abc.mp4", resolved.RemoteURL)
}

func TestPlayback_MissingBlob(t *testing.T) {
	svc := playback.NewService(newMemBlobRepo())

	_, err := svc.Resolve(context.Background(), domain.LocalURI("nope"))

	assert.ErrorIs(t, err, errs.ErrNotFound)
}
