package playback

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
)

type stubBlobRepo struct {
	mu    sync.Mutex
	blobs map[string]*domain.Blob
	gets  int
}

func (r *stubBlobRepo) Put(_ context.Context, blob *domain.Blob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blobs == nil {
		r.blobs = make(map[string]*domain.Blob)
	}
	r.blobs[blob.ID] = blob
	return nil
}

func (r *stubBlobRepo) Get(_ context.Context, id string) (*domain.Blob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gets++
	return r.blobs[id], nil
}

func (r *stubBlobRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.blobs, id)
	return nil
}

func fastService(repo *stubBlobRepo) *service {
	return &service{
		blobRepo: repo,
		backoff:  []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
	}
}

func TestResolve_BlobAppearsOnRetry(t *testing.T) {
	repo := &stubBlobRepo{}
	svc := fastService(repo)

	// The blob lands after the first read has already missed.
	go func() {
		time.Sleep(500 * time.Microsecond)
		_ = repo.Put(context.Background(), &domain.Blob{ID: "late", Data: []byte("bits")})
	}()

	resolved, err := svc.Resolve(context.Background(), domain.LocalURI("late"))

	assert.NoError(t, err)
	assert.Equal(t, []byte("bits"), resolved.Data)
}

func TestResolve_ExhaustsRetries(t *testing.T) {
	repo := &stubBlobRepo{}
	svc := fastService(repo)

	_, err := svc.Resolve(context.Background(), domain.LocalURI("never"))

	assert.ErrorIs(t, err, errs.ErrNotFound)
	// One initial read plus one per backoff step.
	assert.Equal(t, len(svc.backoff)+1, repo.gets)
}

func TestResolve_ContextCancelled(t *testing.T) {
	repo := &stubBlobRepo{}
	svc := &service{
		blobRepo: repo,
		backoff:  []time.Duration{time.Hour},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Resolve(ctx, domain.LocalURI("gone"))
	assert.ErrorIs(t, err, context.Canceled)
}
