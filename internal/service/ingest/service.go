// Package ingest uploads video files to the configured media host, or in
// local fallback mode stores them in the embedded database. Both modes
// return URLs the rest of the system treats uniformly.
package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/adapter/mediahost"
	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
)

// Result describes an ingested video regardless of mode.
type Result struct {
	MediaURL     string  `json:"media_url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Duration     float64 `json:"duration"`
	Width        int     `json:"width"`
	Height       int     `json:"height"`
	SizeBytes    int64   `json:"size_bytes"`
}

// ProgressFunc receives upload progress as a fraction in [0,1].
type ProgressFunc func(float64)

type Service interface {
	Ingest(ctx context.Context, file []byte, progress ProgressFunc) (*Result, error)
	// Remote reports which mode the service was built in.
	Remote() bool
}

// Uploader is the slice of the media host client the service needs.
// *mediahost.Client satisfies it.
type Uploader interface {
	Upload(ctx context.Context, file []byte, progress func(float64)) (*mediahost.UploadResponse, error)
}

type service struct {
	uploader Uploader
	blobRepo repository.BlobRepository
	log      *zap.Logger
}

// NewService builds a remote-mode service when uploader is non-nil, local
// fallback mode otherwise. The mode is fixed for the life of the service.
func NewService(uploader Uploader, blobRepo repository.BlobRepository, log *zap.Logger) Service {
	return &service{
		uploader: uploader,
		blobRepo: blobRepo,
		log:      log,
	}
}

func (s *service) Remote() bool {
	return s.uploader != nil
}

func (s *service) Ingest(ctx context.Context, file []byte, progress ProgressFunc) (*Result, error) {
	if s.uploader != nil {
		return s.ingestRemote(ctx, file, progress)
	}
	return s.ingestLocal(ctx, file, progress)
}

func (s *service) ingestRemote(ctx context.Context, file []byte, progress ProgressFunc) (*Result, error) {
	resp, err := s.uploader.Upload(ctx, file, progress)
	if err != nil {
		return nil, err
	}

	return &Result{
		MediaURL:     resp.SecureURL,
		ThumbnailURL: mediahost.ThumbnailURL(resp.SecureURL),
		Duration:     resp.Duration,
		Width:        resp.Width,
		Height:       resp.Height,
		SizeBytes:    resp.Bytes,
	}, nil
}

// localProgressSteps is the deterministic progress sequence reported in
// fallback mode. No network is involved, so the steps only exist to keep
// upload UIs working identically in both modes.
var localProgressSteps = []float64{0.25, 0.5, 0.75, 1}

func (s *service) ingestLocal(ctx context.Context, file []byte, progress ProgressFunc) (*Result, error) {
	if progress != nil {
		for _, step := range localProgressSteps {
			progress(step)
		}
	}

	info, err := probeMP4(file)
	if err != nil {
		// Geometry is cosmetic; an unparseable container still gets stored.
		s.log.Warn("mp4 probe failed, storing without geometry", zap.Error(err))
		info = &VideoInfo{}
	}

	thumb, err := makeThumbnail(file, info)
	if err != nil {
		return nil, fmt.Errorf("thumbnail: %w", err)
	}

	now := time.Now()

	thumbID := uuid.New().String()
	if err := s.blobRepo.Put(ctx, &domain.Blob{ID: thumbID, Data: thumb, CreatedAt: now}); err != nil {
		return nil, fmt.Errorf("store thumbnail blob: %w", err)
	}

	blobID := uuid.New().String()
	if err := s.blobRepo.Put(ctx, &domain.Blob{ID: blobID, Data: file, CreatedAt: now}); err != nil {
		return nil, fmt.Errorf("store video blob: %w", err)
	}

	return &Result{
		MediaURL:     domain.LocalURI(blobID),
		ThumbnailURL: domain.LocalURI(thumbID),
		Duration:     info.Duration,
		Width:        info.Width,
		Height:       info.Height,
		SizeBytes:    int64(len(file)),
	}, nil
}
