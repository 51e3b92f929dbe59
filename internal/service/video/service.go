package video

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
	"github.com/sukhraj1322/short-video-platform/internal/service/activity"
	"github.com/sukhraj1322/short-video-platform/internal/service/ingest"
)

type Service interface {
	Publish(ctx context.Context, owner *domain.User, input domain.PublishVideoInput, ingested *ingest.Result) (*domain.Video, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	// Feed pages through all videos, newest first.
	Feed(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.Video], error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Video, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Video, error)
	Search(ctx context.Context, query string) ([]domain.Video, error)
	// RecordView counts every watch-page load, repeats included. Not
	// idempotent on purpose.
	RecordView(ctx context.Context, id uuid.UUID) (*domain.Video, error)
	// ToggleLike adjusts the like count from the client-held toggle state.
	// There is no per-user like record; the caller's state is trusted.
	ToggleLike(ctx context.Context, id uuid.UUID, currentlyLiked bool) (*domain.Video, error)
	PostComment(ctx context.Context, id uuid.UUID, author *domain.User, text string) (*domain.Video, error)
	Delete(ctx context.Context, id uuid.UUID, requester *domain.User) error
}

type service struct {
	videoRepo repository.VideoRepository
	blobRepo  repository.BlobRepository
	userRepo  repository.UserRepository
	activity  activity.Service
	log       *zap.Logger
}

func NewService(videoRepo repository.VideoRepository, blobRepo repository.BlobRepository, userRepo repository.UserRepository, activitySvc activity.Service, log *zap.Logger) Service {
	return &service{
		videoRepo: videoRepo,
		blobRepo:  blobRepo,
		userRepo:  userRepo,
		activity:  activitySvc,
		log:       log,
	}
}

func (s *service) Publish(ctx context.Context, owner *domain.User, input domain.PublishVideoInput, ingested *ingest.Result) (*domain.Video, error) {
	video := &domain.Video{
		ID:           uuid.New(),
		UserID:       owner.ID,
		Username:     owner.Username,
		MediaURL:     ingested.MediaURL,
		ThumbnailURL: ingested.ThumbnailURL,
		Caption:      strings.TrimSpace(input.Caption),
		Tags:         normalizeTags(input.Tags),
		Duration:     ingested.Duration,
		Width:        ingested.Width,
		Height:       ingested.Height,
		SizeBytes:    ingested.SizeBytes,
		Comments:     domain.CommentList{},
		CreatedAt:    time.Now(),
	}

	if err := s.videoRepo.Create(ctx, video); err != nil {
		return nil, err
	}

	s.activity.Append(ctx, domain.LogUpload, fmt.Sprintf("user %q uploaded a video", owner.Username), map[string]string{
		"video_id": video.ID.String(),
		"user_id":  owner.ID.String(),
	})

	return video, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	video, err := s.videoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, errs.ErrNotFound
	}
	return video, nil
}

func (s *service) Feed(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.Video], error) {
	params.Validate()

	total, err := s.videoRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	videos, err := s.videoRepo.ListPage(ctx, params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}

	response := domain.NewPaginatedResponse(videos, params.Page, params.PageSize, total)
	return &response, nil
}

func (s *service) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Video, error) {
	return s.videoRepo.ListByUser(ctx, userID)
}

func (s *service) ListByUsername(ctx context.Context, username string) ([]domain.Video, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errs.ErrNotFound
	}
	return s.videoRepo.ListByUser(ctx, user.ID)
}

func (s *service) Search(ctx context.Context, query string) ([]domain.Video, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.videoRepo.List(ctx)
	}
	return s.videoRepo.Search(ctx, query)
}

func (s *service) RecordView(ctx context.Context, id uuid.UUID) (*domain.Video, error) {
	video, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	video.Views++
	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	s.activity.Append(ctx, domain.LogView, fmt.Sprintf("video %s viewed", video.ID), map[string]interface{}{
		"video_id": video.ID.String(),
		"views":    video.Views,
	})

	return video, nil
}

func (s *service) ToggleLike(ctx context.Context, id uuid.UUID, currentlyLiked bool) (*domain.Video, error) {
	video, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if currentlyLiked {
		video.Likes--
	} else {
		video.Likes++
	}

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	s.activity.Append(ctx, domain.LogLike, fmt.Sprintf("video %s like toggled", video.ID), map[string]interface{}{
		"video_id": video.ID.String(),
		"likes":    video.Likes,
	})

	return video, nil
}

func (s *service) PostComment(ctx context.Context, id uuid.UUID, author *domain.User, text string) (*domain.Video, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errs.ErrEmptyComment
	}

	video, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		ID:        uuid.New(),
		UserID:    author.ID,
		Username:  author.Username,
		Text:      text,
		CreatedAt: time.Now(),
	}
	video.Comments = append(video.Comments, comment)

	if err := s.videoRepo.Update(ctx, video); err != nil {
		return nil, err
	}

	s.activity.Append(ctx, domain.LogComment, fmt.Sprintf("user %q commented on video %s", author.Username, video.ID), map[string]string{
		"video_id":   video.ID.String(),
		"comment_id": comment.ID.String(),
	})

	return video, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID, requester *domain.User) error {
	video, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if video.UserID != requester.ID {
		return errs.ErrPermissionDenied
	}

	// Local blobs go first. A failed blob delete is logged and skipped:
	// removing the visible record beats leaving it to guard an orphan.
	for _, uri := range []string{video.MediaURL, video.ThumbnailURL} {
		blobID, ok := domain.LocalBlobID(uri)
		if !ok {
			continue
		}
		if err := s.blobRepo.Delete(ctx, blobID); err != nil {
			s.log.Warn("delete video blob",
				zap.String("blob_id", blobID),
				zap.Error(err),
			)
		}
	}

	if err := s.videoRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.activity.Append(ctx, domain.LogDelete, fmt.Sprintf("user %q deleted video %s", requester.Username, video.ID), map[string]string{
		"video_id": video.ID.String(),
	})

	return nil
}

func normalizeTags(tags []string) domain.StringList {
	out := make(domain.StringList, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(strings.TrimPrefix(tag, "#"))
		if tag != "" {
			out = append(out, strings.ToLower(tag))
		}
	}
	return out
}
