package unit_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/errs"
	"github.com/sukhraj1322/short-video-platform/internal/service/activity"
	"github.com/sukhraj1322/short-video-platform/internal/service/ingest"
	"github.com/sukhraj1322/short-video-platform/internal/service/video"
	"github.com/sukhraj1322/short-video-platform/tests/mocks"
)

func newVideoService(videoRepo *mocks.VideoRepository, blobRepo *mocks.BlobRepository, userRepo *mocks.UserRepository) video.Service {
	logRepo := new(mocks.LogRepository)
	logRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Maybe()
	activitySvc := activity.NewService(logRepo, zap.NewNop())
	return video.NewService(videoRepo, blobRepo, userRepo, activitySvc, zap.NewNop())
}

func freshVideo(owner uuid.UUID) *domain.Video {
	return &domain.Video{
		ID:       uuid.New(),
		UserID:   owner,
		Username: "alice",
		MediaURL: "local://blob-1",
		Comments: domain.CommentList{},
	}
}

func TestVideoService_Publish(t *testing.T) {
	ctx := context.Background()
	videoRepo := new(mocks.VideoRepository)
	svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

	owner := &domain.User{ID: uuid.New(), Username: "alice"}
	ingested := &ingest.Result{
		MediaURL:     "local://blob-1",
		ThumbnailURL: "local://thumb-1",
		Duration:     12.5,
		Width:        720,
		Height:       1280,
		SizeBytes:    1024,
	}

	videoRepo.On("Create", ctx, mock.MatchedBy(func(v *domain.Video) bool {
		return v.UserID == owner.ID &&
			v.Username == "alice" &&
			v.Caption == "Hi" &&
			v.Views == 0 && v.Likes == 0 && len(v.Comments) == 0
	})).Return(nil).Once()

	v, err := svc.Publish(ctx, owner, domain.PublishVideoInput{Caption: "Hi", Tags: []string{"#Fun", " travel "}}, ingested)

	assert.NoError(t, err)
	assert.Equal(t, domain.StringList{"fun", "travel"}, v.Tags)
	videoRepo.AssertExpectations(t)
}

func TestVideoService_RecordView(t *testing.T) {
	ctx := context.Background()
	videoRepo := new(mocks.VideoRepository)
	svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

	v := freshVideo(uuid.New())
	videoRepo.On("GetByID", ctx, v.ID).Return(v, nil).Once()
	videoRepo.On("Update", ctx, mock.MatchedBy(func(u *domain.Video) bool {
		return u.Views == 1
	})).Return(nil).Once()

	updated, err := svc.RecordView(ctx, v.ID)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), updated.Views)
	videoRepo.AssertExpectations(t)
}

func TestVideoService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	videoRepo := new(mocks.VideoRepository)
	svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

	v := freshVideo(uuid.New())

	// Like, then unlike: the count returns to where it started.
	videoRepo.On("GetByID", ctx, v.ID).Return(v, nil).Twice()
	videoRepo.On("Update", ctx, mock.Anything).Return(nil).Twice()

	liked, err := svc.ToggleLike(ctx, v.ID, false)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)

	unliked, err := svc.ToggleLike(ctx, v.ID, true)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), unliked.Likes)
}

func TestVideoService_PostComment(t *testing.T) {
	ctx := context.Background()
	author := &domain.User{ID: uuid.New(), Username: "bob"}

	t.Run("Appends Comment", func(t *testing.T) {
		videoRepo := new(mocks.VideoRepository)
		svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

		v := freshVideo(uuid.New())
		before := len(v.Comments)

		videoRepo.On("GetByID", ctx, v.ID).Return(v, nil).Once()
		videoRepo.On("Update", ctx, mock.Anything).Return(nil).Once()

		updated, err := svc.PostComment(ctx, v.ID, author, "hello")

		assert.NoError(t, err)
		assert.Len(t, updated.Comments, before+1)
		last := updated.Comments[len(updated.Comments)-1]
		assert.Equal(t, "hello", last.Text)
		assert.Equal(t, "bob", last.Username)
		assert.NotEqual(t, uuid.Nil, last.ID)
	})

	t.Run("Rejects Whitespace Text", func(t *testing.T) {
		videoRepo := new(mocks.VideoRepository)
		svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

		_, err := svc.PostComment(ctx, uuid.New(), author, "   \t ")

		assert.ErrorIs(t, err, errs.ErrEmptyComment)
		videoRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestVideoService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: uuid.New(), Username: "alice"}
	stranger := &domain.User{ID: uuid.New(), Username: "mallory"}

	t.Run("Owner Deletes Video And Blobs", func(t *testing.T) {
		videoRepo := new(mocks.VideoRepository)
		blobRepo := new(mocks.BlobRepository)
		svc := newVideoService(videoRepo, blobRepo, new(mocks.UserRepository))

		v := freshVideo(owner.ID)
		v.ThumbnailURL = "local://thumb-1"

		videoRepo.On("GetByID", ctx, v.ID).Return(v, nil).Once()
		blobRepo.On("Delete", ctx, "blob-1").Return(nil).Once()
		blobRepo.On("Delete", ctx, "thumb-1").Return(nil).Once()
		videoRepo.On("Delete", ctx, v.ID).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, v.ID, owner))
		blobRepo.AssertExpectations(t)
		videoRepo.AssertExpectations(t)
	})

	t.Run("Non-Owner Is Denied", func(t *testing.T) {
		videoRepo := new(mocks.VideoRepository)
		svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

		v := freshVideo(owner.ID)
		videoRepo.On("GetByID", ctx, v.ID).Return(v, nil).Once()

		err := svc.Delete(ctx, v.ID, stranger)

		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		videoRepo.AssertNotCalled(t, "Delete", ctx, v.ID)
	})

	t.Run("Blob Failure Does Not Abort Record Delete", func(t *testing.T) {
		videoRepo := new(mocks.VideoRepository)
		blobRepo := new(mocks.BlobRepository)
		svc := newVideoService(videoRepo, blobRepo, new(mocks.UserRepository))

		v := freshVideo(owner.ID)
		videoRepo.On("GetByID", ctx, v.ID).Return(v, nil).Once()
		blobRepo.On("Delete", ctx, "blob-1").Return(assert.AnError).Once()
		videoRepo.On("Delete", ctx, v.ID).Return(nil).Once()

		assert.NoError(t, svc.Delete(ctx, v.ID, owner))
		videoRepo.AssertExpectations(t)
	})
}

func TestVideoService_Search(t *testing.T) {
	ctx := context.Background()
	videoRepo := new(mocks.VideoRepository)
	svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

	videoRepo.On("List", ctx).Return([]domain.Video{}, nil).Once()
	_, err := svc.Search(ctx, "   ")
	assert.NoError(t, err)

	videoRepo.On("Search", ctx, "cats").Return([]domain.Video{}, nil).Once()
	_, err = svc.Search(ctx, "cats")
	assert.NoError(t, err)

	videoRepo.AssertExpectations(t)
}

func TestVideoService_Feed(t *testing.T) {
	ctx := context.Background()
	videoRepo := new(mocks.VideoRepository)
	svc := newVideoService(videoRepo, new(mocks.BlobRepository), new(mocks.UserRepository))

	t.Run("Pages With Defaults", func(t *testing.T) {
		videoRepo.On("Count", ctx).Return(int64(45), nil).Once()
		videoRepo.On("ListPage", ctx, 20, 0).Return(make([]domain.Video, 20), nil).Once()

		feed, err := svc.Feed(ctx, domain.PaginationParams{})

		assert.NoError(t, err)
		assert.Equal(t, 1, feed.Page)
		assert.Equal(t, int64(45), feed.TotalItems)
		assert.Equal(t, 3, feed.TotalPages)
		assert.True(t, feed.HasNext)
		assert.False(t, feed.HasPrev)
	})

	t.Run("Offset Follows Page", func(t *testing.T) {
		videoRepo.On("Count", ctx).Return(int64(45), nil).Once()
		videoRepo.On("ListPage", ctx, 10, 10).Return(make([]domain.Video, 10), nil).Once()

		feed, err := svc.Feed(ctx, domain.PaginationParams{Page: 2, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, 2, feed.Page)
		assert.True(t, feed.HasPrev)
	})

	videoRepo.AssertExpectations(t)
}
