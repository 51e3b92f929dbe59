// Package activity is the append-only audit trail. Every state-changing
// operation records an entry; entries are only ever removed in bulk.
package activity

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sukhraj1322/short-video-platform/internal/domain"
	"github.com/sukhraj1322/short-video-platform/internal/repository"
)

type Service interface {
	// Append records an entry. Failures are logged, not returned: the audit
	// trail must never abort the operation it describes.
	Append(ctx context.Context, logType domain.LogType, message string, metadata interface{})
	List(ctx context.Context, newestFirst bool) ([]domain.Log, error)
	ListByType(ctx context.Context, logType domain.LogType) ([]domain.Log, error)
	Count(ctx context.Context) (int64, error)
	Clear(ctx context.Context) error
	// Report renders every entry as a CSV document (type, timestamp, message).
	Report(ctx context.Context, newestFirst bool) ([]byte, error)
}

type service struct {
	logRepo repository.LogRepository
	log     *zap.Logger
}

func NewService(logRepo repository.LogRepository, log *zap.Logger) Service {
	return &service{
		logRepo: logRepo,
		log:     log,
	}
}

func (s *service) Append(ctx context.Context, logType domain.LogType, message string, metadata interface{}) {
	entry := &domain.Log{
		ID:        uuid.New(),
		Type:      logType,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err == nil {
			entry.Metadata = raw
		}
	}

	if err := s.logRepo.Create(ctx, entry); err != nil {
		s.log.Error("append activity log",
			zap.String("type", string(logType)),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, newestFirst bool) ([]domain.Log, error) {
	return s.logRepo.List(ctx, newestFirst)
}

func (s *service) ListByType(ctx context.Context, logType domain.LogType) ([]domain.Log, error) {
	return s.logRepo.ListByType(ctx, logType)
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.logRepo.Count(ctx)
}

func (s *service) Clear(ctx context.Context) error {
	return s.logRepo.Clear(ctx)
}

func (s *service) Report(ctx context.Context, newestFirst bool) ([]byte, error) {
	logs, err := s.logRepo.List(ctx, newestFirst)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"type", "timestamp", "message"}); err != nil {
		return nil, err
	}
	for _, entry := range logs {
		record := []string{
			string(entry.Type),
			entry.CreatedAt.Format(time.RFC3339),
			entry.Message,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
