package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"demo_services/internal/metrics"
	"demo_services/internal/repository"
	"demo_services/internal/storage"
)

// VisitService 記錄造訪並回傳目前的造訪序號
type VisitService struct {
	logger *zap.Logger
	open   storage.Opener
}

func NewVisitService(logger *zap.Logger, open storage.Opener) (*VisitService, error) {
	if logger == nil {
		return nil, errors.New("service: logger must not be nil")
	}
	if open == nil {
		return nil, errors.New("service: opener must not be nil")
	}
	return &VisitService{logger: logger, open: open}, nil
}

// RecordVisit 每次都開一條新連線：建表、新增一筆、計數，最後關閉連線
func (s *VisitService) RecordVisit(ctx context.Context) (int64, error) {
	db, err := s.open(ctx)
	if err != nil {
		return 0, newError(KindInternal, "connect database", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			s.logger.Warn("failed to close database connection", zap.Error(closeErr))
		}
	}()

	repo := repository.NewRepositories(db).Visit
	if err := repo.EnsureSchema(); err != nil {
		return 0, newError(KindInternal, "ensure schema", err)
	}
	count, err := repo.RecordAndCount()
	if err != nil {
		return 0, newError(KindInternal, "record visit", err)
	}

	metrics.CounterVisits.Inc()
	return count, nil
}

// Ping 以短暫連線確認資料庫可用
func (s *VisitService) Ping(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return newError(KindInternal, "connect database", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(ctx); err != nil {
		return newError(KindInternal, "ping database", err)
	}
	return nil
}

// VisitMessage 產生顯示給訪客的訊息
func VisitMessage(count int64) string {
	return fmt.Sprintf("あなたは %d 番目の訪問者です！", count)
}
