package service

import (
	"context"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
)

type NoticeService struct {
	Store store.Store
}

func (s *NoticeService) CreateNotice(ctx context.Context, authorID, title, content string) (domain.Notice, error) {
	if title == "" || content == "" {
		return domain.Notice{}, ErrInvalidRequest
	}

	now := time.Now()
	n := domain.Notice{
		ID:        idx.New().String(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Notices().CreateNotice(ctx, n); err != nil {
		return domain.Notice{}, err
	}
	return n, nil
}

func (s *NoticeService) GetNotice(ctx context.Context, id string) (domain.Notice, error) {
	return s.Store.Notices().GetNoticeByID(ctx, id)
}

func (s *NoticeService) ListNotices(ctx context.Context) ([]domain.Notice, error) {
	return s.Store.Notices().ListNotices(ctx)
}

func (s *NoticeService) UpdateNotice(ctx context.Context, id, title, content string) (domain.Notice, error) {
	if title == "" || content == "" {
		return domain.Notice{}, ErrInvalidRequest
	}
	if err := s.Store.Notices().UpdateNotice(ctx, id, title, content, time.Now()); err != nil {
		return domain.Notice{}, err
	}
	return s.Store.Notices().GetNoticeByID(ctx, id)
}

func (s *NoticeService) DeleteNotice(ctx context.Context, id string) error {
	return s.Store.Notices().DeleteNotice(ctx, id)
}
