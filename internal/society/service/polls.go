package service

import (
	"context"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
)

type PollService struct {
	Store store.Store
}

func (s *PollService) CreatePoll(ctx context.Context, question string, options []string) (domain.Poll, error) {
	if question == "" || len(options) < 2 {
		return domain.Poll{}, ErrInvalidRequest
	}

	now := time.Now()
	p := domain.Poll{
		ID:        idx.New().String(),
		Question:  question,
		Options:   options,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Polls().CreatePoll(ctx, p); err != nil {
		return domain.Poll{}, err
	}
	return p, nil
}

func (s *PollService) GetPoll(ctx context.Context, id string) (domain.Poll, error) {
	return s.Store.Polls().GetPollByID(ctx, id)
}

func (s *PollService) ListPolls(ctx context.Context) ([]domain.Poll, error) {
	return s.Store.Polls().ListPolls(ctx)
}

func (s *PollService) UpdatePoll(ctx context.Context, id, question string, options []string) (domain.Poll, error) {
	if question == "" || len(options) < 2 {
		return domain.Poll{}, ErrInvalidRequest
	}
	if err := s.Store.Polls().UpdatePoll(ctx, id, question, options, time.Now()); err != nil {
		return domain.Poll{}, err
	}
	return s.Store.Polls().GetPollByID(ctx, id)
}

func (s *PollService) DeletePoll(ctx context.Context, id string) error {
	return s.Store.Polls().DeletePoll(ctx, id)
}
