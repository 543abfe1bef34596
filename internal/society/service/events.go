package service

import (
	"context"
	"time"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
)

type EventService struct {
	Store store.Store
}

func (s *EventService) CreateEvent(ctx context.Context, organizationID, title, description string, eventDate time.Time) (domain.Event, error) {
	if organizationID == "" || title == "" || eventDate.IsZero() {
		return domain.Event{}, ErrInvalidRequest
	}

	e := domain.Event{
		ID:             idx.New().String(),
		OrganizationID: organizationID,
		Title:          title,
		Description:    description,
		EventDate:      eventDate,
	}
	if err := s.Store.Events().CreateEvent(ctx, e); err != nil {
		return domain.Event{}, err
	}
	return e, nil
}

func (s *EventService) ListEvents(ctx context.Context, organizationID string) ([]domain.Event, error) {
	return s.Store.Events().ListEventsByOrganization(ctx, organizationID)
}

func (s *EventService) DeleteEvent(ctx context.Context, id string) error {
	return s.Store.Events().DeleteEvent(ctx, id)
}
