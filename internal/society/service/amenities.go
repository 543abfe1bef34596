package service

import (
	"context"

	"github.com/strataworks/societyd/internal/society/domain"
	"github.com/strataworks/societyd/internal/society/store"
	"github.com/strataworks/societyd/pkg/idx"
)

type AmenityService struct {
	Store store.Store
}

func (s *AmenityService) CreateAmenity(ctx context.Context, name, description, category string) (domain.Amenity, error) {
	if name == "" || category == "" {
		return domain.Amenity{}, ErrInvalidRequest
	}

	a := domain.Amenity{
		ID:          idx.New().String(),
		Name:        name,
		Description: description,
		Category:    category,
	}
	if err := s.Store.Amenities().CreateAmenity(ctx, a); err != nil {
		return domain.Amenity{}, err
	}
	return a, nil
}

func (s *AmenityService) GetAmenity(ctx context.Context, id string) (domain.Amenity, error) {
	return s.Store.Amenities().GetAmenityByID(ctx, id)
}

func (s *AmenityService) ListAmenities(ctx context.Context) ([]domain.Amenity, error) {
	return s.Store.Amenities().ListAmenities(ctx)
}

func (s *AmenityService) UpdateAmenity(ctx context.Context, a domain.Amenity) (domain.Amenity, error) {
	if a.ID == "" || a.Name == "" || a.Category == "" {
		return domain.Amenity{}, ErrInvalidRequest
	}
	if err := s.Store.Amenities().UpdateAmenity(ctx, a); err != nil {
		return domain.Amenity{}, err
	}
	return a, nil
}

func (s *AmenityService) DeleteAmenity(ctx context.Context, id string) error {
	return s.Store.Amenities().DeleteAmenity(ctx, id)
}
