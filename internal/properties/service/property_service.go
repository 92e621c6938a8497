package service

import (
	"context"
	"errors"

	"github.com/welhome/properties-api/internal/properties/domain"
	"github.com/welhome/properties-api/internal/properties/repository"
)

// PropertyService validates input and forwards it to the configured store.
type PropertyService struct {
	repo repository.Store
}

func NewPropertyService(repo repository.Store) *PropertyService {
	return &PropertyService{repo: repo}
}

// Create validates and persists a new property.
func (s *PropertyService) Create(ctx context.Context, in domain.PropertyInput) (*domain.Property, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, in)
	if err != nil {
		s.logFailure(ctx, "create", err)
		return nil, err
	}

	NewLogger(ctx).LogInfof("create", "id=%d status=%s", p.ID, p.Status)
	return p, nil
}

// List returns every property in insertion order.
func (s *PropertyService) List(ctx context.Context) ([]domain.Property, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logFailure(ctx, "list", err)
		return nil, err
	}
	return items, nil
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*domain.Property, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, "get", err)
		return nil, err
	}
	return p, nil
}

// Update overwrites title, address and status of an existing property.
func (s *PropertyService) Update(ctx context.Context, id int64, in domain.PropertyInput) (*domain.Property, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, id, in)
	if err != nil {
		s.logFailure(ctx, "update", err)
		return nil, err
	}

	NewLogger(ctx).LogInfof("update", "id=%d status=%s", p.ID, p.Status)
	return p, nil
}

// Delete permanently removes a property.
func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure(ctx, "delete", err)
		return err
	}

	NewLogger(ctx).LogInfof("delete", "id=%d", id)
	return nil
}

// logFailure skips expected client errors so only store faults are logged.
func (s *PropertyService) logFailure(ctx context.Context, operation string, err error) {
	if errors.Is(err, domain.ErrPropertyNotFound) || errors.Is(err, domain.ErrInvalidProperty) {
		return
	}
	NewLogger(ctx).LogError(operation, err)
}
