package property

import (
	"context"

	"dreamsproperty/internal/domain"
	vpkg "dreamsproperty/internal/pkg/validator"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context) ([]domain.Property, error) {
	properties, err := s.store.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if properties == nil {
		properties = []domain.Property{}
	}
	return properties, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Property, error) {
	return s.store.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req PropertyRequest) (*domain.Property, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	property := req.toProperty()
	if err := s.store.Create(ctx, &property); err != nil {
		return nil, err
	}

	return &property, nil
}

// Update replaces every mutable field. The id and original creation
// timestamp are preserved.
func (s *Service) Update(ctx context.Context, id int64, req PropertyRequest) (*domain.Property, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		return nil, err
	}

	property := req.toProperty()
	property.ID = existing.ID
	property.CreatedAt = existing.CreatedAt

	if err := s.store.Update(ctx, &property); err != nil {
		return nil, err
	}

	return &property, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

func validateRequest(req PropertyRequest) error {
	if fe := vpkg.First(req); fe != nil {
		return &ValidationError{Field: fe.Field, Message: fe.Message}
	}
	return nil
}
