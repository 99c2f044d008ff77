package property

import (
	"context"

	"dreamsproperty/internal/domain"
)

// Store is the persistence contract the service runs against. Two
// implementations exist: the GORM-backed repository and the in-memory
// demo-mode store picked at startup when the database is unreachable.
type Store interface {
	GetAll(ctx context.Context) ([]domain.Property, error)
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
	Create(ctx context.Context, property *domain.Property) error
	Update(ctx context.Context, property *domain.Property) error
	Delete(ctx context.Context, id int64) error
}
