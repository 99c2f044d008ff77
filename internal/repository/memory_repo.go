package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"dreamsproperty/internal/domain"
)

// MemoryPropertyRepository is the demo-mode store used when the database
// cannot be reached at startup. Data lives only for the lifetime of the
// process and is never reconciled with the relational store.
type MemoryPropertyRepository struct {
	mu         sync.Mutex
	properties []domain.Property
}

func NewMemoryPropertyRepository(seed []domain.Property) *MemoryPropertyRepository {
	r := &MemoryPropertyRepository{}
	r.properties = append(r.properties, seed...)
	return r
}

func (r *MemoryPropertyRepository) GetAll(_ context.Context) ([]domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Property, len(r.properties))
	copy(out, r.properties)

	// Same order the relational store produces: newest first, id as
	// tie-break for records created in the same instant.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *MemoryPropertyRepository) GetByID(_ context.Context, id int64) (*domain.Property, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.properties {
		if r.properties[i].ID == id {
			p := r.properties[i]
			return &p, nil
		}
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *MemoryPropertyRepository) Create(_ context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var maxID int64
	for i := range r.properties {
		if r.properties[i].ID > maxID {
			maxID = r.properties[i].ID
		}
	}
	property.ID = maxID + 1
	property.CreatedAt = time.Now().UTC()

	r.properties = append(r.properties, *property)
	return nil
}

func (r *MemoryPropertyRepository) Update(_ context.Context, property *domain.Property) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.properties {
		if r.properties[i].ID == property.ID {
			property.CreatedAt = r.properties[i].CreatedAt
			r.properties[i] = *property
			return nil
		}
	}
	return domain.ErrPropertyNotFound
}

func (r *MemoryPropertyRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.properties {
		if r.properties[i].ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			return nil
		}
	}
	return domain.ErrPropertyNotFound
}
