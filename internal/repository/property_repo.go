package repository

import (
	"context"
	"errors"
	"net"

	"dreamsproperty/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetAll returns every property, most recently created first.
func (r *PropertyRepository) GetAll(ctx context.Context) ([]domain.Property, error) {
	var properties []domain.Property

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&properties).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return properties, nil
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	var property domain.Property

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&property).Error
	if err != nil {
		return nil, translateErr(err)
	}

	return &property, nil
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	return translateErr(r.db.WithContext(ctx).Create(property).Error)
}

func (r *PropertyRepository) Update(ctx context.Context, property *domain.Property) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Property{}).
		Where("id = ?", property.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(property)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&domain.Property{}, id)
	if res.Error != nil {
		return translateErr(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// translateErr keeps driver errors out of the layers above: not-found and
// connection failures become domain sentinels, everything else passes
// through for the handler to log as a generic server error.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPropertyNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == "08" {
		// SQLSTATE class 08: connection exception
		return domain.ErrStoreUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return domain.ErrStoreUnavailable
	}

	return err
}
